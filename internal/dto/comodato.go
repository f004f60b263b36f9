package dto

import "comodatos-admin/internal/models"

// ComodatoListingResponse is the JSON view of the comodatos table.
type ComodatoListingResponse struct {
	Status    models.ListingStatus `json:"status"`
	Columns   []string             `json:"columns"`
	Comodatos []models.Comodato    `json:"comodatos"`
	Total     int                  `json:"total"`
	Message   string               `json:"message,omitempty"`
}

func NewComodatoListingResponse(l *models.ComodatoListing) ComodatoListingResponse {
	resp := ComodatoListingResponse{
		Status:    l.Status,
		Columns:   l.Columns,
		Comodatos: l.Comodatos,
		Total:     len(l.Comodatos),
		Message:   l.Message,
	}
	if resp.Columns == nil {
		resp.Columns = []string{}
	}
	if resp.Comodatos == nil {
		resp.Comodatos = []models.Comodato{}
	}
	return resp
}
