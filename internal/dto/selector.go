package dto

import (
	"comodatos-admin/internal/models"
	"comodatos-admin/internal/selector"
)

// SearchClientesRequest carries the modal's search box.
type SearchClientesRequest struct {
	Query string `query:"q" form:"q" json:"q" validate:"max=100,search_text"`
}

// SelectClienteRequest carries the id of the picked client.
type SelectClienteRequest struct {
	ClienteID int64 `query:"cliente_id" form:"cliente_id" json:"cliente_id" validate:"required,cliente_id"`
}

// ClienteCard is a client as rendered in the modal list and the summary card.
type ClienteCard struct {
	ID            int64  `json:"id"`
	Nombre        string `json:"nombre"`
	Rut           string `json:"rut"`
	CodigoComuna  string `json:"codigo_comuna"`
	Direccion     string `json:"direccion"`
	Logo          string `json:"logo"`
	ComodatoCount int    `json:"comodato_count"`
}

func NewClienteCard(c models.Cliente, placeholderLogo string) ClienteCard {
	return ClienteCard{
		ID:            c.ID,
		Nombre:        c.Nombre,
		Rut:           c.Rut,
		CodigoComuna:  c.CodigoComuna,
		Direccion:     c.Direccion,
		Logo:          c.LogoOr(placeholderLogo),
		ComodatoCount: c.ComodatoCount(),
	}
}

// SelectorStateResponse is the JSON view of a session's selector.
type SelectorStateResponse struct {
	Open         bool          `json:"open"`
	Loading      bool          `json:"loading"`
	Generation   uint64        `json:"generation"`
	Search       string        `json:"search"`
	Clientes     []ClienteCard `json:"clientes"`
	Total        int           `json:"total"`
	Selected     *ClienteCard  `json:"selected,omitempty"`
	ShowSelected bool          `json:"show_selected"`
	Notice       string        `json:"notice,omitempty"`
	ClienteID    int64         `json:"cliente_id,omitempty"`
}

// NewSelectorStateResponse converts a selector snapshot. Clientes holds the
// filtered list; Total counts the full fetched list.
func NewSelectorStateResponse(st selector.State, draftClienteID int64) SelectorStateResponse {
	resp := SelectorStateResponse{
		Open:         st.Open,
		Loading:      st.Loading,
		Generation:   st.Generation,
		Search:       st.Search,
		Clientes:     make([]ClienteCard, 0, len(st.Filtered)),
		Total:        len(st.Clientes),
		ShowSelected: st.ShowSelected,
		Notice:       st.Notice,
		ClienteID:    draftClienteID,
	}
	for _, c := range st.Filtered {
		resp.Clientes = append(resp.Clientes, NewClienteCard(c, st.PlaceholderLogo))
	}
	if st.ShowSummary() {
		card := NewClienteCard(*st.Selected, st.PlaceholderLogo)
		resp.Selected = &card
	}
	return resp
}

// NewClientResponse tells the caller where to go after "Nuevo Cliente".
type NewClientResponse struct {
	Redirect string `json:"redirect,omitempty"`
	Handled  bool   `json:"handled"`
}
