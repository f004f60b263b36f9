package models

// ListingStatus is the render state of the comodatos table.
type ListingStatus string

const (
	ListingLoading   ListingStatus = "loading"
	ListingEmpty     ListingStatus = "empty"
	ListingPopulated ListingStatus = "populated"
	ListingFailed    ListingStatus = "failed"
)

const (
	ListingLoadingText = "Cargando datos..."
	ListingEmptyText   = "No hay comodatos registrados"
	ListingFailedText  = "Error al cargar los comodatos"
)

// ComodatoListing is the resolved content of the comodatos page table.
type ComodatoListing struct {
	Status    ListingStatus
	Comodatos []Comodato
	Columns   []string
	Message   string
}

// NewComodatoListing derives the listing state from a fetched collection.
func NewComodatoListing(comodatos []Comodato) *ComodatoListing {
	if len(comodatos) == 0 {
		return &ComodatoListing{Status: ListingEmpty, Message: ListingEmptyText}
	}
	return &ComodatoListing{
		Status:    ListingPopulated,
		Comodatos: comodatos,
		Columns:   ComodatoColumns(comodatos),
	}
}

func FailedComodatoListing() *ComodatoListing {
	return &ComodatoListing{Status: ListingFailed, Message: ListingFailedText}
}

func LoadingComodatoListing() *ComodatoListing {
	return &ComodatoListing{Status: ListingLoading, Message: ListingLoadingText}
}

// Rows returns every comodato rendered as display cells, in Columns order.
func (l *ComodatoListing) Rows() [][]string {
	rows := make([][]string, 0, len(l.Comodatos))
	for _, c := range l.Comodatos {
		row := make([]string, len(l.Columns))
		for i, col := range l.Columns {
			row[i] = c.Cell(col)
		}
		rows = append(rows, row)
	}
	return rows
}
