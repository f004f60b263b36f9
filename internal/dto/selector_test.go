package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comodatos-admin/internal/models"
	"comodatos-admin/internal/selector"
)

func TestNewClienteCard_UsesPlaceholderLogo(t *testing.T) {
	card := NewClienteCard(models.Cliente{ID: 4, Nombre: "Acme", Rut: "1-9"}, "/static/img/sin-logo.svg")

	assert.Equal(t, int64(4), card.ID)
	assert.Equal(t, "/static/img/sin-logo.svg", card.Logo)
	assert.Zero(t, card.ComodatoCount)
}

func TestNewSelectorStateResponse(t *testing.T) {
	acme := models.Cliente{ID: 1, Nombre: "Acme", Logo: "https://cdn/a.png"}
	beta := models.Cliente{ID: 2, Nombre: "Beta"}

	st := selector.State{
		Open:            true,
		Search:          "bet",
		Clientes:        []models.Cliente{acme, beta},
		Filtered:        []models.Cliente{beta},
		Selected:        &acme,
		ShowSelected:    true,
		PlaceholderLogo: "/p.svg",
	}

	resp := NewSelectorStateResponse(st, 1)

	assert.True(t, resp.Open)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Clientes, 1)
	assert.Equal(t, "/p.svg", resp.Clientes[0].Logo)
	require.NotNil(t, resp.Selected)
	assert.Equal(t, "https://cdn/a.png", resp.Selected.Logo)
	assert.Equal(t, int64(1), resp.ClienteID)
}

func TestNewSelectorStateResponse_HidesSummaryWhenDisabled(t *testing.T) {
	acme := models.Cliente{ID: 1, Nombre: "Acme"}

	resp := NewSelectorStateResponse(selector.State{Selected: &acme}, 1)

	assert.Nil(t, resp.Selected)
	assert.NotNil(t, resp.Clientes)
}

func TestNewComodatoListingResponse_EmptyCollectionsAreArrays(t *testing.T) {
	resp := NewComodatoListingResponse(models.NewComodatoListing(nil))

	assert.Equal(t, models.ListingEmpty, resp.Status)
	assert.NotNil(t, resp.Columns)
	assert.NotNil(t, resp.Comodatos)
	assert.Equal(t, "No hay comodatos registrados", resp.Message)
}
