package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"comodatos-admin/internal/dto"
	apierrors "comodatos-admin/internal/errors"
	"comodatos-admin/internal/models"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const comodatosImage = "/static/img/comodatos.svg"

// ComodatosPage is the view model of the comodatos listing page
type ComodatosPage struct {
	Title       string
	Description string
	Image       string
	Listing     *models.ComodatoListing
}

// NewComodatoPage is the view model of the parent page hosting the selector
type NewComodatoPage struct {
	Title    string
	Selector dto.SelectorStateResponse
}

// errNoListing reports a listing service that returned neither a listing
// nor an error.
var errNoListing = errors.New("comodato listing service returned no listing")

// ComodatoHandler serves the comodatos listing, its exports and the new
// comodato page.
type ComodatoHandler struct {
	listing  services.ComodatoListingServiceInterface
	exporter services.ComodatoExporterInterface
	store    *selector.Store
}

// NewComodatoHandler creates a new comodato handler
func NewComodatoHandler(
	listing services.ComodatoListingServiceInterface,
	exporter services.ComodatoExporterInterface,
	store *selector.Store,
) *ComodatoHandler {
	return &ComodatoHandler{
		listing:  listing,
		exporter: exporter,
		store:    store,
	}
}

// load resolves the listing. The returned listing is never nil: on any
// failure it is the failed listing.
func (h *ComodatoHandler) load(c echo.Context) (*models.ComodatoListing, error) {
	listing, err := h.listing.Load(c.Request().Context())
	if err == nil && listing == nil {
		err = errNoListing
	}
	if err != nil {
		listing = models.FailedComodatoListing()
	}
	return listing, err
}

// Page renders the banner and the loading placeholder; the table itself is
// fetched from /comodatos/tabla.
// @Summary Comodatos page
// @Tags Comodato pages
// @Produce html
// @Success 200 {string} string "Banner and loading placeholder"
// @Router /comodatos [get]
func (h *ComodatoHandler) Page(c echo.Context) error {
	return c.Render(http.StatusOK, "comodatos", ComodatosPage{
		Title:       services.ComodatosTitle,
		Description: services.ComodatosDescription,
		Image:       comodatosImage,
		Listing:     models.LoadingComodatoListing(),
	})
}

// Table renders the resolved comodatos table. A backend failure renders the
// failed state rather than an error page.
// @Summary Comodatos table fragment
// @Description Renders the empty, populated or failed listing. Always 200.
// @Tags Comodato pages
// @Produce html
// @Success 200 {string} string "comodatos_tabla fragment"
// @Router /comodatos/tabla [get]
func (h *ComodatoHandler) Table(c echo.Context) error {
	listing, _ := h.load(c)
	return c.Render(http.StatusOK, "comodatos_tabla", listing)
}

// ExportPDF downloads the comodatos table as a PDF document.
// @Summary Export comodatos as PDF
// @Tags Comodato pages
// @Produce application/pdf
// @Success 200 {file} file "comodatos.pdf"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_002 - Comodatos could not be loaded"
// @Failure 503 {object} errors.ErrorResponse "BACKEND_003 - Backend circuit open"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - PDF rendering failed"
// @Router /comodatos/export.pdf [get]
func (h *ComodatoHandler) ExportPDF(c echo.Context) error {
	listing, err := h.load(c)
	if err != nil {
		return h.handleLoadError(c, err)
	}

	var buf bytes.Buffer
	if err := h.exporter.RenderPDF(listing, &buf); err != nil {
		return SendSystemError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="comodatos.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

// List returns the comodatos table as JSON.
// @Summary List comodatos
// @Description Returns every comodato with the table columns and the listing state
// @Tags Comodatos
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.ComodatoListingResponse} "Comodatos listing"
// @Failure 502 {object} errors.ErrorResponse "BACKEND_002 - Comodatos could not be loaded"
// @Failure 503 {object} errors.ErrorResponse "BACKEND_003 - Backend circuit open"
// @Router /api/v1/comodatos [get]
func (h *ComodatoHandler) List(c echo.Context) error {
	listing, err := h.load(c)
	if err != nil {
		return h.handleLoadError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewComodatoListingResponse(listing)})
}

// New renders the parent page holding the draft comodato and its client
// selector.
// @Summary New comodato page
// @Tags Comodato pages
// @Produce html
// @Success 200 {string} string "Page with the selector trigger and summary card"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /comodatos/nuevo [get]
func (h *ComodatoHandler) New(c echo.Context) error {
	sessionID := getSessionID(c)
	if sessionID == "" {
		return SendError(c, apierrors.SelectorSessionMissing)
	}

	sess := h.store.Get(sessionID)
	return c.Render(http.StatusOK, "comodato_nuevo", NewComodatoPage{
		Title:    "Nuevo Comodato",
		Selector: dto.NewSelectorStateResponse(sess.Selector.Snapshot(), sess.ClienteID()),
	})
}

func (h *ComodatoHandler) handleLoadError(c echo.Context, err error) error {
	if errors.Is(err, services.ErrCircuitBreakerOpen) {
		return SendError(c, apierrors.BackendCircuitOpen)
	}
	return SendError(c, apierrors.BackendComodatosUnavailable)
}
