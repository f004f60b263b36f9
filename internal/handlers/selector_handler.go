package handlers

import (
	"errors"
	"net/http"

	"comodatos-admin/internal/dto"
	apierrors "comodatos-admin/internal/errors"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"

	"github.com/labstack/echo/v4"
)

// NewComodatoPath is the parent page that hosts the client selector
const NewComodatoPath = "/comodatos/nuevo"

// SelectorHandler drives each browser session's client selection modal, as
// HTML fragments for the admin pages and as JSON under /api/v1/selector.
type SelectorHandler struct {
	store  *selector.Store
	audit  services.SelectionAuditServiceInterface
	logger services.AdminLoggerInterface
}

// NewSelectorHandler creates a new selector handler
func NewSelectorHandler(
	store *selector.Store,
	audit services.SelectionAuditServiceInterface,
	logger services.AdminLoggerInterface,
) *SelectorHandler {
	return &SelectorHandler{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// session resolves the caller's selector session. A nil session means the
// error response has already been written.
func (h *SelectorHandler) session(c echo.Context) (*selector.Session, error) {
	sessionID := getSessionID(c)
	if sessionID == "" {
		return nil, SendError(c, apierrors.SelectorSessionMissing)
	}
	return h.store.Get(sessionID), nil
}

func (h *SelectorHandler) state(sess *selector.Session) dto.SelectorStateResponse {
	return dto.NewSelectorStateResponse(sess.Selector.Snapshot(), sess.ClienteID())
}

// respondRegion re-renders the selector region for fragment requests and
// sends plain form posts back to the parent page.
func (h *SelectorHandler) respondRegion(c echo.Context, sess *selector.Session) error {
	if !isFragmentRequest(c) {
		return c.Redirect(http.StatusSeeOther, NewComodatoPath)
	}
	return c.Render(http.StatusOK, "selector_region", h.state(sess))
}

func (h *SelectorHandler) open(c echo.Context, sess *selector.Session) {
	ctx := c.Request().Context()
	generation := sess.Selector.Open(ctx)
	h.logger.LogSelectorOpened(ctx, sess.ID, generation)
}

// selectCliente picks id from the session's list and records the choice.
// On failure the error response is written and handled is false.
func (h *SelectorHandler) selectCliente(c echo.Context, sess *selector.Session, id int64) (handled bool, err error) {
	ctx := c.Request().Context()

	cliente, err := sess.Selector.Select(id)
	if errors.Is(err, selector.ErrSelectorClosed) {
		return false, SendError(c, apierrors.SelectorClosed)
	}
	if errors.Is(err, selector.ErrClienteNotFound) {
		return false, SendError(c, apierrors.SelectorClienteNotFound)
	}
	if err != nil {
		return false, SendSystemError(c, err)
	}

	h.audit.RecordSelection(ctx, sess.ID, cliente)
	h.logger.LogClienteSelected(ctx, sess.ID, cliente.ID)
	return true, nil
}

func (h *SelectorHandler) bindSelect(c echo.Context) (int64, bool, error) {
	var req dto.SelectClienteRequest
	if err := c.Bind(&req); err != nil {
		return 0, false, SendError(c, apierrors.SelectorInvalidID)
	}
	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), "select_cliente", err.Error())
		return 0, false, sendValidationError(c, apierrors.SelectorInvalidID, err)
	}
	return req.ClienteID, true, nil
}

func (h *SelectorHandler) bindSearch(c echo.Context) (string, bool, error) {
	var req dto.SearchClientesRequest
	if err := c.Bind(&req); err != nil {
		return "", false, SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(c.Request().Context(), "search_clientes", err.Error())
		return "", false, sendValidationError(c, apierrors.ValidationGeneral, err)
	}
	return req.Query, true, nil
}

// Open shows the modal and starts loading the client list.
// @Summary Open the client selector
// @Description Opens the modal and starts a fresh load of the client list. Fragment requests get the selector region, plain posts are redirected to the new comodato page.
// @Tags Selector pages
// @Produce html
// @Param X-Fragment header string false "Any value requests an HTML fragment"
// @Success 200 {string} string "selector_region fragment"
// @Success 303 "Redirect to /comodatos/nuevo"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /selector/abrir [post]
func (h *SelectorHandler) Open(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	h.open(c, sess)
	return h.respondRegion(c, sess)
}

// Close hides the modal, discarding any pending client list.
// @Summary Close the client selector
// @Tags Selector pages
// @Produce html
// @Param X-Fragment header string false "Any value requests an HTML fragment"
// @Success 200 {string} string "selector_region fragment"
// @Success 303 "Redirect to /comodatos/nuevo"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /selector/cerrar [post]
func (h *SelectorHandler) Close(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	sess.Selector.Close()
	return h.respondRegion(c, sess)
}

// Modal renders the selector region as it stands. The page polls it while
// the client list is loading.
// @Summary Selector region
// @Tags Selector pages
// @Produce html
// @Success 200 {string} string "selector_region fragment"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /selector/modal [get]
func (h *SelectorHandler) Modal(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	return c.Render(http.StatusOK, "selector_region", h.state(sess))
}

// Search filters the loaded client list by name.
// @Summary Filter the client list
// @Tags Selector pages
// @Produce html
// @Param q query string false "Case-insensitive name fragment (max 100)"
// @Param X-Fragment header string false "Any value requests an HTML fragment"
// @Success 200 {string} string "selector_lista fragment"
// @Success 303 "Redirect to /comodatos/nuevo"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid search text"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /selector/buscar [get]
// @Router /selector/buscar [post]
func (h *SelectorHandler) Search(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	query, ok, err := h.bindSearch(c)
	if !ok {
		return err
	}
	sess.Selector.Search(query)

	if !isFragmentRequest(c) {
		return c.Redirect(http.StatusSeeOther, NewComodatoPath)
	}
	return c.Render(http.StatusOK, "selector_lista", h.state(sess))
}

// Select picks a client for the draft comodato and closes the modal.
// @Summary Select a client
// @Tags Selector pages
// @Accept x-www-form-urlencoded
// @Produce html
// @Param cliente_id formData int true "Client ID from the current list"
// @Param X-Fragment header string false "Any value requests an HTML fragment"
// @Success 200 {string} string "selector_region fragment with the summary card"
// @Success 303 "Redirect to /comodatos/nuevo"
// @Failure 400 {object} errors.ErrorResponse "SELECTOR_003 - Invalid client ID"
// @Failure 409 {object} errors.ErrorResponse "SELECTOR_001 - Selector closed or loading"
// @Failure 422 {object} errors.ErrorResponse "SELECTOR_002 - Client not in the current list"
// @Router /selector/seleccionar [post]
func (h *SelectorHandler) Select(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	id, ok, err := h.bindSelect(c)
	if !ok {
		return err
	}
	if handled, err := h.selectCliente(c, sess, id); !handled {
		return err
	}
	return h.respondRegion(c, sess)
}

// NewClient runs the "Nuevo Cliente" action, navigating to the client
// creation route.
// @Summary Create a new client
// @Tags Selector pages
// @Produce html
// @Success 303 "Redirect to the client creation route"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /selector/nuevo-cliente [post]
func (h *SelectorHandler) NewClient(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	route := sess.Selector.NewClient()
	h.logger.LogNewClientRequested(c.Request().Context(), sess.ID, route)
	if route != "" {
		return c.Redirect(http.StatusSeeOther, route)
	}
	return h.respondRegion(c, sess)
}

// GetState returns the session's selector.
// @Summary Get selector state
// @Description Returns the modal state, the filtered client list and the selected client of the caller's session
// @Tags Selector
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SelectorStateResponse} "Selector state"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /api/v1/selector [get]
func (h *SelectorHandler) GetState(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.state(sess)})
}

// OpenAPI opens the selector. The response reports loading until the client
// list arrives; poll GET /api/v1/selector for the result.
// @Summary Open the client selector
// @Description Starts a fresh load of the client list. A failed load is reported in the state's notice.
// @Tags Selector
// @Produce json
// @Success 202 {object} SuccessResponse{data=dto.SelectorStateResponse} "Selector opened, list loading"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /api/v1/selector/open [post]
func (h *SelectorHandler) OpenAPI(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	h.open(c, sess)
	return c.JSON(http.StatusAccepted, SuccessResponse{Data: h.state(sess)})
}

// CloseAPI closes the selector and drops any pending client list.
// @Summary Close the client selector
// @Tags Selector
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.SelectorStateResponse} "Selector closed"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /api/v1/selector/close [post]
func (h *SelectorHandler) CloseAPI(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}
	sess.Selector.Close()
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.state(sess)})
}

// SearchAPI filters the loaded client list by name.
// @Summary Filter the client list
// @Tags Selector
// @Accept json
// @Produce json
// @Param request body dto.SearchClientesRequest true "Search text"
// @Success 200 {object} SuccessResponse{data=dto.SelectorStateResponse} "Filtered state"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid search text"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /api/v1/selector/search [post]
func (h *SelectorHandler) SearchAPI(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	query, ok, err := h.bindSearch(c)
	if !ok {
		return err
	}
	sess.Selector.Search(query)
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.state(sess)})
}

// SelectAPI picks a client for the draft comodato and closes the modal.
// @Summary Select a client
// @Tags Selector
// @Accept json
// @Produce json
// @Param request body dto.SelectClienteRequest true "Client to select"
// @Success 200 {object} SuccessResponse{data=dto.SelectorStateResponse} "Client selected"
// @Failure 400 {object} errors.ErrorResponse "SELECTOR_003 - Invalid client ID"
// @Failure 409 {object} errors.ErrorResponse "SELECTOR_001 - Selector closed or loading"
// @Failure 422 {object} errors.ErrorResponse "SELECTOR_002 - Client not in the current list"
// @Router /api/v1/selector/select [post]
func (h *SelectorHandler) SelectAPI(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	id, ok, err := h.bindSelect(c)
	if !ok {
		return err
	}
	if handled, err := h.selectCliente(c, sess, id); !handled {
		return err
	}
	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    h.state(sess),
		Message: "Cliente seleccionado",
	})
}

// NewClientAPI runs the "Nuevo Cliente" action and returns where to go.
// @Summary Create a new client
// @Tags Selector
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.NewClientResponse} "Navigation target"
// @Failure 404 {object} errors.ErrorResponse "SELECTOR_004 - Missing session"
// @Router /api/v1/selector/new-client [post]
func (h *SelectorHandler) NewClientAPI(c echo.Context) error {
	sess, err := h.session(c)
	if sess == nil {
		return err
	}

	route := sess.Selector.NewClient()
	h.logger.LogNewClientRequested(c.Request().Context(), sess.ID, route)
	return c.JSON(http.StatusOK, SuccessResponse{Data: dto.NewClientResponse{
		Redirect: route,
		Handled:  route == "",
	}})
}
