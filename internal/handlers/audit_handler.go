package handlers

import (
	"net/http"

	"comodatos-admin/internal/dto"
	apierrors "comodatos-admin/internal/errors"
	"comodatos-admin/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSelectionsLimit = 20

// AuditHandler exposes the trail of client selections
type AuditHandler struct {
	audit services.SelectionAuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(audit services.SelectionAuditServiceInterface) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// ListSelections returns selection events, newest first.
// @Summary List client selections
// @Description Pages through the audit trail of client selections
// @Tags Audit
// @Produce json
// @Param offset query int false "Results offset" default(0)
// @Param limit query int false "Results limit (max 100)" default(20)
// @Success 200 {object} SuccessResponse{data=dto.ListSelectionsResponse} "Selection events"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 / VALIDATION_004 - Invalid paging"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_002 - Audit store unavailable"
// @Router /api/v1/selecciones [get]
func (h *AuditHandler) ListSelections(c echo.Context) error {
	var req dto.ListSelectionsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, apierrors.ValidationOutOfRange, err)
	}
	if req.Limit == 0 {
		req.Limit = defaultSelectionsLimit
	}

	events, total, err := h.audit.ListSelections(c.Request().Context(), req.Offset, req.Limit)
	if err != nil {
		return SendDatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.NewListSelectionsResponse(events, total, req.Offset, req.Limit),
	})
}
