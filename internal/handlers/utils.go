package handlers

import (
	"errors"
	"fmt"

	apierrors "comodatos-admin/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// getSessionID returns the browser session id stored by the session middleware
func getSessionID(c echo.Context) string {
	sessionID, ok := c.Get(SessionContextKey).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// isFragmentRequest reports whether the caller asked for an HTML fragment
// rather than a full page
func isFragmentRequest(c echo.Context) bool {
	return c.Request().Header.Get(FragmentHeader) != ""
}

// validationDetails turns validator errors into one detail per field
func validationDetails(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			details = append(details, fmt.Sprintf("%s: failed '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		details = append(details, fmt.Sprintf("%s: failed '%s'", fe.Field(), fe.Tag()))
	}
	return details
}

// sendValidationError reports a failed validation with the given code
func sendValidationError(c echo.Context, code apierrors.ErrorCode, err error) error {
	return SendError(c, code, apierrors.WithDetails(validationDetails(err)...))
}
