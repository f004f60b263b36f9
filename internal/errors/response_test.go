package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(SelectorClienteNotFound, s.traceID)

	s.Equal("SELECTOR_002", response.Error.Code)
	s.Equal("Client is not part of the current list", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
	s.Equal(http.StatusUnprocessableEntity, response.GetHTTPStatus())
}

// Last option of a kind wins
func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(
		ValidationGeneral,
		s.traceID,
		WithDetails("detail1", "detail2"),
		WithDetails("cliente_id: 42"),
		WithMessage("First message"),
		WithMessage("Cliente no encontrado"),
	)

	s.Equal([]string{"cliente_id: 42"}, response.Error.Details)
	s.Equal("Cliente no encontrado", response.Error.Message)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedFieldDetails() {
	response := NewValidationError(ValidationOutOfRange, map[string]string{
		"q":          "must be at most 100 characters long",
		"cliente_id": "is required",
	}, s.traceID)

	s.Equal("VALIDATION_004", response.Error.Code)
	s.Equal([]string{
		"cliente_id: is required",
		"q: must be at most 100 characters long",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalDetails() {
	internalErr := errors.New("dial tcp 10.0.0.4:3001: connection refused")

	response, originalErr := WrapSystemError(internalErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "10.0.0.4")
	s.Empty(response.Error.Details)
	s.Equal(internalErr, originalErr)
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	dbErr := errors.New("connection pool exhausted")

	response, originalErr := WrapDatabaseError(dbErr, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal("Database connection error", response.Error.Message)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
	s.Equal(dbErr, originalErr)
}

func (s *ResponseTestSuite) TestJSON_EmptyDetailsOmitted() {
	raw, err := json.Marshal(NewErrorResponse(BackendCircuitOpen, s.traceID))
	s.Require().NoError(err)

	var body map[string]map[string]any
	s.Require().NoError(json.Unmarshal(raw, &body))

	_, hasDetails := body["error"]["details"]
	s.False(hasDetails)
	s.Equal("BACKEND_003", body["error"]["code"])
	s.Equal(s.traceID, body["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestLogValue() {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	logger.Warn("HTTP error occurred", "response", NewErrorResponse(ResourceNotFound, s.traceID, WithDetails("a", "b")))

	var entry map[string]any
	s.Require().NoError(json.Unmarshal(buf.Bytes(), &entry))
	group, ok := entry["response"].(map[string]any)
	s.Require().True(ok)
	s.Equal("RESOURCE_001", group["code"])
	s.Equal("Resource not found", group["message"])
	s.Equal(s.traceID, group["trace_id"])
	s.Equal(float64(2), group["details"])
}
