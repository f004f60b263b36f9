package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comodatos-admin/internal/dto"
	"comodatos-admin/internal/models"
	"comodatos-admin/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuditHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	audit   *service_mocks.MockSelectionAuditServiceInterface
	echo    *echo.Echo
	handler *AuditHandler
}

func (s *AuditHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.audit = service_mocks.NewMockSelectionAuditServiceInterface(s.ctrl)
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.handler = NewAuditHandler(s.audit)
}

func (s *AuditHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuditHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuditHandlerTestSuite))
}

func (s *AuditHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *AuditHandlerTestSuite) TestListSelections_DefaultPaging() {
	events := []*models.SelectionEvent{
		{
			ID:            uuid.New(),
			SessionID:     testSessionID,
			ClienteID:     7,
			ClienteNombre: gofakeit.Company(),
			CreatedAt:     time.Now().UTC(),
		},
	}
	s.audit.EXPECT().ListSelections(gomock.Any(), 0, 20).Return(events, int64(1), nil)

	c, rec := s.get("/api/v1/selecciones")
	s.Require().NoError(s.handler.ListSelections(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data dto.ListSelectionsResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(int64(1), body.Data.Total)
	s.Equal(20, body.Data.Limit)
	s.Require().Len(body.Data.Selections, 1)
	s.Equal(int64(7), body.Data.Selections[0].ClienteID)
	s.Equal(events[0].ClienteNombre, body.Data.Selections[0].ClienteNombre)
}

func (s *AuditHandlerTestSuite) TestListSelections_CustomPaging() {
	s.audit.EXPECT().ListSelections(gomock.Any(), 40, 10).Return(nil, int64(45), nil)

	c, rec := s.get("/api/v1/selecciones?offset=40&limit=10")
	s.Require().NoError(s.handler.ListSelections(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"selections":[]`)
}

func (s *AuditHandlerTestSuite) TestListSelections_LimitOutOfRange() {
	c, rec := s.get("/api/v1/selecciones?limit=500")
	s.Require().NoError(s.handler.ListSelections(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_004")
}

func (s *AuditHandlerTestSuite) TestListSelections_NotANumber() {
	c, rec := s.get("/api/v1/selecciones?offset=abc")
	s.Require().NoError(s.handler.ListSelections(c))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_003")
}

func (s *AuditHandlerTestSuite) TestListSelections_RepositoryError() {
	s.audit.EXPECT().ListSelections(gomock.Any(), 0, 20).Return(nil, int64(0), errors.New("db down"))

	c, rec := s.get("/api/v1/selecciones")
	s.Require().NoError(s.handler.ListSelections(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_002")
	s.NotContains(rec.Body.String(), "db down")
}
