package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"comodatos-admin/internal/dto"
	"comodatos-admin/internal/models"
	"comodatos-admin/internal/selector"
	"comodatos-admin/internal/services"
	"comodatos-admin/internal/services/service_mocks"
	"comodatos-admin/internal/web"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ComodatoHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	listing  *service_mocks.MockComodatoListingServiceInterface
	exporter *service_mocks.MockComodatoExporterInterface
	store    *selector.Store
	echo     *echo.Echo
	handler  *ComodatoHandler
}

func (s *ComodatoHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.listing = service_mocks.NewMockComodatoListingServiceInterface(s.ctrl)
	s.exporter = service_mocks.NewMockComodatoExporterInterface(s.ctrl)
	backend := service_mocks.NewMockBackendClientInterface(s.ctrl)

	s.store = selector.NewStore(func(onSelect func(int64)) *selector.Selector {
		return selector.New(backend, discardLogger(), nil, selector.Options{OnSelect: onSelect})
	}, time.Hour, discardLogger())

	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.echo.Renderer = web.MustRenderer()
	s.handler = NewComodatoHandler(s.listing, s.exporter, s.store)
}

func (s *ComodatoHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestComodatoHandlerSuite(t *testing.T) {
	suite.Run(t, new(ComodatoHandlerTestSuite))
}

func (s *ComodatoHandlerTestSuite) get(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(SessionContextKey, testSessionID)
	return c, rec
}

func sampleComodatos(s *suite.Suite) []models.Comodato {
	var comodatos []models.Comodato
	s.Require().NoError(json.Unmarshal([]byte(`[
		{"id": 10, "equipo": "Refrigerador vertical", "valor": 1250000.5, "cliente_id": 1},
		{"id": 11, "equipo": "Vitrina <exhibidora>", "valor": 89000}
	]`), &comodatos))
	return comodatos
}

func (s *ComodatoHandlerTestSuite) TestPage_RendersBannerAndLoadingPlaceholder() {
	c, rec := s.get("/comodatos")
	s.Require().NoError(s.handler.Page(c))

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "<h1>Comodatos</h1>")
	s.Contains(body, services.ComodatosDescription)
	s.Contains(body, comodatosImage)
	s.Contains(body, models.ListingLoadingText)
	s.Contains(body, `data-src="/comodatos/tabla"`)
	s.NotContains(body, "<table")
}

func (s *ComodatoHandlerTestSuite) TestTable_Populated() {
	s.listing.EXPECT().Load(gomock.Any()).Return(models.NewComodatoListing(sampleComodatos(&s.Suite)), nil)

	c, rec := s.get("/comodatos/tabla")
	s.Require().NoError(s.handler.Table(c))

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "<table")
	s.Contains(body, "<th>id</th>")
	s.Contains(body, "<th>equipo</th>")
	s.Contains(body, "Refrigerador vertical")
	s.Contains(body, "1250000.5")
	s.Contains(body, "Vitrina &lt;exhibidora&gt;")
	s.NotContains(body, models.ListingLoadingText)
}

func (s *ComodatoHandlerTestSuite) TestTable_EmptyNeverRendersTable() {
	s.listing.EXPECT().Load(gomock.Any()).Return(models.NewComodatoListing(nil), nil)

	c, rec := s.get("/comodatos/tabla")
	s.Require().NoError(s.handler.Table(c))

	body := rec.Body.String()
	s.Contains(body, models.ListingEmptyText)
	s.NotContains(body, "<table")
	s.NotContains(body, models.ListingLoadingText)
}

func (s *ComodatoHandlerTestSuite) TestTable_FailedShowsError() {
	s.listing.EXPECT().Load(gomock.Any()).
		Return(models.FailedComodatoListing(), errors.New("load comodatos: boom"))

	c, rec := s.get("/comodatos/tabla")
	s.Require().NoError(s.handler.Table(c))

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, models.ListingFailedText)
	s.Contains(body, `role="alert"`)
	s.NotContains(body, models.ListingLoadingText)
}

func (s *ComodatoHandlerTestSuite) TestTable_NilListingRendersFailedState() {
	testCases := []struct {
		name string
		err  error
	}{
		{"with error", errors.New("load comodatos: boom")},
		{"without error", nil},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.listing.EXPECT().Load(gomock.Any()).Return(nil, tc.err)

			c, rec := s.get("/comodatos/tabla")
			s.Require().NoError(s.handler.Table(c))

			s.Equal(http.StatusOK, rec.Code)
			s.Contains(rec.Body.String(), models.ListingFailedText)
			s.Contains(rec.Body.String(), `role="alert"`)
		})
	}
}

func (s *ComodatoHandlerTestSuite) TestList_NilListingIsBackendFailure() {
	s.listing.EXPECT().Load(gomock.Any()).Return(nil, nil)

	c, rec := s.get("/api/v1/comodatos")
	s.Require().NoError(s.handler.List(c))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "BACKEND_002")
}

func (s *ComodatoHandlerTestSuite) TestExportPDF_Success() {
	listing := models.NewComodatoListing(sampleComodatos(&s.Suite))
	s.listing.EXPECT().Load(gomock.Any()).Return(listing, nil)
	s.exporter.EXPECT().RenderPDF(listing, gomock.Any()).
		DoAndReturn(func(_ *models.ComodatoListing, w io.Writer) error {
			_, err := io.WriteString(w, "%PDF-1.3 fake")
			return err
		})

	c, rec := s.get("/comodatos/export.pdf")
	s.Require().NoError(s.handler.ExportPDF(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "comodatos.pdf")
	s.Equal("%PDF-1.3 fake", rec.Body.String())
}

func (s *ComodatoHandlerTestSuite) TestExportPDF_BackendFailure() {
	s.listing.EXPECT().Load(gomock.Any()).
		Return(models.FailedComodatoListing(), errors.New("load comodatos: timeout"))

	c, rec := s.get("/comodatos/export.pdf")
	s.Require().NoError(s.handler.ExportPDF(c))

	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "BACKEND_002")
}

func (s *ComodatoHandlerTestSuite) TestExportPDF_RenderFailure() {
	s.listing.EXPECT().Load(gomock.Any()).Return(models.NewComodatoListing(nil), nil)
	s.exporter.EXPECT().RenderPDF(gomock.Any(), gomock.Any()).Return(errors.New("font missing"))

	c, rec := s.get("/comodatos/export.pdf")
	s.Require().NoError(s.handler.ExportPDF(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.NotContains(rec.Body.String(), "font missing")
}

func (s *ComodatoHandlerTestSuite) TestList_JSON() {
	s.listing.EXPECT().Load(gomock.Any()).Return(models.NewComodatoListing(sampleComodatos(&s.Suite)), nil)

	c, rec := s.get("/api/v1/comodatos")
	s.Require().NoError(s.handler.List(c))

	s.Equal(http.StatusOK, rec.Code)
	var body struct {
		Data dto.ComodatoListingResponse `json:"data"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(models.ListingPopulated, body.Data.Status)
	s.Equal(2, body.Data.Total)
	s.Equal("id", body.Data.Columns[0])
}

func (s *ComodatoHandlerTestSuite) TestList_CircuitOpen() {
	err := fmt.Errorf("load comodatos: %w", fmt.Errorf("get /comodatos: %w", services.ErrCircuitBreakerOpen))
	s.listing.EXPECT().Load(gomock.Any()).Return(models.FailedComodatoListing(), err)

	c, rec := s.get("/api/v1/comodatos")
	s.Require().NoError(s.handler.List(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "BACKEND_003")
}

func (s *ComodatoHandlerTestSuite) TestNew_RendersSelectorTrigger() {
	c, rec := s.get("/comodatos/nuevo")
	s.Require().NoError(s.handler.New(c))

	s.Equal(http.StatusOK, rec.Code)
	body := rec.Body.String()
	s.Contains(body, "Nuevo Comodato")
	s.Contains(body, "Seleccionar cliente")
	s.Contains(body, `name="cliente_id" value=""`)
	s.NotContains(body, `role="dialog"`)
	s.Equal(1, s.store.Len())
}

func (s *ComodatoHandlerTestSuite) TestNew_MissingSession() {
	req := httptest.NewRequest(http.MethodGet, "/comodatos/nuevo", nil)
	rec := httptest.NewRecorder()

	s.Require().NoError(s.handler.New(s.echo.NewContext(req, rec)))

	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ComodatoHandlerTestSuite) TestTable_PassesRequestContext() {
	type key struct{}
	s.listing.EXPECT().Load(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*models.ComodatoListing, error) {
			s.Equal("yes", ctx.Value(key{}))
			return models.NewComodatoListing(nil), nil
		})

	c, _ := s.get("/comodatos/tabla")
	c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), key{}, "yes")))
	s.Require().NoError(s.handler.Table(c))
}
