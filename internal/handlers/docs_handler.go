package handlers

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"net/http"

	"comodatos-admin/internal/errors"

	"github.com/labstack/echo/v4"
)

// DocsHandler serves the API reference page and the swagger document it loads
type DocsHandler struct {
	scalarHTML  []byte
	scalarETag  string
	swaggerJSON []byte
}

// NewDocsHandler reads scalar.html and swagger.json from docs. A missing file
// leaves the matching endpoint empty rather than failing startup.
func NewDocsHandler(docs fs.FS) *DocsHandler {
	scalarHTML, err := fs.ReadFile(docs, "scalar.html")
	if err != nil {
		scalarHTML = []byte{}
	}
	// a nil document makes ServeOAS3JSON answer 404
	swaggerJSON, _ := fs.ReadFile(docs, "swagger.json")

	return &DocsHandler{
		scalarHTML:  scalarHTML,
		scalarETag:  generateETag(scalarHTML),
		swaggerJSON: swaggerJSON,
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Success 304 {string} string "Not modified"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the swagger document
// Called by the Scalar page to load the API description.
// @Summary API description
// @Tags Documentation
// @Produce json
// @Success 200 {object} object "Swagger 2.0 document"
// @Failure 404 {object} errors.ErrorResponse "RESOURCE_001 - Document not bundled"
// @Router /docs/swagger.json [get]
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if len(h.swaggerJSON) == 0 {
		return SendError(c, errors.ResourceNotFound, errors.WithDetails("swagger.json is not bundled"))
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	return c.Blob(http.StatusOK, "application/json; charset=utf-8", h.swaggerJSON)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}
