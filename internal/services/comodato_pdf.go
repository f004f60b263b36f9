package services

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"comodatos-admin/internal/models"
)

const (
	ComodatosTitle       = "Comodatos"
	ComodatosDescription = "Aqui puedes ver tus los comodatos existentes"
)

// ComodatoPDFExporter renders the comodatos table as a landscape A4 PDF.
type ComodatoPDFExporter struct {
	metrics MetricsRecorderInterface
	now     func() time.Time
}

func NewComodatoPDFExporter(metrics MetricsRecorderInterface) *ComodatoPDFExporter {
	return &ComodatoPDFExporter{
		metrics: metrics,
		now:     time.Now,
	}
}

// RenderPDF writes the listing as a PDF to w. Cells wider than their column
// are cut and end in "...".
func (e *ComodatoPDFExporter) RenderPDF(listing *models.ComodatoListing, w io.Writer) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(ComodatosTitle, true)
	pdf.SetAuthor("comodatos-admin", true)
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, tr(ComodatosTitle), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr(ComodatosDescription), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, e.now().Format("02-01-2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	if listing.Status != models.ListingPopulated {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, tr(listing.Message), "", "L", false)
	} else {
		e.table(pdf, tr, listing)
	}

	if err := pdf.Output(w); err != nil {
		e.count("failed")
		return fmt.Errorf("render comodatos pdf: %w", err)
	}
	e.count("success")
	return nil
}

func (e *ComodatoPDFExporter) table(pdf *gofpdf.Fpdf, tr func(string) string, listing *models.ComodatoListing) {
	if len(listing.Columns) == 0 {
		return
	}
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(listing.Columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range listing.Columns {
		pdf.CellFormat(colW, 7, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	for _, row := range listing.Rows() {
		for _, cell := range row {
			pdf.CellFormat(colW, 6, fitCell(pdf, tr, cell, colW), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// fitCell translates s for the PDF font and, when it does not fit in width,
// cuts it to the longest prefix that fits followed by "...".
func fitCell(pdf *gofpdf.Fpdf, tr func(string) string, s string, width float64) string {
	const pad = 2
	avail := width - pad

	if out := tr(s); pdf.GetStringWidth(out) <= avail {
		return out
	}

	r := []rune(s)
	lo, hi := 0, len(r)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if pdf.GetStringWidth(tr(string(r[:mid])+"...")) <= avail {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return tr(string(r[:lo]) + "...")
}

func (e *ComodatoPDFExporter) count(status string) {
	if e.metrics == nil {
		return
	}
	e.metrics.IncrementCounter("comodato_pdf_export", map[string]string{"status": status})
}
