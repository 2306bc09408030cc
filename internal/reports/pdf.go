package reports

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beego/beego/v2/core/logs"
	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 10.0
	pdfRowHeight  = 7.0
	pdfHeaderSize = 14.0
)

// RenderPDF genera el reporte en A4 horizontal con encabezado y pie en cada página.
func RenderPDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	pdf.SetHeaderFunc(func() {
		left := pdfMargin
		if path := strings.TrimSpace(doc.Header.LogoPath); path != "" {
			if _, err := os.Stat(path); err == nil {
				pdf.ImageOptions(path, pdfMargin, pdfMargin, 20, 0, false, fpdf.ImageOptions{ReadDpi: true}, 0, "")
				left += 24
			} else {
				logs.Warn("logo de reporte no disponible %s: %v", path, err)
			}
		}
		pdf.SetXY(left, pdfMargin)
		pdf.SetFont("Arial", "B", pdfHeaderSize)
		pdf.CellFormat(0, 7, tr(doc.Header.OrganizationName), "", 1, "L", false, 0, "")
		pdf.SetX(left)
		pdf.SetFont("Arial", "", 9)
		if doc.Header.Address != "" {
			pdf.CellFormat(0, 5, tr("Dirección: "+doc.Header.Address), "", 1, "L", false, 0, "")
			pdf.SetX(left)
		}
		if doc.Header.Phone != "" {
			pdf.CellFormat(0, 5, tr("Teléfono: "+doc.Header.Phone), "", 1, "L", false, 0, "")
		}
		pdf.Ln(3)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, tr(doc.Table.Title), "", 1, "C", false, 0, "")
		pdf.Ln(2)
	})

	pdf.SetFooterFunc(func() {
		pageWidth, _ := pdf.GetPageSize()
		width := pageWidth - 2*pdfMargin
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(width/2, 4, tr(footerText(doc)), "", 0, "L", false, 0, "")
		pdf.CellFormat(width/2, 4, tr(fmt.Sprintf("Página %d de {nb}", pdf.PageNo())), "", 1, "R", false, 0, "")
		pdf.CellFormat(width, 4, tr(Disclaimer), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	widths := columnWidths(pdf, doc.Table.Columns)
	writeTableHeader(pdf, tr, doc.Table.Columns, widths)

	pdf.SetFont("Arial", "", 8)
	_, pageHeight := pdf.GetPageSize()
	for i, row := range doc.Table.Rows {
		if pdf.GetY()+pdfRowHeight > pageHeight-20 {
			pdf.AddPage()
			writeTableHeader(pdf, tr, doc.Table.Columns, widths)
			pdf.SetFont("Arial", "", 8)
		}
		fill := i%2 == 1
		pdf.SetFillColor(240, 246, 252)
		for c, width := range widths {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			pdf.CellFormat(width, pdfRowHeight, fit(pdf, tr(value), width), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}
	if len(doc.Table.Rows) == 0 {
		pdf.CellFormat(0, pdfRowHeight, tr("Sin registros para los filtros seleccionados"), "1", 1, "C", false, 0, "")
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

func columnWidths(pdf *fpdf.Fpdf, columns []string) []float64 {
	if len(columns) == 0 {
		return nil
	}
	pageWidth, _ := pdf.GetPageSize()
	each := (pageWidth - 2*pdfMargin) / float64(len(columns))
	widths := make([]float64, len(columns))
	for i := range widths {
		widths[i] = each
	}
	return widths
}

func writeTableHeader(pdf *fpdf.Fpdf, tr func(string) string, columns []string, widths []float64) {
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(30, 96, 160)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(widths[i], pdfRowHeight, tr(col), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetTextColor(0, 0, 0)
}

// fit recorta un texto ya traducido a cp1252 (un byte por carácter) al ancho de la celda.
func fit(pdf *fpdf.Fpdf, text string, width float64) string {
	limit := width - 2
	if pdf.GetStringWidth(text) <= limit {
		return text
	}
	for n := len(text) - 1; n > 0; n-- {
		candidate := text[:n] + "..."
		if pdf.GetStringWidth(candidate) <= limit {
			return candidate
		}
	}
	return ""
}
