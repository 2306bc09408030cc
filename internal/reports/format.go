package reports

import (
	"fmt"
	"io"
	"strings"
)

// Format es el formato de salida solicitado.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ParseFormat acepta pdf o xlsx (también "excel"); vacío equivale a pdf.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "pdf":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("formato de reporte no soportado: %s", raw)
}

// ContentType retorna el MIME del formato.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

// FileName compone el nombre de descarga.
func (f Format) FileName(base string) string {
	return base + "." + string(f)
}

// Render escribe el documento en el formato indicado.
func Render(w io.Writer, f Format, doc Document) error {
	if f == FormatXLSX {
		return RenderXLSX(w, doc)
	}
	return RenderPDF(w, doc)
}

func footerText(doc Document) string {
	return "Generado el " + doc.GeneratedAt.Format("02/01/2006 15:04")
}
