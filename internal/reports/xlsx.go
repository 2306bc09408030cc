package reports

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// RenderXLSX genera una hoja con el encabezado institucional, la tabla y el pie.
func RenderXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := sheetName(doc.Table.Title)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return err
	}
	headStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1E60A0"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	lines := [][]any{
		{doc.Header.OrganizationName},
		{"Dirección: " + doc.Header.Address},
		{"Teléfono: " + doc.Header.Phone},
		{doc.Table.Title},
	}
	row := 1
	for _, line := range lines {
		if err := setRow(f, sheet, row, line); err != nil {
			return err
		}
		row++
	}
	if err := f.SetCellStyle(sheet, "A1", "A1", titleStyle); err != nil {
		return err
	}
	row++

	header := make([]any, len(doc.Table.Columns))
	for i, c := range doc.Table.Columns {
		header[i] = c
	}
	if err := setRow(f, sheet, row, header); err != nil {
		return err
	}
	if len(header) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(header), row)
		if err := f.SetCellStyle(sheet, first, last, headStyle); err != nil {
			return err
		}
		lastCol, _ := excelize.ColumnNumberToName(len(header))
		if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
			return err
		}
	}
	row++

	for _, r := range doc.Table.Rows {
		values := make([]any, len(r))
		for i, v := range r {
			values[i] = v
		}
		if err := setRow(f, sheet, row, values); err != nil {
			return err
		}
		row++
	}

	row++
	if err := setRow(f, sheet, row, []any{footerText(doc)}); err != nil {
		return err
	}
	if err := setRow(f, sheet, row+1, []any{Disclaimer}); err != nil {
		return err
	}

	_, err = f.WriteTo(w)
	return err
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// sheetName respeta el límite de 31 caracteres de Excel.
func sheetName(title string) string {
	if title == "" {
		return "Reporte"
	}
	runes := []rune(title)
	if len(runes) > 31 {
		runes = runes[:31]
	}
	return string(runes)
}
