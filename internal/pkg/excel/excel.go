package excel

import (
	"bytes"
	"fmt"

	"github.com/iramedia/workreport-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const maxColumnWidth = 50

// Build renders a RowSet into an xlsx workbook: a bold header row, the data
// rows, and an optional bold total row. Column widths follow the longest
// cell content plus padding, capped at maxColumnWidth.
func Build(rs report.RowSet) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := rs.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if sheet != "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeRow(f, sheet, 1, toCells(rs.Columns)); err != nil {
		return nil, err
	}
	if err := styleRow(f, sheet, 1, len(rs.Columns), bold); err != nil {
		return nil, err
	}

	for i, row := range rs.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if rs.Total != nil {
		rowNum := len(rs.Rows) + 2
		if err := writeRow(f, sheet, rowNum, rs.Total); err != nil {
			return nil, err
		}
		if err := styleRow(f, sheet, rowNum, len(rs.Total), bold); err != nil {
			return nil, err
		}
	}

	if err := autoSizeColumns(f, sheet, rs); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func writeRow(f *excelize.File, sheet string, rowNum int, values []any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}

func styleRow(f *excelize.File, sheet string, rowNum, width, style int) error {
	start, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(width, rowNum)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, style)
}

func autoSizeColumns(f *excelize.File, sheet string, rs report.RowSet) error {
	for i, name := range rs.Columns {
		width := len(name)
		for _, row := range rs.Rows {
			if i < len(row) {
				if l := len(fmt.Sprint(row[i])); l > width {
					width = l
				}
			}
		}
		if rs.Total != nil && i < len(rs.Total) {
			if l := len(fmt.Sprint(rs.Total[i])); l > width {
				width = l
			}
		}
		width += 2
		if width > maxColumnWidth {
			width = maxColumnWidth
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, float64(width)); err != nil {
			return fmt.Errorf("set column width %s: %w", col, err)
		}
	}
	return nil
}

func toCells(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}
