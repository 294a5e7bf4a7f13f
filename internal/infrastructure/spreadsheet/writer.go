package spreadsheet

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

type Writer struct{}

func NewWriter() *Writer {
	return &Writer{}
}

// WriteSheet renders rows into a single-sheet workbook. Every cell is written
// as text so values such as phone numbers keep their exact digits.
func (w *Writer) WriteSheet(ctx context.Context, sheetName string, rows [][]string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	book := excelize.NewFile()
	defer book.Close()

	if sheetName != "" && sheetName != defaultSheet {
		if err := book.SetSheetName(defaultSheet, sheetName); err != nil {
			return nil, fmt.Errorf("rename sheet: %w", err)
		}
	} else {
		sheetName = defaultSheet
	}

	width := 0
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("row %d coordinates: %w", i+1, err)
		}

		values := make([]any, 0, len(row))
		for _, value := range row {
			values = append(values, value)
		}
		if err := book.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
		width = max(width, len(row))
	}

	if width > 0 {
		lastCol, err := excelize.ColumnNumberToName(width)
		if err != nil {
			return nil, fmt.Errorf("last column name: %w", err)
		}
		if err := book.SetColWidth(sheetName, "A", lastCol, 20); err != nil {
			return nil, fmt.Errorf("set column width: %w", err)
		}
	}

	buf, err := book.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return buf.Bytes(), nil
}
