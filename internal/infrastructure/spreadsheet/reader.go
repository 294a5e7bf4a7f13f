package spreadsheet

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	domain "github.com/mohammadpnp/user-registry/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

const zipMIME = "application/zip"

type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// ReadRows decodes the first sheet of an .xlsx workbook. The first non-blank
// row is the header; every later non-blank row becomes an ImportRow keyed by
// header text and numbered by its physical position in the sheet. Numeric
// cells are stringified; text cells are returned verbatim.
func (r *Reader) ReadRows(ctx context.Context, content []byte) ([]domain.ImportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !isZipContainer(content) {
		return nil, fmt.Errorf("%w: content is not an xlsx container", domain.ErrUnreadableFile)
	}

	book, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.ErrEmptySheet
	}

	rows, err := book.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: read sheet %q: %v", domain.ErrUnreadableFile, sheets[0], err)
	}

	headerIndex := -1
	for i, row := range rows {
		if !isBlank(row) {
			headerIndex = i
			break
		}
	}
	if headerIndex < 0 {
		return nil, domain.ErrEmptySheet
	}

	columns := headerColumns(rows[headerIndex])

	importRows := make([]domain.ImportRow, 0, len(rows)-headerIndex-1)
	for i := headerIndex + 1; i < len(rows); i++ {
		if isBlank(rows[i]) {
			continue
		}

		cells := make(map[string]string, len(columns))
		for name, idx := range columns {
			if idx >= len(rows[i]) {
				cells[name] = ""
				continue
			}
			value, err := cellText(book, sheets[0], idx, i, rows[i][idx])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
			}
			cells[name] = value
		}

		importRows = append(importRows, domain.ImportRow{
			Number: i + 1,
			Cells:  cells,
		})
	}

	if len(importRows) == 0 {
		return nil, domain.ErrEmptySheet
	}

	return importRows, nil
}

// cellText renders a numeric cell the way it reads, so 1.23456789E9 becomes
// "1234567890". Every other cell type keeps its raw text.
func cellText(book *excelize.File, sheet string, col, row int, raw string) (string, error) {
	if raw == "" {
		return raw, nil
	}

	axis, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", err
	}
	cellType, err := book.GetCellType(sheet, axis)
	if err != nil {
		return "", fmt.Errorf("cell %s type: %w", axis, err)
	}
	// An absent type attribute marks a number in OOXML.
	if cellType != excelize.CellTypeNumber && cellType != excelize.CellTypeUnset {
		return raw, nil
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return raw, nil
	}
	return strconv.FormatFloat(number, 'f', -1, 64), nil
}

func headerColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, cell := range header {
		name := strings.TrimSpace(cell)
		if name == "" {
			continue
		}
		if _, seen := columns[name]; !seen {
			columns[name] = idx
		}
	}
	return columns
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func isZipContainer(content []byte) bool {
	for mtype := mimetype.Detect(content); mtype != nil; mtype = mtype.Parent() {
		if mtype.Is(zipMIME) {
			return true
		}
	}
	return false
}
