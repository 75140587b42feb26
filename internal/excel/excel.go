package excel

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// columns maps normalized header names to their positions in the sheet.
type columns map[string]int

// headerIndex builds the column map from the header row.
func headerIndex(header []string) columns {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

// of returns the position of a header, -1 when the sheet omits it, so
// lookups of absent columns degrade to empty cells.
func (c columns) of(name string) int {
	idx, ok := c[name]
	if !ok {
		return -1
	}
	return idx
}

// cell returns a cell by index, empty when the row is short or the column
// is absent. excelize trims trailing empty cells from rows.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func writeHeader(f *excelize.File, sheet string, headers []string) error {
	for i, name := range headers {
		cellRef, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, name); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	for i, value := range values {
		cellRef, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cellRef, value); err != nil {
			return err
		}
	}
	return nil
}

// writeInstructions adds an Instruções sheet with one line per entry.
func writeInstructions(f *excelize.File, lines []string) error {
	sheet := "Instruções"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for i, line := range lines {
		cellRef := fmt.Sprintf("A%d", i+1)
		if err := f.SetCellValue(sheet, cellRef, line); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 80)
}
