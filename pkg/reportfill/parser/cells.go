package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/xuri/excelize/v2"
)

// ReadRows returns the raw (unformatted) cell values of a sheet.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	return f.GetRows(sheetName, excelize.Options{RawCellValue: true})
}

// ExtractGrid converts rows into a dense maxRow x maxCol matrix of cells.
// Empty cells are nil. Values keep the type stored in the sheet: booleans
// become bool, string cells stay strings and numeric cells are typed with
// parseValue.
func ExtractGrid(f *excelize.File, sheetName string, rows [][]string, maxRow, maxCol int) ([][]*models.Cell, error) {
	grid := make([][]*models.Cell, maxRow)
	for r := 0; r < maxRow; r++ {
		line := make([]*models.Cell, maxCol)
		if r < len(rows) {
			for c, cellValue := range rows[r] {
				if c >= maxCol || cellValue == "" {
					continue
				}
				name, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return nil, err
				}
				cellType, err := f.GetCellType(sheetName, name)
				if err != nil {
					return nil, err
				}
				line[c] = &models.Cell{V: typedValue(cellType, cellValue)}
			}
		}
		grid[r] = line
	}
	return grid, nil
}

// typedValue converts a raw cell value according to its stored type.
// Formula cells carry their cached result, which is typed like a number.
func typedValue(cellType excelize.CellType, raw string) interface{} {
	switch cellType {
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "true")
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeDate, excelize.CellTypeError:
		return raw
	default:
		return parseValue(raw)
	}
}

// CoerceValue converts a submitted value into what gets written to the sheet.
// The second result is false when the cell must be left untouched: nil values,
// and blank strings unless allowBlank is set.
func CoerceValue(v interface{}, allowBlank bool) (interface{}, bool) {
	switch val := v.(type) {
	case nil:
		return nil, false
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			if !allowBlank {
				return nil, false
			}
			return "", true
		}
		if parsed := parseValue(s); parsed != s {
			return parsed, true
		}
		return val, true
	default:
		return val, true
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for finite decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}
