package reportfill

import (
	"fmt"

	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/parser"
)

// Grid converts the template sheet into the editor grid: values, merged
// ranges, explicit column widths and a uniform row height.
func Grid(path string, opts Options) (*models.Workbook, error) {
	f, sheetName, err := openTemplate(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}

	merges, err := parser.MergedRanges(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "merges", err)
	}

	maxRow, maxCol := parser.DataBounds(rows, merges)

	columnLen, err := parser.ExplicitColumnWidths(f, sheetName, maxCol)
	if err != nil {
		return nil, NewExtractionError(sheetName, "columns", err)
	}

	mergeMap := make(map[string]models.Merge, len(merges))
	for _, rng := range merges {
		r0, c0 := rng.R1-1, rng.C1-1
		mergeMap[fmt.Sprintf("%d_%d", r0, c0)] = models.Merge{
			R:  r0,
			C:  c0,
			RS: rng.Rows(),
			CS: rng.Cols(),
		}
	}

	// Uniform row height for the editor
	rowHeightPx := opts.RowHeightPx
	if rowHeightPx <= 0 {
		pt, err := f.GetRowHeight(sheetName, 1)
		if err != nil {
			return nil, NewExtractionError(sheetName, "rows", err)
		}
		rowHeightPx = parser.PointsToPixels(pt)
	}

	var colWidthPx *int
	if chars, ok := parser.DefaultColWidth(f, sheetName); ok {
		px := int(chars*parser.PixelsPerChar + 0.5)
		colWidthPx = &px
	}
	if opts.ColWidthPx > 0 {
		px := opts.ColWidthPx
		colWidthPx = &px
	}

	data, err := parser.ExtractGrid(f, sheetName, rows, maxRow, maxCol)
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}

	sheet := models.Sheet{
		Name: sheetName,
		Data: data,
		Config: models.SheetConfig{
			Merge:     mergeMap,
			ColumnLen: columnLen,
			RowLen:    map[int]int{},
		},
	}

	return &models.Workbook{
		Info:   models.Info{Name: sheetName},
		Sheets: []models.Sheet{sheet},
		Defaults: models.Defaults{
			RowHeightPx: rowHeightPx,
			ColWidthPx:  colWidthPx,
		},
	}, nil
}
