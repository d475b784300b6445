package reportfill

import (
	"context"
	"fmt"

	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/parser"
	"github.com/xuri/excelize/v2"
	"go.alis.build/alog"
)

// Result is a filled workbook held in memory.
type Result struct {
	// Filename is the suggested download name.
	Filename string
	// Data is the xlsx file content.
	Data []byte
}

// Submitted cells may extend the template's data region by at most this many
// rows and columns. Cells further out are ignored.
const (
	MaxExtraRows = 1000
	MaxExtraCols = 100
)

// Fill applies the submitted cells to a fresh copy of the template, grows
// rows whose text needs wrapping and returns the resulting workbook.
//
// Cells outside the sheet (r or c below 1), cells beyond the template's data
// region plus MaxExtraRows/MaxExtraCols and cells covered by, but not
// anchoring, a merged range are ignored. A cell that cannot be written is
// logged and skipped.
func Fill(ctx context.Context, path string, cells []models.CellEdit, opts Options) (*Result, error) {
	f, sheetName, err := openTemplate(path, opts.Sheet)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	merges, err := parser.MergedRanges(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "merges", err)
	}

	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return nil, NewExtractionError(sheetName, "cells", err)
	}
	maxRow, maxCol := parser.DataBounds(rows, merges)
	maxRow, maxCol = maxRow+MaxExtraRows, maxCol+MaxExtraCols

	written := 0
	for _, cell := range cells {
		if cell.R <= 0 || cell.C <= 0 || cell.R > maxRow || cell.C > maxCol {
			continue
		}
		if r, c := parser.Anchor(merges, cell.R, cell.C); r != cell.R || c != cell.C {
			continue
		}
		val, ok := parser.CoerceValue(cell.V, opts.AllowBlankOverwrite)
		if !ok {
			continue
		}
		if err := writeCell(f, sheetName, cell.R, cell.C, val); err != nil {
			alog.Warnf(ctx, "%v", NewFillError(cell.R, cell.C, err))
			continue
		}
		written++
	}
	alog.Debugf(ctx, "wrote %d of %d submitted cells to sheet %q", written, len(cells), sheetName)

	base, err := baseRowHeight(f, sheetName, opts)
	if err != nil {
		return nil, NewExtractionError(sheetName, "rows", err)
	}

	if err := autosizeRows(f, sheetName, merges, base); err != nil {
		return nil, err
	}

	if err := f.SetSheetProps(sheetName, &excelize.SheetPropsOptions{DefaultRowHeight: &base}); err != nil {
		return nil, fmt.Errorf("set default row height: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	return &Result{
		Filename: fmt.Sprintf("%s-filled-%s.xlsx", opts.reportName(), opts.now().Format("20060102-150405")),
		Data:     buf.Bytes(),
	}, nil
}

func writeCell(f *excelize.File, sheetName string, row, col int, val interface{}) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheetName, name, val)
}

// baseRowHeight returns the uniform row height in points.
func baseRowHeight(f *excelize.File, sheetName string, opts Options) (float64, error) {
	if opts.RowHeightPx > 0 {
		return parser.PixelsToPoints(float64(opts.RowHeightPx)), nil
	}
	return f.GetRowHeight(sheetName, 1)
}

// autosizeRows sets every row to base times the most lines any of its cells
// needs, and turns on wrap-text for cells needing more than one line.
func autosizeRows(f *excelize.File, sheetName string, merges []parser.Range, base float64) error {
	rows, err := parser.ReadRows(f, sheetName)
	if err != nil {
		return NewExtractionError(sheetName, "cells", err)
	}
	maxRow, _ := parser.DataBounds(rows, merges)
	styler := parser.NewWrapStyler(f)

	for r := 1; r <= maxRow; r++ {
		var line []string
		if r <= len(rows) {
			line = rows[r-1]
		}

		maxLines := 1
		for i, val := range line {
			if val == "" {
				continue
			}
			c := i + 1

			capacity, err := parser.CapacityChars(f, sheetName, merges, r, c)
			if err != nil {
				return NewExtractionError(sheetName, "columns", err)
			}

			needed := parser.EstimateLines(val, capacity)
			if needed > 1 {
				name, _ := excelize.CoordinatesToCellName(c, r)
				if err := styler.Wrap(sheetName, name); err != nil {
					return fmt.Errorf("wrap %s: %w", name, err)
				}
			}
			maxLines = max(maxLines, needed)
		}

		height := min(max(base, base*float64(maxLines)), parser.MaxRowHeight)
		if err := f.SetRowHeight(sheetName, r, height); err != nil {
			return fmt.Errorf("set height of row %d: %w", r, err)
		}
	}
	return nil
}
