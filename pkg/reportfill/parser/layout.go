package parser

import (
	"github.com/xuri/excelize/v2"
)

// lastColumn is the right-most column Excel supports; templates never size it,
// so its width is the width of any column without an explicit one.
const lastColumn = "XFD"

// DefaultColWidth returns the sheet-level default column width in characters,
// and whether the sheet declares one.
func DefaultColWidth(f *excelize.File, sheetName string) (float64, bool) {
	props, err := f.GetSheetProps(sheetName)
	if err == nil && props.DefaultColWidth != nil && *props.DefaultColWidth > 0 {
		return *props.DefaultColWidth, true
	}
	w, _ := f.GetColWidth(sheetName, lastColumn)
	return w, false
}

// ColumnWidth returns the width in characters of the 1-based column.
func ColumnWidth(f *excelize.File, sheetName string, col int) (float64, error) {
	name, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return 0, err
	}
	return f.GetColWidth(sheetName, name)
}

// ExplicitColumnWidths returns the widths in pixels of the columns in
// 1..maxCol whose width differs from the sheet default, keyed by 0-based
// column index.
func ExplicitColumnWidths(f *excelize.File, sheetName string, maxCol int) (map[int]int, error) {
	base, _ := DefaultColWidth(f, sheetName)
	widths := make(map[int]int)
	for c := 1; c <= maxCol; c++ {
		w, err := ColumnWidth(f, sheetName, c)
		if err != nil {
			return nil, err
		}
		if w > 0 && w != base {
			widths[c-1] = CharsToPixels(w)
		}
	}
	return widths, nil
}

// CapacityChars returns how many characters fit on one line of the cell at
// (row, col), accounting for the columns a merge anchor spans.
func CapacityChars(f *excelize.File, sheetName string, merges []Range, row, col int) (int, error) {
	total := 0.0
	for c := col; c < col+SpanAt(merges, row, col); c++ {
		w, err := ColumnWidth(f, sheetName, c)
		if err != nil {
			return 0, err
		}
		total += w
	}
	return max(1, int(total+0.5)), nil
}

// WrapStyler turns on wrap-text for cells while keeping the rest of their
// style. Derived styles are cached per source style.
type WrapStyler struct {
	f       *excelize.File
	derived map[int]int
}

// NewWrapStyler returns a WrapStyler for f.
func NewWrapStyler(f *excelize.File) *WrapStyler {
	return &WrapStyler{f: f, derived: make(map[int]int)}
}

// Wrap enables wrap-text on the given cell.
func (w *WrapStyler) Wrap(sheetName, cell string) error {
	styleID, err := w.f.GetCellStyle(sheetName, cell)
	if err != nil {
		return err
	}

	wrapped, ok := w.derived[styleID]
	if !ok {
		style, err := w.f.GetStyle(styleID)
		if err != nil {
			return err
		}
		if style.Alignment == nil {
			style.Alignment = &excelize.Alignment{}
		}
		style.Alignment.WrapText = true
		if wrapped, err = w.f.NewStyle(style); err != nil {
			return err
		}
		w.derived[styleID] = wrapped
	}

	return w.f.SetCellStyle(sheetName, cell, cell, wrapped)
}
