package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// Range is a rectangular block of cells with 1-based inclusive bounds.
type Range struct {
	R1 int
	C1 int
	R2 int
	C2 int
}

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return r.R1 <= row && row <= r.R2 && r.C1 <= col && col <= r.C2
}

// Rows returns the number of rows spanned.
func (r Range) Rows() int { return r.R2 - r.R1 + 1 }

// Cols returns the number of columns spanned.
func (r Range) Cols() int { return r.C2 - r.C1 + 1 }

// MergedRanges returns the merged ranges of a sheet.
// References that cannot be parsed are skipped.
func MergedRanges(f *excelize.File, sheetName string) ([]Range, error) {
	merged, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	ranges := make([]Range, 0, len(merged))
	for _, mc := range merged {
		if rng, ok := ParseRange(mc.GetStartAxis() + ":" + mc.GetEndAxis()); ok {
			ranges = append(ranges, rng)
		}
	}
	return ranges, nil
}

// Anchor returns the writable cell for (row, col): the top-left cell of the
// merged range containing it, or the cell itself.
func Anchor(ranges []Range, row, col int) (int, int) {
	for _, rng := range ranges {
		if rng.Contains(row, col) {
			return rng.R1, rng.C1
		}
	}
	return row, col
}

// SpanAt returns how many columns the cell at (row, col) spans: the width of
// the merged range anchored there, or 1.
func SpanAt(ranges []Range, row, col int) int {
	for _, rng := range ranges {
		if rng.R1 == row && rng.C1 == col {
			return rng.Cols()
		}
	}
	return 1
}

// ParseRange parses a range string like $A$1:$D$10 (an optional sheet prefix
// is ignored). A single cell reference yields a 1x1 range.
func ParseRange(ref string) (Range, bool) {
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return Range{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return Range{}, false
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return Range{}, false
	}

	return Range{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, true
}
