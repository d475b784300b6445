package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		ref      string
		expected Range
		ok       bool
	}{
		{"A1:D10", Range{R1: 1, C1: 1, R2: 10, C2: 4}, true},
		{"$B$2:$C$3", Range{R1: 2, C1: 2, R2: 3, C2: 3}, true},
		{"'My Sheet'!A1:B1", Range{R1: 1, C1: 1, R2: 1, C2: 2}, true},
		{"D4:B2", Range{R1: 2, C1: 2, R2: 4, C2: 4}, true},
		{"C5", Range{R1: 5, C1: 3, R2: 5, C2: 3}, true},
		{"A1:B2:C3", Range{}, false},
		{"bogus", Range{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseRange(tt.ref)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("ParseRange(%q) = %+v, %v; expected %+v, %v", tt.ref, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestAnchorAndSpan(t *testing.T) {
	ranges := []Range{{R1: 2, C1: 2, R2: 3, C2: 4}}

	tests := []struct {
		row, col         int
		anchorR, anchorC int
		span             int
	}{
		{2, 2, 2, 2, 3},
		{3, 4, 2, 2, 1},
		{2, 3, 2, 2, 1},
		{1, 1, 1, 1, 1},
		{4, 2, 4, 2, 1},
	}

	for _, tt := range tests {
		r, c := Anchor(ranges, tt.row, tt.col)
		if r != tt.anchorR || c != tt.anchorC {
			t.Errorf("Anchor(%d, %d) = (%d, %d), expected (%d, %d)", tt.row, tt.col, r, c, tt.anchorR, tt.anchorC)
		}
		if span := SpanAt(ranges, tt.row, tt.col); span != tt.span {
			t.Errorf("SpanAt(%d, %d) = %d, expected %d", tt.row, tt.col, span, tt.span)
		}
	}
}

func TestMergedRanges(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.MergeCell("Sheet1", "B2", "D3"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}

	ranges, err := MergedRanges(f, "Sheet1")
	if err != nil {
		t.Fatalf("MergedRanges failed: %v", err)
	}
	if len(ranges) != 1 {
		t.Fatalf("Expected 1 range, got %d", len(ranges))
	}

	want := Range{R1: 2, C1: 2, R2: 3, C2: 4}
	if ranges[0] != want {
		t.Errorf("Expected %+v, got %+v", want, ranges[0])
	}
	if ranges[0].Rows() != 2 || ranges[0].Cols() != 3 {
		t.Errorf("Expected 2x3 span, got %dx%d", ranges[0].Rows(), ranges[0].Cols())
	}
}

func TestDataBounds(t *testing.T) {
	rows := [][]string{
		{"a", ""},
		{},
		{"", "", "c"},
	}

	maxRow, maxCol := DataBounds(rows, nil)
	if maxRow != 3 || maxCol != 3 {
		t.Errorf("Expected 3x3, got %dx%d", maxRow, maxCol)
	}

	maxRow, maxCol = DataBounds(rows, []Range{{R1: 4, C1: 1, R2: 5, C2: 2}})
	if maxRow != 5 || maxCol != 3 {
		t.Errorf("Expected 5x3 with merge, got %dx%d", maxRow, maxCol)
	}

	maxRow, maxCol = DataBounds(nil, nil)
	if maxRow != 1 || maxCol != 1 {
		t.Errorf("Expected 1x1 for empty sheet, got %dx%d", maxRow, maxCol)
	}
}
