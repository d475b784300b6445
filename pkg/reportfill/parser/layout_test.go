package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestExplicitColumnWidths(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetColWidth("Sheet1", "B", "B", 20); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}

	widths, err := ExplicitColumnWidths(f, "Sheet1", 3)
	if err != nil {
		t.Fatalf("ExplicitColumnWidths failed: %v", err)
	}
	if len(widths) != 1 {
		t.Fatalf("Expected only column B, got %v", widths)
	}
	if widths[1] != 140 {
		t.Errorf("Expected 140px for column B, got %d", widths[1])
	}
}

func TestCapacityChars(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetColWidth("Sheet1", "A", "C", 10); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	merges := []Range{{R1: 1, C1: 1, R2: 1, C2: 3}}

	got, err := CapacityChars(f, "Sheet1", merges, 1, 1)
	if err != nil {
		t.Fatalf("CapacityChars failed: %v", err)
	}
	if got != 30 {
		t.Errorf("Expected 30 chars across the merge, got %d", got)
	}

	got, err = CapacityChars(f, "Sheet1", merges, 2, 2)
	if err != nil {
		t.Fatalf("CapacityChars failed: %v", err)
	}
	if got != 10 {
		t.Errorf("Expected 10 chars for a single column, got %d", got)
	}
}

func TestWrapStylerKeepsStyle(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		t.Fatalf("NewStyle failed: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "long text")
	f.SetCellValue("Sheet1", "A2", "more long text")
	f.SetCellStyle("Sheet1", "A1", "A2", bold)

	styler := NewWrapStyler(f)
	for _, cell := range []string{"A1", "A2"} {
		if err := styler.Wrap("Sheet1", cell); err != nil {
			t.Fatalf("Wrap(%s) failed: %v", cell, err)
		}
	}

	id1, _ := f.GetCellStyle("Sheet1", "A1")
	id2, _ := f.GetCellStyle("Sheet1", "A2")
	if id1 != id2 {
		t.Errorf("Expected cells sharing a style to share the wrapped style, got %d and %d", id1, id2)
	}

	style, err := f.GetStyle(id1)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Alignment == nil || !style.Alignment.WrapText {
		t.Errorf("Expected wrap text to be enabled")
	}
	if style.Font == nil || !style.Font.Bold {
		t.Errorf("Expected bold font to be kept")
	}
}
