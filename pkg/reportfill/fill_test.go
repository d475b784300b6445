package reportfill

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/xuri/excelize/v2"
)

// writeTemplate saves a small report template and returns its path.
//
//	A1:C1 merged title, B column 20 chars wide, A2 "Item", B2 "Qty", A3 "Widget".
func writeTemplate(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sheet1"
	if err := f.SetSheetName(sheet, "Report"); err != nil {
		t.Fatalf("SetSheetName failed: %v", err)
	}
	sheet = "Report"

	f.SetCellValue(sheet, "A1", "Backstock")
	if err := f.MergeCell(sheet, "A1", "C1"); err != nil {
		t.Fatalf("MergeCell failed: %v", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 20); err != nil {
		t.Fatalf("SetColWidth failed: %v", err)
	}
	f.SetCellValue(sheet, "A2", "Item")
	f.SetCellValue(sheet, "B2", "Qty")
	f.SetCellValue(sheet, "A3", "Widget")

	path := filepath.Join(t.TempDir(), "template.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save template: %v", err)
	}
	return path
}

func openResult(t *testing.T, res *Result) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(res.Data))
	if err != nil {
		t.Fatalf("Failed to open filled workbook: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFillRoundTrip(t *testing.T) {
	path := writeTemplate(t)
	opts := DefaultOptions()
	opts.Now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }

	cells := []models.CellEdit{
		{R: 3, C: 2, V: "12"},
		{R: 4, C: 1, V: "Gadget"},
		{R: 4, C: 2, V: 7.5},
		{R: 4, C: 3, V: true},
	}

	res, err := Fill(context.Background(), path, cells, opts)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	if res.Filename != "backstock-report-filled-20240305-140709.xlsx" {
		t.Errorf("Unexpected filename %q", res.Filename)
	}

	f := openResult(t, res)
	tests := []struct {
		cell     string
		expected string
	}{
		{"A1", "Backstock"},
		{"A2", "Item"},
		{"B3", "12"},
		{"A4", "Gadget"},
		{"B4", "7.5"},
		{"C4", "TRUE"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue("Report", tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s) failed: %v", tt.cell, err)
		}
		if got != tt.expected {
			t.Errorf("%s = %q, expected %q", tt.cell, got, tt.expected)
		}
	}

	typ, err := f.GetCellType("Report", "B3")
	if err != nil {
		t.Fatalf("GetCellType failed: %v", err)
	}
	if typ == excelize.CellTypeSharedString || typ == excelize.CellTypeInlineString {
		t.Errorf("Expected B3 to be stored as a number, got type %v", typ)
	}
}

func TestFillSkipsMergedNonAnchorsAndInvalidCoordinates(t *testing.T) {
	path := writeTemplate(t)

	cells := []models.CellEdit{
		{R: 1, C: 2, V: "inside merge"},
		{R: 0, C: 1, V: "row zero"},
		{R: 2, C: -1, V: "negative column"},
		{R: 1, C: 1, V: "New title"},
	}

	res, err := Fill(context.Background(), path, cells, DefaultOptions())
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	f := openResult(t, res)
	if got, _ := f.GetCellValue("Report", "A1"); got != "New title" {
		t.Errorf("Expected anchor to be written, got %q", got)
	}
	if got, _ := f.GetCellValue("Report", "B1"); got != "" {
		t.Errorf("Expected non-anchor merged cell to stay empty, got %q", got)
	}
}

func TestFillIgnoresCellsFarOutsideTemplate(t *testing.T) {
	path := writeTemplate(t)

	// The template's data region is 3x3 (A1:C1 merge, rows 2-3).
	edge := models.CellEdit{R: 3 + MaxExtraRows, C: 3 + MaxExtraCols, V: "edge"}
	cells := []models.CellEdit{
		{R: 200000, C: 16384, V: "x"},
		{R: 4 + MaxExtraRows, C: 1, V: "too low"},
		{R: 1, C: 4 + MaxExtraCols, V: "too wide"},
		edge,
	}

	start := time.Now()
	res, err := Fill(context.Background(), path, cells, DefaultOptions())
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Fill took %s", elapsed)
	}

	f := openResult(t, res)
	rows, err := f.GetRows("Report")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != edge.R {
		t.Errorf("Expected %d rows, got %d", edge.R, len(rows))
	}

	name, _ := excelize.CoordinatesToCellName(edge.C, edge.R)
	if got, _ := f.GetCellValue("Report", name); got != "edge" {
		t.Errorf("Expected %s to be written, got %q", name, got)
	}
	for _, name := range []string{"XFD200000", "A1004", "CZ1"} {
		if got, _ := f.GetCellValue("Report", name); got != "" {
			t.Errorf("Expected %s to stay empty, got %q", name, got)
		}
	}
}

func TestFillBlankOverwrite(t *testing.T) {
	path := writeTemplate(t)
	cells := []models.CellEdit{{R: 2, C: 1, V: "   "}, {R: 2, C: 2, V: nil}}

	res, err := Fill(context.Background(), path, cells, DefaultOptions())
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	f := openResult(t, res)
	if got, _ := f.GetCellValue("Report", "A2"); got != "Item" {
		t.Errorf("Expected blank submission to keep template value, got %q", got)
	}

	opts := DefaultOptions()
	opts.AllowBlankOverwrite = true
	res, err = Fill(context.Background(), path, cells, opts)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	f = openResult(t, res)
	if got, _ := f.GetCellValue("Report", "A2"); got != "" {
		t.Errorf("Expected blank overwrite to clear A2, got %q", got)
	}
	if got, _ := f.GetCellValue("Report", "B2"); got != "Qty" {
		t.Errorf("Expected null submission to keep B2, got %q", got)
	}
}

func TestFillAutosizesRows(t *testing.T) {
	path := writeTemplate(t)
	opts := DefaultOptions()
	opts.RowHeightPx = 20 // 15pt

	// Column A keeps the default width (~9 chars); 30 characters need 4 lines.
	cells := []models.CellEdit{{R: 5, C: 1, V: "abcdefghijklmnopqrstuvwxyz1234"}}

	res, err := Fill(context.Background(), path, cells, opts)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}
	f := openResult(t, res)

	height, err := f.GetRowHeight("Report", 5)
	if err != nil {
		t.Fatalf("GetRowHeight failed: %v", err)
	}
	if height != 60 {
		t.Errorf("Expected row 5 height 60pt, got %v", height)
	}

	height, _ = f.GetRowHeight("Report", 2)
	if height != 15 {
		t.Errorf("Expected row 2 to keep the baseline 15pt, got %v", height)
	}

	styleID, _ := f.GetCellStyle("Report", "A5")
	style, err := f.GetStyle(styleID)
	if err != nil {
		t.Fatalf("GetStyle failed: %v", err)
	}
	if style.Alignment == nil || !style.Alignment.WrapText {
		t.Errorf("Expected A5 to wrap text")
	}

	// The merged title spans A:C, so it fits on one line and is not wrapped.
	styleID, _ = f.GetCellStyle("Report", "A1")
	if style, _ := f.GetStyle(styleID); style != nil && style.Alignment != nil && style.Alignment.WrapText {
		t.Errorf("Expected A1 not to wrap")
	}
}

func TestFillKeepsHeightOfRowsPastData(t *testing.T) {
	path := writeTemplate(t)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if err := f.SetRowHeight("Report", 10, 40); err != nil {
		t.Fatalf("SetRowHeight failed: %v", err)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	f.Close()

	opts := DefaultOptions()
	opts.RowHeightPx = 20
	res, err := Fill(context.Background(), path, []models.CellEdit{{R: 3, C: 2, V: "4"}}, opts)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	out := openResult(t, res)
	if height, _ := out.GetRowHeight("Report", 3); height != 15 {
		t.Errorf("Expected row 3 at the 15pt baseline, got %v", height)
	}
	if height, _ := out.GetRowHeight("Report", 10); height != 40 {
		t.Errorf("Expected empty row 10 to keep 40pt, got %v", height)
	}
}

func TestFillTemplateNotFound(t *testing.T) {
	_, err := Fill(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"), nil, DefaultOptions())
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}

func TestFillUsesNamedSheet(t *testing.T) {
	path := writeTemplate(t)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	if _, err := f.NewSheet("Other"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	if err := f.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	f.Close()

	opts := DefaultOptions()
	opts.Sheet = "Other"
	res, err := Fill(context.Background(), path, []models.CellEdit{{R: 1, C: 1, V: "x"}}, opts)
	if err != nil {
		t.Fatalf("Fill failed: %v", err)
	}

	out := openResult(t, res)
	if got, _ := out.GetCellValue("Other", "A1"); got != "x" {
		t.Errorf("Expected write to sheet Other, got %q", got)
	}
	if got, _ := out.GetCellValue("Report", "A1"); got != "Backstock" {
		t.Errorf("Expected Report to be untouched, got %q", got)
	}
}
