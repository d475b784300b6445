package models

// Merge describes a merged range by its 0-based anchor and span.
type Merge struct {
	// R is the anchor row (0-based).
	R int `json:"r"`
	// C is the anchor column (0-based).
	C int `json:"c"`
	// RS is the number of rows spanned.
	RS int `json:"rs"`
	// CS is the number of columns spanned.
	CS int `json:"cs"`
}

// SheetConfig carries the layout information of a sheet.
type SheetConfig struct {
	// Merge maps "r_c" (0-based anchor) to the merged range.
	Merge map[string]Merge `json:"merge"`
	// ColumnLen maps 0-based column index to an explicit width in pixels.
	ColumnLen map[int]int `json:"columnlen"`
	// RowLen maps 0-based row index to a height in pixels. Always empty: the
	// editor uses a uniform row height.
	RowLen map[int]int `json:"rowlen"`
}

// Sheet is a single sheet of the editor grid.
type Sheet struct {
	// Name is the sheet name.
	Name string `json:"name"`
	// Data is a dense rows x columns matrix; empty cells are nil.
	Data [][]*Cell `json:"data"`
	// Config holds merges and column widths.
	Config SheetConfig `json:"config"`
}
