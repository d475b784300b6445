package models

// Info names the workbook shown in the editor.
type Info struct {
	Name string `json:"name"`
}

// Defaults holds the uniform sizes applied by the editor.
type Defaults struct {
	// RowHeightPx is the uniform row height in pixels.
	RowHeightPx int `json:"rowHeightPx"`
	// ColWidthPx is the default column width in pixels (nil if the sheet has none).
	ColWidthPx *int `json:"colWidthPx"`
}

// Workbook is the document served to the browser editor.
type Workbook struct {
	Info     Info     `json:"info"`
	Sheets   []Sheet  `json:"sheets"`
	Defaults Defaults `json:"defaults"`
}
