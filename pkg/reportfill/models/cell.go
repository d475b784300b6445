// Package models defines the data structures exchanged with the browser editor.
package models

// Cell is a single non-empty cell of the editor grid.
type Cell struct {
	// V is the cell value (string, int64, float64 or bool).
	V interface{} `json:"v"`
}

// CellEdit is one cell submitted back from the editor.
type CellEdit struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C is the column index (1-based).
	C int `json:"c"`
	// V is the submitted value: string, float64, bool or nil.
	V interface{} `json:"v"`
}

// Submission is the request body of the download and email endpoints.
type Submission struct {
	// Cells holds the edited cells.
	Cells []CellEdit `json:"cells"`
	// Recipient is the destination address (email only).
	Recipient string `json:"recipient,omitempty"`
	// Subject is the email subject (email only).
	Subject string `json:"subject,omitempty"`
	// Body is the plain-text email body (email only).
	Body string `json:"body,omitempty"`
}
