// Package reportfill turns a spreadsheet template into the browser editor's
// grid and applies the edited cells back onto a fresh copy of the template.
package reportfill

import "time"

// DefaultReportName is the file name prefix of filled workbooks.
const DefaultReportName = "backstock-report"

// ContentType is the MIME type of xlsx workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Options configures how the template is read and filled.
type Options struct {
	// Sheet names the template sheet. Empty (or unknown) selects the active sheet.
	Sheet string
	// ReportName is the prefix of generated file names.
	ReportName string
	// AllowBlankOverwrite lets blank submissions clear template values.
	AllowBlankOverwrite bool
	// RowHeightPx is the uniform row height in pixels. Zero uses row 1's height.
	RowHeightPx int
	// ColWidthPx is the editor's default column width in pixels. Zero uses the
	// sheet default when it declares one.
	ColWidthPx int
	// Now stamps generated file names. If nil, time.Now is used.
	Now func() time.Time
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		ReportName: DefaultReportName,
	}
}

func (o Options) reportName() string {
	if o.ReportName == "" {
		return DefaultReportName
	}
	return o.ReportName
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
