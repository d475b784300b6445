// Package parser provides excelize helpers for reading and laying out the template sheet.
package parser

import (
	"math"
	"strings"
	"unicode/utf8"
)

// PixelsPerChar is the width in pixels of one Excel character unit.
// Excel column widths are stored in characters of the default font; the
// editor renders roughly 7 pixels per character.
const PixelsPerChar = 7

// PixelsPerInch and PointsPerInch relate row heights (points) to screen pixels at 96 DPI.
const (
	PixelsPerInch = 96.0
	PointsPerInch = 72.0
)

// MaxRowHeight is the tallest row Excel accepts, in points.
const MaxRowHeight = 409.0

// PointsToPixels converts a height in points to whole pixels at 96 DPI.
func PointsToPixels(pt float64) int {
	return int(math.Round(pt * PixelsPerInch / PointsPerInch))
}

// PixelsToPoints converts pixels at 96 DPI to points.
func PixelsToPoints(px float64) float64 {
	return px * PointsPerInch / PixelsPerInch
}

// CharsToPixels converts a column width in characters to whole pixels.
func CharsToPixels(chars float64) int {
	return int(chars * PixelsPerChar)
}

// EstimateLines estimates how many wrapped lines text needs in a cell that
// fits charsPerLine characters per line. Every hard line counts at least once.
func EstimateLines(text string, charsPerLine int) int {
	if charsPerLine <= 0 {
		charsPerLine = 1
	}
	lines := 0
	for _, part := range splitLines(text) {
		n := utf8.RuneCountInString(part)
		lines += max(1, (n+charsPerLine-1)/charsPerLine)
	}
	return max(1, lines)
}

// splitLines splits on any line break; a single trailing break does not
// start a new line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
