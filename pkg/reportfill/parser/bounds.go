package parser

// DataBounds returns the 1-based extent of a sheet: the last row and column
// holding a non-empty value or covered by a merged range. The result is at
// least 1x1.
func DataBounds(rows [][]string, merges []Range) (maxRow, maxCol int) {
	maxRow, maxCol = 1, 1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			maxRow = max(maxRow, rowIdx+1)
			maxCol = max(maxCol, colIdx+1)
		}
	}

	for _, rng := range merges {
		maxRow = max(maxRow, rng.R2)
		maxCol = max(maxCol, rng.C2)
	}

	return
}
