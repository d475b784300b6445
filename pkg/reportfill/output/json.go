// Package output serializes editor grids to JSON.
package output

import (
	"encoding/json"

	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
)

// ToJSON serializes a workbook grid.
func ToJSON(wb *models.Workbook, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
