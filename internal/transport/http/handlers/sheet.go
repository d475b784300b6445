package handlers

import (
	"errors"
	"net/http"

	"github.com/ukaji3/reportfill-go/pkg/reportfill"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/output"
)

// GetSheet returns the template as an editor grid. The grid always reflects
// the file on disk, so it must never be cached.
func (h *HTTPHandlers) GetSheet(w http.ResponseWriter, r *http.Request) {
	wb, err := h.ReportUseCase.Grid(r.Context())
	if errors.Is(err, reportfill.ErrTemplateNotFound) {
		http.Error(w, "Template not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to convert workbook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	body, err := output.ToJSON(wb, false)
	if err != nil {
		http.Error(w, "Failed to convert workbook: "+err.Error(), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	header.Set("Pragma", "no-cache")
	header.Set("Expires", "0")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
