package handlers

import (
	"bytes"
	"io"
	"mime"
	"net/http"
	"strconv"

	"go.alis.build/alog"

	"github.com/ukaji3/reportfill-go/pkg/reportfill"
)

// Download fills the template with the submitted cells and returns the
// workbook as an attachment.
func (h *HTTPHandlers) Download(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		http.Error(w, err.Error(), decodeStatus(err))
		return
	}

	res, err := h.ReportUseCase.Export(r.Context(), sub.Cells)
	if err != nil {
		http.Error(w, "Download failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	header := w.Header()
	header.Set("Content-Type", reportfill.ContentType)
	header.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": res.Filename}))
	header.Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.WriteHeader(http.StatusOK)

	// Headers are sent; a failed copy can only be logged.
	if _, err := io.Copy(w, bytes.NewReader(res.Data)); err != nil {
		alog.Warnf(r.Context(), "write %s: %v", res.Filename, err)
	}
}
