package handlers

import (
	"bytes"
	"net/http"

	"github.com/ukaji3/reportfill-go/internal/mail"
)

type pageData struct {
	Title            string
	DefaultRecipient string
	DefaultSubject   string
	DefaultBody      string
}

// Index renders the editor page.
func (h *HTTPHandlers) Index(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title:            mail.DefaultSubject,
		DefaultRecipient: h.DefaultRecipient,
		DefaultSubject:   mail.DefaultSubject,
		DefaultBody:      mail.DefaultBody,
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}
