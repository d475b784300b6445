package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"go.alis.build/alog"

	"github.com/ukaji3/reportfill-go/internal/usecases"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
	"github.com/ukaji3/reportfill-go/web"
)

type HTTPHandlers struct {
	ReportUseCase    *usecases.ReportUseCase
	DefaultRecipient string
	// MailSettings maps mail setting names to whether they are set.
	MailSettings map[string]bool

	page *template.Template
}

func NewHTTPHandlers(
	reportUseCase *usecases.ReportUseCase,
	defaultRecipient string,
	mailSettings map[string]bool,
) (*HTTPHandlers, error) {
	page, err := template.ParseFS(web.FS, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	return &HTTPHandlers{
		ReportUseCase:    reportUseCase,
		DefaultRecipient: defaultRecipient,
		MailSettings:     mailSettings,
		page:             page,
	}, nil
}

// errInvalidBody is returned for bodies that are not a JSON object.
var errInvalidBody = errors.New("request body must be a JSON object")

// decodeSubmission reads a JSON submission. Row and column indexes must be
// integers; anything else fails the decode.
func decodeSubmission(r *http.Request) (models.Submission, error) {
	var sub models.Submission

	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return sub, err
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return sub, errInvalidBody
	}
	if err := json.Unmarshal(raw, &sub); err != nil {
		return sub, fmt.Errorf("invalid submission: %w", err)
	}
	return sub, nil
}

// decodeStatus is the response status for a decodeSubmission error.
func decodeStatus(err error) int {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		alog.Warnf(r.Context(), "write response: %v", err)
	}
}
