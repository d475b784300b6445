package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"go.alis.build/alog"

	"github.com/ukaji3/reportfill-go/internal/mail"
	pkgerrors "github.com/ukaji3/reportfill-go/pkg/errors"
	"github.com/ukaji3/reportfill-go/pkg/reportfill/models"
)

type emailReq struct {
	models.Submission
}

func (req *emailReq) Validate() error {
	return validation.ValidateStruct(&req.Submission,
		validation.Field(&req.Submission.Recipient, validation.Required, is.Email),
	)
}

type emailResp struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Email fills the template and mails it. Failures are reported in the
// {ok:false, error} envelope.
func (h *HTTPHandlers) Email(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		writeJSON(w, r, decodeStatus(err), emailResp{Error: err.Error()})
		return
	}

	req := emailReq{Submission: sub}
	req.Recipient = strings.TrimSpace(req.Recipient)
	if req.Recipient == "" {
		req.Recipient = h.DefaultRecipient
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, r, http.StatusBadRequest, emailResp{Error: pkgerrors.FromError(err).Error()})
		return
	}

	if _, err := h.ReportUseCase.Email(r.Context(), req.Submission); err != nil {
		status := emailStatus(err)
		if status >= http.StatusInternalServerError {
			alog.Errorf(r.Context(), "email to %s failed: %v", req.Recipient, err)
		}
		writeJSON(w, r, status, emailResp{Error: err.Error()})
		return
	}

	writeJSON(w, r, http.StatusOK, emailResp{
		OK:      true,
		Message: fmt.Sprintf("Email sent to %s.", req.Recipient),
	})
}

func emailStatus(err error) int {
	var cfgErr *mail.ConfigError
	switch {
	case errors.Is(err, mail.ErrNoRecipient):
		return http.StatusBadRequest
	case errors.As(err, &cfgErr):
		return http.StatusServiceUnavailable
	case errors.Is(err, mail.ErrDeliveryFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
