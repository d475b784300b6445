package handlers

import "net/http"

// EnvCheck reports which mail settings are present, never their values.
func (h *HTTPHandlers) EnvCheck(w http.ResponseWriter, r *http.Request) {
	settings := h.MailSettings
	if settings == nil {
		settings = map[string]bool{}
	}
	writeJSON(w, r, http.StatusOK, settings)
}
