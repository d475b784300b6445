package mw

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/ukaji3/reportfill-go/pkg/reqmeta"
)

const (
	HeaderXRequestID = "X-Request-ID"
)

// RequestMetadata assigns every request an ID (the client's X-Request-ID or a
// new UUID), echoes it in the response and stores it in the request context.
func RequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(HeaderXRequestID, requestID)

		method := r.Method
		url := r.URL.String()

		metadata := reqmeta.NewRequestMetadata(requestID, reqmeta.WithHTTPMetadata(reqmeta.HTTPMetadata{
			Method: &method,
			URL:    &url,
		}))

		r = r.WithContext(reqmeta.NewContext(r.Context(), metadata))
		next.ServeHTTP(w, r)
	})
}
