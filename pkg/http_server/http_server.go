// Package httpserver wraps net/http.Server with functional options and a
// Start/Stop pair suited to graceful_shutdown.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.alis.build/alog"
)

type HTTPServer struct {
	server *http.Server
}

type Option func(*HTTPServer)

func NewHTTPServer(handler http.Handler, options ...Option) *HTTPServer {
	srv := &HTTPServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	for _, opt := range options {
		opt(srv)
	}

	return srv
}

func WithAddress(address string) Option {
	return func(srv *HTTPServer) {
		srv.server.Addr = address
	}
}

// WithMiddleware wraps the handler; the last middleware given runs first.
func WithMiddleware(middlewares ...func(http.Handler) http.Handler) Option {
	return func(srv *HTTPServer) {
		for _, middleware := range middlewares {
			srv.server.Handler = middleware(srv.server.Handler)
		}
	}
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *HTTPServer) Start() error {
	alog.Infof(context.Background(), "Starting HTTP server on %s", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	alog.Infof(ctx, "Stopping HTTP server on %s", s.server.Addr)
	return s.server.Shutdown(ctx)
}
