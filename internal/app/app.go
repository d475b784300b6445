// Package app wires configuration, the report use case and the HTTP server.
package app

import (
	"context"
	"fmt"

	"go.alis.build/alog"

	"github.com/ukaji3/reportfill-go/internal/config"
	"github.com/ukaji3/reportfill-go/internal/mail"
	router "github.com/ukaji3/reportfill-go/internal/transport/http"
	"github.com/ukaji3/reportfill-go/internal/transport/http/handlers"
	"github.com/ukaji3/reportfill-go/internal/usecases"
	"github.com/ukaji3/reportfill-go/pkg/graceful_shutdown"
	httpserver "github.com/ukaji3/reportfill-go/pkg/http_server"
	"github.com/ukaji3/reportfill-go/pkg/http_server/mw"
)

// ConfigureLogging applies cfg.Log.Level.
func ConfigureLogging(cfg *config.Config) {
	if cfg.Log.Level == "debug" {
		alog.SetLevel(alog.LevelDebug)
	}
}

// NewReportUseCase builds the use case with the configured mail transport.
func NewReportUseCase(cfg *config.Config) *usecases.ReportUseCase {
	return usecases.NewReportUseCase(cfg.Template.Path, cfg.ReportOptions(), mail.FromConfig(cfg.Mail))
}

// Run serves the editor until ctx is cancelled or the process is signalled.
func Run(ctx context.Context, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if missing := mail.MissingSettings(cfg.Mail); len(missing) > 0 {
		alog.Warnf(ctx, "mail is not configured, /email will fail until these are set: %v", missing)
	}

	httpHandlers, err := handlers.NewHTTPHandlers(
		NewReportUseCase(cfg),
		cfg.Mail.DefaultRecipient,
		mail.Presence(cfg.Mail),
	)
	if err != nil {
		return fmt.Errorf("init handlers: %w", err)
	}

	server := httpserver.NewHTTPServer(router.NewRouter(httpHandlers),
		httpserver.WithAddress(cfg.Address()),
		httpserver.WithMiddleware(
			mw.LimitBody(cfg.Server.MaxBodyBytes),
			mw.Recover,
			mw.AccessLog,
			mw.RequestMetadata,
		))

	alog.Infof(ctx, "serving template %s", cfg.Template.Path)

	gfl := graceful_shutdown.NewGracefulShutdown(ctx)
	gfl.SetTimeout(cfg.Server.ShutdownTimeout)

	gfl.Go(server.Start)
	gfl.MustClose(server.Stop)

	return gfl.Wait()
}
