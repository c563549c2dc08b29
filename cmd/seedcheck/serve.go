package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bryanwahyu/seedcheck/internal/infra/httpserver"
	"github.com/bryanwahyu/seedcheck/internal/middleware"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svcs, err := buildServices(cfg)
		if err != nil {
			return err
		}

		handler := httpserver.NewRouter(svcs.analysis, svcs.deck, svcs.catalog, httpserver.Options{
			CORSOrigins:       cfg.Server.CORSOrigins,
			RateLimitRPS:      cfg.Server.RateLimitRPS,
			RateLimitBurst:    cfg.Server.RateLimitBurst,
			MaxDeckBytes:      cfg.Deck.MaxBytes,
			TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
			ReadyChecks: map[string]middleware.HealthChecker{
				"catalog":   &middleware.CatalogHealthChecker{Catalog: svcs.catalog},
				"rubric":    middleware.RubricHealthChecker{},
				"pdftotext": &middleware.ExecutableHealthChecker{Path: svcs.pdf.BinPath()},
			},
		})

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}
		// a live analysis can take a minute, hence the long write timeout
		srv := &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 120 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("server listening", zap.String("addr", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return eris.Wrap(err, "server listen")
			}
			return nil
		case <-ctx.Done():
		}

		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return eris.Wrap(err, "server shutdown")
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
