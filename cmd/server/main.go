// Command server runs the Auto-API backend: a Gin HTTP service exposing the
// curated API catalog, token-based authentication, code generation, the
// simulated deployment pipeline, and the reputation ledger.
//
// Configuration is environment-driven (optionally via .env); see
// internal/config for the full variable list.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/mbtq-dev/go-autoapi-backend/docs" // swagger registration

	"github.com/mbtq-dev/go-autoapi-backend/internal/catalog"
	"github.com/mbtq-dev/go-autoapi-backend/internal/config"
	httpapi "github.com/mbtq-dev/go-autoapi-backend/internal/http"
	"github.com/mbtq-dev/go-autoapi-backend/internal/observability"
	"github.com/mbtq-dev/go-autoapi-backend/internal/repo"
	"github.com/mbtq-dev/go-autoapi-backend/internal/services"
	"github.com/mbtq-dev/go-autoapi-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}
	defer func() {
		c, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(c); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	cat := catalog.New()
	auth := services.NewAuthService(cfg.TokenTTL)
	ledger := services.NewReputationService()

	// Periodically drop expired tokens so the store does not grow unbounded.
	if cfg.TokenSweep > 0 {
		go func() {
			t := time.NewTicker(cfg.TokenSweep)
			defer t.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-t.C:
					if n := auth.Sweep(); n > 0 {
						log.Debug().Int("removed", n).Msg("token sweep")
					}
				}
			}
		}()
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, auth, ledger, cat, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("version", version).
			Int("catalog_size", cat.Len()).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
