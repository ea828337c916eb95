package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/maxviazov/wrestling-analytics/internal/config"
	"github.com/maxviazov/wrestling-analytics/internal/handler"
	"github.com/maxviazov/wrestling-analytics/internal/loader"
	"github.com/maxviazov/wrestling-analytics/internal/model"
	"github.com/maxviazov/wrestling-analytics/internal/repository"
	"github.com/maxviazov/wrestling-analytics/internal/service"
	"github.com/maxviazov/wrestling-analytics/internal/source"
)

// Module provides everything the HTTP server needs. configPath is read once at startup.
func Module(configPath string) fx.Option {
	return fx.Options(
		fx.Provide(func() (*config.Config, error) { return config.Load(configPath) }),
		fx.Provide(NewLogger),
		fx.Provide(NewFetcher),
		fx.Provide(NewBuilder),
		fx.Provide(NewLoader),
		// repos
		fx.Provide(
			fx.Annotate(repository.NewMemoryStore, fx.As(new(repository.CorpusStore))),
		),
		// svc
		fx.Provide(NewDashboardService),
		// server
		fx.Provide(NewEngine),
		fx.Provide(NewHTTPServer),
		fx.Invoke(RegisterLifecycle),
	)
}

func NewDashboardService(l *loader.Loader, store repository.CorpusStore, fetcher source.Fetcher, log zerolog.Logger) service.DashboardService {
	return service.NewDashboardService(l, store, fetcher, log)
}

func NewEngine(cfg *config.Config, store repository.CorpusStore, svc service.DashboardService, log zerolog.Logger) *gin.Engine {
	if cfg.App.Env == "prod" || cfg.App.Env == "staging" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	handler.Register(r, store, svc, log)
	return r
}

// NewHTTPServer wraps the engine with CORS for the browser dashboard.
func NewHTTPServer(cfg *config.Config, engine *gin.Engine) *http.Server {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{handler.RequestIDHeader},
	})
	return &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      c.Handler(engine),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}

// RegisterLifecycle loads the first corpus, starts the listener and the periodic refresher,
// and stops both on shutdown.
func RegisterLifecycle(lc fx.Lifecycle, cfg *config.Config, srv *http.Server, svc service.DashboardService, log zerolog.Logger) {
	bg, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := svc.Refresh(ctx); err != nil {
				if cfg.Corpus.RequireOnStart {
					return fmt.Errorf("initial load: %w", err)
				}
				log.Warn().Err(err).Msg("initial load failed, serving not-ready until a refresh succeeds")
			}

			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", srv.Addr, err)
			}
			go func() {
				log.Info().Str("addr", srv.Addr).Msg("server starting")
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("server failed")
				}
			}()
			go func() {
				defer close(done)
				RunRefresher(bg, svc, cfg.Corpus.RefreshInterval, log)
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("shutting down server")
			cancel()
			<-done

			shutdownCtx, stop := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer stop()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("server shutdown failed")
				return err
			}
			log.Info().Msg("server stopped gracefully")
			return nil
		},
	})
}

// Refresher is the part of the dashboard service the refresh loop needs.
type Refresher interface {
	Refresh(ctx context.Context) (model.CorpusSummary, error)
}

// RunRefresher calls Refresh every interval until ctx is done. A zero interval returns at once.
// Failures are logged; the previous corpus keeps serving.
func RunRefresher(ctx context.Context, r Refresher, interval time.Duration, log zerolog.Logger) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if _, err := r.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warn().Err(err).Msg("scheduled refresh failed")
			}
		}
	}
}
