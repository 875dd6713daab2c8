package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/conlang-backend/internal/adapter/postgres"
	grammarrepo "github.com/heartmarshall/conlang-backend/internal/adapter/postgres/grammar"
	languagerepo "github.com/heartmarshall/conlang-backend/internal/adapter/postgres/language"
	lexiconrepo "github.com/heartmarshall/conlang-backend/internal/adapter/postgres/lexicon"
	phonologyrepo "github.com/heartmarshall/conlang-backend/internal/adapter/postgres/phonology"
	"github.com/heartmarshall/conlang-backend/internal/auth"
	"github.com/heartmarshall/conlang-backend/internal/config"
	"github.com/heartmarshall/conlang-backend/internal/metrics"
	"github.com/heartmarshall/conlang-backend/internal/service/grammar"
	"github.com/heartmarshall/conlang-backend/internal/service/language"
	"github.com/heartmarshall/conlang-backend/internal/service/lexicon"
	"github.com/heartmarshall/conlang-backend/internal/service/phonology"
	"github.com/heartmarshall/conlang-backend/internal/service/report"
	"github.com/heartmarshall/conlang-backend/internal/transport/middleware"
	"github.com/heartmarshall/conlang-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	return Serve(ctx, cfg, logger)
}

// Serve connects to the database, applies migrations when configured, and
// runs the HTTP server until ctx is cancelled. In-flight requests get
// cfg.Server.ShutdownTimeout to finish.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer migrator.Close() //nolint:errcheck

	if cfg.Database.MigrateOnStart {
		results, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", len(results)))
	}

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	defer limiter.Stop()

	handler := NewHandler(Deps{
		Pool:    pool,
		Schema:  migrator,
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// Deps are the long-lived resources NewHandler wires together. Schema may be
// nil, in which case /health does not report the migration version.
type Deps struct {
	Pool    *pgxpool.Pool
	Schema  interface{ SchemaVersion(ctx context.Context) (int64, error) }
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
	Limiter *middleware.RateLimiter
}

// NewHandler builds repositories, services and the router, and wraps the
// router in the middleware chain.
func NewHandler(d Deps) http.Handler {
	cfg, logger := d.Config, d.Logger

	// 1. Repositories.
	txm := postgres.NewTxManager(d.Pool)
	languageRepo := languagerepo.New(d.Pool)
	phonologyRepo := phonologyrepo.New(d.Pool)
	lexiconRepo := lexiconrepo.New(d.Pool)
	grammarRepo := grammarrepo.New(d.Pool)

	// 2. Editor tokens.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)

	// 3. Services.
	languageService := language.NewService(logger, languageRepo, phonologyRepo, txm)
	phonologyService := phonology.NewService(logger, phonologyRepo, languageRepo, d.Metrics, txm, cfg.Engine)
	lexiconService := lexicon.NewService(logger, lexiconRepo, grammarRepo, languageRepo, txm)
	grammarService := grammar.NewService(logger, grammarRepo, lexiconRepo, languageRepo, d.Metrics, txm, cfg.Engine)
	reportService := report.NewService(
		logger, languageRepo, lexiconRepo, grammarRepo,
		phonologyService, grammarService, d.Metrics, txm, cfg.Engine,
	)

	// 4. Router.
	handlers := rest.Handlers{
		Health:    rest.NewHealthHandler(d.Pool, d.Schema, BuildVersion()),
		Language:  rest.NewLanguageHandler(languageService, logger),
		Phonology: rest.NewPhonologyHandler(phonologyService, logger),
		Lexicon:   rest.NewLexiconHandler(lexiconService, logger),
		Grammar:   rest.NewGrammarHandler(grammarService, logger),
		Forms:     rest.NewFormHandler(grammarService, logger),
		Report:    rest.NewReportHandler(reportService, logger),
	}
	if d.Limiter != nil {
		handlers.Expensive = d.Limiter.Limit(cfg.Server.ExpensiveRatePerMinute)
	}

	var metricsMW middleware.Middleware
	if cfg.Metrics.Enabled {
		handlers.Metrics = d.Metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
		metricsMW = middleware.Metrics(d.Metrics)
	}
	mux := rest.NewRouter(handlers)

	// 5. Middleware chain. Metrics stays innermost so it sees the route
	// pattern the mux matched.
	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(jwtMgr),
		metricsMW,
	)(mux)
}
