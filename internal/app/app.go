package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/telemetry-backend/internal/adapter/events"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/calllog"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/consent"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/iplocation"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/location"
	userrepo "github.com/heartmarshall/telemetry-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/telemetry-backend/internal/adapter/provider/ipinfo"
	"github.com/heartmarshall/telemetry-backend/internal/config"
	"github.com/heartmarshall/telemetry-backend/internal/service/ingest"
	"github.com/heartmarshall/telemetry-backend/internal/service/snapshot"
	"github.com/heartmarshall/telemetry-backend/internal/service/user"
	"github.com/heartmarshall/telemetry-backend/internal/transport/middleware"
	"github.com/heartmarshall/telemetry-backend/internal/transport/rest"
)

// App holds the long-lived resources of a running server.
type App struct {
	cfg       *config.Config
	log       *slog.Logger
	pool      *pgxpool.Pool
	publisher *events.Publisher
	handler   http.Handler
}

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}

// New connects to the database and builds the HTTP handler. The caller
// must call Close.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: connect to database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, fmt.Errorf("app: migrate: %w", err)
		}
	}

	a := &App{cfg: cfg, log: logger, pool: pool}

	deps := ingest.Deps{
		Consents:  consent.New(pool),
		Locations: location.New(pool),
		Calls:     calllog.New(pool),
		IPs:       iplocation.New(pool),
		Geo:       ipinfo.NewProvider(cfg.Geo, logger),
	}
	if cfg.Events.Enabled() {
		a.publisher = events.NewPublisher(cfg.Events, logger)
		deps.Events = a.publisher
		logger.Info("telemetry events enabled",
			slog.Any("brokers", cfg.Events.BrokerList()),
			slog.String("topic", cfg.Events.Topic),
		)
	}
	if cfg.Geo.Token == "" {
		logger.Warn("IPINFO_TOKEN is not set; /report-ip will fail")
	}

	users := userrepo.New(pool)
	snapshots := snapshot.NewService(logger,
		users,
		location.New(pool),
		iplocation.New(pool),
		calllog.New(pool),
		cfg.Admin.Concurrency,
	)

	router := rest.NewRouter(rest.Handlers{
		Users:     rest.NewUserHandler(user.NewService(logger, users), logger),
		Telemetry: rest.NewTelemetryHandler(ingest.NewService(logger, deps), logger),
		Admin:     rest.NewAdminHandler(snapshots, logger),
		Health:    rest.NewHealthHandler(pool, BuildVersion()),
	})

	a.handler = middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)(router)

	return a, nil
}

// Handler returns the fully wrapped HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Serve listens on the configured address until ctx is cancelled, then
// shuts down gracefully within server.shutdown_timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("app: serve: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down", slog.Duration("timeout", a.cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app: shutdown: %w", err)
	}
	return nil
}

// Close releases the event publisher and the database pool.
func (a *App) Close() {
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.log.Warn("close event publisher", slog.String("error", err.Error()))
		}
	}
	a.pool.Close()
}
