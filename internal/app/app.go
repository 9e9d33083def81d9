package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/stpnv0/SitterMatch/internal/config"
	"github.com/stpnv0/SitterMatch/internal/events"
	"github.com/stpnv0/SitterMatch/internal/handler"
	"github.com/stpnv0/SitterMatch/internal/middleware"
	"github.com/stpnv0/SitterMatch/internal/notification"
	"github.com/stpnv0/SitterMatch/internal/repository"
	"github.com/stpnv0/SitterMatch/internal/repository/memory"
	"github.com/stpnv0/SitterMatch/internal/router"
	"github.com/stpnv0/SitterMatch/internal/scheduler"
	"github.com/stpnv0/SitterMatch/internal/service"
	"github.com/stpnv0/SitterMatch/internal/service/ports"
	"github.com/stpnv0/SitterMatch/internal/telephony"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	_ "github.com/lib/pq"
)

const (
	appName       = "SitterMatch"
	migrationsDir = "migrations"
)

type repos struct {
	requests   ports.RequestRepo
	candidates ports.CandidateRepo
	bookings   ports.BookingRepo
	profiles   ports.ProfileRepo
	catalog    ports.CatalogRepo
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	bus        *events.RedisPublisher
	calls      *telephony.RabbitDispatcher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := initLogger(cfg)
	if err != nil {
		return nil, err
	}
	app.log = log

	if !cfg.Storage.InMemory() {
		if err = runMigrations(cfg, log); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}

		if err = app.initDB(); err != nil {
			return nil, fmt.Errorf("init db: %w", err)
		}
	}

	if err = app.initBrokers(); err != nil {
		return nil, fmt.Errorf("init brokers: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

// Migrate applies pending migrations and exits.
func Migrate(cfg *config.Config) error {
	log, err := initLogger(cfg)
	if err != nil {
		return err
	}
	return runMigrations(cfg, log)
}

func initLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		appName,
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initBrokers() error {
	if a.cfg.Redis.URL != "" {
		rdb, err := events.NewRedisClient(context.Background(), a.cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		a.bus = events.NewRedisPublisher(rdb, a.cfg.Redis.Channel)
		a.log.Info("event bus connected", logger.String("channel", a.cfg.Redis.Channel))
	} else {
		a.log.Warn("redis url is empty, event bus disabled")
	}

	if a.cfg.RabbitMQ.URL != "" {
		calls, err := telephony.NewRabbitDispatcher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange)
		if err != nil {
			return fmt.Errorf("rabbitmq: %w", err)
		}
		a.calls = calls
		a.log.Info("call queue connected", logger.String("exchange", a.cfg.RabbitMQ.Exchange))
	} else {
		a.log.Warn("rabbitmq url is empty, telephony calls disabled")
	}

	return nil
}

func (a *App) initRepos() repos {
	if a.cfg.Storage.InMemory() {
		a.log.Warn("using in-memory storage, data will not survive a restart")
		store := memory.NewStore()
		return repos{
			requests:   store.Requests(),
			candidates: store.Candidates(),
			bookings:   store.Bookings(),
			profiles:   store.Profiles(),
			catalog:    store.Catalog(),
		}
	}

	return repos{
		requests:   repository.NewRequestRepo(a.db),
		candidates: repository.NewCandidateRepo(a.db),
		bookings:   repository.NewBookingRepo(a.db),
		profiles:   repository.NewProfileRepo(a.db),
		catalog:    repository.NewCatalogRepo(a.db),
	}
}

func (a *App) initServices() error {
	r := a.initRepos()

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	var opts []notification.Option
	if a.bus != nil {
		opts = append(opts, notification.WithBus(a.bus))
	}
	if a.calls != nil {
		opts = append(opts, notification.WithCallQueue(a.calls))
	}
	dispatcher := notification.NewDispatcher(r.profiles, r.requests, tg, a.log, opts...)

	catalogService := service.NewCatalogService(r.catalog, a.log)
	if a.cfg.Storage.InMemory() {
		// Postgres gets the same rows from a migration.
		if err = catalogService.Seed(context.Background(), defaultCities, defaultStyles); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	matcher := service.NewMatcher(r.profiles, a.log)
	requestService := service.NewRequestService(r.requests, r.candidates, r.profiles, r.catalog, matcher, dispatcher, a.log)
	responseService := service.NewResponseService(r.candidates, r.requests, r.profiles, dispatcher, a.log)
	selectionService := service.NewSelectionService(r.requests, r.candidates, r.bookings, dispatcher, a.log)
	bookingService := service.NewBookingService(r.bookings, dispatcher, a.log)
	telephonyService := service.NewTelephonyService(r.candidates, r.requests, responseService, dispatcher, a.log)
	profileService := service.NewProfileService(r.profiles, r.catalog, a.log)

	a.scheduler = scheduler.New(
		requestService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(
		requestService,
		responseService,
		selectionService,
		bookingService,
		telephonyService,
		profileService,
		catalogService,
	)

	var auth = middleware.Auth(a.cfg.Auth.JWTSecret, a.log)
	if !a.cfg.Auth.Enabled() {
		a.log.Warn("jwt secret is empty, api authentication disabled")
		auth = nil
	}

	engine := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		auth,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.RateLimit(a.cfg.RateLimit.RPS, a.cfg.RateLimit.Burst, a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      engine,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.calls != nil {
		if err := a.calls.Close(); err != nil {
			a.log.Error("failed to close call queue", logger.String("error", err.Error()))
		}
	}

	if a.bus != nil {
		if err := a.bus.Close(); err != nil {
			a.log.Error("failed to close event bus", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func runMigrations(cfg *config.Config, log logger.Logger) error {
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	log.Info("migrations applied successfully")
	return nil
}
