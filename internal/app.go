package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"user-directory-api/config"
	"user-directory-api/internal/application/ports"
	"user-directory-api/internal/application/services"
	"user-directory-api/internal/infrastructure/avatar"
	"user-directory-api/internal/infrastructure/db/postgres"
	"user-directory-api/internal/infrastructure/db/postgres/user"
	"user-directory-api/internal/infrastructure/hasher"
	"user-directory-api/internal/infrastructure/metrics"
	"user-directory-api/internal/infrastructure/mq"
	"user-directory-api/internal/interface/api/rest"
	"user-directory-api/internal/interface/api/rest/middleware"
	"user-directory-api/pkg/rmqconsumer"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	loc        *time.Location
	db         *pgxpool.Pool
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	events     ports.EventPublisher
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
}

func NewLogger(env string) (*zap.Logger, error) {
	switch env {
	case gin.ReleaseMode, "prod", "production":
		return zap.NewProduction()
	default:
		return zap.NewDevelopment()
	}
}

// NewApp wires every dependency. Nothing is started until Run.
func NewApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           middleware.CORS(cfg.CORS, r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &App{
		logger:   logger,
		cfg:      cfg,
		loc:      loc,
		db:       dbPool,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
		events:   mq.NewDiscard(logger),
	}

	if !cfg.MQEnabled() {
		logger.Info("RABBITMQ_HOST is empty, lifecycle events are disabled")
		return a, nil
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, logger, mCounter)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	a.mq, a.events = rbMQ, rbMQ
	if err = rbMQ.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}

	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, logger, rbMQ.GetConn())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}
	a.mqConsumer = rmqConsumer

	return a, nil
}

// EnsureSchema creates the users table when it is missing.
func (a *App) EnsureSchema(ctx context.Context) error {
	return postgres.EnsureSchema(ctx, a.logger, a.db)
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mq != nil && a.mq.GetConn() != nil {
		_ = a.mq.GetConn().Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	if a.mq != nil {
		g.Go(func() error {
			a.mq.PublisherWorker(ctx)
			return nil
		})
	}

	if a.mqConsumer != nil {
		g.Go(func() error {
			a.mqConsumer.DeliveryWorker(ctx)
			return nil
		})
	}

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
		return err
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)

	// services
	var avatars ports.AvatarFinder = avatar.Disabled{}
	if a.cfg.Avatar.Enabled {
		avatars = avatar.NewGravatar(a.cfg.Avatar, a.logger)
	}
	userService := services.NewUserService(
		userRepo,
		hasher.NewBcrypt(bcrypt.DefaultCost),
		avatars,
		a.events,
		a.mCounter,
		func() time.Time { return time.Now().In(a.loc) },
	)

	// controllers
	rest.NewUserController(a.router, userService, a.logger)
	rest.NewOpsController(a.router, a.db, a.logger)
}

func (a *App) Logger() *zap.Logger { return a.logger }

// InitSchema connects, creates the schema and disconnects.
func InitSchema(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	dsn, err := cfg.DBDSN()
	if err != nil {
		return fmt.Errorf("DB config error: %w", err)
	}
	pool, err := postgres.New(ctx, logger, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	return postgres.EnsureSchema(ctx, logger, pool)
}
