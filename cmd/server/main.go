package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/routinely/backend/api/handler"
	"github.com/routinely/backend/internal/config"
	"github.com/routinely/backend/internal/infrastructure/journal"
	"github.com/routinely/backend/internal/infrastructure/monitor"
	pgInfra "github.com/routinely/backend/internal/infrastructure/postgres"
	redisInfra "github.com/routinely/backend/internal/infrastructure/redis"
	"github.com/routinely/backend/internal/middleware"
	"github.com/routinely/backend/internal/router"
	"github.com/routinely/backend/internal/scheduler"
	"github.com/routinely/backend/internal/services/lifecycle"
	"github.com/routinely/backend/pkg/httpcontext"
	"github.com/routinely/backend/pkg/logger"
	"github.com/routinely/backend/pkg/period"
	"github.com/routinely/backend/repository/postgres"
	redisRepo "github.com/routinely/backend/repository/redis"
	activityUC "github.com/routinely/backend/usecase/activity"
	logUC "github.com/routinely/backend/usecase/activitylog"
	authUC "github.com/routinely/backend/usecase/auth"
	"github.com/routinely/backend/usecase/generator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	loc, err := time.LoadLocation(cfg.Calendar.Timezone)
	if err != nil {
		zapLogger.Fatal("invalid timezone", zap.String("timezone", cfg.Calendar.Timezone), zap.Error(err))
	}
	cal := period.NewCalendar(loc)

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	jrnl, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		zapLogger.Fatal("failed to open generation journal", zap.Error(err))
	}
	manager.Register("journal", func(ctx context.Context) error {
		return jrnl.Close()
	})

	mon := monitor.New(pool, redisClient, jrnl, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	logRepo := postgres.NewLogRepository(pool)
	exclusionRepo := postgres.NewExclusionRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.JWT.SessionTTL)

	genService := generator.New(activityRepo, logRepo, exclusionRepo, userRepo, cal, zapLogger)
	authUseCase := authUC.New(userRepo, sessionRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.SessionTTL, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)
	logUseCase := logUC.New(logRepo, activityRepo, exclusionRepo, cal, zapLogger)

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(genService, jrnl, cfg.Scheduler.CronSpec, zapLogger)
		if err := sched.Start(); err != nil {
			zapLogger.Fatal("scheduler failed to start", zap.Error(err))
		}
		manager.Register("scheduler", func(ctx context.Context) error {
			sched.Stop(ctx)
			return nil
		})
	}

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:        apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Activity:    apiHandler.NewActivityHandler(activityUseCase, cal.Location(), ctxAdapter, zapLogger),
		ActivityLog: apiHandler.NewActivityLogHandler(logUseCase, genService, ctxAdapter, zapLogger),
		Health:      apiHandler.NewHealthHandler(mon, jrnl, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, authUseCase, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
