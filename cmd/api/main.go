package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	jwtauth "animal-zoo/internal/adapters/auth/jwt"
	pg "animal-zoo/internal/adapters/storage/postgres"
	"animal-zoo/internal/middleware"
	"animal-zoo/internal/platform/config"
	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"
	platformredis "animal-zoo/internal/platform/redis"
	"animal-zoo/internal/router"
)

// @title Animal Zoo API
// @version 1.0
// @description Registro de préstamo de animales: inventario por categoría, préstamos con reglas de elegibilidad y log de notificaciones.
// @BasePath /
func main() {
	cfg := config.FromEnv()

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	opts := router.Options{
		TrainerID: cfg.TrainerID,
		Logger:    log,
		Registry:  reg,
		Metrics:   m,
	}

	if cfg.DBDSN != "" {
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
		opts.DB = db
		log.Info("using postgres storage", nil)
	} else {
		log.Warn("DB_DSN not set, using in-memory storage", nil)
	}

	rdb, err := platformredis.Open(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		opts.Redis = rdb
		opts.RedisChannel = cfg.RedisChannel
		log.Info("publishing notifications to redis", map[string]any{"channel": cfg.RedisChannel})
	}

	if cfg.JWTSigningKey != "" {
		opts.AuthVerifier = jwtauth.NewVerifier(cfg.JWTSigningKey, "")
	} else {
		log.Warn("JWT_SIGNING_KEY not set, dev mode: caller comes from "+middleware.DebugUserHeader, nil)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, m)
	if limiter.Enabled() {
		opts.RateLimiter = limiter
	}

	handler, err := router.NewRouter(opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": cfg.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	limiter.StartJanitor(gctx, time.Minute)

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
