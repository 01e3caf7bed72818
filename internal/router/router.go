package router

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "animal-zoo/docs"
	redispub "animal-zoo/internal/adapters/pubsub/redis"
	mem "animal-zoo/internal/adapters/storage/memory"
	pg "animal-zoo/internal/adapters/storage/postgres"
	"animal-zoo/internal/domain/events"
	"animal-zoo/internal/domain/zoo"
	"animal-zoo/internal/middleware"
	"animal-zoo/internal/platform/logger"
	"animal-zoo/internal/platform/metrics"
	"animal-zoo/internal/ports/auth"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres (ya migrado). Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, las notificaciones también salen por Redis.
	Redis        goredis.UniversalClient
	RedisChannel string

	TrainerID string

	Logger logger.Logger

	// Registry expone /metrics. Si es nil se crea uno propio.
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics

	// RateLimiter aplica solo a operaciones de escritura. nil = sin límite.
	RateLimiter *middleware.RateLimiter
}

func NewRouter(opts Options) (http.Handler, error) {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(opts.Registry)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.AccessLog(opts.Logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		store     zoo.Store
		eventRepo events.Repository
	)
	if opts.DB != nil {
		store = pg.NewZooStore(opts.DB)
		eventRepo = pg.NewEventsRepo(opts.DB)
	} else {
		store = mem.NewZooStore()
		eventRepo = mem.NewEventRepo()
	}

	eventsSvc := events.NewService(eventRepo)

	zooOpts := []zoo.Option{
		zoo.WithLogger(opts.Logger.With(map[string]any{"component": "zoo"})),
		zoo.WithMetrics(opts.Metrics),
		zoo.WithPublisher(eventsSvc),
	}
	if opts.Redis != nil {
		pub, err := redispub.NewPublisher(opts.Redis, opts.RedisChannel)
		if err != nil {
			return nil, err
		}
		zooOpts = append(zooOpts, zoo.WithPublisher(pub))
	}

	zooSvc, err := zoo.NewService(store, opts.TrainerID, zooOpts...)
	if err != nil {
		return nil, fmt.Errorf("build zoo service: %w", err)
	}

	var writeMW func(http.Handler) http.Handler
	if opts.RateLimiter.Enabled() {
		writeMW = opts.RateLimiter.Middleware
	}

	// Rutas por módulo
	zoo.RegisterRoutes(r, zooSvc, writeMW)
	events.RegisterRoutes(r, eventsSvc, zooSvc.TrainerID())

	return r, nil
}
