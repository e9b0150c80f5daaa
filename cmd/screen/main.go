package main

import (
	"context"
	"docbook/cmd/internal/booking"
	"docbook/cmd/internal/cache"
	"docbook/cmd/internal/config"
	"docbook/cmd/internal/directory"
	"docbook/cmd/internal/integration/remotestore"
	"docbook/cmd/internal/metrics"
	"docbook/cmd/internal/notify"
	"docbook/cmd/internal/routes"
	"docbook/cmd/internal/views"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()
	log.SetLevel(cfg.GommonLevel())

	registry := prometheus.NewRegistry()
	bookingMetrics := metrics.NewBookingMetrics(registry)

	remote := remotestore.WithObserver(remotestore.NewClient(cfg.StoreBaseURL, cfg.StoreTimeout), bookingMetrics)

	persister, err := newPersister(cfg)
	if err != nil {
		log.Fatal("failed to initialize appointment cache", err)
	}

	dialogs := notify.NewDialogs()
	state := booking.NewStore(remote, persister, dialogs, validator.New(), booking.Options{
		SyncAdvance: cfg.SyncAdvance,
		Metrics:     bookingMetrics,
	})
	doctors := directory.New(remote)

	// Mount: one directory read and one appointment restore per process.
	ctx := context.Background()
	doctors.Load(ctx)
	if err := state.Init(ctx); err != nil {
		log.Warnf("appointments not restored, starting with an empty list: %v", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatal("failed to load templates", err)
	}

	screenRoutes := routes.NewScreenDefault(state, doctors, dialogs)

	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.GET("/", screenRoutes.Page)
	e.POST("/doctors/:id/book", screenRoutes.BookDoctor)
	e.POST("/modal/cancel", screenRoutes.CancelModal)
	e.POST("/modal/confirm", screenRoutes.ConfirmModal)
	e.POST("/appointments/:id/advance", screenRoutes.AdvanceStatus)

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	err = e.Start(cfg.ScreenAddr)
	if err != nil {
		e.Logger.Fatal(err)
	}
}

func newPersister(cfg *config.Config) (cache.Persister, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendFile:
		return cache.NewFileCache(cfg.CacheDir, cfg.CacheKey)
	case config.CacheBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, fmt.Errorf("redis ping %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisCache(client, cfg.CacheKey), nil
	default:
		return nil, fmt.Errorf("unknown CACHE_BACKEND %q", cfg.CacheBackend)
	}
}
