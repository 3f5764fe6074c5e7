package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"botscope/internal/cache"
	"botscope/internal/catalog"
	"botscope/internal/config"
	"botscope/internal/db"
	"botscope/internal/handlers"
	"botscope/internal/metrics"
	"botscope/internal/middleware"
	"botscope/internal/notifications"
	"botscope/internal/reviews"
	"botscope/internal/validation"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var source catalog.Source = catalog.NewStaticSource(catalog.BuiltIn())
	var mongoClient *mongo.Client
	if cfg.CatalogSource == config.CatalogMongo {
		client, cols, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			logger.Error("mongo connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("mongo connected", slog.String("db", cfg.MongoDB))
		mongoClient = client

		if err := db.EnsureIndexes(ctx, cols); err != nil {
			logger.Error("index creation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		source = catalog.NewRepository(cols.Bots)
	}
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()

	catalogService := catalog.NewService(source)
	entries, version, err := catalogService.Entries(ctx)
	if err != nil {
		logger.Error("catalog load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	metrics.CatalogEntries.Set(float64(len(entries)))
	logger.Info("catalog loaded", slog.String("source", cfg.CatalogSource), slog.Int("entries", len(entries)), slog.String("version", version))

	var cacheStore cache.Cache = cache.NewNoop()
	if cfg.RedisURL != "" || cfg.RedisAddr != "" {
		var redisCache *cache.RedisCache
		var err error
		if cfg.RedisURL != "" {
			redisCache, err = cache.NewRedisFromURL(cfg.RedisURL)
		} else {
			redisCache = cache.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		}
		if err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if err := redisCache.Ping(ctx); err != nil {
			logger.Error("redis connection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.RedisURL != "" {
			logger.Info("redis connected (url)")
		} else {
			logger.Info("redis connected", slog.String("addr", cfg.RedisAddr))
		}
		defer redisCache.Close()
		cacheStore = redisCache
	}

	var submitter reviews.Submitter = reviews.NoopSubmitter{}
	mailer := notifications.NewBrevoClient(cfg.BrevoAPIKey, cfg.BrevoSenderEmail, cfg.BrevoSenderName, cfg.ReviewsInbox, cfg.BrevoSandbox)
	if mailer == nil {
		logger.Info("brevo mailer disabled, reviews are discarded")
	} else {
		logger.Info("brevo mailer enabled", slog.String("sender", cfg.BrevoSenderEmail), slog.Bool("sandbox", cfg.BrevoSandbox))
		submitter = mailer
	}

	val := validation.New()
	server := &handlers.Server{
		Catalog:  catalogService,
		Val:      val,
		Log:      logger,
		Cache:    cacheStore,
		CacheTTL: cfg.CacheTTL(),
	}

	reviewsService := reviews.NewService(submitter, cfg.Timezone)
	reviewsHandler := reviews.NewHandler(reviewsService, val, logger)

	reviewsLimiter := middleware.NewRateLimiter(cfg.RateLimitReviews, cfg.RateLimitWindow())
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go func() {
		ticker := time.NewTicker(cfg.RateLimitWindow())
		defer ticker.Stop()
		for {
			select {
			case <-sweepCtx.Done():
				return
			case <-ticker.C:
				if n := reviewsLimiter.Sweep(); n > 0 {
					logger.Debug("rate limiter swept", slog.Int("visitors", n))
				}
			}
		}
	}()

	router := server.Routes(handlers.RouterOptions{
		Origins:       cfg.FrontendOrigins,
		ReviewLimiter: reviewsLimiter,
		SubmitReview:  reviewsHandler.Submit,
		Registry:      prometheus.NewRegistry(),
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server started", slog.String("addr", cfg.ServerAddr), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
	}
}
