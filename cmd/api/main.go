package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"product-admin/internal/auth"
	"product-admin/internal/config"
	"product-admin/internal/database"
	"product-admin/internal/logger"
	"product-admin/internal/media"
	"product-admin/internal/metrics"
	"product-admin/internal/middleware"
	"product-admin/internal/repository"
	"product-admin/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	if cfg.EnvLoaded {
		logger.Infof(".env file loaded")
	}
	if cfg.Admin.Token == "" || cfg.Admin.Password == "" {
		logger.Warnf("ADMIN_TOKEN or ADMIN_PASSWORD is empty; admin routes will reject every request")
	}

	ctx := context.Background()
	client, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Timeout)
	if err != nil {
		logger.Fatalf("failed to connect to MongoDB: %v", err)
	}
	logger.Infof("connected to MongoDB database %s", cfg.Mongo.Database)

	repo := repository.NewProductRepository(client.Database(cfg.Mongo.Database).Collection(cfg.Mongo.Collection), cfg.Mongo.Timeout)
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warnf("index setup: %v", err)
	}

	var uploader media.Uploader
	uploader, err = media.NewUploader(ctx, cfg.Media)
	if err != nil {
		logger.Warnf("media uploads disabled: %v", err)
		uploader = media.Unavailable{Err: err}
	}

	var loginLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		loginLimiter = newLoginLimiter(ctx, cfg.RateLimit)
	}

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.MaxMultipartMemory = cfg.Upload.MaxBytes
	router.Use(gin.Recovery(), metrics.Middleware(), middleware.CORS())

	routes.RegisterRoutes(router, routes.Dependencies{
		Store:         repo,
		Authorizer:    auth.NewStaticToken(cfg.Admin.Token),
		AdminPassword: cfg.Admin.Password,
		AdminToken:    cfg.Admin.Token,
		Uploader:      uploader,
		UploadDir:     cfg.Upload.TmpDir,
		LoginLimiter:  loginLimiter,
		Ready: func(ctx context.Context) error {
			return database.Ping(ctx, client, 2*time.Second)
		},
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Errorf("mongo disconnect: %v", err)
	}
}

// newLoginLimiter prefers a Redis-backed limiter so replicas share counts,
// falling back to per-process buckets when Redis is absent or unreachable.
func newLoginLimiter(ctx context.Context, cfg config.RateLimitConfig) gin.HandlerFunc {
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		err := rdb.Ping(ctx).Err()
		if err == nil {
			logger.Infof("login rate limiter using Redis at %s", cfg.RedisAddr)
			return middleware.RedisRateLimit(rdb, cfg.RPS, cfg.Burst, time.Minute)
		}
		logger.Warnf("redis %s unreachable, using in-memory login limiter: %v", cfg.RedisAddr, err)
		_ = rdb.Close()
	}
	return middleware.RateLimit(cfg.RPS, cfg.Burst)
}
