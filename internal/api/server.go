package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"printshop/internal/app/config"
	"printshop/internal/app/dsn"
	"printshop/internal/app/handler"
	"printshop/internal/app/metrics"
	"printshop/internal/app/middleware"
	"printshop/internal/app/redis"
	"printshop/internal/app/repository"
	"printshop/internal/app/storage"
	"printshop/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// StartServer wires the application from the environment and serves until
// SIGINT or SIGTERM.
func StartServer() {
	log.Info("Starting server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
		log.SetFormatter(&log.JSONFormatter{})
	}

	app, err := build(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := app.RunApp(ctx); err != nil {
		log.Fatal(err)
	}
}

func build(ctx context.Context, cfg *config.Config) (*pkg.Application, error) {
	if err := handler.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}
	closers := []func() error{repo.Close}

	files, err := newFileStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("file store: %w", err)
	}

	blacklist, closeBlacklist, err := newBlacklist(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("token blacklist: %w", err)
	}
	if closeBlacklist != nil {
		closers = append(closers, closeBlacklist)
	}

	m := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)

	auth := handler.NewAuthHandler(repo, blacklist, cfg)
	h := handler.NewAPIHandler(repo, files, m, cfg, auth)
	router := NewRouter(cfg, h, middleware.NewAuthMiddleware(blacklist, cfg), m, limiter)

	return pkg.NewApp(cfg, router, limiter, closers...), nil
}

// NewRouter builds the gin engine with the request middleware chain, CORS and
// the metrics endpoint in front of the API routes.
func NewRouter(cfg *config.Config, h *handler.APIHandler, am *middleware.AuthMiddleware, m *metrics.Metrics, limiter *middleware.RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), m.Middleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORS.AllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(m.Handler()))
	h.RegisterAPIRoutes(r, am, limiter.Middleware())
	return r
}

func newFileStore(ctx context.Context, cfg *config.Config) (storage.FileStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		store, err := storage.NewMinIOStore(ctx, cfg.MinIO.Endpoint, cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, cfg.MinIO.Bucket, cfg.MinIO.UseSSL)
		if err != nil {
			return nil, err
		}
		log.Infof("storing uploads in MinIO bucket %s", cfg.MinIO.Bucket)
		return store, nil
	case "local", "":
		store, err := storage.NewLocalStore(afero.NewOsFs(), cfg.Storage.UploadDir)
		if err != nil {
			return nil, err
		}
		log.Infof("storing uploads in %s", cfg.Storage.UploadDir)
		return store, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
}

func newBlacklist(ctx context.Context, cfg *config.Config) (middleware.Blacklist, func() error, error) {
	if cfg.RedisEnabled() {
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return client, client.Close, nil
	}
	if cfg.Env != "dev" {
		return nil, nil, fmt.Errorf("REDIS_HOST must be set outside dev")
	}
	log.Warn("REDIS_HOST not set, revoked tokens are kept in memory")
	return middleware.NewMemoryBlacklist(), nil, nil
}
