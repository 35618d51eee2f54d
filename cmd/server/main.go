package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"accounts-api/internal/config"
	apphttp "accounts-api/internal/http"
	"accounts-api/internal/password"
	"accounts-api/internal/repository/postgres"
	"accounts-api/internal/service"
	"accounts-api/internal/token"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		logger.Fatalf("auth jwt secret is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Open(ctx, cfg)
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		logger.Fatalf("run migrations: %v", err)
	}

	userRepo := postgres.NewUserRepository(pool, cfg.Database.AcquireTimeout)
	hasher := password.NewHasher(cfg.Auth.BcryptCost)
	userService := service.NewUserService(userRepo, hasher)

	tokens, err := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.JWTAlgorithm, cfg.TokenTTL())
	if err != nil {
		logger.Fatalf("setup token service: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	handler := apphttp.NewHandler(
		userService,
		tokens,
		cfg.TokenTTL(),
		cfg.Auth.CookieSecure,
		cfg.CORS.AllowOrigins,
		logger,
	)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}

	logger.Info("bye")
}
