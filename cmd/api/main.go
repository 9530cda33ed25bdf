package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/catalog"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/config"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/infra"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/mockapi"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/remote"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/security"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/server"
)

func main() {
	config.LoadDotEnvUp(8)

	logger, _ := zap.NewProduction()
	if os.Getenv("APP_ENV") == "local" {
		logger, _ = zap.NewDevelopment()
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		logger.Fatal("config load failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat := catalog.Default()

	infraDeps, err := infra.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("infra init failed", zap.Error(err))
	}
	defer infraDeps.Close()

	deps := server.Deps{
		Catalog:  cat,
		Backend:  newBackend(cfg, cat, logger),
		Overlay:  infraDeps.Overlay,
		Sessions: security.NewSessionManager(cfg.JWTSigningKey, cfg.JWTAccessTTL),
		Redis:    infraDeps.Redis,
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.NewRouter(cfg, deps, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.HTTPAddr), zap.String("backend", cfg.BackendMode))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	_ = httpServer.Shutdown(shutdownCtx)
}

// newBackend picks the mockapi.Backend implementation named by BACKEND_MODE.
func newBackend(cfg config.Config, cat *catalog.Catalog, logger *zap.Logger) mockapi.Backend {
	if cfg.BackendMode == config.BackendRemote {
		return remote.NewClient(cfg.RemoteBaseURL, cfg.RemoteTimeout, logger)
	}
	return mockapi.NewFake(cat, mockapi.Latency{
		Register:    cfg.MockRegisterDelay,
		SocialLogin: cfg.MockSocialDelay,
		KYC:         cfg.MockKYCDelay,
		Jitter:      cfg.MockJitter,
	}, logger)
}
