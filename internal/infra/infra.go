package infra

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/config"
	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/overlay"
)

// Infra owns the process resources behind the overlay store.
type Infra struct {
	Redis   *redis.Client
	Overlay overlay.Store

	sweeper *cron.Cron
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Infra, error) {
	switch cfg.OverlayStore {
	case config.OverlayRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("infra ready", zap.String("overlay_store", "redis"), zap.String("redis_addr", cfg.RedisAddr))
		return &Infra{Redis: rdb, Overlay: overlay.NewRedisStore(rdb, cfg.OverlayTTL)}, nil

	default:
		mem := overlay.NewMemoryStore(cfg.OverlayTTL)
		sweeper, err := overlay.StartSweeper(cfg.OverlaySweepSpec, mem, logger)
		if err != nil {
			return nil, fmt.Errorf("overlay sweeper: %w", err)
		}
		logger.Info("infra ready", zap.String("overlay_store", "memory"), zap.Duration("overlay_ttl", cfg.OverlayTTL))
		return &Infra{Overlay: mem, sweeper: sweeper}, nil
	}
}

func (i *Infra) Close() {
	if i == nil {
		return
	}
	if i.sweeper != nil {
		<-i.sweeper.Stop().Done()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
}
