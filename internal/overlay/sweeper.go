package overlay

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSweeper schedules m.Sweep on the given cron spec (e.g. "@every 1m").
// The returned cron must be stopped on shutdown.
func StartSweeper(spec string, m *MemoryStore, logger *zap.Logger) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if n := m.Sweep(time.Now()); n > 0 {
			logger.Debug("overlay sessions swept", zap.Int("count", n))
		}
	})
	if err != nil {
		return nil, err
	}
	c.Start()
	return c, nil
}
