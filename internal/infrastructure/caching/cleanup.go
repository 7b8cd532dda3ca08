package caching

import (
	"context"
	"time"

	"github.com/pullpane/pullpane-go/internal/infrastructure/observability/logging"
)

// StartCleanupRoutine evicts expired sessions and chunks on the given interval
// until the context is cancelled. Run as a goroutine from startup.
func StartCleanupRoutine(ctx context.Context, manager *Manager, interval time.Duration, logger *logging.ChanneledLogger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Cache().Info("Cache cleanup routine stopped")
			return
		case now := <-ticker.C:
			evicted := manager.EvictExpired(now)
			if evicted > 0 {
				logger.Cache().Info("Evicted expired sessions", "count", evicted, "remaining", manager.SessionCount())
			}
		}
	}
}
