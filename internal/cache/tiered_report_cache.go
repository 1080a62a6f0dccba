package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"expense-tracker/internal/models"
	"expense-tracker/internal/repositories"

	gocache "github.com/patrickmn/go-cache"
)

// TieredReportCache keeps recently served closed-period reports in process memory
// in front of the durable report store. Only reports read back from the store are
// admitted, so the tier never holds anything the store does not.
type TieredReportCache struct {
	store  repositories.ReportCacheInterface
	memory *gocache.Cache
}

func NewTieredReportCache(store repositories.ReportCacheInterface, ttl time.Duration) *TieredReportCache {
	return &TieredReportCache{
		store:  store,
		memory: gocache.New(ttl, 2*ttl),
	}
}

func reportKey(userID int64, year, month int) string {
	return fmt.Sprintf("%d:%d:%02d", userID, year, month)
}

func (c *TieredReportCache) Get(ctx context.Context, userID int64, year, month int) (*models.Report, error) {
	key := reportKey(userID, year, month)
	if cached, found := c.memory.Get(key); found {
		return cached.(*models.Report), nil
	}

	report, err := c.store.Get(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	c.memory.Set(key, report, gocache.DefaultExpiration)
	return report, nil
}

// Put writes through to the durable store. The memory tier is filled on the next read,
// which returns whichever row won a concurrent insert.
func (c *TieredReportCache) Put(ctx context.Context, report *models.Report) error {
	return c.store.Put(ctx, report)
}

// ItemCount returns the number of reports held in memory
func (c *TieredReportCache) ItemCount() int {
	return c.memory.ItemCount()
}

// Flush empties the memory tier without touching the durable store
func (c *TieredReportCache) Flush() {
	c.memory.Flush()
}

// FlushOn empties the memory tier each time a signal arrives on signals, until ctx is
// done. cmd/server feeds it SIGHUP so reports deleted by seed or wipe stop being served.
func (c *TieredReportCache) FlushOn(ctx context.Context, signals <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-signals:
			n := c.memory.ItemCount()
			c.memory.Flush()
			slog.Info("flushed in-memory report tier", "signal", sig.String(), "reports", n)
		}
	}
}
