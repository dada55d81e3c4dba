package inventory_expiry_metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"medassist/pkg/logger"
)

var expiredBatches = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "inventory_expired_batches",
		Help: "Number of inventory batches past their expiry date",
	},
)

type Repository interface {
	CountExpired(ctx context.Context, now time.Time) (int64, error)
}

// InventoryExpiryMetrics периодически пересчитывает просроченные партии
// на складе и публикует число в gauge-метрику.
type InventoryExpiryMetrics struct {
	log        logger.Logger
	repository Repository
	interval   time.Duration
}

func New(log logger.Logger, repository Repository, interval time.Duration) *InventoryExpiryMetrics {
	return &InventoryExpiryMetrics{
		log:        log,
		repository: repository,
		interval:   interval,
	}
}

func (t *InventoryExpiryMetrics) TTL() time.Duration {
	return t.interval
}

func (t *InventoryExpiryMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	count, err := t.repository.CountExpired(ctxWithTimeout, time.Now().UTC())
	if err != nil {
		return err
	}

	expiredBatches.Set(float64(count))

	if count > 0 {
		t.log.With(
			logger.NewField("expired_batches", count),
		).Info("inventory expiry scan")
	}

	return nil
}

func (t *InventoryExpiryMetrics) Info() string {
	return "inventory expiry metrics"
}
