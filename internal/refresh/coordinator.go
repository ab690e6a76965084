// Package refresh re-fetches and re-classifies the vendor's orders on
// demand: pull-to-refresh, screen focus, and after every lifecycle
// transition.
package refresh

import (
	"context"
	"sync"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/rxmart/vendormart/internal/order"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// OrderLister is the slice of the admin API the coordinator reads from
type OrderLister interface {
	OrderList(ctx context.Context, vendorID, orderType string) ([]backend.OrderRecord, error)
}

// TodayStats is the header counters of the orders screen
type TodayStats struct {
	CompletedToday int `json:"completed_today"`
	RejectedToday  int `json:"rejected_today"`
}

// Snapshot is one classified view of the vendor's orders. FailedQueries
// lists the order types whose fetch failed; their buckets are empty rather
// than aborting the whole snapshot.
type Snapshot struct {
	Buckets       models.OrderBuckets `json:"buckets"`
	Stats         TodayStats          `json:"stats"`
	FailedQueries []string            `json:"failed_queries,omitempty"`
}

// Coordinator fetches the four order-type queries concurrently and combines
// them after all settle.
type Coordinator struct {
	lister OrderLister
	logger *zap.Logger
}

// NewCoordinator creates new Coordinator instance
func NewCoordinator(lister OrderLister, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		lister: lister,
		logger: logger,
	}
}

// Snapshot fetches, normalizes and classifies the vendor's orders. Each
// query failure is recovered to an empty result set so one failing order
// type never hides the others.
func (c *Coordinator) Snapshot(ctx context.Context, vendorID string) *Snapshot {
	queries := []string{
		models.OrderTypePlaced,
		models.OrderTypeAccept,
		models.OrderTypeOutForDelivery,
		models.OrderTypeDelivered,
	}

	results := make([][]models.Order, len(queries))

	var mu sync.Mutex
	var failed []string

	g, gctx := errgroup.WithContext(ctx)
	for i, orderType := range queries {
		i, orderType := i, orderType
		g.Go(func() error {
			records, err := c.lister.OrderList(gctx, vendorID, orderType)
			if err != nil {
				c.logger.Error("order query failed",
					zap.String("order_type", orderType),
					zap.Error(err))
				mu.Lock()
				failed = append(failed, orderType)
				mu.Unlock()
				return nil
			}
			results[i] = order.NormalizeAll(records)
			return nil
		})
	}
	_ = g.Wait()

	buckets := order.Classify(results[0], results[1], results[2], results[3])

	// cancelled orders surface only in the out-for-delivery query and are
	// filtered out of every bucket, so they are counted here
	rejected := 0
	for _, o := range results[2] {
		if o.DeliveryStat == models.DeliveryStatCancelled {
			rejected++
		}
	}

	return &Snapshot{
		Buckets: buckets,
		Stats: TodayStats{
			CompletedToday: len(buckets.Completed),
			RejectedToday:  rejected,
		},
		FailedQueries: failed,
	}
}
