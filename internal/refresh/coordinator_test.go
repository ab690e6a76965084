package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeLister struct {
	mu      sync.Mutex
	records map[string][]backend.OrderRecord
	errs    map[string]error
	vendors []string
}

func (f *fakeLister) OrderList(_ context.Context, vendorID, orderType string) ([]backend.OrderRecord, error) {
	f.mu.Lock()
	f.vendors = append(f.vendors, vendorID)
	f.mu.Unlock()
	if err := f.errs[orderType]; err != nil {
		return nil, err
	}
	return f.records[orderType], nil
}

func record(id, stat, label string) backend.OrderRecord {
	return backend.OrderRecord{
		F4NO:   backend.FlexString(id),
		F4Stat: backend.FlexString(stat),
		F4BT:   label,
	}
}

func TestSnapshotClassifiesAllQueries(t *testing.T) {
	lister := &fakeLister{records: map[string][]backend.OrderRecord{
		models.OrderTypePlaced: {record("1", "", "Placed")},
		models.OrderTypeAccept: {
			record("2", "1", "Accept"),
			record("3", "2", "Accept"),
		},
		models.OrderTypeOutForDelivery: {
			record("4", "1", "Out For Delivery"),
			record("5", "0", "Cancelled"),
		},
		models.OrderTypeDelivered: {record("6", "1", "Delivered")},
	}}

	c := NewCoordinator(lister, zap.NewNop())
	snap := c.Snapshot(context.Background(), "V1")

	require.NotNil(t, snap)
	assert.Empty(t, snap.FailedQueries)

	assert.Equal(t, []string{"1"}, ids(snap.Buckets.Incoming))
	assert.Equal(t, []string{"2"}, ids(snap.Buckets.OnDeliverySelf))
	assert.Equal(t, []string{"3"}, ids(snap.Buckets.OnDeliveryPartner))
	assert.Equal(t, []string{"4"}, ids(snap.Buckets.OutForDelivery))
	assert.Equal(t, []string{"6"}, ids(snap.Buckets.Completed))

	assert.Equal(t, 1, snap.Stats.CompletedToday)
	assert.Equal(t, 1, snap.Stats.RejectedToday)
}

func TestSnapshotRecoversFailedQuery(t *testing.T) {
	lister := &fakeLister{
		records: map[string][]backend.OrderRecord{
			models.OrderTypePlaced:    {record("1", "", "Placed")},
			models.OrderTypeAccept:    {record("2", "1", "Accept")},
			models.OrderTypeDelivered: {record("6", "1", "Delivered")},
		},
		errs: map[string]error{
			models.OrderTypeOutForDelivery: errors.New("connection refused"),
		},
	}

	c := NewCoordinator(lister, zap.NewNop())
	snap := c.Snapshot(context.Background(), "V1")

	// the failing order type yields an empty bucket, the rest are intact
	assert.Equal(t, []string{models.OrderTypeOutForDelivery}, snap.FailedQueries)
	assert.Empty(t, snap.Buckets.OutForDelivery)
	assert.Equal(t, []string{"1"}, ids(snap.Buckets.Incoming))
	assert.Equal(t, []string{"2"}, ids(snap.Buckets.OnDeliverySelf))
	assert.Equal(t, []string{"6"}, ids(snap.Buckets.Completed))
}

func TestSnapshotAllQueriesFail(t *testing.T) {
	boom := errors.New("connection refused")
	lister := &fakeLister{errs: map[string]error{
		models.OrderTypePlaced:         boom,
		models.OrderTypeAccept:         boom,
		models.OrderTypeOutForDelivery: boom,
		models.OrderTypeDelivered:      boom,
	}}

	c := NewCoordinator(lister, zap.NewNop())
	snap := c.Snapshot(context.Background(), "V1")

	assert.Len(t, snap.FailedQueries, 4)
	assert.Empty(t, snap.Buckets.Incoming)
	assert.Empty(t, snap.Buckets.Completed)
	assert.Zero(t, snap.Stats.CompletedToday)
}

func TestSnapshotQueriesPerVendor(t *testing.T) {
	lister := &fakeLister{}
	c := NewCoordinator(lister, zap.NewNop())
	c.Snapshot(context.Background(), "V42")

	require.Len(t, lister.vendors, 4)
	for _, v := range lister.vendors {
		assert.Equal(t, "V42", v)
	}
}

func ids(orders []models.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
