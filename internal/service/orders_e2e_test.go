package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/gesture"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/rxmart/vendormart/internal/order"
	"github.com/rxmart/vendormart/internal/refresh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// end-to-end through the real gesture resolver, engine and wire client
// against a stubbed admin backend
func TestDecideSwipeAcceptEndToEnd(t *testing.T) {
	var gotPath string
	gotForm := map[string]string{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotPath = r.URL.Path
		for k := range r.PostForm {
			gotForm[k] = r.PostForm.Get(k)
		}
		w.Write([]byte(`{"response":"success","message":"order updated","data":null}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, time.Second)
	engine := order.NewEngine(client, zap.NewNop())
	snaps := &fakeSnapshotter{snap: incomingSnapshot(svcOrder("101", "", "Placed"))}
	svc := NewOrderService(snaps, engine, zap.NewNop())

	res, err := svc.Decide(context.Background(), "V1", "101", DecideParams{
		SelfDelivery: true,
		Drag:         &DragSample{DX: 200, Width: 300},
	})
	require.NoError(t, err)

	assert.Equal(t, "/accept_order", gotPath)
	assert.Equal(t, "V1", gotForm["M1_CODE"])
	assert.Equal(t, "101", gotForm["F4_NO"])
	assert.Equal(t, "Accept", gotForm["F4_BT"])
	assert.Equal(t, "1", gotForm["F4_STAT"])

	assert.Equal(t, gesture.OutcomeAccept, res.Outcome)
	require.NotNil(t, res.Transition)
	assert.Equal(t, order.StateAcceptedSelf, res.Transition.To)
	assert.True(t, res.Transition.Refresh, "a completed transition must trigger a refresh")
	assert.Equal(t, "order updated", res.Transition.Message)
}

func TestStartDeliveryRejectionEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"response":"error","message":"already delivered","data":null}`))
	}))
	defer srv.Close()

	client := backend.NewClient(srv.URL, time.Second)
	engine := order.NewEngine(client, zap.NewNop())
	ready := svcOrder("55", "1", "Self Delivery")
	snaps := &fakeSnapshotter{snap: &refresh.Snapshot{Buckets: models.OrderBuckets{
		OnDeliverySelf: []models.Order{ready},
	}}}
	svc := NewOrderService(snaps, engine, zap.NewNop())

	_, err := svc.StartDelivery(context.Background(), "V1", "55")
	require.Error(t, err)

	var rejection *models.BackendRejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, "already delivered", rejection.Message)

	// local state untouched and the gate released for a retry
	step, err := svc.Steps(context.Background(), "V1", "55")
	require.NoError(t, err)
	assert.Equal(t, models.StepReady, step)
	assert.False(t, engine.Busy("55"))
}
