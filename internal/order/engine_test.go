package order

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rxmart/vendormart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeBackend struct {
	mu sync.Mutex

	acceptCalls  int
	startCalls   int
	deliverCalls int

	lastVendor   string
	lastOrder    string
	lastDecision string
	lastStat     string

	acceptErr  error
	startErr   error
	deliverErr error

	// when set, AcceptOrder blocks until released is closed
	started  chan struct{}
	released chan struct{}
}

func (f *fakeBackend) AcceptOrder(_ context.Context, vendorID, orderID, decision, stat string) (string, error) {
	f.mu.Lock()
	f.acceptCalls++
	f.lastVendor = vendorID
	f.lastOrder = orderID
	f.lastDecision = decision
	f.lastStat = stat
	f.mu.Unlock()

	if f.started != nil {
		close(f.started)
		<-f.released
	}
	if f.acceptErr != nil {
		return "", f.acceptErr
	}
	return "order updated", nil
}

func (f *fakeBackend) OutForSelfDelivery(_ context.Context, vendorID, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.startCalls++
	f.lastVendor = vendorID
	f.lastOrder = orderID
	return f.startErr
}

func (f *fakeBackend) SelfOrderDelivered(_ context.Context, vendorID, orderID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deliverCalls++
	f.lastVendor = vendorID
	f.lastOrder = orderID
	return f.deliverErr
}

func TestEngineAcceptOrReject(t *testing.T) {
	tests := []struct {
		name         string
		order        models.Order
		decision     models.Decision
		selfDelivery bool
		wantStat     string
		wantTo       State
		wantErr      error
	}{
		{
			name:         "accept_self_delivery",
			order:        testOrder("101", "", ""),
			decision:     models.DecisionAccept,
			selfDelivery: true,
			wantStat:     "1",
			wantTo:       StateAcceptedSelf,
		},
		{
			name:     "accept_partner_delivery",
			order:    testOrder("101", "", ""),
			decision: models.DecisionAccept,
			wantStat: "2",
			wantTo:   StateAcceptedPartner,
		},
		{
			name:     "reject",
			order:    testOrder("101", "", ""),
			decision: models.DecisionReject,
			wantStat: "0",
			wantTo:   StateRejected,
		},
		{
			name:     "accepted_order_cannot_be_decided_again",
			order:    testOrder("101", "1", "Accept"),
			decision: models.DecisionAccept,
			wantErr:  models.ErrInvalidTransition,
		},
		{
			name:     "delivered_order_is_terminal",
			order:    testOrder("101", "1", "Delivered"),
			decision: models.DecisionReject,
			wantErr:  models.ErrInvalidTransition,
		},
		{
			name:     "unknown_decision",
			order:    testOrder("101", "", ""),
			decision: models.Decision("Maybe"),
			wantErr:  models.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb := &fakeBackend{}
			engine := NewEngine(fb, zap.NewNop())

			res, err := engine.AcceptOrReject(context.Background(), "V1", tt.order, tt.decision, tt.selfDelivery)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, fb.acceptCalls, "no backend call expected on invalid transition")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, fb.acceptCalls)
			assert.Equal(t, "V1", fb.lastVendor)
			assert.Equal(t, "101", fb.lastOrder)
			assert.Equal(t, string(tt.decision), fb.lastDecision)
			assert.Equal(t, tt.wantStat, fb.lastStat)
			assert.Equal(t, tt.wantTo, res.To)
			assert.True(t, res.Refresh)
			assert.Equal(t, "order updated", res.Message)
		})
	}
}

func TestEngineRejectsConcurrentTransition(t *testing.T) {
	fb := &fakeBackend{
		started:  make(chan struct{}),
		released: make(chan struct{}),
	}
	engine := NewEngine(fb, zap.NewNop())
	incoming := testOrder("101", "", "")

	done := make(chan error, 1)
	go func() {
		_, err := engine.AcceptOrReject(context.Background(), "V1", incoming, models.DecisionAccept, true)
		done <- err
	}()

	<-fb.started

	// second invocation while the first is unresolved: rejected, never queued
	_, err := engine.AcceptOrReject(context.Background(), "V1", incoming, models.DecisionAccept, true)
	require.ErrorIs(t, err, models.ErrTransitionInFlight)

	close(fb.released)
	require.NoError(t, <-done)

	assert.Equal(t, 1, fb.acceptCalls, "the gated call must not reach the backend")
	assert.False(t, engine.Busy("101"), "gate must release after completion")
}

func TestEngineStartDeliveryFailureKeepsState(t *testing.T) {
	fb := &fakeBackend{startErr: models.NewBackendRejectionError("already delivered")}
	engine := NewEngine(fb, zap.NewNop())
	ready := testOrder("55", "1", "Self Delivery")

	_, err := engine.StartDelivery(context.Background(), "V1", ready)
	require.Error(t, err)
	assert.Equal(t, "already delivered", err.Error())

	// nothing advanced: the order still resolves to the Ready step and the
	// gate is released for a retry
	assert.Equal(t, models.StepReady, StepForLabel(ready.StatusLabel))
	assert.False(t, engine.Busy("55"))
}

func TestEngineStartDeliveryRequiresReadyState(t *testing.T) {
	fb := &fakeBackend{}
	engine := NewEngine(fb, zap.NewNop())

	_, err := engine.StartDelivery(context.Background(), "V1", testOrder("55", "1", "Out For Delivery"))
	require.ErrorIs(t, err, models.ErrInvalidTransition)
	assert.Zero(t, fb.startCalls)
}

func TestEngineMarkDelivered(t *testing.T) {
	fb := &fakeBackend{}
	engine := NewEngine(fb, zap.NewNop())

	res, err := engine.MarkDelivered(context.Background(), "V1", testOrder("55", "1", "Out For Delivery"))
	require.NoError(t, err)
	assert.Equal(t, 1, fb.deliverCalls)
	assert.Equal(t, StateDelivered, res.To)
	assert.True(t, res.Refresh)

	// not yet out for delivery
	_, err = engine.MarkDelivered(context.Background(), "V1", testOrder("56", "1", "Accept"))
	require.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestEngineNetworkErrorSurfaces(t *testing.T) {
	netErr := errors.New("connection refused")
	fb := &fakeBackend{acceptErr: netErr}
	engine := NewEngine(fb, zap.NewNop())

	_, err := engine.AcceptOrReject(context.Background(), "V1", testOrder("101", "", ""), models.DecisionAccept, false)
	require.ErrorIs(t, err, netErr)
	assert.False(t, engine.Busy("101"))
}
