package order

import (
	"context"
	"sync"

	"github.com/rxmart/vendormart/internal/models"
	"go.uber.org/zap"
)

// Backend is the slice of the admin API the engine mutates through
type Backend interface {
	// AcceptOrder submits the accept/reject decision for an incoming order
	AcceptOrder(ctx context.Context, vendorID, orderID, decision, stat string) (string, error)
	// OutForSelfDelivery moves a self-delivery order out for delivery
	OutForSelfDelivery(ctx context.Context, vendorID, orderID string) error
	// SelfOrderDelivered marks a self-delivery order delivered
	SelfOrderDelivered(ctx context.Context, vendorID, orderID string) error
}

// TransitionResult reports a completed transition to the caller
type TransitionResult struct {
	From    State  `json:"from"`
	To      State  `json:"to"`
	Message string `json:"message,omitempty"`
	// Refresh tells the caller to re-fetch the order buckets so the view
	// reflects server state after the mutation
	Refresh bool `json:"refresh"`
}

// Engine executes legal order state transitions and their backend calls.
// A transition that is already in flight for an order blocks further
// mutations of that order: they are rejected, never queued.
type Engine struct {
	backend Backend
	logger  *zap.Logger

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewEngine creates new Engine instance
func NewEngine(backend Backend, logger *zap.Logger) *Engine {
	return &Engine{
		backend:  backend,
		logger:   logger,
		inFlight: make(map[string]struct{}),
	}
}

// begin claims the in-flight slot for an order id
func (e *Engine) begin(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, busy := e.inFlight[orderID]; busy {
		return false
	}
	e.inFlight[orderID] = struct{}{}
	return true
}

func (e *Engine) end(orderID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.inFlight, orderID)
}

// Busy reports whether a transition is in flight for the order
func (e *Engine) Busy(orderID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, busy := e.inFlight[orderID]
	return busy
}

// AcceptOrReject executes the vendor's decision on an incoming order. On
// Accept the selfDelivery flag selects who delivers; on Reject the order is
// terminally cancelled. No local state changes on failure: the caller resets
// any optimistic UI and the order stays incoming.
func (e *Engine) AcceptOrReject(ctx context.Context, vendorID string, o models.Order, decision models.Decision, selfDelivery bool) (*TransitionResult, error) {
	from := ResolveState(o)

	var to State
	var stat string
	switch decision {
	case models.DecisionAccept:
		if selfDelivery {
			to, stat = StateAcceptedSelf, models.DeliveryStatSelf
		} else {
			to, stat = StateAcceptedPartner, models.DeliveryStatPartner
		}
	case models.DecisionReject:
		to, stat = StateRejected, models.DeliveryStatCancelled
	default:
		return nil, models.ErrInvalidTransition
	}

	if !CanTransition(from, to) {
		return nil, models.ErrInvalidTransition
	}

	if !e.begin(o.ID) {
		return nil, models.ErrTransitionInFlight
	}
	defer e.end(o.ID)

	msg, err := e.backend.AcceptOrder(ctx, vendorID, o.ID, string(decision), stat)
	if err != nil {
		e.logger.Error("order decision failed",
			zap.String("order", o.ID),
			zap.String("decision", string(decision)),
			zap.Error(err))
		return nil, err
	}

	e.logger.Info("order decision applied",
		zap.String("order", o.ID),
		zap.String("decision", string(decision)),
		zap.String("stat", stat))

	return &TransitionResult{From: from, To: to, Message: msg, Refresh: true}, nil
}

// StartDelivery moves a self-delivery order from Ready to Out For Delivery
func (e *Engine) StartDelivery(ctx context.Context, vendorID string, o models.Order) (*TransitionResult, error) {
	from := ResolveState(o)
	if !CanTransition(from, StateOutForDeliverySelf) {
		return nil, models.ErrInvalidTransition
	}

	if !e.begin(o.ID) {
		return nil, models.ErrTransitionInFlight
	}
	defer e.end(o.ID)

	if err := e.backend.OutForSelfDelivery(ctx, vendorID, o.ID); err != nil {
		e.logger.Error("start delivery failed", zap.String("order", o.ID), zap.Error(err))
		return nil, err
	}

	e.logger.Info("delivery started", zap.String("order", o.ID))

	return &TransitionResult{From: from, To: StateOutForDeliverySelf, Refresh: true}, nil
}

// MarkDelivered completes a self-delivery order
func (e *Engine) MarkDelivered(ctx context.Context, vendorID string, o models.Order) (*TransitionResult, error) {
	from := ResolveState(o)
	if !CanTransition(from, StateDelivered) {
		return nil, models.ErrInvalidTransition
	}

	if !e.begin(o.ID) {
		return nil, models.ErrTransitionInFlight
	}
	defer e.end(o.ID)

	if err := e.backend.SelfOrderDelivered(ctx, vendorID, o.ID); err != nil {
		e.logger.Error("mark delivered failed", zap.String("order", o.ID), zap.Error(err))
		return nil, err
	}

	e.logger.Info("order delivered", zap.String("order", o.ID))

	return &TransitionResult{From: from, To: StateDelivered, Refresh: true}, nil
}
