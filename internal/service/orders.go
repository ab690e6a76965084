package service

import (
	"context"

	"github.com/rxmart/vendormart/internal/gesture"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/rxmart/vendormart/internal/order"
	"github.com/rxmart/vendormart/internal/refresh"
	"go.uber.org/zap"
)

// Snapshotter produces classified order snapshots
type Snapshotter interface {
	Snapshot(ctx context.Context, vendorID string) *refresh.Snapshot
}

// TransitionEngine executes order lifecycle transitions
type TransitionEngine interface {
	AcceptOrReject(ctx context.Context, vendorID string, o models.Order, decision models.Decision, selfDelivery bool) (*order.TransitionResult, error)
	StartDelivery(ctx context.Context, vendorID string, o models.Order) (*order.TransitionResult, error)
	MarkDelivered(ctx context.Context, vendorID string, o models.Order) (*order.TransitionResult, error)
	Busy(orderID string) bool
}

// DragSample is a released swipe as reported by the UI
type DragSample struct {
	DX    float64 `json:"dx"`
	Width float64 `json:"width"`
}

// DecideParams describes the vendor's verdict on an incoming order. Either
// Decision is set explicitly (button path) or Drag carries the released
// swipe that resolves it.
type DecideParams struct {
	Decision     models.Decision
	SelfDelivery bool
	Drag         *DragSample
}

// DecisionResult is the outcome of a decision request. A cancelled swipe
// yields Outcome "cancel" and no transition.
type DecisionResult struct {
	Outcome    gesture.Outcome         `json:"outcome"`
	Transition *order.TransitionResult `json:"transition,omitempty"`
}

// OrderService drives the order screens: classified snapshots and lifecycle
// transitions. Before every transition the order is re-fetched so state
// checks run against latest server state.
type OrderService struct {
	snapshots Snapshotter
	engine    TransitionEngine
	logger    *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(snapshots Snapshotter, engine TransitionEngine, logger *zap.Logger) *OrderService {
	return &OrderService{
		snapshots: snapshots,
		engine:    engine,
		logger:    logger,
	}
}

// Snapshot returns the five-bucket order view
func (os *OrderService) Snapshot(ctx context.Context, vendorID string) *refresh.Snapshot {
	return os.snapshots.Snapshot(ctx, vendorID)
}

// Decide resolves and executes the vendor's verdict on an incoming order
func (os *OrderService) Decide(ctx context.Context, vendorID, orderID string, params DecideParams) (*DecisionResult, error) {
	decision := params.Decision

	if params.Drag != nil {
		outcome, err := gesture.Decide(params.Drag.DX, params.Drag.Width)
		if err != nil {
			return nil, err
		}
		switch outcome {
		case gesture.OutcomeAccept:
			decision = models.DecisionAccept
		case gesture.OutcomeReject:
			decision = models.DecisionReject
		default:
			// released inside the deadband: snap back, no backend call
			return &DecisionResult{Outcome: gesture.OutcomeCancel}, nil
		}
	}

	// fast-path the gate before spending four queries on a re-fetch
	if os.engine.Busy(orderID) {
		return nil, models.ErrTransitionInFlight
	}

	o, err := os.findOrder(ctx, vendorID, orderID, bucketIncoming)
	if err != nil {
		return nil, err
	}

	res, err := os.engine.AcceptOrReject(ctx, vendorID, *o, decision, params.SelfDelivery)
	if err != nil {
		return nil, err
	}

	outcome := gesture.OutcomeAccept
	if decision == models.DecisionReject {
		outcome = gesture.OutcomeReject
	}

	return &DecisionResult{Outcome: outcome, Transition: res}, nil
}

// StartDelivery moves a self-delivery order out for delivery
func (os *OrderService) StartDelivery(ctx context.Context, vendorID, orderID string) (*order.TransitionResult, error) {
	if os.engine.Busy(orderID) {
		return nil, models.ErrTransitionInFlight
	}
	o, err := os.findOrder(ctx, vendorID, orderID, bucketOnDeliverySelf)
	if err != nil {
		return nil, err
	}
	return os.engine.StartDelivery(ctx, vendorID, *o)
}

// MarkDelivered completes a self-delivery order
func (os *OrderService) MarkDelivered(ctx context.Context, vendorID, orderID string) (*order.TransitionResult, error) {
	if os.engine.Busy(orderID) {
		return nil, models.ErrTransitionInFlight
	}
	o, err := os.findOrder(ctx, vendorID, orderID, bucketOnDeliverySelf)
	if err != nil {
		return nil, err
	}
	return os.engine.MarkDelivered(ctx, vendorID, *o)
}

// Steps resolves the self-delivery progress step for screen resume. The
// order may be at any point of the self-delivery flow: ready, out for
// delivery or delivered.
func (os *OrderService) Steps(ctx context.Context, vendorID, orderID string) (int, error) {
	o, err := os.findOrder(ctx, vendorID, orderID, bucketSelfDeliveryFlow)
	if err != nil {
		return 0, err
	}
	return order.StepForLabel(o.StatusLabel), nil
}

type bucketName int

const (
	bucketIncoming bucketName = iota
	bucketOnDeliverySelf
	bucketSelfDeliveryFlow
)

// findOrder re-fetches the snapshot and locates the order in the bucket(s)
// the operation is valid for.
func (os *OrderService) findOrder(ctx context.Context, vendorID, orderID string, bucket bucketName) (*models.Order, error) {
	snap := os.snapshots.Snapshot(ctx, vendorID)

	var orders []models.Order
	switch bucket {
	case bucketIncoming:
		orders = snap.Buckets.Incoming
	case bucketOnDeliverySelf:
		orders = snap.Buckets.OnDeliverySelf
	case bucketSelfDeliveryFlow:
		orders = append(orders, snap.Buckets.OnDeliverySelf...)
		for _, o := range snap.Buckets.OutForDelivery {
			if o.DeliveryType == models.DeliverySelf {
				orders = append(orders, o)
			}
		}
		for _, o := range snap.Buckets.Completed {
			if o.DeliveryType == models.DeliverySelf {
				orders = append(orders, o)
			}
		}
	}

	for i := range orders {
		if orders[i].ID == orderID {
			return &orders[i], nil
		}
	}

	return nil, models.ErrInvalidOrderID
}
