package order

import (
	"strings"

	"github.com/rxmart/vendormart/internal/models"
)

// State is the canonical lifecycle state of an order as observed by the
// vendor client. It replaces the scattered stat-code and label checks with a
// single value computed once per fetch.
type State string

const (
	StateIncoming              State = "incoming"
	StateAcceptedSelf          State = "accepted_self"
	StateAcceptedPartner       State = "accepted_partner"
	StateOutForDeliverySelf    State = "out_for_delivery_self"
	StateOutForDeliveryPartner State = "out_for_delivery_partner"
	StateDelivered             State = "delivered"
	StateRejected              State = "rejected"
)

// allowedTransitions is the vendor-driven order state flow. Partner-delivery
// states have no outgoing edges: a third-party delivery app drives those, the
// vendor client only tracks them.
var allowedTransitions = map[State][]State{
	StateIncoming:           {StateAcceptedSelf, StateAcceptedPartner, StateRejected},
	StateAcceptedSelf:       {StateOutForDeliverySelf},
	StateOutForDeliverySelf: {StateDelivered},
}

// CanTransition reports whether the vendor may move an order from one state
// to another.
func CanTransition(from, to State) bool {
	next, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// ResolveState computes the lifecycle state from the delivery stat code and
// the phase label. The stat code is authoritative; the label only
// disambiguates the self-delivery phase because the backend exposes no
// canonical state field.
func ResolveState(o models.Order) State {
	if o.DeliveryStat == models.DeliveryStatCancelled {
		return StateRejected
	}
	if strings.Contains(o.StatusLabel, models.OrderTypeDelivered) {
		return StateDelivered
	}

	outForDelivery := strings.Contains(o.StatusLabel, models.OrderTypeOutForDelivery)
	switch o.DeliveryType {
	case models.DeliverySelf:
		if outForDelivery {
			return StateOutForDeliverySelf
		}
		return StateAcceptedSelf
	case models.DeliveryPartner:
		if outForDelivery {
			return StateOutForDeliveryPartner
		}
		return StateAcceptedPartner
	default:
		return StateIncoming
	}
}

// StepForLabel derives the self-delivery progress step shown when the
// delivery screen is (re)opened: Delivered → 3, Out For Delivery → 2,
// anything else → 1 (Ready). Containment, not exact match, mirrors the
// backend's free-text labels.
func StepForLabel(statusLabel string) int {
	switch {
	case strings.Contains(statusLabel, models.OrderTypeDelivered):
		return models.StepDelivered
	case strings.Contains(statusLabel, models.OrderTypeOutForDelivery):
		return models.StepOutForDelivery
	default:
		return models.StepReady
	}
}
