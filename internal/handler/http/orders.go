package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rxmart/vendormart/internal/middleware"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/rxmart/vendormart/internal/order"
	"github.com/rxmart/vendormart/internal/refresh"
	"github.com/rxmart/vendormart/internal/service"
)

// OrderService drives the order screens
type OrderService interface {
	Snapshot(ctx context.Context, vendorID string) *refresh.Snapshot
	Decide(ctx context.Context, vendorID, orderID string, params service.DecideParams) (*service.DecisionResult, error)
	StartDelivery(ctx context.Context, vendorID, orderID string) (*order.TransitionResult, error)
	MarkDelivered(ctx context.Context, vendorID, orderID string) (*order.TransitionResult, error)
	Steps(ctx context.Context, vendorID, orderID string) (int, error)
}

// OrderHandler represents HTTP handler for order-related requests
type OrderHandler struct {
	svc OrderService
}

// NewOrderHandler creates new OrderHandler instance
func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListOrders returns the classified five-bucket snapshot
// 200 — snapshot returned, possibly partial (failed_queries lists gaps);
// 401 — vendor not authenticated;
// 502 — every order query failed.
func (oh *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		snap := oh.svc.Snapshot(r.Context(), sess.VendorID)
		if len(snap.FailedQueries) == 4 {
			writeError(w, models.ErrBackendUnavailable)
			return
		}

		writeJSON(w, http.StatusOK, snap)
	}
}

type decideRequest struct {
	Decision     string              `json:"decision,omitempty"`
	SelfDelivery bool                `json:"self_delivery"`
	Drag         *service.DragSample `json:"drag,omitempty"`
}

// DecideOrder applies the vendor's accept/reject verdict to an incoming
// order. The verdict arrives either as an explicit decision or as a released
// swipe the gateway resolves.
// 200 — outcome returned (a cancelled swipe is a successful no-op);
// 400 — malformed body or no decision and no drag;
// 404 — order is not in the incoming bucket;
// 409 — transition already in flight, or backend rejected the decision;
// 502 — admin backend unreachable.
func (oh *OrderHandler) DecideOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req decideRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if req.Decision == "" && req.Drag == nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		res, err := oh.svc.Decide(r.Context(), sess.VendorID, chi.URLParam(r, "id"), service.DecideParams{
			Decision:     models.Decision(req.Decision),
			SelfDelivery: req.SelfDelivery,
			Drag:         req.Drag,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// StartDelivery moves a self-delivery order out for delivery
// 200 — transition applied;
// 404 — order is not in the self-delivery bucket;
// 409 — transition already in flight, or backend rejected it;
// 422 — order is not at the Ready step;
// 502 — admin backend unreachable.
func (oh *OrderHandler) StartDelivery() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := oh.svc.StartDelivery(r.Context(), sess.VendorID, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// MarkDelivered completes a self-delivery order
// 200 — transition applied;
// 404 — order is not in the self-delivery bucket;
// 409 — transition already in flight, or backend rejected it;
// 422 — order is not out for delivery;
// 502 — admin backend unreachable.
func (oh *OrderHandler) MarkDelivered() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		res, err := oh.svc.MarkDelivered(r.Context(), sess.VendorID, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

type stepsResponse struct {
	CurrentStep int `json:"current_step"`
}

// OrderSteps resolves the self-delivery progress step so the delivery screen
// can resume mid-flow.
// 200 — step returned;
// 404 — order is not in the self-delivery bucket.
func (oh *OrderHandler) OrderSteps() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		step, err := oh.svc.Steps(r.Context(), sess.VendorID, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stepsResponse{CurrentStep: step})
	}
}
