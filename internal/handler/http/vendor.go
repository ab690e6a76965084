package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rxmart/vendormart/internal/middleware"
	"github.com/rxmart/vendormart/internal/models"
)

// VendorService drives the profile, dashboard and catalog screens
type VendorService interface {
	Profile(ctx context.Context, vendorID string) (*models.Vendor, error)
	UpdateProfile(ctx context.Context, vendorID string, vendor *models.Vendor) error
	Dashboard(ctx context.Context, vendorID string) (*models.DashboardStats, error)
	Products(ctx context.Context) ([]models.Product, error)
}

// VendorHandler represents HTTP handler for vendor-related requests
type VendorHandler struct {
	svc VendorService
}

// NewVendorHandler creates new VendorHandler instance
func NewVendorHandler(svc VendorService) *VendorHandler {
	return &VendorHandler{svc: svc}
}

// GetProfile returns the vendor profile
// 200 — profile returned;
// 401 — vendor not authenticated;
// 502 — admin backend unreachable.
func (vh *VendorHandler) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		vendor, err := vh.svc.Profile(r.Context(), sess.VendorID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, vendor)
	}
}

// UpdateProfile writes the editable profile fields back
// 200 — profile updated;
// 400 — malformed body;
// 401 — vendor not authenticated;
// 409 — backend rejected the update;
// 502 — admin backend unreachable.
func (vh *VendorHandler) UpdateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var vendor models.Vendor
		if err := json.NewDecoder(r.Body).Decode(&vendor); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := vh.svc.UpdateProfile(r.Context(), sess.VendorID, &vendor); err != nil {
			writeError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}

// GetDashboard returns the vendor's order counters
// 200 — counters returned;
// 401 — vendor not authenticated;
// 502 — admin backend unreachable.
func (vh *VendorHandler) GetDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.SessionFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		stats, err := vh.svc.Dashboard(r.Context(), sess.VendorID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}

// ListProducts returns the product catalog
// 200 — catalog returned;
// 401 — vendor not authenticated;
// 502 — admin backend unreachable.
func (vh *VendorHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := vh.svc.Products(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, products)
	}
}
