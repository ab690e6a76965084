package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVendorBackend struct {
	profile    *backend.VendorRecord
	profileErr error
	dashboard  *backend.DashboardRecord
	products   []backend.ProductRecord

	updated *models.Vendor
}

func (f *fakeVendorBackend) Profile(_ context.Context, _ string) (*backend.VendorRecord, error) {
	return f.profile, f.profileErr
}

func (f *fakeVendorBackend) UpdateProfile(_ context.Context, _ string, vendor *models.Vendor) error {
	f.updated = vendor
	return nil
}

func (f *fakeVendorBackend) DashboardData(_ context.Context, _ string) (*backend.DashboardRecord, error) {
	return f.dashboard, nil
}

func (f *fakeVendorBackend) ProductList(_ context.Context) ([]backend.ProductRecord, error) {
	return f.products, nil
}

func TestVendorProfile(t *testing.T) {
	fb := &fakeVendorBackend{profile: &backend.VendorRecord{
		M1Code:  "7042",
		M1Name:  "Asha",
		M1BName: "Asha Medicals",
		M1IT:    "asha@example.com",
		M1Tel:   "9876543210",
		M1DC0:   "asha.jpg",
	}}
	svc := NewVendorService(fb, "https://cdn.example.com/vendors", "")

	vendor, err := svc.Profile(context.Background(), "7042")
	require.NoError(t, err)

	want := &models.Vendor{
		ID:           "7042",
		OwnerName:    "Asha",
		BusinessName: "Asha Medicals",
		Email:        "asha@example.com",
		Mobile:       "9876543210",
		PhotoURL:     "https://cdn.example.com/vendors/asha.jpg",
	}
	assert.Empty(t, cmp.Diff(want, vendor))
}

func TestVendorProfileMobileFallback(t *testing.T) {
	fb := &fakeVendorBackend{profile: &backend.VendorRecord{M1Code: "7042", M1Tel1: "1112223334"}}
	svc := NewVendorService(fb, "", "")

	vendor, err := svc.Profile(context.Background(), "7042")
	require.NoError(t, err)
	assert.Equal(t, "1112223334", vendor.Mobile)
	assert.Empty(t, vendor.PhotoURL)
}

func TestVendorDashboard(t *testing.T) {
	fb := &fakeVendorBackend{dashboard: &backend.DashboardRecord{
		TotalTodayOrder:      "5",
		TotalPendingOrder:    "2",
		TotalProcessingOrder: "1",
		TotalDeliveredOrder:  "12",
		TotalCancelOrder:     "3",
	}}
	svc := NewVendorService(fb, "", "")

	stats, err := svc.Dashboard(context.Background(), "7042")
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TodayOrders)
	assert.Equal(t, 12, stats.DeliveredOrders)
	assert.Equal(t, 23, stats.TotalOrders())
}

func TestVendorProducts(t *testing.T) {
	fb := &fakeVendorBackend{products: []backend.ProductRecord{
		{ID: "p1", Name: "Paracetamol", Price: "40.00", Image: "para.png", Stock: "12"},
		{ID: "p2", Name: "Bandage", Price: "15.50", Image: "", Stock: "0"},
	}}
	svc := NewVendorService(fb, "", "https://cdn.example.com/products")

	products, err := svc.Products(context.Background())
	require.NoError(t, err)

	want := []models.Product{
		{ID: "p1", Name: "Paracetamol", Price: 40, ImageURL: "https://cdn.example.com/products/para.png", InStock: true},
		{ID: "p2", Name: "Bandage", Price: 15.5, InStock: false},
	}
	assert.Empty(t, cmp.Diff(want, products))
}

func TestVendorUpdateProfilePassesThrough(t *testing.T) {
	fb := &fakeVendorBackend{}
	svc := NewVendorService(fb, "", "")

	vendor := &models.Vendor{ID: "7042", OwnerName: "Asha", Email: "new@example.com"}
	require.NoError(t, svc.UpdateProfile(context.Background(), "7042", vendor))
	assert.Equal(t, vendor, fb.updated)
}
