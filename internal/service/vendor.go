package service

import (
	"context"
	"net/url"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
)

// VendorBackend is the slice of the admin API behind the profile, dashboard
// and catalog screens
type VendorBackend interface {
	Profile(ctx context.Context, vendorID string) (*backend.VendorRecord, error)
	UpdateProfile(ctx context.Context, vendorID string, vendor *models.Vendor) error
	DashboardData(ctx context.Context, vendorID string) (*backend.DashboardRecord, error)
	ProductList(ctx context.Context) ([]backend.ProductRecord, error)
}

// VendorService proxies the profile, dashboard and catalog surfaces
type VendorService struct {
	backend      VendorBackend
	vendorImages string
	productImage string
}

// NewVendorService creates new VendorService instance. The image bases are
// the upload directories of the admin backend.
func NewVendorService(backend VendorBackend, vendorImages, productImages string) *VendorService {
	return &VendorService{
		backend:      backend,
		vendorImages: vendorImages,
		productImage: productImages,
	}
}

// Profile returns the vendor profile
func (vs *VendorService) Profile(ctx context.Context, vendorID string) (*models.Vendor, error) {
	rec, err := vs.backend.Profile(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	vendor := vendorFromRecord(rec, vs.vendorImages)
	return &vendor, nil
}

// UpdateProfile writes the editable profile fields back
func (vs *VendorService) UpdateProfile(ctx context.Context, vendorID string, vendor *models.Vendor) error {
	return vs.backend.UpdateProfile(ctx, vendorID, vendor)
}

// Dashboard returns the vendor's order counters
func (vs *VendorService) Dashboard(ctx context.Context, vendorID string) (*models.DashboardStats, error) {
	rec, err := vs.backend.DashboardData(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &models.DashboardStats{
		TodayOrders:      rec.TotalTodayOrder.Int(),
		PendingOrders:    rec.TotalPendingOrder.Int(),
		ProcessingOrders: rec.TotalProcessingOrder.Int(),
		DeliveredOrders:  rec.TotalDeliveredOrder.Int(),
		CancelledOrders:  rec.TotalCancelOrder.Int(),
	}, nil
}

// Products returns the catalog with resolved image URLs
func (vs *VendorService) Products(ctx context.Context) ([]models.Product, error) {
	records, err := vs.backend.ProductList(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, models.Product{
			ID:       string(rec.ID),
			Name:     rec.Name,
			Price:    rec.Price.Float(),
			ImageURL: joinImageURL(vs.productImage, rec.Image),
			InStock:  rec.Stock.Int() > 0,
		})
	}

	return products, nil
}

// vendorFromRecord maps a raw vendor record to the profile entity
func vendorFromRecord(rec *backend.VendorRecord, imageBase string) models.Vendor {
	mobile := rec.M1Tel
	if mobile == "" {
		mobile = rec.M1Tel1
	}
	return models.Vendor{
		ID:           string(rec.M1Code),
		OwnerName:    rec.M1Name,
		BusinessName: rec.M1BName,
		Email:        rec.M1IT,
		Gender:       rec.M1PM,
		DOB:          rec.M1DT1,
		Address:      rec.M1Add,
		Mobile:       mobile,
		AltMobile:    rec.M1Tel2,
		OfficeMail:   rec.M1IT1,
		PhotoURL:     joinImageURL(imageBase, rec.M1DC0),
	}
}

func joinImageURL(base, name string) string {
	if base == "" || name == "" {
		return ""
	}
	u, err := url.JoinPath(base, name)
	if err != nil {
		return ""
	}
	return u
}
