package models

// Vendor is the pharmacy operator profile
type Vendor struct {
	ID           string `json:"id"`
	OwnerName    string `json:"owner_name"`
	BusinessName string `json:"business_name"`
	Email        string `json:"email"`
	Gender       string `json:"gender"`
	DOB          string `json:"dob"`
	Address      string `json:"address"`
	Mobile       string `json:"mobile"`
	AltMobile    string `json:"alt_mobile"`
	OfficeMail   string `json:"office_mail"`
	PhotoURL     string `json:"photo_url"`
}

// DashboardStats is the per-vendor order counters shown on the dashboard
type DashboardStats struct {
	TodayOrders      int `json:"today_orders"`
	PendingOrders    int `json:"pending_orders"`
	ProcessingOrders int `json:"processing_orders"`
	DeliveredOrders  int `json:"delivered_orders"`
	CancelledOrders  int `json:"cancelled_orders"`
}

// TotalOrders sums every counter
func (d DashboardStats) TotalOrders() int {
	return d.TodayOrders + d.PendingOrders + d.ProcessingOrders + d.DeliveredOrders + d.CancelledOrders
}

// Product is a catalog entry
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"image_url"`
	InStock  bool    `json:"in_stock"`
}
