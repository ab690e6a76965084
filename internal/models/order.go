package models

// raw delivery stat codes as delivered by the admin backend
const (
	DeliveryStatCancelled = "0"
	DeliveryStatSelf      = "1"
	DeliveryStatPartner   = "2"
)

// order-type discriminators accepted by the order_list endpoint
const (
	OrderTypePlaced         = "Placed"
	OrderTypeAccept         = "Accept"
	OrderTypeOutForDelivery = "Out For Delivery"
	OrderTypeDelivered      = "Delivered"
)

// DeliveryType is the canonical projection of the raw delivery stat code.
type DeliveryType string

const (
	DeliverySelf    DeliveryType = "self"
	DeliveryPartner DeliveryType = "partner"
	DeliveryUnknown DeliveryType = "unknown"
)

// DeliveryTypeOf maps a raw stat code to its delivery type.
// Anything outside "1"/"2" resolves to DeliveryUnknown.
func DeliveryTypeOf(stat string) DeliveryType {
	switch stat {
	case DeliveryStatSelf:
		return DeliverySelf
	case DeliveryStatPartner:
		return DeliveryPartner
	default:
		return DeliveryUnknown
	}
}

// LineItem is a single order line
type LineItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Order is the normalized order entity
type Order struct {
	ID              string       `json:"id"`
	OrderNumber     string       `json:"order_number"`
	CustomerName    string       `json:"customer_name"`
	CustomerAddress string       `json:"customer_address"`
	Items           []LineItem   `json:"items"`
	ItemCount       int          `json:"item_count"`
	TotalAmount     float64      `json:"total_amount"`
	DeliveryStat    string       `json:"delivery_stat"`
	DeliveryType    DeliveryType `json:"delivery_type"`
	StatusLabel     string       `json:"status_label"`
	Time            string       `json:"time"`
}

// OrderBuckets is the five-way partition of the vendor's orders
// shown as screen tabs and sub-tabs.
type OrderBuckets struct {
	Incoming          []Order `json:"incoming"`
	OnDeliverySelf    []Order `json:"on_delivery_self"`
	OnDeliveryPartner []Order `json:"on_delivery_partner"`
	OutForDelivery    []Order `json:"out_for_delivery"`
	Completed         []Order `json:"completed"`
}

// Decision is the vendor's verdict on an incoming order.
type Decision string

const (
	DecisionAccept Decision = "Accept"
	DecisionReject Decision = "Reject"
)

// self-delivery flow steps
const (
	StepReady          = 1
	StepOutForDelivery = 2
	StepDelivered      = 3
)
