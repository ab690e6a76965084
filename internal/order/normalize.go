// Package order holds the order lifecycle core: normalization of raw admin
// backend records, the five-bucket classifier, the state machine, and the
// transition engine that drives backend mutations.
package order

import (
	"strings"

	"github.com/rxmart/vendormart/internal/backend"
	"github.com/rxmart/vendormart/internal/models"
)

// Normalize maps a raw backend order record to the canonical order entity.
// It never fails: absent fields resolve to their defaults (empty text, zero
// amount, unknown delivery type).
func Normalize(raw backend.OrderRecord) models.Order {
	id := string(raw.F4NO)

	parts := make([]string, 0, 5)
	for _, p := range []string{raw.F4Add1, raw.F4Add2, raw.F4Add3, raw.F4Add4, raw.F4Add7} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	name := raw.M1Name
	if name == "" {
		name = "Customer"
	}

	items := make([]models.LineItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, models.LineItem{
			Name:      it.Name,
			Quantity:  it.Quantity.Int(),
			UnitPrice: it.Price.Float(),
		})
	}

	stat := string(raw.F4Stat)

	return models.Order{
		ID:              id,
		OrderNumber:     "#" + id,
		CustomerName:    name,
		CustomerAddress: strings.Join(parts, ", "),
		Items:           items,
		ItemCount:       len(items),
		TotalAmount:     raw.F4GTot.Float(),
		DeliveryStat:    stat,
		DeliveryType:    models.DeliveryTypeOf(stat),
		StatusLabel:     raw.F4BT,
		Time:            raw.F4Date,
	}
}

// NormalizeAll maps a raw result set preserving response order
func NormalizeAll(raw []backend.OrderRecord) []models.Order {
	orders := make([]models.Order, 0, len(raw))
	for _, r := range raw {
		orders = append(orders, Normalize(r))
	}
	return orders
}
