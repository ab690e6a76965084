package order

import "github.com/rxmart/vendormart/internal/models"

// Classify partitions four normalized query results into the five buckets
// shown by the orders screen. It is pure and deterministic; bucket order
// follows backend response order. A query that failed upstream arrives here
// as an empty slice and simply yields empty buckets, never an error.
func Classify(placed, accepted, outForDelivery, delivered []models.Order) models.OrderBuckets {
	// cancelled orders are dropped from the out-for-delivery result before
	// any further use
	uncancelled := make([]models.Order, 0, len(outForDelivery))
	for _, o := range outForDelivery {
		if o.DeliveryStat != models.DeliveryStatCancelled {
			uncancelled = append(uncancelled, o)
		}
	}

	onDelivery := make([]models.Order, 0, len(uncancelled))
	for _, o := range uncancelled {
		if o.DeliveryType == models.DeliverySelf || o.DeliveryType == models.DeliveryPartner {
			onDelivery = append(onDelivery, o)
		}
	}

	return models.OrderBuckets{
		Incoming:          copyOrders(placed),
		OnDeliverySelf:    mergeByType(accepted, uncancelled, models.DeliverySelf),
		OnDeliveryPartner: mergeByType(accepted, uncancelled, models.DeliveryPartner),
		OutForDelivery:    onDelivery,
		Completed:         copyOrders(delivered),
	}
}

// mergeByType unions the accepted and out-for-delivery results restricted to
// one delivery type, deduplicating by order id. When both queries return the
// same order the out-for-delivery record wins: it carries the more advanced
// status. Position follows first appearance.
func mergeByType(accepted, outForDelivery []models.Order, dt models.DeliveryType) []models.Order {
	merged := make([]models.Order, 0, len(accepted)+len(outForDelivery))
	index := make(map[string]int)

	for _, o := range accepted {
		if o.DeliveryType != dt {
			continue
		}
		index[o.ID] = len(merged)
		merged = append(merged, o)
	}

	for _, o := range outForDelivery {
		if o.DeliveryType != dt {
			continue
		}
		if i, ok := index[o.ID]; ok {
			merged[i] = o
			continue
		}
		index[o.ID] = len(merged)
		merged = append(merged, o)
	}

	return merged
}

func copyOrders(orders []models.Order) []models.Order {
	out := make([]models.Order, len(orders))
	copy(out, orders)
	return out
}
