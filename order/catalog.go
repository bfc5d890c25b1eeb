package order

import "salespulse/models"

// ReconcileCatalog recomputes the working size catalog as a pure
// function of the most recent size fetch and the committed line items.
// Every fetched size appears exactly once, in fetch order, with its
// quantity mirroring the committed line item for that size_id (0 when
// none exists). The store stays the source of truth; the catalog is a
// derived view.
func ReconcileCatalog(fetched []models.SizeCatalogEntry, items []models.OrderItem) []models.SizeCatalogEntry {
	committed := make(map[int]int, len(items))
	for _, item := range items {
		committed[item.SizeID] = item.Qty
	}
	out := make([]models.SizeCatalogEntry, len(fetched))
	for i, entry := range fetched {
		entry.Qty = committed[entry.SizeID]
		out[i] = entry
	}
	return out
}
