package order

import "salespulse/models"

// QuantityEditor is the transient quantity-editing surface behind the
// "Add Sizes" popover. It operates on a private copy of the reconciled
// catalog; staged edits are invisible to the store until the diff from
// Diff is dispatched.
type QuantityEditor struct {
	entries []models.SizeCatalogEntry
}

// NewQuantityEditor seeds an editor from the reconciled catalog.
func NewQuantityEditor(catalog []models.SizeCatalogEntry) *QuantityEditor {
	entries := make([]models.SizeCatalogEntry, len(catalog))
	copy(entries, catalog)
	return &QuantityEditor{entries: entries}
}

// Entries returns the staged entries in catalog order.
func (e *QuantityEditor) Entries() []models.SizeCatalogEntry {
	out := make([]models.SizeCatalogEntry, len(e.entries))
	copy(out, e.entries)
	return out
}

// SetQty stages a quantity for the given size_id. Unknown ids are
// ignored; the editor never grows beyond its seed catalog.
func (e *QuantityEditor) SetQty(sizeID, qty int) {
	for i := range e.entries {
		if e.entries[i].SizeID == sizeID {
			e.entries[i].Qty = qty
		}
	}
}

// SetQtyBySize stages a quantity by size label, mirroring how rows are
// addressed on the editing surface.
func (e *QuantityEditor) SetQtyBySize(size string, qty int) {
	for i := range e.entries {
		if e.entries[i].Size == size {
			e.entries[i].Qty = qty
		}
	}
}

// Diff reconciles the staged entries against the committed line items
// and returns the minimal action sequence, walking entries in catalog
// order. For each entry exactly one of four branches fires:
//
//  1. a committed item exists with the same qty        -> nothing
//  2. a committed item exists and the staged qty is 0  -> RemoveItem
//  3. a committed item exists with a different qty     -> UpdateQty
//  4. no committed item and the staged qty is > 0      -> AddItem
//
// Absent item with staged qty 0 falls through all branches. New items
// copy brand and style from the current selection labels.
func (e *QuantityEditor) Diff(committed []models.OrderItem, brand, style string) []Action {
	var actions []Action
	for _, entry := range e.entries {
		existing, ok := findItem(committed, entry.SizeID)
		switch {
		case ok && existing.Qty == entry.Qty:
			// unchanged, avoid a spurious update
		case ok && entry.Qty == 0:
			actions = append(actions, RemoveItem{SizeID: entry.SizeID})
		case ok:
			actions = append(actions, UpdateQty{SizeID: entry.SizeID, Qty: entry.Qty})
		case entry.Qty > 0:
			actions = append(actions, AddItem{Item: models.OrderItem{
				SizeID: entry.SizeID,
				Brand:  brand,
				Style:  style,
				Size:   entry.Size,
				Qty:    entry.Qty,
			}})
		}
	}
	return actions
}

func findItem(items []models.OrderItem, sizeID int) (models.OrderItem, bool) {
	for _, item := range items {
		if item.SizeID == sizeID {
			return item, true
		}
	}
	return models.OrderItem{}, false
}
