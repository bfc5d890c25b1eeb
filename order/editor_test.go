package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/models"
)

func catalog(entries ...models.SizeCatalogEntry) []models.SizeCatalogEntry {
	return entries
}

func entry(sizeID int, size string, qty int) models.SizeCatalogEntry {
	return models.SizeCatalogEntry{SizeID: sizeID, Size: size, Qty: qty}
}

func TestEditor_StagedEditsInvisibleUntilDiff(t *testing.T) {
	seed := catalog(entry(1, "S", 0), entry(2, "M", 0))
	ed := NewQuantityEditor(seed)
	ed.SetQty(1, 10)

	// seed catalog untouched
	assert.Equal(t, 0, seed[0].Qty)
	assert.Equal(t, 10, ed.Entries()[0].Qty)
}

func TestEditor_SetQtyUnknownIDIgnored(t *testing.T) {
	ed := NewQuantityEditor(catalog(entry(1, "S", 0)))
	ed.SetQty(99, 10)
	assert.Len(t, ed.Entries(), 1)
	assert.Equal(t, 0, ed.Entries()[0].Qty)
}

func TestEditor_SetQtyBySize(t *testing.T) {
	ed := NewQuantityEditor(catalog(entry(1, "S", 0), entry(2, "M", 0)))
	ed.SetQtyBySize("M", 7)
	assert.Equal(t, 0, ed.Entries()[0].Qty)
	assert.Equal(t, 7, ed.Entries()[1].Qty)
}

func TestDiff_NewQuantityAddsItem(t *testing.T) {
	ed := NewQuantityEditor(catalog(entry(1, "S", 0)))
	ed.SetQty(1, 5)

	actions := ed.Diff(nil, "ACME KNITS", "S1")
	require.Len(t, actions, 1)
	add, ok := actions[0].(AddItem)
	require.True(t, ok)
	assert.Equal(t, models.OrderItem{SizeID: 1, Brand: "ACME KNITS", Style: "S1", Size: "S", Qty: 5}, add.Item)
}

func TestDiff_AbsentZeroFallsThrough(t *testing.T) {
	ed := NewQuantityEditor(catalog(entry(1, "S", 0), entry(2, "M", 0)))
	assert.Empty(t, ed.Diff(nil, "ACME KNITS", "S1"))
}

func TestDiff_SameQtyIsNoOp(t *testing.T) {
	committed := []models.OrderItem{{SizeID: 1, Size: "S", Qty: 5}}
	ed := NewQuantityEditor(catalog(entry(1, "S", 5)))
	assert.Empty(t, ed.Diff(committed, "ACME KNITS", "S1"))
}

func TestDiff_ZeroOnExistingRemovesNeverUpdates(t *testing.T) {
	committed := []models.OrderItem{{SizeID: 1, Size: "S", Qty: 5}}
	ed := NewQuantityEditor(catalog(entry(1, "S", 5)))
	ed.SetQty(1, 0)

	actions := ed.Diff(committed, "ACME KNITS", "S1")
	require.Len(t, actions, 1)
	_, isRemove := actions[0].(RemoveItem)
	assert.True(t, isRemove, "staging 0 on an existing item must remove it, not update to 0")
}

func TestDiff_DifferentQtyUpdates(t *testing.T) {
	committed := []models.OrderItem{{SizeID: 1, Size: "S", Qty: 5}}
	ed := NewQuantityEditor(catalog(entry(1, "S", 5)))
	ed.SetQty(1, 8)

	actions := ed.Diff(committed, "ACME KNITS", "S1")
	require.Len(t, actions, 1)
	upd, ok := actions[0].(UpdateQty)
	require.True(t, ok)
	assert.Equal(t, UpdateQty{SizeID: 1, Qty: 8}, upd)
}

func TestDiff_MixedBranchesWalkCatalogOrder(t *testing.T) {
	committed := []models.OrderItem{
		{SizeID: 1, Size: "S", Qty: 5},
		{SizeID: 2, Size: "M", Qty: 3},
		{SizeID: 3, Size: "L", Qty: 2},
	}
	ed := NewQuantityEditor(catalog(
		entry(1, "S", 5), // unchanged
		entry(2, "M", 0), // remove
		entry(3, "L", 9), // update
		entry(4, "XL", 0),
	))
	ed.SetQtyBySize("XL", 4) // add

	actions := ed.Diff(committed, "ACME KNITS", "S1")
	require.Len(t, actions, 3)
	assert.Equal(t, RemoveItem{SizeID: 2}, actions[0])
	assert.Equal(t, UpdateQty{SizeID: 3, Qty: 9}, actions[1])
	add, ok := actions[2].(AddItem)
	require.True(t, ok)
	assert.Equal(t, 4, add.Item.SizeID)
}

func TestDiff_ConfirmTwiceIsIdempotent(t *testing.T) {
	st := NewStore()
	ed := NewQuantityEditor(catalog(entry(1, "S", 0), entry(2, "M", 0)))
	ed.SetQty(1, 5)

	for _, a := range ed.Diff(st.Items(), "ACME KNITS", "S1") {
		st.Dispatch(a)
	}
	first := st.Items()

	// Re-open over the reconciled catalog and confirm without edits.
	reopened := NewQuantityEditor(ReconcileCatalog(catalog(entry(1, "S", 0), entry(2, "M", 0)), st.Items()))
	again := reopened.Diff(st.Items(), "ACME KNITS", "S1")
	assert.Empty(t, again)
	assert.Equal(t, first, st.Items())
}

func TestDiff_StageThenZeroAcrossSessions(t *testing.T) {
	// Stage {S:1 -> 5, M:2 -> 0}: one item lands. Reopen, stage S -> 0:
	// the collection empties.
	st := NewStore()
	fetched := catalog(entry(1, "S", 0), entry(2, "M", 0))

	ed := NewQuantityEditor(ReconcileCatalog(fetched, st.Items()))
	ed.SetQty(1, 5)
	ed.SetQty(2, 0)
	for _, a := range ed.Diff(st.Items(), "ACME KNITS", "S1") {
		st.Dispatch(a)
	}
	require.Len(t, st.Items(), 1)
	assert.Equal(t, 1, st.Items()[0].SizeID)

	reopened := NewQuantityEditor(ReconcileCatalog(fetched, st.Items()))
	assert.Equal(t, 5, reopened.Entries()[0].Qty, "reopened editor must show the committed qty")
	reopened.SetQty(1, 0)
	for _, a := range reopened.Diff(st.Items(), "ACME KNITS", "S1") {
		st.Dispatch(a)
	}
	assert.Empty(t, st.Items())
}
