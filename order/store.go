package order

import "salespulse/models"

// State is the line-item collection of one order form session.
// Insertion order is preserved; it is the display order of the lines.
type State struct {
	Items []models.OrderItem
}

// Action is a state transition request for the line-item store.
type Action interface {
	isAction()
}

// AddItem appends an item unconditionally. Callers are responsible for
// size_id uniqueness; the reducer performs no dedup on add.
type AddItem struct {
	Item models.OrderItem
}

// RemoveItem removes every entry with the given size_id (no-op if absent).
type RemoveItem struct {
	SizeID int
}

// UpdateQty replaces the quantity of the entry with the given size_id.
// It never creates an entry; absent size_id is a no-op.
type UpdateQty struct {
	SizeID int
	Qty    int
}

// Clear empties the collection.
type Clear struct{}

func (AddItem) isAction()    {}
func (RemoveItem) isAction() {}
func (UpdateQty) isAction()  {}
func (Clear) isAction()      {}

// Reduce applies one action to a state and returns the next state.
// It is pure: the input state is never mutated, and the returned state
// always holds a freshly allocated item slice, so callers may rely on
// reference-identity change detection.
func Reduce(s State, a Action) State {
	switch act := a.(type) {
	case AddItem:
		next := make([]models.OrderItem, 0, len(s.Items)+1)
		next = append(next, s.Items...)
		next = append(next, act.Item)
		return State{Items: next}
	case RemoveItem:
		next := make([]models.OrderItem, 0, len(s.Items))
		for _, item := range s.Items {
			if item.SizeID != act.SizeID {
				next = append(next, item)
			}
		}
		return State{Items: next}
	case UpdateQty:
		next := make([]models.OrderItem, len(s.Items))
		for i, item := range s.Items {
			if item.SizeID == act.SizeID {
				item.Qty = act.Qty
			}
			next[i] = item
		}
		return State{Items: next}
	case Clear:
		return State{Items: []models.OrderItem{}}
	default:
		return s
	}
}

// Store owns the current line-item state and funnels every mutation
// through Reduce. One open order form owns exactly one Store.
type Store struct {
	state State
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: State{Items: []models.OrderItem{}}}
}

// Dispatch applies an action to the current state.
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

// Items returns the current line items in insertion order. The returned
// slice is the store's current state value; treat it as read-only.
func (s *Store) Items() []models.OrderItem {
	return s.state.Items
}

// Len returns the number of line items.
func (s *Store) Len() int {
	return len(s.state.Items)
}

// Find returns the line item with the given size_id, if present.
func (s *Store) Find(sizeID int) (models.OrderItem, bool) {
	for _, item := range s.state.Items {
		if item.SizeID == sizeID {
			return item, true
		}
	}
	return models.OrderItem{}, false
}

// TotalQty is the sum of quantities across all line items. It is
// recomputed on every call, never cached.
func (s *Store) TotalQty() int {
	total := 0
	for _, item := range s.state.Items {
		total += item.Qty
	}
	return total
}

// Payload serializes the store for the persistence call.
func (s *Store) Payload() []models.OrderItemQty {
	out := make([]models.OrderItemQty, 0, len(s.state.Items))
	for _, item := range s.state.Items {
		out = append(out, models.OrderItemQty{SizeID: item.SizeID, Qty: item.Qty})
	}
	return out
}
