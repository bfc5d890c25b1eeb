package order

import (
	"context"

	"github.com/google/go-cmp/cmp"

	"salespulse/models"
)

// BrandQueryMinLen is the minimum brand search length; shorter queries
// resolve to an empty option list without touching the network.
const BrandQueryMinLen = 3

// OptionLoader fetches selectable values from the remote API.
type OptionLoader interface {
	Contacts(ctx context.Context) ([]models.Option, error)
	Brands(ctx context.Context, query string) ([]models.Option, error)
	Styles(ctx context.Context, brand string) ([]models.Option, error)
	Sizes(ctx context.Context, brand, style string) ([]models.SizeCatalogEntry, error)
}

// OrderService persists and retrieves orders through the remote API.
type OrderService interface {
	CreateOrder(ctx context.Context, payload models.OrderPayload) (string, error)
	UpdateOrder(ctx context.Context, id int, payload models.OrderPayload) (string, error)
	Order(ctx context.Context, id int) (models.OrderMaster, []models.OrderItem, error)
}

// Notifier shows non-blocking notifications to the operator.
type Notifier interface {
	Warn(msg string)
	Success(msg string)
}

// ErrorHandler is the shared error collaborator: every failed network
// call is handed to it and it renders the appropriate notification
// (and tears the session down on 401). It never returns anything.
type ErrorHandler interface {
	Handle(err error)
}

// Phase is the submission state of the form controller.
type Phase int

const (
	Idle Phase = iota
	Validating
	Submitting
	Succeeded
	Failed
)

// Outcome reports how a Submit call ended.
type Outcome int

const (
	// Blocked means validation rejected the submission locally; no
	// network call was made and all input is preserved.
	Blocked Outcome = iota
	// Saved means the order was persisted and the form was reset.
	Saved
	// Errored means the persistence call failed; input is preserved so
	// the operator can retry.
	Errored
)

// FormController orchestrates one add/edit order session: it owns the
// selection state, the line-item store, the working size catalog and
// the submission state machine.
type FormController struct {
	loaders OptionLoader
	orders  OrderService
	notify  Notifier
	errors  ErrorHandler
	userID  int

	contactOptions []models.Option
	styleOptions   []models.Option

	contact *models.Option
	brand   *models.Option
	style   *models.Option
	remarks string
	editID  int

	store        *Store
	fetchedSizes []models.SizeCatalogEntry
	catalog      []models.SizeCatalogEntry

	// Fetch generations. A response carrying a stale generation is
	// discarded so an out-of-order resolution cannot overwrite newer
	// selection state.
	styleGen uint64
	sizeGen  uint64

	phase Phase
}

// NewFormController builds a controller for one order form session.
func NewFormController(loaders OptionLoader, orders OrderService, notify Notifier, errors ErrorHandler, userID int) *FormController {
	return &FormController{
		loaders: loaders,
		orders:  orders,
		notify:  notify,
		errors:  errors,
		userID:  userID,
		store:   NewStore(),
		phase:   Idle,
	}
}

// LoadContacts fetches the contact options.
func (f *FormController) LoadContacts(ctx context.Context) error {
	opts, err := f.loaders.Contacts(ctx)
	if err != nil {
		f.errors.Handle(err)
		return err
	}
	f.contactOptions = opts
	return nil
}

func (f *FormController) ContactOptions() []models.Option { return f.contactOptions }
func (f *FormController) StyleOptions() []models.Option   { return f.styleOptions }

// SelectContact commits the contact selection.
func (f *FormController) SelectContact(opt models.Option) {
	f.contact = &opt
}

// SelectBrand commits a new brand selection. Changing brand invalidates
// the style selection and clears the size catalog, so stale
// brand/style/size combinations cannot leak into new line items.
// Existing line items stay in the store.
func (f *FormController) SelectBrand(opt models.Option) {
	f.brand = &opt
	f.style = nil
	f.styleOptions = nil
	f.fetchedSizes = nil
	f.catalog = nil
	f.styleGen++
	f.sizeGen++
}

// SelectStyle commits the style selection.
func (f *FormController) SelectStyle(opt models.Option) {
	f.style = &opt
	f.sizeGen++
}

func (f *FormController) Contact() (models.Option, bool) { return deref(f.contact) }
func (f *FormController) Brand() (models.Option, bool)   { return deref(f.brand) }
func (f *FormController) Style() (models.Option, bool)   { return deref(f.style) }

func deref(o *models.Option) (models.Option, bool) {
	if o == nil {
		return models.Option{}, false
	}
	return *o, true
}

// SearchBrands queries brand options for an incremental search. Queries
// shorter than BrandQueryMinLen return empty without a network call.
func (f *FormController) SearchBrands(ctx context.Context, query string) ([]models.Option, error) {
	if len(query) < BrandQueryMinLen {
		return nil, nil
	}
	opts, err := f.loaders.Brands(ctx, query)
	if err != nil {
		f.errors.Handle(err)
		return nil, err
	}
	return opts, nil
}

// BeginStyleFetch tags an outbound style fetch with the current
// generation. It reports false when no brand is selected.
func (f *FormController) BeginStyleFetch() (gen uint64, brand string, ok bool) {
	if f.brand == nil {
		return 0, "", false
	}
	return f.styleGen, f.brand.Label, true
}

// CompleteStyleFetch applies a style fetch result unless its generation
// has been superseded by a newer brand selection.
func (f *FormController) CompleteStyleFetch(gen uint64, opts []models.Option, err error) {
	if gen != f.styleGen {
		return
	}
	if err != nil {
		f.errors.Handle(err)
		return
	}
	f.styleOptions = opts
}

// RefreshStyles runs a style fetch synchronously.
func (f *FormController) RefreshStyles(ctx context.Context) {
	gen, brand, ok := f.BeginStyleFetch()
	if !ok {
		return
	}
	opts, err := f.loaders.Styles(ctx, brand)
	f.CompleteStyleFetch(gen, opts, err)
}

// BeginSizeFetch tags an outbound size fetch with the current
// generation. It reports false unless both brand and style are set.
func (f *FormController) BeginSizeFetch() (gen uint64, brand, style string, ok bool) {
	if f.brand == nil || f.style == nil {
		return 0, "", "", false
	}
	return f.sizeGen, f.brand.Label, f.style.Value, true
}

// CompleteSizeFetch replaces the working size catalog with a fetch
// result, unless the generation is stale. Every entry starts at qty 0
// and is then reconciled against the committed line items. On failure
// the catalog keeps its last successful value.
func (f *FormController) CompleteSizeFetch(gen uint64, entries []models.SizeCatalogEntry, err error) {
	if gen != f.sizeGen {
		return
	}
	if err != nil {
		f.errors.Handle(err)
		return
	}
	fetched := make([]models.SizeCatalogEntry, len(entries))
	for i, e := range entries {
		e.Qty = 0
		fetched[i] = e
	}
	f.fetchedSizes = fetched
	f.reconcile()
}

// RefreshSizes runs a size fetch synchronously.
func (f *FormController) RefreshSizes(ctx context.Context) {
	gen, brand, style, ok := f.BeginSizeFetch()
	if !ok {
		return
	}
	entries, err := f.loaders.Sizes(ctx, brand, style)
	f.CompleteSizeFetch(gen, entries, err)
}

// reconcile recomputes the derived catalog and commits it only when it
// differs by value from the current one, so the rendering side is not
// poked for identical content. Reports whether the catalog changed.
func (f *FormController) reconcile() bool {
	next := ReconcileCatalog(f.fetchedSizes, f.store.Items())
	if cmp.Equal(next, f.catalog) {
		return false
	}
	f.catalog = next
	return true
}

// Catalog returns the reconciled working catalog.
func (f *FormController) Catalog() []models.SizeCatalogEntry { return f.catalog }

// OpenEditor opens the quantity editor over a private copy of the
// catalog. It refuses to open until brand and style are both selected.
func (f *FormController) OpenEditor() (*QuantityEditor, bool) {
	if f.brand == nil || f.style == nil {
		f.notify.Warn("Please select brand and style")
		return nil, false
	}
	return NewQuantityEditor(f.catalog), true
}

// ConfirmEditor applies the editor's staged quantities to the store via
// the minimal diff, then refreshes the derived catalog.
func (f *FormController) ConfirmEditor(ed *QuantityEditor) {
	brand, style := "", ""
	if f.brand != nil {
		brand = f.brand.Label
	}
	if f.style != nil {
		style = f.style.Label
	}
	for _, action := range ed.Diff(f.store.Items(), brand, style) {
		f.store.Dispatch(action)
	}
	f.reconcile()
}

// SetQty updates a committed line item's quantity directly (inline grid
// edit). Absent size_ids are a no-op, as in the reducer.
func (f *FormController) SetQty(sizeID, qty int) {
	f.store.Dispatch(UpdateQty{SizeID: sizeID, Qty: qty})
	f.reconcile()
}

// Remove deletes a committed line item (grid remove icon).
func (f *FormController) Remove(sizeID int) {
	f.store.Dispatch(RemoveItem{SizeID: sizeID})
	f.reconcile()
}

func (f *FormController) SetRemarks(remarks string) { f.remarks = remarks }
func (f *FormController) Remarks() string           { return f.remarks }
func (f *FormController) Items() []models.OrderItem { return f.store.Items() }
func (f *FormController) TotalQty() int             { return f.store.TotalQty() }
func (f *FormController) EditID() int               { return f.editID }
func (f *FormController) Phase() Phase              { return f.phase }

// SubmitEnabled reports whether the submit affordance is active. This
// is a soft guard only; concurrent submissions are not hard-locked.
func (f *FormController) SubmitEnabled() bool { return f.phase != Submitting }

// Submit runs the submission state machine:
// Idle -> Validating -> Submitting -> Succeeded | Failed.
// Validation failures block locally with a warning and no network call.
// On success all local state is reset; on failure everything is kept so
// the operator can retry without re-entering data.
func (f *FormController) Submit(ctx context.Context) Outcome {
	if f.phase == Submitting {
		return Blocked
	}

	f.phase = Validating
	if f.contact == nil {
		f.notify.Warn("Please select contact")
		f.phase = Idle
		return Blocked
	}
	if f.store.Len() == 0 {
		f.notify.Warn("No data")
		f.phase = Idle
		return Blocked
	}

	f.phase = Submitting
	payload := models.OrderPayload{
		ContactID:  f.contact.IntValue(),
		Remarks:    f.remarks,
		UserID:     f.userID,
		OrderItems: f.store.Payload(),
	}

	var msg string
	var err error
	if f.editID > 0 {
		msg, err = f.orders.UpdateOrder(ctx, f.editID, payload)
	} else {
		msg, err = f.orders.CreateOrder(ctx, payload)
	}
	if err != nil {
		f.errors.Handle(err)
		f.phase = Failed
		return Errored
	}

	f.notify.Success(msg)
	f.Reset()
	f.phase = Succeeded
	return Saved
}

// Hydrate loads an existing order for editing: contact and remarks from
// the header, then a wholesale replacement of the line-item store (one
// Clear followed by an AddItem per detail row, in fetch order). The
// editor diff rules are bypassed entirely.
func (f *FormController) Hydrate(ctx context.Context, id int) error {
	master, details, err := f.orders.Order(ctx, id)
	if err != nil {
		f.errors.Handle(err)
		return err
	}

	f.editID = id
	for _, opt := range f.contactOptions {
		if opt.IntValue() == master.ContactID {
			f.SelectContact(opt)
			break
		}
	}
	f.remarks = master.Remarks

	f.store.Dispatch(Clear{})
	for _, detail := range details {
		f.store.Dispatch(AddItem{Item: detail})
	}
	f.reconcile()
	return nil
}

// Reset discards all selection and line-item state of the session.
func (f *FormController) Reset() {
	f.contact = nil
	f.brand = nil
	f.style = nil
	f.remarks = ""
	f.editID = 0
	f.styleOptions = nil
	f.fetchedSizes = nil
	f.catalog = nil
	f.store.Dispatch(Clear{})
	f.styleGen++
	f.sizeGen++
}
