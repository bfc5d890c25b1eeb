package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salespulse/models"
	"salespulse/order"
)

type stubLoader struct{}

func (stubLoader) Contacts(ctx context.Context) ([]models.Option, error) {
	return []models.Option{models.IntOption(7, "GLOBE TEXTILES")}, nil
}
func (stubLoader) Brands(ctx context.Context, query string) ([]models.Option, error) {
	return []models.Option{models.IntOption(3, "ACME KNITS")}, nil
}
func (stubLoader) Styles(ctx context.Context, brand string) ([]models.Option, error) {
	return []models.Option{{Label: "S1", Value: "S1"}}, nil
}
func (stubLoader) Sizes(ctx context.Context, brand, style string) ([]models.SizeCatalogEntry, error) {
	return []models.SizeCatalogEntry{{SizeID: 1, Size: "S"}, {SizeID: 2, Size: "M"}}, nil
}

type stubOrders struct{}

func (stubOrders) CreateOrder(ctx context.Context, payload models.OrderPayload) (string, error) {
	return "Order created", nil
}
func (stubOrders) UpdateOrder(ctx context.Context, id int, payload models.OrderPayload) (string, error) {
	return "Order updated", nil
}
func (stubOrders) Order(ctx context.Context, id int) (models.OrderMaster, []models.OrderItem, error) {
	return models.OrderMaster{}, nil, nil
}

type stubErrors struct{}

func (stubErrors) Handle(err error) {}

func testModel(t *testing.T) formModel {
	t.Helper()
	ctx := context.Background()
	notes := &captureNotifier{}
	ctrl := order.NewFormController(stubLoader{}, stubOrders{}, notes, stubErrors{}, 42)
	require.NoError(t, ctrl.LoadContacts(ctx))

	opts, err := ctrl.SearchBrands(ctx, "ACM")
	require.NoError(t, err)
	ctrl.SelectBrand(opts[0])
	ctrl.RefreshStyles(ctx)
	ctrl.SelectStyle(ctrl.StyleOptions()[0])
	ctrl.RefreshSizes(ctx)

	return newFormModel(ctx, nil, ctrl, nil, notes)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCaptureNotifier_Drain(t *testing.T) {
	n := &captureNotifier{}
	n.Warn("careful")
	n.Success("done")

	lines := n.drain()
	require.Len(t, lines, 2)
	assert.True(t, lines[0].warn)
	assert.Equal(t, "careful", lines[0].text)
	assert.False(t, lines[1].warn)

	assert.Empty(t, n.drain(), "drain empties the buffer")
}

func TestEditor_DigitEntryStagesQuantity(t *testing.T) {
	m := testModel(t)
	m, _ = m.handleItemsKey(key("a"))
	require.Equal(t, focusEditor, m.focus)

	m, _ = m.handleEditorKey(key("1"))
	m, _ = m.handleEditorKey(key("2"))
	assert.Equal(t, 12, m.editor.Entries()[0].Qty)

	m, _ = m.handleEditorKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, 1, m.editor.Entries()[0].Qty)
}

func TestEditor_EnterConfirmsEscDiscards(t *testing.T) {
	m := testModel(t)
	m, _ = m.handleItemsKey(key("a"))
	m, _ = m.handleEditorKey(key("5"))
	m, _ = m.handleEditorKey(tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, focusItems, m.focus)
	require.Len(t, m.ctrl.Items(), 1)
	assert.Equal(t, 5, m.ctrl.Items()[0].Qty)

	// reopen and discard
	m, _ = m.handleItemsKey(key("a"))
	m, _ = m.handleEditorKey(key("9"))
	m, _ = m.handleEditorKey(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Len(t, m.ctrl.Items(), 1)
	assert.Equal(t, 5, m.ctrl.Items()[0].Qty, "esc discards staged quantities")
}

func TestContactSelection(t *testing.T) {
	m := testModel(t)
	m, _ = m.handleItemsKey(key("c"))
	require.Equal(t, focusContact, m.focus)

	m, _ = m.handleContactKey(tea.KeyMsg{Type: tea.KeyEnter})
	contact, ok := m.ctrl.Contact()
	require.True(t, ok)
	assert.Equal(t, "GLOBE TEXTILES", contact.Label)
	assert.Equal(t, focusItems, m.focus)
}

func TestStaleBrandResultsIgnored(t *testing.T) {
	m := testModel(t)
	m.brandSeq = 5

	updated, _ := m.Update(brandResultsMsg{seq: 4, opts: []models.Option{{Label: "STALE"}}})
	fm := updated.(formModel)
	assert.Empty(t, fm.brandOptions, "results from a superseded query are dropped")

	updated, _ = m.Update(brandResultsMsg{seq: 5, opts: []models.Option{{Label: "FRESH"}}})
	fm = updated.(formModel)
	require.Len(t, fm.brandOptions, 1)
	assert.Equal(t, "FRESH", fm.brandOptions[0].Label)
}

func TestView_ShowsTitleAndHelp(t *testing.T) {
	m := testModel(t)
	out := m.View()
	assert.Contains(t, out, "New Order")
	assert.Contains(t, out, "submit")
}
