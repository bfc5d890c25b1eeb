// Package ui contains the interactive order form, the console analog
// of the web client's add/edit order page: contact and brand/style
// selection, a size-quantity popover and a committed line-item table.
package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"salespulse/api"
	"salespulse/app"
	"salespulse/models"
	"salespulse/order"
	"salespulse/session"
)

const brandDebounce = 300 * time.Millisecond

// statusLine is one notification shown in the form footer.
type statusLine struct {
	warn bool
	text string
}

// captureNotifier collects notifications raised by the form controller
// and the error handler so they render inside the TUI instead of being
// written to stderr mid-frame. Fetch commands run off the Update
// goroutine, hence the mutex.
type captureNotifier struct {
	mu    sync.Mutex
	lines []statusLine
}

var _ order.Notifier = (*captureNotifier)(nil)
var _ api.Notifier = (*captureNotifier)(nil)

func (n *captureNotifier) Warn(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lines = append(n.lines, statusLine{warn: true, text: msg})
}

func (n *captureNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.lines = append(n.lines, statusLine{text: msg})
}

func (n *captureNotifier) drain() []statusLine {
	n.mu.Lock()
	defer n.mu.Unlock()
	lines := n.lines
	n.lines = nil
	return lines
}

// focus identifies which pane owns keystrokes.
type focus int

const (
	focusItems focus = iota
	focusContact
	focusBrand
	focusStyle
	focusEditor
	focusQty
	focusRemarks
)

type (
	brandTickMsg    struct{ seq uint64 }
	brandResultsMsg struct {
		seq  uint64
		opts []models.Option
		err  error
	}
	stylesMsg struct {
		gen  uint64
		opts []models.Option
		err  error
	}
	sizesMsg struct {
		gen     uint64
		entries []models.SizeCatalogEntry
		err     error
	}
)

type formModel struct {
	ctx  context.Context
	ctrl *order.FormController
	sess *session.Session
	app  *app.App

	notes *captureNotifier

	focus  focus
	status []statusLine

	// contact / brand / style pickers
	brandInput   textinput.Model
	brandSeq     uint64
	brandOptions []models.Option
	cursor       int

	// size popover
	editor    *order.QuantityEditor
	editorRow int
	qtyInput  textinput.Model
	qtyTarget int // size_id being edited inline from the item table

	remarksInput textinput.Model
	items        table.Model

	saved bool
}

func newFormModel(ctx context.Context, console *app.App, ctrl *order.FormController, sess *session.Session, notes *captureNotifier) formModel {
	bi := textinput.New()
	bi.Placeholder = "type at least 3 characters"
	bi.CharLimit = 50
	bi.Width = 40

	qi := textinput.New()
	qi.CharLimit = 6
	qi.Width = 8

	ri := textinput.New()
	ri.Placeholder = "remarks"
	ri.CharLimit = 200
	ri.Width = 60

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Brand", Width: 28},
			{Title: "Style", Width: 12},
			{Title: "Size", Width: 8},
			{Title: "Qty", Width: 8},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	m := formModel{
		ctx:          ctx,
		ctrl:         ctrl,
		sess:         sess,
		app:          console,
		notes:        notes,
		focus:        focusItems,
		brandInput:   bi,
		qtyInput:     qi,
		remarksInput: ri,
		items:        t,
	}
	m.remarksInput.SetValue(ctrl.Remarks())
	m.refreshItems()
	return m
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m *formModel) refreshItems() {
	items := m.ctrl.Items()
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, table.Row{
			item.Brand, item.Style, item.Size, strconv.Itoa(item.Qty),
		})
	}
	m.items.SetRows(rows)
}

func (m *formModel) selectedItem() (models.OrderItem, bool) {
	items := m.ctrl.Items()
	idx := m.items.Cursor()
	if idx < 0 || idx >= len(items) {
		return models.OrderItem{}, false
	}
	return items[idx], true
}

// fetchStyles runs the generation-tagged style fetch off the Update
// goroutine; the result is applied in Update so stale responses can be
// discarded against the live generation.
func (m *formModel) fetchStyles() tea.Cmd {
	gen, brand, ok := m.ctrl.BeginStyleFetch()
	if !ok {
		return nil
	}
	loaders := m.app.Client.Options()
	ctx := m.ctx
	return func() tea.Msg {
		opts, err := loaders.Styles(ctx, brand)
		return stylesMsg{gen: gen, opts: opts, err: err}
	}
}

func (m *formModel) fetchSizes() tea.Cmd {
	gen, brand, style, ok := m.ctrl.BeginSizeFetch()
	if !ok {
		return nil
	}
	loaders := m.app.Client.Options()
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := loaders.Sizes(ctx, brand, style)
		return sizesMsg{gen: gen, entries: entries, err: err}
	}
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case brandTickMsg:
		// Debounce elapsed; only the newest tick queries the API.
		if msg.seq == m.brandSeq {
			query := m.brandInput.Value()
			if len(query) >= order.BrandQueryMinLen {
				ctrl, ctx, seq := m.ctrl, m.ctx, m.brandSeq
				cmds = append(cmds, func() tea.Msg {
					opts, err := ctrl.SearchBrands(ctx, query)
					return brandResultsMsg{seq: seq, opts: opts, err: err}
				})
			} else {
				m.brandOptions = nil
			}
		}

	case brandResultsMsg:
		if msg.seq == m.brandSeq && msg.err == nil {
			m.brandOptions = msg.opts
			m.cursor = 0
		}

	case stylesMsg:
		m.ctrl.CompleteStyleFetch(msg.gen, msg.opts, msg.err)

	case sizesMsg:
		m.ctrl.CompleteSizeFetch(msg.gen, msg.entries, msg.err)
	}

	m.status = append(m.status, m.notes.drain()...)
	if len(m.status) > 3 {
		m.status = m.status[len(m.status)-3:]
	}
	return m, tea.Batch(cmds...)
}

func (m formModel) handleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch m.focus {
	case focusContact:
		return m.handleContactKey(msg)
	case focusBrand:
		return m.handleBrandKey(msg)
	case focusStyle:
		return m.handleStyleKey(msg)
	case focusEditor:
		return m.handleEditorKey(msg)
	case focusQty:
		return m.handleQtyKey(msg)
	case focusRemarks:
		return m.handleRemarksKey(msg)
	default:
		return m.handleItemsKey(msg)
	}
}

func (m formModel) handleItemsKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "c":
		m.focus = focusContact
		m.cursor = 0
		return m, nil
	case "b":
		m.focus = focusBrand
		m.brandInput.Focus()
		return m, nil
	case "t":
		if len(m.ctrl.StyleOptions()) > 0 {
			m.focus = focusStyle
			m.cursor = 0
		}
		return m, nil
	case "a":
		ed, ok := m.ctrl.OpenEditor()
		if ok {
			m.editor = ed
			m.editorRow = 0
			m.focus = focusEditor
		}
		return m, nil
	case "e":
		if item, ok := m.selectedItem(); ok {
			m.qtyTarget = item.SizeID
			m.qtyInput.SetValue(strconv.Itoa(item.Qty))
			m.qtyInput.Focus()
			m.focus = focusQty
		}
		return m, nil
	case "d":
		if item, ok := m.selectedItem(); ok {
			m.ctrl.Remove(item.SizeID)
			m.refreshItems()
		}
		return m, nil
	case "r":
		m.focus = focusRemarks
		m.remarksInput.Focus()
		return m, nil
	case "s":
		if !m.ctrl.SubmitEnabled() {
			return m, nil
		}
		m.ctrl.SetRemarks(m.remarksInput.Value())
		if m.ctrl.Submit(m.ctx) == order.Saved {
			m.saved = true
			m.status = append(m.status, m.notes.drain()...)
			return m, tea.Quit
		}
		m.refreshItems()
		return m, nil
	}
	var cmd tea.Cmd
	m.items, cmd = m.items.Update(msg)
	return m, cmd
}

func (m formModel) handleContactKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	opts := m.ctrl.ContactOptions()
	switch msg.String() {
	case "esc":
		m.focus = focusItems
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(opts) {
			m.ctrl.SelectContact(opts[m.cursor])
		}
		m.focus = focusItems
	}
	return m, nil
}

func (m formModel) handleBrandKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusItems
		m.brandInput.Blur()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.brandOptions)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.cursor < len(m.brandOptions) {
			m.ctrl.SelectBrand(m.brandOptions[m.cursor])
			m.brandInput.Blur()
			m.focus = focusItems
			return m, m.fetchStyles()
		}
		return m, nil
	}

	var cmd tea.Cmd
	before := m.brandInput.Value()
	m.brandInput, cmd = m.brandInput.Update(msg)
	if m.brandInput.Value() != before {
		m.brandSeq++
		seq := m.brandSeq
		tick := tea.Tick(brandDebounce, func(time.Time) tea.Msg {
			return brandTickMsg{seq: seq}
		})
		return m, tea.Batch(cmd, tick)
	}
	return m, cmd
}

func (m formModel) handleStyleKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	opts := m.ctrl.StyleOptions()
	switch msg.String() {
	case "esc":
		m.focus = focusItems
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(opts)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(opts) {
			m.ctrl.SelectStyle(opts[m.cursor])
			m.focus = focusItems
			return m, m.fetchSizes()
		}
		m.focus = focusItems
	}
	return m, nil
}

func (m formModel) handleEditorKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	entries := m.editor.Entries()
	switch msg.String() {
	case "esc":
		// discard staged quantities
		m.editor = nil
		m.focus = focusItems
		return m, nil
	case "up", "k":
		if m.editorRow > 0 {
			m.editorRow--
		}
		return m, nil
	case "down", "j":
		if m.editorRow < len(entries)-1 {
			m.editorRow++
		}
		return m, nil
	case "backspace":
		if m.editorRow < len(entries) {
			qty := entries[m.editorRow].Qty / 10
			m.editor.SetQty(entries[m.editorRow].SizeID, qty)
		}
		return m, nil
	case "enter":
		m.ctrl.ConfirmEditor(m.editor)
		m.editor = nil
		m.focus = focusItems
		m.refreshItems()
		return m, nil
	}
	if len(msg.String()) == 1 && msg.String() >= "0" && msg.String() <= "9" {
		if m.editorRow < len(entries) {
			digit := int(msg.String()[0] - '0')
			qty := entries[m.editorRow].Qty*10 + digit
			m.editor.SetQty(entries[m.editorRow].SizeID, qty)
		}
	}
	return m, nil
}

func (m formModel) handleQtyKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusItems
		m.qtyInput.Blur()
		return m, nil
	case "enter":
		qty, err := strconv.Atoi(strings.TrimSpace(m.qtyInput.Value()))
		if err != nil || qty < 0 {
			m.status = append(m.status, statusLine{warn: true, text: "Please enter valid numbers"})
		} else if qty == 0 {
			m.ctrl.Remove(m.qtyTarget)
		} else {
			m.ctrl.SetQty(m.qtyTarget, qty)
		}
		m.qtyInput.Blur()
		m.focus = focusItems
		m.refreshItems()
		return m, nil
	}
	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	return m, cmd
}

func (m formModel) handleRemarksKey(msg tea.KeyMsg) (formModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.ctrl.SetRemarks(m.remarksInput.Value())
		m.remarksInput.Blur()
		m.focus = focusItems
		return m, nil
	}
	var cmd tea.Cmd
	m.remarksInput, cmd = m.remarksInput.Update(msg)
	return m, cmd
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	warnTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	okTextStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func optionLabel(opt models.Option, ok bool) string {
	if !ok {
		return "-"
	}
	return opt.Label
}

func (m formModel) View() string {
	var sb strings.Builder

	title := "New Order"
	if m.ctrl.EditID() > 0 {
		title = fmt.Sprintf("Edit Order #%d", m.ctrl.EditID())
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	contact, cok := m.ctrl.Contact()
	brand, bok := m.ctrl.Brand()
	style, sok := m.ctrl.Style()
	sb.WriteString(labelStyle.Render("Contact: "))
	sb.WriteString(optionLabel(contact, cok))
	sb.WriteString(labelStyle.Render("   Brand: "))
	sb.WriteString(optionLabel(brand, bok))
	sb.WriteString(labelStyle.Render("   Style: "))
	sb.WriteString(optionLabel(style, sok))
	sb.WriteString("\n\n")

	switch m.focus {
	case focusContact:
		sb.WriteString(m.viewOptionList("Select contact", m.ctrl.ContactOptions()))
	case focusBrand:
		sb.WriteString(labelStyle.Render("Brand search: "))
		sb.WriteString(m.brandInput.View())
		sb.WriteString("\n")
		sb.WriteString(m.viewOptionList("", m.brandOptions))
	case focusStyle:
		sb.WriteString(m.viewOptionList("Select style", m.ctrl.StyleOptions()))
	case focusEditor:
		sb.WriteString(m.viewEditor())
	case focusQty:
		sb.WriteString(labelStyle.Render("Quantity: "))
		sb.WriteString(m.qtyInput.View())
		sb.WriteString("\n")
	case focusRemarks:
		sb.WriteString(labelStyle.Render("Remarks: "))
		sb.WriteString(m.remarksInput.View())
		sb.WriteString("\n")
	default:
		sb.WriteString(m.items.View())
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(fmt.Sprintf("Total quantity: %d   Remarks: %s",
			m.ctrl.TotalQty(), m.remarksInput.Value())))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, line := range m.status {
		if line.warn {
			sb.WriteString(warnTextStyle.Render("! " + line.text))
		} else {
			sb.WriteString(okTextStyle.Render("✓ " + line.text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(helpStyle.Render("c contact · b brand · t style · a add sizes · e edit qty · d delete · r remarks · s submit · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m formModel) viewOptionList(title string, opts []models.Option) string {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(labelStyle.Render(title))
		sb.WriteString("\n")
	}
	if len(opts) == 0 {
		sb.WriteString(helpStyle.Render("  (no options)"))
		sb.WriteString("\n")
		return sb.String()
	}
	for i, opt := range opts {
		line := "  " + opt.Label
		if i == m.cursor {
			line = selectedStyle.Render("> " + opt.Label)
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m formModel) viewEditor() string {
	var sb strings.Builder
	sb.WriteString(labelStyle.Render("Add Sizes (type digits, backspace to erase, enter to apply, esc to cancel)"))
	sb.WriteString("\n")
	for i, entry := range m.editor.Entries() {
		line := fmt.Sprintf("  %-10s %5d", entry.Size, entry.Qty)
		if i == m.editorRow {
			line = selectedStyle.Render(fmt.Sprintf("> %-10s %5d", entry.Size, entry.Qty))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RunOrderForm opens the interactive order form; editID > 0 hydrates an
// existing order first.
func RunOrderForm(ctx context.Context, console *app.App, sess *session.Session, editID int) error {
	notes := &captureNotifier{}
	errors := api.NewErrorHandler(notes, console.Sessions, console.Log)
	ctrl := order.NewFormController(console.Client.Options(), console.Client, notes, errors, sess.UserID)

	if err := ctrl.LoadContacts(ctx); err != nil {
		flushStatus(console, notes)
		return err
	}
	if editID > 0 {
		if err := ctrl.Hydrate(ctx, editID); err != nil {
			flushStatus(console, notes)
			return err
		}
	}

	model := newFormModel(ctx, console, ctrl, sess, notes)
	final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("order form failed: %w", err)
	}

	// Re-emit anything still captured so the outcome survives the
	// alternate screen teardown.
	if fm, ok := final.(formModel); ok {
		for _, line := range fm.status {
			if line.warn {
				console.Notify.Warn(line.text)
			} else {
				console.Notify.Success(line.text)
			}
		}
	}
	flushStatus(console, notes)
	return nil
}

func flushStatus(console *app.App, notes *captureNotifier) {
	for _, line := range notes.drain() {
		if line.warn {
			console.Notify.Warn(line.text)
		} else {
			console.Notify.Success(line.text)
		}
	}
}
