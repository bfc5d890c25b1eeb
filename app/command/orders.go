package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"salespulse/app/ui"
	"salespulse/models"
	"salespulse/order"
	"salespulse/render"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage sales orders",
	}
	cmd.AddCommand(
		newOrdersListCmd(),
		newOrdersShowCmd(),
		newOrdersCreateCmd(),
		newOrdersEditCmd(),
		newOrdersComposeCmd(),
		newOrdersPDFCmd(),
	)
	return cmd
}

var orderColumns = []render.Column{
	{Key: "id", Title: "Order No.", Numeric: true},
	{Key: "date", Title: "Date"},
	{Key: "contact", Title: "Contact"},
	{Key: "remarks", Title: "Remarks"},
	{Key: "quantity", Title: "Quantity", Numeric: true},
	{Key: "user", Title: "Created By"},
}

func newOrdersListCmd() *cobra.Command {
	var flags gridFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sales orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			orders, err := console.Client.Orders(cmd.Context())
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			rows := make([][]string, 0, len(orders))
			for _, o := range orders {
				rows = append(rows, []string{
					strconv.Itoa(o.ID), o.Date, o.Contact, o.Remarks,
					strconv.Itoa(o.Quantity), o.User,
				})
			}
			return flags.render(render.NewGrid(orderColumns, rows))
		},
	}
	flags.register(cmd)
	return cmd
}

var orderItemColumns = []render.Column{
	{Key: "size_id", Title: "Size ID", Numeric: true},
	{Key: "brand", Title: "Brand"},
	{Key: "style", Title: "Style"},
	{Key: "size", Title: "Size"},
	{Key: "qty", Title: "Quantity", Numeric: true},
}

func newOrdersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one order with its line items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			master, items, err := console.Client.Order(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}

			fmt.Printf("Order No.:  %d\n", id)
			fmt.Printf("Contact ID: %d\n", master.ContactID)
			fmt.Printf("Remarks:    %s\n", master.Remarks)
			fmt.Println()

			total := 0
			rows := make([][]string, 0, len(items))
			for _, item := range items {
				total += item.Qty
				rows = append(rows, []string{
					strconv.Itoa(item.SizeID), item.Brand, item.Style, item.Size,
					strconv.Itoa(item.Qty),
				})
			}
			fmt.Print(render.NewGrid(orderItemColumns, rows).View())
			fmt.Printf("Total quantity: %d\n", total)
			return nil
		},
	}
}

// lineSpec is one parsed --line flag: BRAND/STYLE/SIZE=QTY.
type lineSpec struct {
	brand string
	style string
	size  string
	qty   int
}

func parseLineSpec(raw string) (lineSpec, error) {
	head, qtyStr, ok := strings.Cut(raw, "=")
	if !ok {
		return lineSpec{}, fmt.Errorf("invalid line %q, want BRAND/STYLE/SIZE=QTY", raw)
	}
	qty, err := strconv.Atoi(strings.TrimSpace(qtyStr))
	if err != nil || qty < 0 {
		return lineSpec{}, fmt.Errorf("invalid quantity in %q", raw)
	}
	parts := strings.Split(head, "/")
	if len(parts) != 3 {
		return lineSpec{}, fmt.Errorf("invalid line %q, want BRAND/STYLE/SIZE=QTY", raw)
	}
	return lineSpec{
		brand: strings.TrimSpace(parts[0]),
		style: strings.TrimSpace(parts[1]),
		size:  strings.TrimSpace(parts[2]),
		qty:   qty,
	}, nil
}

// newFormController builds a controller wired to the live API.
func newFormController(userID int) *order.FormController {
	return order.NewFormController(
		console.Client.Options(), console.Client, console.Notify, console.Errors, userID)
}

// matchOption finds an option by label, case-insensitively.
func matchOption(opts []models.Option, label string) (models.Option, bool) {
	for _, opt := range opts {
		if strings.EqualFold(opt.Label, label) {
			return opt, true
		}
	}
	return models.Option{}, false
}

// contactOption resolves a contact id against the loaded options. A
// miss is not fatal here; Submit blocks on the missing contact with
// its own warning.
func contactOption(ctrl *order.FormController, contactID int) (models.Option, bool) {
	for _, opt := range ctrl.ContactOptions() {
		if opt.IntValue() == contactID {
			return opt, true
		}
	}
	return models.Option{}, false
}

// applyLines resolves each BRAND/STYLE/SIZE=QTY line through the form
// controller: brand search, style selection, size-catalog fetch, then a
// staged quantity confirmed through the editor diff. Lines sharing a
// brand and style are grouped so the catalog is fetched once per pair.
func applyLines(cmd *cobra.Command, ctrl *order.FormController, lines []string) error {
	specs := make([]lineSpec, 0, len(lines))
	for _, raw := range lines {
		spec, err := parseLineSpec(raw)
		if err != nil {
			console.Notify.Warn(err.Error())
			return errBlocked
		}
		specs = append(specs, spec)
	}

	ctx := cmd.Context()
	for i := 0; i < len(specs); {
		brand, style := specs[i].brand, specs[i].style

		opts, err := ctrl.SearchBrands(ctx, brand)
		if err != nil {
			return errBlocked
		}
		brandOpt, found := matchOption(opts, brand)
		if !found {
			console.Notify.Warn(fmt.Sprintf("Brand %q not found", brand))
			return errBlocked
		}
		ctrl.SelectBrand(brandOpt)
		ctrl.RefreshStyles(ctx)

		styleOpt, found := matchOption(ctrl.StyleOptions(), style)
		if !found {
			console.Notify.Warn(fmt.Sprintf("Style %q not found for brand %q", style, brand))
			return errBlocked
		}
		ctrl.SelectStyle(styleOpt)
		ctrl.RefreshSizes(ctx)
		if len(ctrl.Catalog()) == 0 {
			console.Notify.Warn(fmt.Sprintf("No sizes available for %s / %s", brand, style))
			return errBlocked
		}

		ed, ok := ctrl.OpenEditor()
		if !ok {
			return errBlocked
		}
		for ; i < len(specs) && specs[i].brand == brand && specs[i].style == style; i++ {
			if !catalogHasSize(ctrl, specs[i].size) {
				console.Notify.Warn(fmt.Sprintf("Size %q not found for %s / %s", specs[i].size, brand, style))
				return errBlocked
			}
			ed.SetQtyBySize(specs[i].size, specs[i].qty)
		}
		ctrl.ConfirmEditor(ed)
	}
	return nil
}

func catalogHasSize(ctrl *order.FormController, size string) bool {
	for _, entry := range ctrl.Catalog() {
		if entry.Size == size {
			return true
		}
	}
	return false
}

func newOrdersCreateCmd() *cobra.Command {
	var (
		contactID int
		remarks   string
		lines     []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a sales order from line flags",
		Long: `Create a sales order non-interactively. Each --line flag adds one
size quantity in the form BRAND/STYLE/SIZE=QTY, resolved against the
live brand, style and size catalogs. Use "orders compose" for the
interactive form.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}

			ctrl := newFormController(sess.UserID)
			if err := ctrl.LoadContacts(cmd.Context()); err != nil {
				return errBlocked
			}
			if opt, ok := contactOption(ctrl, contactID); ok {
				ctrl.SelectContact(opt)
			}
			ctrl.SetRemarks(remarks)
			if err := applyLines(cmd, ctrl, lines); err != nil {
				return err
			}

			if ctrl.Submit(cmd.Context()) != order.Saved {
				return errBlocked
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&contactID, "contact", 0, "contact id")
	cmd.Flags().StringVar(&remarks, "remarks", "", "order remarks")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "line item as BRAND/STYLE/SIZE=QTY (repeatable)")
	return cmd
}

func newOrdersEditCmd() *cobra.Command {
	var (
		contactID int
		remarks   string
		lines     []string
		setQty    []string
		remove    []int
	)
	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a sales order",
		Long: `Edit an existing order. The order's contact, remarks and line items
are loaded first; flags then adjust them: --line adds or updates sizes
through the catalogs, --set-qty SIZE_ID=QTY edits a committed line
directly, --remove SIZE_ID deletes one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctrl := newFormController(sess.UserID)
			if err := ctrl.LoadContacts(cmd.Context()); err != nil {
				return errBlocked
			}
			if err := ctrl.Hydrate(cmd.Context(), id); err != nil {
				return errBlocked
			}

			if cmd.Flags().Changed("contact") {
				if opt, ok := contactOption(ctrl, contactID); ok {
					ctrl.SelectContact(opt)
				}
			}
			if cmd.Flags().Changed("remarks") {
				ctrl.SetRemarks(remarks)
			}
			if err := applyLines(cmd, ctrl, lines); err != nil {
				return err
			}
			for _, raw := range setQty {
				idStr, qtyStr, ok := strings.Cut(raw, "=")
				sizeID, err1 := strconv.Atoi(strings.TrimSpace(idStr))
				qty, err2 := strconv.Atoi(strings.TrimSpace(qtyStr))
				if !ok || err1 != nil || err2 != nil || qty < 0 {
					console.Notify.Warn(fmt.Sprintf("invalid quantity edit %q, want SIZE_ID=QTY", raw))
					return errBlocked
				}
				ctrl.SetQty(sizeID, qty)
			}
			for _, sizeID := range remove {
				ctrl.Remove(sizeID)
			}

			if ctrl.Submit(cmd.Context()) != order.Saved {
				return errBlocked
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&contactID, "contact", 0, "contact id")
	cmd.Flags().StringVar(&remarks, "remarks", "", "order remarks")
	cmd.Flags().StringArrayVar(&lines, "line", nil, "line item as BRAND/STYLE/SIZE=QTY (repeatable)")
	cmd.Flags().StringArrayVar(&setQty, "set-qty", nil, "edit a committed line as SIZE_ID=QTY (repeatable)")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "remove a committed line by size id (repeatable)")
	return cmd
}

func newOrdersComposeCmd() *cobra.Command {
	var editID int
	cmd := &cobra.Command{
		Use:   "compose",
		Short: "Open the interactive order form",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := console.RequireSession()
			if err != nil {
				return errBlocked
			}
			return ui.RunOrderForm(cmd.Context(), console, sess, editID)
		},
	}
	cmd.Flags().IntVar(&editID, "edit", 0, "order id to edit instead of creating")
	return cmd
}

func newOrdersPDFCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "pdf ID",
		Short: "Print an order form to a PDF file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := console.RequireSession(); err != nil {
				return errBlocked
			}
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			master, details, err := console.Client.OrderPrint(cmd.Context(), id)
			if err != nil {
				console.Errors.Handle(err)
				return errBlocked
			}
			if outPath == "" {
				outPath = fmt.Sprintf("order-%d.pdf", id)
			}
			if err := console.PDF.Generate(cmd.Context(), master, details, outPath); err != nil {
				console.Notify.Warn(err.Error())
				return errBlocked
			}
			console.Notify.Success("Order form saved to " + outPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output file (default order-ID.pdf)")
	return cmd
}
