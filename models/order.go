package models

// OrderItem is one confirmed order quantity for a specific size of a
// specific brand/style. size_id is the unique key within an order's
// line-item collection.
type OrderItem struct {
	SizeID int    `json:"size_id"`
	Brand  string `json:"brand"`
	Style  string `json:"style"`
	Size   string `json:"size"`
	Qty    int    `json:"qty"`
}

// SizeCatalogEntry is a working-copy view of one size available for the
// currently selected brand/style, annotated with whatever quantity is
// already committed for that size (0 if none).
type SizeCatalogEntry struct {
	SizeID int    `json:"size_id"`
	Size   string `json:"size"`
	Qty    int    `json:"qty"`
}

// OrderItemQty is the wire form of a line item in the order payload.
type OrderItemQty struct {
	SizeID int `json:"size_id"`
	Qty    int `json:"qty"`
}

// OrderPayload is the body of POST orders / POST orders/{id}?_method=PUT.
type OrderPayload struct {
	ContactID  int            `json:"contact_id"`
	Remarks    string         `json:"remarks"`
	UserID     int            `json:"user_id"`
	OrderItems []OrderItemQty `json:"order_items"`
}

// OrderSummary is one row of GET orders.
type OrderSummary struct {
	ID       int    `json:"id"`
	Date     string `json:"date"`
	Contact  string `json:"contact"`
	Remarks  string `json:"remarks"`
	Quantity int    `json:"quantity"`
	User     string `json:"user"`
}

// OrderMaster is the header row returned by GET orders/{id}.
type OrderMaster struct {
	ContactID int    `json:"contact_id"`
	Remarks   string `json:"remarks"`
}

// OrderPrintMaster is the header block of the printable order form
// (GET order-pdf/{id}).
type OrderPrintMaster struct {
	ID      FlexInt `json:"id"`
	Date    string  `json:"date"`
	Contact string  `json:"contact"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Remarks string  `json:"remarks"`
	User    string  `json:"user"`
}

// OrderPrintDetail is one detail row of the printable order form.
type OrderPrintDetail struct {
	SNo   string  `json:"s_no"`
	Name  string  `json:"name"`
	Style string  `json:"style"`
	Size  string  `json:"size"`
	Qty   FlexInt `json:"qty"`
}
