package api

import (
	"context"
	"fmt"

	"salespulse/models"
	"salespulse/order"
)

var _ order.OrderService = (*Client)(nil)

type ordersResponse struct {
	Orders []models.OrderSummary `json:"orders"`
}

// Orders fetches the order list.
func (c *Client) Orders(ctx context.Context) ([]models.OrderSummary, error) {
	var resp ordersResponse
	if err := c.get(ctx, "orders", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

type orderDetailRow struct {
	SizeID models.FlexInt `json:"size_id"`
	Brand  string         `json:"brand"`
	Style  string         `json:"style"`
	Size   string         `json:"size"`
	Qty    models.FlexInt `json:"qty"`
}

type orderResponse struct {
	OrderMaster []struct {
		ContactID models.FlexInt `json:"contact_id"`
		Remarks   string         `json:"remarks"`
	} `json:"orderMaster"`
	OrderDetails []orderDetailRow `json:"orderDetails"`
}

// Order fetches the header and detail rows of one order for edit
// hydration. Detail rows come back in fetch order.
func (c *Client) Order(ctx context.Context, id int) (models.OrderMaster, []models.OrderItem, error) {
	var resp orderResponse
	if err := c.get(ctx, fmt.Sprintf("orders/%d", id), nil, &resp); err != nil {
		return models.OrderMaster{}, nil, err
	}
	if len(resp.OrderMaster) == 0 {
		return models.OrderMaster{}, nil, fmt.Errorf("order %d has no master row", id)
	}

	master := models.OrderMaster{
		ContactID: resp.OrderMaster[0].ContactID.Int(),
		Remarks:   resp.OrderMaster[0].Remarks,
	}
	details := make([]models.OrderItem, 0, len(resp.OrderDetails))
	for _, row := range resp.OrderDetails {
		details = append(details, models.OrderItem{
			SizeID: row.SizeID.Int(),
			Brand:  row.Brand,
			Style:  row.Style,
			Size:   row.Size,
			Qty:    row.Qty.Int(),
		})
	}
	return master, details, nil
}

// CreateOrder persists a new order and returns the server message.
func (c *Client) CreateOrder(ctx context.Context, payload models.OrderPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, "orders", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateOrder updates an order via the POST + _method=PUT override.
func (c *Client) UpdateOrder(ctx context.Context, id int, payload models.OrderPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, fmt.Sprintf("orders/%d", id), methodPut(), payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

type orderPrintResponse struct {
	Master  []models.OrderPrintMaster `json:"master"`
	Details []models.OrderPrintDetail `json:"details"`
}

// OrderPrint fetches the printable order form data.
func (c *Client) OrderPrint(ctx context.Context, id int) (models.OrderPrintMaster, []models.OrderPrintDetail, error) {
	var resp orderPrintResponse
	if err := c.get(ctx, fmt.Sprintf("order-pdf/%d", id), nil, &resp); err != nil {
		return models.OrderPrintMaster{}, nil, err
	}
	if len(resp.Master) == 0 {
		return models.OrderPrintMaster{}, nil, fmt.Errorf("order %d has no printable master row", id)
	}
	return resp.Master[0], resp.Details, nil
}
