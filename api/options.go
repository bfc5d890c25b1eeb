package api

import (
	"context"
	"net/url"

	"salespulse/models"
	"salespulse/order"
)

// Options adapts the client to the order form's option loaders:
// contacts, brands (incremental search), styles and sizes.
type Options struct {
	c *Client
}

var _ order.OptionLoader = (*Options)(nil)

// Contacts loads contact options mapped as {label: name, value: id}.
func (o *Options) Contacts(ctx context.Context) ([]models.Option, error) {
	contacts, err := o.c.Contacts(ctx)
	if err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(contacts))
	for _, contact := range contacts {
		opts = append(opts, models.IntOption(contact.ID, contact.Name))
	}
	return opts, nil
}

type brandsResponse struct {
	Brands []struct {
		ID   models.FlexInt `json:"id"`
		Name string         `json:"name"`
	} `json:"brands"`
}

// Brands queries brand options for a search string. The minimum-length
// guard lives in the form controller; this loader always issues the
// request it is given.
func (o *Options) Brands(ctx context.Context, query string) ([]models.Option, error) {
	var resp brandsResponse
	q := url.Values{"brand": []string{query}}
	if err := o.c.get(ctx, "brands", q, &resp); err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(resp.Brands))
	for _, b := range resp.Brands {
		opts = append(opts, models.IntOption(b.ID.Int(), b.Name))
	}
	return opts, nil
}

type stylesResponse struct {
	Styles []struct {
		Style string `json:"style"`
	} `json:"styles"`
}

// Styles loads style options for a brand. Styles have no separate id;
// label and value are the same string.
func (o *Options) Styles(ctx context.Context, brand string) ([]models.Option, error) {
	var resp stylesResponse
	q := url.Values{"brand": []string{brand}}
	if err := o.c.get(ctx, "styles", q, &resp); err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(resp.Styles))
	for _, s := range resp.Styles {
		opts = append(opts, models.Option{Label: s.Style, Value: s.Style})
	}
	return opts, nil
}

type sizesResponse struct {
	Sizes []struct {
		SizeID models.FlexInt `json:"size_id"`
		Size   string         `json:"size"`
	} `json:"sizes"`
}

// Sizes loads the authoritative size list for a brand/style pair, each
// entry seeded with quantity 0.
func (o *Options) Sizes(ctx context.Context, brand, style string) ([]models.SizeCatalogEntry, error) {
	var resp sizesResponse
	q := url.Values{"brand": []string{brand}, "style": []string{style}}
	if err := o.c.get(ctx, "sizes", q, &resp); err != nil {
		return nil, err
	}
	entries := make([]models.SizeCatalogEntry, 0, len(resp.Sizes))
	for _, s := range resp.Sizes {
		entries = append(entries, models.SizeCatalogEntry{SizeID: s.SizeID.Int(), Size: s.Size, Qty: 0})
	}
	return entries, nil
}
