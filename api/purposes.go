package api

import (
	"context"
	"fmt"

	"salespulse/models"
)

type purposesResponse struct {
	Purposes []models.Purpose `json:"purposes"`
}

// Purposes fetches all visit purposes.
func (c *Client) Purposes(ctx context.Context) ([]models.Purpose, error) {
	var resp purposesResponse
	if err := c.get(ctx, "purposes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Purposes, nil
}

// Purpose fetches one purpose for editing.
func (c *Client) Purpose(ctx context.Context, id int) (models.Purpose, error) {
	var purpose models.Purpose
	if err := c.get(ctx, fmt.Sprintf("purposes/%d", id), nil, &purpose); err != nil {
		return models.Purpose{}, err
	}
	return purpose, nil
}

// CreatePurpose creates a purpose and returns the server message.
func (c *Client) CreatePurpose(ctx context.Context, payload models.PurposePayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, "purposes", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdatePurpose updates a purpose via the POST + _method=PUT override.
func (c *Client) UpdatePurpose(ctx context.Context, id int, payload models.PurposePayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, fmt.Sprintf("purposes/%d", id), methodPut(), payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
