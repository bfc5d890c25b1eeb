package api

import (
	"context"
	"fmt"

	"salespulse/models"
)

type usersResponse struct {
	Users []models.User `json:"users"`
}

type managersResponse struct {
	Managers []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"managers"`
}

// Users fetches all console users.
func (c *Client) Users(ctx context.Context) ([]models.User, error) {
	var resp usersResponse
	if err := c.get(ctx, "users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Users, nil
}

// User fetches one user for editing.
func (c *Client) User(ctx context.Context, id int) (models.UserDetail, error) {
	var user models.UserDetail
	if err := c.get(ctx, fmt.Sprintf("users/%d", id), nil, &user); err != nil {
		return models.UserDetail{}, err
	}
	return user, nil
}

// CreateUser creates a user and returns the server message.
func (c *Client) CreateUser(ctx context.Context, payload models.UserPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, "users", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateUser updates a user via the POST + _method=PUT override.
func (c *Client) UpdateUser(ctx context.Context, id int, payload models.UserPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, fmt.Sprintf("users/%d", id), methodPut(), payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Managers fetches manager options for the user form.
func (c *Client) Managers(ctx context.Context) ([]models.Option, error) {
	var resp managersResponse
	if err := c.get(ctx, "managers", nil, &resp); err != nil {
		return nil, err
	}
	opts := make([]models.Option, 0, len(resp.Managers))
	for _, m := range resp.Managers {
		opts = append(opts, models.IntOption(m.ID, m.Name))
	}
	return opts, nil
}
