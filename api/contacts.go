package api

import (
	"context"
	"fmt"

	"salespulse/models"
)

type contactsResponse struct {
	Contacts []models.Contact `json:"contacts"`
}

type statesResponse struct {
	States []models.State `json:"states"`
}

// Contacts fetches all contacts.
func (c *Client) Contacts(ctx context.Context) ([]models.Contact, error) {
	var resp contactsResponse
	if err := c.get(ctx, "contacts", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Contacts, nil
}

// Contact fetches one contact for editing.
func (c *Client) Contact(ctx context.Context, id int) (models.Contact, error) {
	var contact models.Contact
	if err := c.get(ctx, fmt.Sprintf("contacts/%d", id), nil, &contact); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

// CreateContact creates a contact and returns the server message.
func (c *Client) CreateContact(ctx context.Context, payload models.ContactPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, "contacts", nil, payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateContact updates a contact via the POST + _method=PUT override.
func (c *Client) UpdateContact(ctx context.Context, id int, payload models.ContactPayload) (string, error) {
	var resp messageResponse
	if err := c.postJSON(ctx, fmt.Sprintf("contacts/%d", id), methodPut(), payload, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// States fetches the state options used by contact and user forms.
func (c *Client) States(ctx context.Context) ([]models.State, error) {
	var resp statesResponse
	if err := c.get(ctx, "states", nil, &resp); err != nil {
		return nil, err
	}
	return resp.States, nil
}
