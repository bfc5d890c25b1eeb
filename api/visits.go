package api

import (
	"context"
	"fmt"
	"strconv"

	"salespulse/models"
)

type visitsResponse struct {
	Visits []models.Visit `json:"visits"`
}

// Visits fetches all field visits.
func (c *Client) Visits(ctx context.Context) ([]models.Visit, error) {
	var resp visitsResponse
	if err := c.get(ctx, "visits", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Visits, nil
}

// Visit fetches one visit, including its stored photo paths.
func (c *Client) Visit(ctx context.Context, id int) (models.Visit, error) {
	var visit models.Visit
	if err := c.get(ctx, fmt.Sprintf("visits/%d", id), nil, &visit); err != nil {
		return models.Visit{}, err
	}
	return visit, nil
}

func visitFields(payload models.VisitPayload) map[string][]string {
	fields := map[string][]string{
		"contact_id":  {payload.ContactID},
		"purpose_id":  {payload.PurposeID},
		"description": {payload.Description},
		"response":    {payload.Response},
		"user_id":     {strconv.Itoa(payload.UserID)},
	}
	if len(payload.ExistingImages) > 0 {
		fields["existing_images[]"] = payload.ExistingImages
	}
	return fields
}

// CreateVisit uploads a new visit as multipart form data, photos
// attached as visit_images[] parts.
func (c *Client) CreateVisit(ctx context.Context, payload models.VisitPayload, photos []FilePart) (string, error) {
	var resp messageResponse
	if err := c.postMultipart(ctx, "visits", nil, visitFields(payload), photos, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdateVisit updates a visit via the POST + _method=PUT override. New
// photos travel as file parts, kept server-side photos as
// existing_images[] paths.
func (c *Client) UpdateVisit(ctx context.Context, id int, payload models.VisitPayload, photos []FilePart) (string, error) {
	var resp messageResponse
	if err := c.postMultipart(ctx, fmt.Sprintf("visits/%d", id), methodPut(), visitFields(payload), photos, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
