package api

import (
	"context"

	"salespulse/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Login authenticates against POST login and returns the new session
// plus the server's success message.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, string, error) {
	var resp loginResponse
	if err := c.postJSON(ctx, "login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, "", err
	}
	return &session.Session{
		UserID: resp.User.ID,
		Name:   resp.User.Name,
		Email:  resp.User.Email,
		Role:   resp.User.Role,
		Token:  resp.Token,
	}, resp.Message, nil
}
