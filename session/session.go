// Package session stores the authenticated operator between console
// invocations. It replaces ambient login state with an explicit object:
// created on successful login, destroyed on logout or 401, read-only to
// every other consumer.
package session

// Session is the authenticated operator plus the bearer token for the
// remote API.
type Session struct {
	UserID int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}
