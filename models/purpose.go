package models

// Purpose is a visit reason (e.g. "Order follow-up").
type Purpose struct {
	ID     int      `json:"id"`
	Name   string   `json:"name"`
	Active FlexBool `json:"active"`
	User   string   `json:"user,omitempty"`
}

// PurposePayload is the body of POST purposes / POST purposes/{id}?_method=PUT.
type PurposePayload struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	UserID int    `json:"user_id"`
}
