package models

// Contact represents a customer of the trading operation.
type Contact struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	District string   `json:"district"`
	State    string   `json:"state,omitempty"`
	StateID  FlexInt  `json:"state_id"`
	Phone    string   `json:"phone"`
	Pincode  string   `json:"pincode"`
	Active   FlexBool `json:"active"`
}

// ContactPayload is the body of POST contacts / POST contacts/{id}?_method=PUT.
// Name, address, city and district are uppercased before submission.
type ContactPayload struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	StateID  string `json:"state_id"`
	Phone    string `json:"phone"`
	Pincode  string `json:"pincode"`
	Active   bool   `json:"active"`
	UserID   int    `json:"user_id"`
}
