package models

// User is a console operator account.
type User struct {
	ID      int      `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Agent   string   `json:"agent,omitempty"`
	Manager string   `json:"manager,omitempty"`
	State   string   `json:"state,omitempty"`
	Phone   string   `json:"phone,omitempty"`
	Active  FlexBool `json:"active"`
}

// UserDetail is the editable form of a user as returned by GET users/{id}.
type UserDetail struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Agent     string   `json:"agent"`
	ManagerID FlexInt  `json:"manager_id"`
	StateID   FlexInt  `json:"state_id"`
	Phone     string   `json:"phone"`
	Active    FlexBool `json:"active"`
}

// UserPayload is the body of POST users / POST users/{id}?_method=PUT.
// Password fields are required on create and optional on update.
type UserPayload struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password,omitempty"`
	PasswordConfirmation string `json:"password_confirmation,omitempty"`
	Role                 string `json:"role"`
	Agent                string `json:"agent"`
	ManagerID            string `json:"manager_id"`
	StateID              string `json:"state_id"`
	Phone                string `json:"phone"`
	Active               bool   `json:"active"`
	UserID               int    `json:"user_id"`
}

// State is an Indian state option for contact and user forms.
type State struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
