package models

import "strconv"

// Option is a selectable value in a form: a human label plus the value
// submitted to the API. Styles use the same string for both; contacts,
// brands and the like carry a numeric id in Value.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// IntOption builds an Option from an id/name pair.
func IntOption(id int, name string) Option {
	return Option{Label: name, Value: strconv.Itoa(id)}
}

// IntValue returns the numeric form of Value, or 0 if it is not numeric.
func (o Option) IntValue() int {
	n, err := strconv.Atoi(o.Value)
	if err != nil {
		return 0
	}
	return n
}
