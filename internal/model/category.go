package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category is a closed set of tags used for filtering and display.
type Category string

const (
	Groceries   Category = "groceries"
	Household   Category = "household"
	Electronics Category = "electronics"
	Clothing    Category = "clothing"
	Other       Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{Groceries, Household, Electronics, Clothing, Other}

var labels = map[Category]string{
	Groceries:   "Mercado",
	Household:   "Casa",
	Electronics: "Eletrônicos",
	Clothing:    "Roupas",
	Other:       "Outros",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Label is the user-facing name. Unknown values render as "Outros".
func (c Category) Label() string {
	if l, ok := labels[c]; ok {
		return l
	}
	return labels[Other]
}

func (c Category) String() string { return string(c) }

// ParseCategory accepts either the tag ("groceries") or the label ("Mercado"),
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, labels[c]) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// UnmarshalJSON rejects tags outside the closed set so that a malformed
// payload is caught at decode time.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if !Category(s).Valid() {
		return fmt.Errorf("unknown category %q", s)
	}
	*c = Category(s)
	return nil
}
