package model

import "math"

// Item is the domain model for a shopping list entry.
// Everything except Completed is fixed once the item is created.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Category  Category `json:"category"`
	Completed bool     `json:"completed"`
	// Price is the unit price. nil means unknown, which is not the same as free.
	Price *float64 `json:"price,omitempty"`
}

// Total returns price × quantity. ok is false when the item has no price.
func (it Item) Total() (total float64, ok bool) {
	if it.Price == nil {
		return 0, false
	}
	return *it.Price * float64(it.Quantity), true
}

// ValidPrice reports whether p may be stored as a unit price.
func ValidPrice(p float64) bool {
	return p >= 0 && !math.IsInf(p, 0) && !math.IsNaN(p)
}

// PriceOf is a small helper for building items with a known price.
func PriceOf(p float64) *float64 { return &p }
