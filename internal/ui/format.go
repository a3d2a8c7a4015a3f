package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Makepad-fr/shoplist/internal/model"
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// FormatPrice renders an amount in reais: 9 -> "R$ 9,00".
func FormatPrice(v float64) string {
	return "R$ " + brl.Sprintf("%.2f", v)
}

// ItemTotal renders price × quantity, or "" when the item has no price.
func ItemTotal(it model.Item) string {
	total, ok := it.Total()
	if !ok {
		return ""
	}
	return FormatPrice(total)
}

// ParsePrice reads a user-typed unit price. A blank string means no price.
// Both "4,50" and "4.50" are accepted.
func ParsePrice(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("not a price: %q", s)
	}
	if !model.ValidPrice(v) {
		return nil, errors.New("price must be zero or more")
	}
	return &v, nil
}

// Quantity bounds accepted by the add form and the CLI.
const (
	MinQuantity = 1
	MaxQuantity = 99
)

// ParseQuantity reads a quantity; blank means 1.
func ParseQuantity(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MinQuantity, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if err := CheckQuantity(n); err != nil {
		return 0, err
	}
	return n, nil
}

// CheckQuantity enforces [MinQuantity, MaxQuantity].
func CheckQuantity(n int) error {
	if n < MinQuantity || n > MaxQuantity {
		return fmt.Errorf("quantity must be between %d and %d, got %d", MinQuantity, MaxQuantity, n)
	}
	return nil
}
