package store

import "github.com/Makepad-fr/shoplist/internal/model"

// Seed returns the fallback collection used when the slot holds no valid list.
// A fresh slice is built on every call.
func Seed() []model.Item {
	return []model.Item{
		{ID: "1", Name: "Leite", Quantity: 1, Category: model.Groceries, Price: model.PriceOf(5.99)},
		{ID: "2", Name: "Pão", Quantity: 2, Category: model.Groceries, Price: model.PriceOf(4.50)},
		{ID: "3", Name: "Sabonete", Quantity: 1, Category: model.Household, Price: model.PriceOf(3.25)},
		{ID: "4", Name: "Pilhas", Quantity: 4, Category: model.Electronics, Price: model.PriceOf(12.90)},
	}
}
