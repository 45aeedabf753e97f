package beverage

import "github.com/shopspring/decimal"

// Beverage is anything the counter can describe and price.
type Beverage interface {
	Description() string
	Cost() decimal.Decimal
}

// Coffee is a leaf drink with a fixed name and price.
type Coffee struct {
	name  string
	price decimal.Decimal
}

// Description returns the menu name of the coffee.
func (c Coffee) Description() string { return c.name }

// Cost returns the list price of the coffee.
func (c Coffee) Cost() decimal.Decimal { return c.price }

// HouseBlend is the house coffee at 1.80.
func HouseBlend() Coffee {
	return Coffee{name: "House Blend Coffee", price: decimal.New(180, -2)}
}

// DarkRoast is priced at 2.20.
func DarkRoast() Coffee {
	return Coffee{name: "Dark Roast Coffee", price: decimal.New(220, -2)}
}

// Decaf is priced at 2.00.
func Decaf() Coffee {
	return Coffee{name: "Decaf Coffee", price: decimal.New(200, -2)}
}

// Espresso is priced at 2.90.
func Espresso() Coffee {
	return Coffee{name: "Espresso", price: decimal.New(290, -2)}
}
