package condiment

import (
	"github.com/shopspring/decimal"

	"coffeehouse/pkg/beverage"
)

// Condiment wraps exactly one beverage and adds its own label and price delta.
// Description and Cost always delegate through the whole chain; nothing is cached.
type Condiment struct {
	inner beverage.Beverage
	label string
	delta decimal.Decimal
}

// wrap is shared by every condiment constructor.
func wrap(inner beverage.Beverage, label string, delta decimal.Decimal) (Condiment, error) {
	if inner == nil {
		return Condiment{}, beverage.ErrNilBeverage
	}
	return Condiment{inner: inner, label: label, delta: delta}, nil
}

// Description appends the condiment label to the wrapped description.
func (c Condiment) Description() string {
	return c.inner.Description() + ", " + c.label
}

// Cost adds the condiment delta to the wrapped cost.
func (c Condiment) Cost() decimal.Decimal {
	return c.inner.Cost().Add(c.delta)
}

// Label is the suffix this condiment contributes to a description.
func (c Condiment) Label() string { return c.label }

// Inner returns the wrapped beverage.
func (c Condiment) Inner() beverage.Beverage { return c.inner }

// SteamedMilk adds 0.30.
func SteamedMilk(b beverage.Beverage) (Condiment, error) {
	return wrap(b, "Steamed Milk", decimal.New(30, -2))
}

// Mocha adds 0.60.
func Mocha(b beverage.Beverage) (Condiment, error) {
	return wrap(b, "Mocha", decimal.New(60, -2))
}

// Soy adds 0.45.
func Soy(b beverage.Beverage) (Condiment, error) {
	return wrap(b, "Soy", decimal.New(45, -2))
}

// WhippedCream adds 0.30.
func WhippedCream(b beverage.Beverage) (Condiment, error) {
	return wrap(b, "Whipped Cream", decimal.New(30, -2))
}

// Wrapper is the constructor shape shared by every condiment.
type Wrapper func(beverage.Beverage) (Condiment, error)

// Apply wraps b with each wrapper in order, innermost first.
func Apply(b beverage.Beverage, wrappers ...Wrapper) (beverage.Beverage, error) {
	if b == nil {
		return nil, beverage.ErrNilBeverage
	}
	for _, w := range wrappers {
		next, err := w(b)
		if err != nil {
			return nil, err
		}
		b = next
	}
	return b, nil
}
