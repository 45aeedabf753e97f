package order

import (
	"fmt"
	"io"

	"coffeehouse/pkg/beverage"
	"coffeehouse/pkg/condiment"
)

// Line renders a single receipt line for a composed drink.
func Line(b beverage.Beverage) string {
	return fmt.Sprintf("Description: %s, Cost: $%s", b.Description(), b.Cost().StringFixed(2))
}

// Print writes one receipt line per drink.
func Print(w io.Writer, drinks ...beverage.Beverage) error {
	for _, d := range drinks {
		if d == nil {
			return beverage.ErrNilBeverage
		}
		if _, err := fmt.Fprintln(w, Line(d)); err != nil {
			return err
		}
	}
	return nil
}

// Steps returns base followed by the drink produced after each wrap.
func Steps(base beverage.Beverage, wrappers ...condiment.Wrapper) ([]beverage.Beverage, error) {
	if base == nil {
		return nil, beverage.ErrNilBeverage
	}
	steps := []beverage.Beverage{base}
	current := base
	for _, w := range wrappers {
		next, err := w(current)
		if err != nil {
			return nil, err
		}
		current = next
		steps = append(steps, current)
	}
	return steps, nil
}

// Demonstration builds the sample orders printed when no base is requested:
// a house blend topped up one condiment at a time, then an espresso with soy.
func Demonstration() ([]beverage.Beverage, error) {
	drinks, err := Steps(beverage.HouseBlend(), condiment.SteamedMilk, condiment.Mocha)
	if err != nil {
		return nil, err
	}
	soy, err := condiment.Soy(beverage.Espresso())
	if err != nil {
		return nil, err
	}
	return append(drinks, soy), nil
}
