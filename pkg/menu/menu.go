package menu

import (
	"errors"
	"fmt"
	"strings"

	"coffeehouse/pkg/beverage"
	"coffeehouse/pkg/condiment"
)

// ErrUnknownItem is returned when a name matches nothing on the menu.
var ErrUnknownItem = errors.New("unknown menu item")

// IsUnknown reports whether err came from a failed menu lookup.
func IsUnknown(err error) bool {
	return errors.Is(err, ErrUnknownItem)
}

type coffeeEntry struct {
	name string
	build func() beverage.Coffee
}

type condimentEntry struct {
	name string
	wrap condiment.Wrapper
}

// Listing order is the order used in usage text.
var (
	coffees = []coffeeEntry{
		{"house-blend", beverage.HouseBlend},
		{"dark-roast", beverage.DarkRoast},
		{"decaf", beverage.Decaf},
		{"espresso", beverage.Espresso},
	}
	condiments = []condimentEntry{
		{"steamed-milk", condiment.SteamedMilk},
		{"mocha", condiment.Mocha},
		{"soy", condiment.Soy},
		{"whipped-cream", condiment.WhippedCream},
	}
)

// Beverages lists the base drink names.
func Beverages() []string {
	names := make([]string, 0, len(coffees))
	for _, c := range coffees {
		names = append(names, c.name)
	}
	return names
}

// Condiments lists the add-on names.
func Condiments() []string {
	names := make([]string, 0, len(condiments))
	for _, c := range condiments {
		names = append(names, c.name)
	}
	return names
}

// normalize accepts "Steamed Milk", "steamed_milk" and "steamed-milk" alike.
func normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, "_", "-")
	return strings.Join(strings.Fields(name), "-")
}

// Base looks up a leaf beverage by name.
func Base(name string) (beverage.Coffee, error) {
	key := normalize(name)
	for _, c := range coffees {
		if c.name == key {
			return c.build(), nil
		}
	}
	return beverage.Coffee{}, fmt.Errorf("beverage %q: %w", name, ErrUnknownItem)
}

// Condiment looks up a condiment constructor by name.
func Condiment(name string) (condiment.Wrapper, error) {
	key := normalize(name)
	for _, c := range condiments {
		if c.name == key {
			return c.wrap, nil
		}
	}
	return nil, fmt.Errorf("condiment %q: %w", name, ErrUnknownItem)
}

// Compose builds base and wraps it with every named condiment in order.
func Compose(base string, names ...string) (beverage.Beverage, error) {
	b, err := Base(base)
	if err != nil {
		return nil, err
	}
	wrappers := make([]condiment.Wrapper, 0, len(names))
	for _, name := range names {
		w, err := Condiment(name)
		if err != nil {
			return nil, err
		}
		wrappers = append(wrappers, w)
	}
	return condiment.Apply(b, wrappers...)
}
