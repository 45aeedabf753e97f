package beverage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coffeehouse/pkg/beverage"
)

func TestCoffeePrices(t *testing.T) {
	cases := []struct {
		coffee beverage.Coffee
		name   string
		price  string
	}{
		{beverage.HouseBlend(), "House Blend Coffee", "1.80"},
		{beverage.DarkRoast(), "Dark Roast Coffee", "2.20"},
		{beverage.Decaf(), "Decaf Coffee", "2.00"},
		{beverage.Espresso(), "Espresso", "2.90"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.name, tc.coffee.Description())
			assert.Equal(t, tc.price, tc.coffee.Cost().StringFixed(2))
		})
	}
}

func TestCoffeeIsBeverage(t *testing.T) {
	var b beverage.Beverage = beverage.Espresso()
	assert.Equal(t, b.Description(), b.Description())
	assert.True(t, b.Cost().Equal(b.Cost()))
}
