package order_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeehouse/pkg/beverage"
	"coffeehouse/pkg/condiment"
	"coffeehouse/pkg/order"
)

func TestLine(t *testing.T) {
	drink, err := condiment.Soy(beverage.Espresso())
	require.NoError(t, err)

	assert.Equal(t, "Description: Espresso, Soy, Cost: $3.35", order.Line(drink))
	assert.Equal(t, "Description: Decaf Coffee, Cost: $2.00", order.Line(beverage.Decaf()))
}

func TestSteps(t *testing.T) {
	steps, err := order.Steps(beverage.HouseBlend(), condiment.SteamedMilk, condiment.Mocha)
	require.NoError(t, err)
	require.Len(t, steps, 3)

	assert.Equal(t, "House Blend Coffee", steps[0].Description())
	assert.Equal(t, "House Blend Coffee, Steamed Milk", steps[1].Description())
	assert.Equal(t, "House Blend Coffee, Steamed Milk, Mocha", steps[2].Description())
	assert.Equal(t, "2.10", steps[1].Cost().StringFixed(2))
	assert.Equal(t, "2.70", steps[2].Cost().StringFixed(2))
}

func TestStepsRejectsNilBase(t *testing.T) {
	_, err := order.Steps(nil, condiment.Soy)
	assert.ErrorIs(t, err, beverage.ErrNilBeverage)
}

func TestDemonstration(t *testing.T) {
	drinks, err := order.Demonstration()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, order.Print(&buf, drinks...))

	want := "Description: House Blend Coffee, Cost: $1.80\n" +
		"Description: House Blend Coffee, Steamed Milk, Cost: $2.10\n" +
		"Description: House Blend Coffee, Steamed Milk, Mocha, Cost: $2.70\n" +
		"Description: Espresso, Soy, Cost: $3.35\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintRejectsNil(t *testing.T) {
	var buf bytes.Buffer
	err := order.Print(&buf, beverage.Espresso(), nil)
	assert.ErrorIs(t, err, beverage.ErrNilBeverage)
	assert.Equal(t, "Description: Espresso, Cost: $2.90\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestPrintPropagatesWriteErrors(t *testing.T) {
	err := order.Print(failingWriter{}, beverage.Espresso())
	assert.EqualError(t, err, "closed")
}
