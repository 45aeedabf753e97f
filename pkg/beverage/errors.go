package beverage

import "errors"

// ErrNilBeverage is returned when a wrapper is asked to hold no drink at all.
var ErrNilBeverage = errors.New("beverage must not be nil")
