package kernel

import (
	"fmt"
	"math"

	"eats/internal/pkg/errs"
)

// Price is a non-negative amount of money. The zero value is a valid price of 0.
type Price struct {
	amount float64
}

// NewPrice validates that amount is a finite, non-negative number.
func NewPrice(amount float64) (Price, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Price{}, errs.NewValueIsOutOfRangeError("price", amount, 0, math.MaxFloat64)
	}
	return Price{amount: amount}, nil
}

// MustNewPrice is NewPrice for literals known to be valid. It panics otherwise.
func MustNewPrice(amount float64) Price {
	p, err := NewPrice(amount)
	if err != nil {
		panic(err)
	}
	return p
}

// Amount returns the numeric value.
func (p Price) Amount() float64 {
	return p.amount
}

// Add returns the sum of both prices.
func (p Price) Add(other Price) Price {
	return Price{amount: p.amount + other.amount}
}

// IsZero reports whether the price is 0.
func (p Price) IsZero() bool {
	return p.amount == 0
}
