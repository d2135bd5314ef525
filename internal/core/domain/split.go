package domain

import (
	"fmt"
	"math"
	"math/bits"
)

// Split is the division of one payment between the influencer and the
// campaign owner. Commission+Proceeds always equals the price it was
// computed from.
type Split struct {
	Commission uint64
	Proceeds   uint64
}

// SplitPayment computes price*percentage/100 with floor rounding. The
// product is formed in 128 bits, so any uint64 price splits; the remainder
// goes to the proceeds. ErrOverflow is returned only if the quotient would
// not fit in 64 bits, which a valid percentage cannot produce.
func SplitPayment(price uint64, percentage uint8) (Split, error) {
	if percentage > MaxCommissionPercentage {
		return Split{}, fmt.Errorf("%w: commission percentage %d exceeds %d", ErrInvalidInput, percentage, MaxCommissionPercentage)
	}
	hi, lo := bits.Mul64(price, uint64(percentage))
	if hi >= 100 {
		return Split{}, fmt.Errorf("%w: %d * %d / 100", ErrOverflow, price, percentage)
	}
	commission, _ := bits.Div64(hi, lo, 100)
	proceeds, err := CheckedSub(price, commission)
	if err != nil {
		return Split{}, err
	}
	return Split{Commission: commission, Proceeds: proceeds}, nil
}

// CheckedAdd returns a+b or ErrOverflow.
func CheckedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, a, b)
	}
	return a + b, nil
}

// CheckedSub returns a-b or ErrOverflow when b > a.
func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, a, b)
	}
	return a - b, nil
}
