package domain

import (
	"fmt"
	"math/big"
)

// ParseAmount parses a base-10 integer amount in the smallest currency unit.
// Negative values and anything that is not a plain integer are rejected.
func ParseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: amount %q is not an integer", ErrValidation, s)
	}
	if v.Sign() < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return v, nil
}

// SumAmounts returns the exact sum of vs. Nil entries count as zero.
func SumAmounts(vs ...*big.Int) *big.Int {
	total := new(big.Int)
	for _, v := range vs {
		if v != nil {
			total.Add(total, v)
		}
	}
	return total
}

// AmountString formats v in base 10, treating nil as zero.
func AmountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
