package types

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// TokenUnits converts a human-readable token amount into base units using
// the token's decimals, e.g. TokenUnits(decimal.NewFromFloat(1.5), 6) for
// 1.5 USDC yields 1500000.
//
// Returns an error when the amount is negative or has more fractional
// digits than the token supports.
func TokenUnits(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("token amount must not be negative: %s", amount)
	}

	scaled := amount.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, fmt.Errorf("token amount %s has more than %d fractional digits", amount, decimals)
	}

	return scaled.BigInt(), nil
}

// MustTokenUnits is like TokenUnits but panics on error.
//
// Useful for tests, but should be avoided in production code.
func MustTokenUnits(amount decimal.Decimal, decimals int32) *big.Int {
	v, err := TokenUnits(amount, decimals)
	if err != nil {
		panic(err)
	}

	return v
}
