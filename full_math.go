package uniswap_v3_math

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var DIVISION_BY_ZERO = errors.New("DIVISION_BY_ZERO")

// MulDiv returns floor(a * b / denominator) with a full 512-bit
// intermediate product, failing with OVERFLOW when the quotient does not
// fit 256 bits.
func MulDiv(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	if denominator.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	prod := new(big.Int).Mul(a.ToBig(), b.ToBig())
	prod.Div(prod, denominator.ToBig())
	r, overflow := uint256.FromBig(prod)
	if overflow {
		return nil, OVERFLOW
	}
	return r, nil
}

// MulDivRoundingUp returns ceil(a * b / denominator).
func MulDivRoundingUp(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	if denominator.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	prod := new(big.Int).Mul(a.ToBig(), b.ToBig())
	quo, rem := new(big.Int).QuoRem(prod, denominator.ToBig(), new(big.Int))
	if rem.Sign() > 0 {
		quo.Add(quo, big.NewInt(1))
	}
	r, overflow := uint256.FromBig(quo)
	if overflow {
		return nil, OVERFLOW
	}
	return r, nil
}

// DivRoundingUp returns ceil(a / b).
func DivRoundingUp(a, b *uint256.Int) (*uint256.Int, error) {
	if b.IsZero() {
		return nil, DIVISION_BY_ZERO
	}
	quo := new(uint256.Int).Div(a, b)
	var rem uint256.Int
	rem.Mod(a, b)
	if !rem.IsZero() {
		quo.AddUint64(quo, 1)
	}
	return quo, nil
}
