package uniswap_v3_math

import (
	"errors"

	"github.com/holiman/uint256"

	"uniswap-v3-math/int256"
)

var OVERFLOW = errors.New("OVERFLOW")
var UNDERFLOW = errors.New("UNDERFLOW")

// LiquidityAddDelta applies a signed liquidity change to an unsigned
// uint128-bounded liquidity amount. Removing more than is present is
// UNDERFLOW; exceeding uint128 is OVERFLOW.
func LiquidityAddDelta(x *uint256.Int, y int256.Int) (*uint256.Int, error) {
	if x.Cmp(MaxUint128) > 0 {
		return nil, OVERFLOW
	}
	absY := y.Abs()
	if absY.Cmp(MaxUint128) > 0 {
		return nil, OVERFLOW
	}
	if y.IsNeg() {
		if x.Cmp(absY) < 0 {
			return nil, UNDERFLOW
		}
		return new(uint256.Int).Sub(x, absY), nil
	}
	z := new(uint256.Int).Add(x, absY)
	if z.Cmp(MaxUint128) > 0 {
		return nil, OVERFLOW
	}
	return z, nil
}
