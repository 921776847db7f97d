package uniswap_v3_math

import (
	"errors"

	"github.com/holiman/uint256"

	"uniswap-v3-math/int256"
)

var ErrInvariant = errors.New("INVARIANT")
var PRICE_OR_LIQUIDITY_ZERO = errors.New("sqrtPX96 and liquidity must be positive")

// GetNextSqrtPriceFromAmount0RoundingUp computes the sqrt price after
// adding (add=true) or removing (add=false) amount of token0. Rounding is
// always up so the price moves conservatively against the swapper.
func GetNextSqrtPriceFromAmount0RoundingUp(sqrtPX96, liquidity, amount *uint256.Int, add bool) (*uint256.Int, error) {
	if amount.IsZero() {
		return new(uint256.Int).Set(sqrtPX96), nil
	}
	numerator1 := new(uint256.Int).Lsh(liquidity, 96)
	var product uint256.Int
	_, overflowed := product.MulOverflow(amount, sqrtPX96)

	if add {
		if !overflowed {
			denominator, carry := new(uint256.Int).AddOverflow(numerator1, &product)
			if !carry {
				return MulDivRoundingUp(numerator1, sqrtPX96, denominator)
			}
		}
		denominator := new(uint256.Int).Div(numerator1, sqrtPX96)
		denominator.Add(denominator, amount)
		return DivRoundingUp(numerator1, denominator)
	}

	// removing token0 the product must be exact and smaller than the
	// shifted liquidity, otherwise the pool could not hold the amount
	if overflowed || numerator1.Cmp(&product) <= 0 {
		return nil, ErrInvariant
	}
	denominator := new(uint256.Int).Sub(numerator1, &product)
	return MulDivRoundingUp(numerator1, sqrtPX96, denominator)
}

// GetNextSqrtPriceFromAmount1RoundingDown computes the sqrt price after
// adding or removing amount of token1, rounding down.
func GetNextSqrtPriceFromAmount1RoundingDown(sqrtPX96, liquidity, amount *uint256.Int, add bool) (*uint256.Int, error) {
	if add {
		var quotient *uint256.Int
		if amount.Cmp(MaxUint160) <= 0 {
			quotient = new(uint256.Int).Div(new(uint256.Int).Lsh(amount, 96), liquidity)
		} else {
			q, err := MulDiv(amount, Q96, liquidity)
			if err != nil {
				return nil, err
			}
			quotient = q
		}
		next, carry := new(uint256.Int).AddOverflow(sqrtPX96, quotient)
		if carry {
			return nil, OVERFLOW
		}
		return next, nil
	}

	quotient, err := MulDivRoundingUp(amount, Q96, liquidity)
	if err != nil {
		return nil, err
	}
	if sqrtPX96.Cmp(quotient) <= 0 {
		return nil, ErrInvariant
	}
	return new(uint256.Int).Sub(sqrtPX96, quotient), nil
}

// GetNextSqrtPriceFromInput returns the price after swapping amountIn,
// rounded so the exact-input amount is never overestimated.
func GetNextSqrtPriceFromInput(sqrtPX96, liquidity, amountIn *uint256.Int, zeroForOne bool) (*uint256.Int, error) {
	if sqrtPX96.IsZero() || liquidity.IsZero() {
		return nil, PRICE_OR_LIQUIDITY_ZERO
	}
	if zeroForOne {
		return GetNextSqrtPriceFromAmount0RoundingUp(sqrtPX96, liquidity, amountIn, true)
	}
	return GetNextSqrtPriceFromAmount1RoundingDown(sqrtPX96, liquidity, amountIn, true)
}

// GetNextSqrtPriceFromOutput returns the price after paying out amountOut,
// rounded so the exact-output amount is never underestimated.
func GetNextSqrtPriceFromOutput(sqrtPX96, liquidity, amountOut *uint256.Int, zeroForOne bool) (*uint256.Int, error) {
	if sqrtPX96.IsZero() || liquidity.IsZero() {
		return nil, PRICE_OR_LIQUIDITY_ZERO
	}
	if zeroForOne {
		return GetNextSqrtPriceFromAmount1RoundingDown(sqrtPX96, liquidity, amountOut, false)
	}
	return GetNextSqrtPriceFromAmount0RoundingUp(sqrtPX96, liquidity, amountOut, false)
}

// GetAmount0DeltaWithRoundUp returns the token0 amount covering the range
// between two sqrt prices at the given liquidity:
// liquidity * 2^96 * (sqrtB - sqrtA) / (sqrtB * sqrtA)
func GetAmount0DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int, roundUp bool) (*uint256.Int, error) {
	if sqrtRatioAX96.Cmp(sqrtRatioBX96) > 0 {
		sqrtRatioAX96, sqrtRatioBX96 = sqrtRatioBX96, sqrtRatioAX96
	}
	if sqrtRatioAX96.IsZero() {
		return nil, PRICE_OR_LIQUIDITY_ZERO
	}
	numerator1 := new(uint256.Int).Lsh(liquidity, 96)
	numerator2 := new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96)

	if roundUp {
		tmp, err := MulDivRoundingUp(numerator1, numerator2, sqrtRatioBX96)
		if err != nil {
			return nil, err
		}
		return DivRoundingUp(tmp, sqrtRatioAX96)
	}
	tmp, err := MulDiv(numerator1, numerator2, sqrtRatioBX96)
	if err != nil {
		return nil, err
	}
	return new(uint256.Int).Div(tmp, sqrtRatioAX96), nil
}

// GetAmount1DeltaWithRoundUp returns the token1 amount for the range:
// liquidity * (sqrtB - sqrtA) / 2^96
func GetAmount1DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity *uint256.Int, roundUp bool) (*uint256.Int, error) {
	if sqrtRatioAX96.Cmp(sqrtRatioBX96) > 0 {
		sqrtRatioAX96, sqrtRatioBX96 = sqrtRatioBX96, sqrtRatioAX96
	}
	numerator := new(uint256.Int).Sub(sqrtRatioBX96, sqrtRatioAX96)
	if roundUp {
		return MulDivRoundingUp(liquidity, numerator, Q96)
	}
	return MulDiv(liquidity, numerator, Q96)
}

// GetAmount0Delta is the signed variant: negative liquidity means the
// amount leaves the pool and is rounded down, positive liquidity rounds up.
func GetAmount0Delta(sqrtRatioAX96, sqrtRatioBX96 *uint256.Int, liquidity int256.Int) (int256.Int, error) {
	if liquidity.IsNeg() {
		r, err := GetAmount0DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity.Abs(), false)
		if err != nil {
			return int256.Zero(), err
		}
		v, err := int256.FromUint256(r)
		if err != nil {
			return int256.Zero(), err
		}
		return v.Neg(), nil
	}
	r, err := GetAmount0DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity.Abs(), true)
	if err != nil {
		return int256.Zero(), err
	}
	return int256.FromUint256(r)
}

// GetAmount1Delta is the signed variant of GetAmount1DeltaWithRoundUp.
func GetAmount1Delta(sqrtRatioAX96, sqrtRatioBX96 *uint256.Int, liquidity int256.Int) (int256.Int, error) {
	if liquidity.IsNeg() {
		r, err := GetAmount1DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity.Abs(), false)
		if err != nil {
			return int256.Zero(), err
		}
		v, err := int256.FromUint256(r)
		if err != nil {
			return int256.Zero(), err
		}
		return v.Neg(), nil
	}
	r, err := GetAmount1DeltaWithRoundUp(sqrtRatioAX96, sqrtRatioBX96, liquidity.Abs(), true)
	if err != nil {
		return int256.Zero(), err
	}
	return int256.FromUint256(r)
}
