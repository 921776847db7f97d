package uniswap_v3_math

import (
	"github.com/holiman/uint256"

	"uniswap-v3-math/int256"
)

// ComputeSwapStep advances the price within a single tick range. A
// non-negative amountRemaining is an exact-input swap (fee taken from the
// input), a negative one is exact-output. The step stops at the target
// price when the remaining amount is enough to reach it.
func ComputeSwapStep(
	sqrtRatioCurrentX96, sqrtRatioTargetX96, liquidity *uint256.Int,
	amountRemaining int256.Int,
	feePips FeeAmount,
) (sqrtRatioNextX96, amountIn, amountOut, feeAmount *uint256.Int, err error) {
	zeroForOne := sqrtRatioCurrentX96.Cmp(sqrtRatioTargetX96) >= 0
	exactIn := !amountRemaining.IsNeg()
	remAbs := amountRemaining.Abs()
	fee := uint256.NewInt(uint64(feePips))
	feeRemainder := new(uint256.Int).Sub(MAX_FEE, fee)

	if exactIn {
		var amountRemainingLessFee *uint256.Int
		amountRemainingLessFee, err = MulDiv(remAbs, feeRemainder, MAX_FEE)
		if err != nil {
			return
		}
		if zeroForOne {
			amountIn, err = GetAmount0DeltaWithRoundUp(sqrtRatioTargetX96, sqrtRatioCurrentX96, liquidity, true)
		} else {
			amountIn, err = GetAmount1DeltaWithRoundUp(sqrtRatioCurrentX96, sqrtRatioTargetX96, liquidity, true)
		}
		if err != nil {
			return
		}
		if amountRemainingLessFee.Cmp(amountIn) >= 0 {
			sqrtRatioNextX96 = new(uint256.Int).Set(sqrtRatioTargetX96)
		} else {
			sqrtRatioNextX96, err = GetNextSqrtPriceFromInput(sqrtRatioCurrentX96, liquidity, amountRemainingLessFee, zeroForOne)
			if err != nil {
				return
			}
		}
	} else {
		if zeroForOne {
			amountOut, err = GetAmount1DeltaWithRoundUp(sqrtRatioTargetX96, sqrtRatioCurrentX96, liquidity, false)
		} else {
			amountOut, err = GetAmount0DeltaWithRoundUp(sqrtRatioCurrentX96, sqrtRatioTargetX96, liquidity, false)
		}
		if err != nil {
			return
		}
		if remAbs.Cmp(amountOut) >= 0 {
			sqrtRatioNextX96 = new(uint256.Int).Set(sqrtRatioTargetX96)
		} else {
			sqrtRatioNextX96, err = GetNextSqrtPriceFromOutput(sqrtRatioCurrentX96, liquidity, remAbs, zeroForOne)
			if err != nil {
				return
			}
		}
	}

	max := sqrtRatioTargetX96.Eq(sqrtRatioNextX96)
	if zeroForOne {
		if !(max && exactIn) {
			amountIn, err = GetAmount0DeltaWithRoundUp(sqrtRatioNextX96, sqrtRatioCurrentX96, liquidity, true)
			if err != nil {
				return
			}
		}
		if !(max && !exactIn) {
			amountOut, err = GetAmount1DeltaWithRoundUp(sqrtRatioNextX96, sqrtRatioCurrentX96, liquidity, false)
			if err != nil {
				return
			}
		}
	} else {
		if !(max && exactIn) {
			amountIn, err = GetAmount1DeltaWithRoundUp(sqrtRatioCurrentX96, sqrtRatioNextX96, liquidity, true)
			if err != nil {
				return
			}
		}
		if !(max && !exactIn) {
			amountOut, err = GetAmount0DeltaWithRoundUp(sqrtRatioCurrentX96, sqrtRatioNextX96, liquidity, false)
			if err != nil {
				return
			}
		}
	}

	if !exactIn && amountOut.Cmp(remAbs) > 0 {
		amountOut = new(uint256.Int).Set(remAbs)
	}

	if exactIn && !sqrtRatioNextX96.Eq(sqrtRatioTargetX96) {
		// the input ran out inside the range: whatever was not consumed
		// by the price move is the fee
		feeAmount = new(uint256.Int).Sub(remAbs, amountIn)
	} else {
		feeAmount, err = MulDivRoundingUp(amountIn, fee, feeRemainder)
		if err != nil {
			return
		}
	}
	return
}
