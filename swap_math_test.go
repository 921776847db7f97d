package uniswap_v3_math

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniswap-v3-math/int256"
)

func TestComputeSwapStepExactInCapped(t *testing.T) {
	a := assert.New(t)
	price := encodeSqrtRatioX96(1, 1)
	priceTarget := encodeSqrtRatioX96(101, 100)
	liquidity := e18(2)
	amount, err := int256.FromUint256(e18(1))
	require.NoError(t, err)

	next, amountIn, amountOut, feeAmount, err := ComputeSwapStep(price, priceTarget, liquidity, amount, 600)
	require.NoError(t, err)

	a.Equal("9975124224178055", amountIn.ToBig().String())
	a.Equal("5988667735148", feeAmount.ToBig().String())
	a.Equal("9925619580021728", amountOut.ToBig().String())
	a.Equal(priceTarget, next, "the whole input is not needed to reach the target")

	consumed := new(uint256.Int).Add(amountIn, feeAmount)
	a.True(consumed.Cmp(amount.Abs()) < 0, "capped step consumes less than the full input")
}

func TestComputeSwapStepExactOutCapped(t *testing.T) {
	a := assert.New(t)
	price := encodeSqrtRatioX96(1, 1)
	priceTarget := encodeSqrtRatioX96(101, 100)
	liquidity := e18(2)
	amount, err := int256.FromUint256(e18(1))
	require.NoError(t, err)

	next, amountIn, amountOut, feeAmount, err := ComputeSwapStep(price, priceTarget, liquidity, amount.Neg(), 600)
	require.NoError(t, err)

	a.Equal("9975124224178055", amountIn.ToBig().String())
	a.Equal("5988667735148", feeAmount.ToBig().String())
	a.Equal("9925619580021728", amountOut.ToBig().String())
	a.Equal(priceTarget, next)
	a.True(amountOut.Cmp(amount.Abs()) < 0, "the range cannot supply the requested output")
}

func TestComputeSwapStepExactInFullyConsumed(t *testing.T) {
	a := assert.New(t)
	price := encodeSqrtRatioX96(1, 1)
	priceTarget := encodeSqrtRatioX96(1000, 100)
	liquidity := e18(2)
	amount, err := int256.FromUint256(e18(1))
	require.NoError(t, err)

	next, amountIn, amountOut, feeAmount, err := ComputeSwapStep(price, priceTarget, liquidity, amount, 600)
	require.NoError(t, err)

	// the target is far away, the price stops inside the range and the
	// whole input is accounted for as amountIn + fee
	a.True(next.Cmp(priceTarget) < 0)
	a.True(next.Cmp(price) > 0)
	total := new(uint256.Int).Add(amountIn, feeAmount)
	a.Equal(amount.Abs(), total, "entire amount is used for input and fee")
	a.False(amountOut.IsZero())
}

func TestComputeSwapStepExactOutFullyReceived(t *testing.T) {
	a := assert.New(t)
	price := encodeSqrtRatioX96(1, 1)
	priceTarget := encodeSqrtRatioX96(10000, 100)
	liquidity := e18(2)
	out, err := int256.FromUint256(e18(1))
	require.NoError(t, err)

	next, amountIn, amountOut, feeAmount, err := ComputeSwapStep(price, priceTarget, liquidity, out.Neg(), 600)
	require.NoError(t, err)

	a.True(next.Cmp(priceTarget) < 0, "price stops before the target")
	a.Equal(out.Abs(), amountOut, "exact output is delivered in full")
	a.False(amountIn.IsZero())
	a.False(feeAmount.IsZero())
}

func TestComputeSwapStepZeroForOne(t *testing.T) {
	a := assert.New(t)

	// target below current price swaps token0 for token1
	price := encodeSqrtRatioX96(1, 1)
	priceTarget := encodeSqrtRatioX96(100, 101)
	liquidity := e18(2)
	amount, err := int256.FromUint256(e18(1))
	require.NoError(t, err)

	next, amountIn, amountOut, _, err := ComputeSwapStep(price, priceTarget, liquidity, amount, 600)
	require.NoError(t, err)
	a.Equal(priceTarget, next)
	a.False(amountIn.IsZero())
	a.False(amountOut.IsZero())
	a.True(next.Cmp(price) < 0, "price moves down")
}
