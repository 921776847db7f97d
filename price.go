package uniswap_v3_math

import (
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	MaxUint128Decimal = decimal.NewFromInt(2).Pow(decimal.NewFromInt(128)).Sub(decimal.NewFromInt(1))
	Q96Decimal        = decimal.NewFromInt(2).Pow(decimal.NewFromInt(96))
	Q192Decimal       = decimal.NewFromInt(2).Pow(decimal.NewFromInt(192))
)

// SqrtRatioX96ToPrice converts a Q64.96 sqrt ratio to the token1/token0
// price it encodes: (sqrtRatio / 2^96)^2.
func SqrtRatioX96ToPrice(sqrtRatioX96 *uint256.Int) decimal.Decimal {
	s := decimal.NewFromBigInt(sqrtRatioX96.ToBig(), 0).Div(Q96Decimal)
	return s.Mul(s)
}

// SqrtRatioX96ToTokenPrice adjusts the raw ratio for token decimals, giving
// the human-readable price of token0 quoted in token1.
func SqrtRatioX96ToTokenPrice(sqrtRatioX96 *uint256.Int, token0Decimals, token1Decimals int32) decimal.Decimal {
	return SqrtRatioX96ToPrice(sqrtRatioX96).Mul(decimal.New(1, token0Decimals-token1Decimals))
}

// PriceToSqrtRatioX96 converts a price back to a Q64.96 sqrt ratio by
// taking the integer square root of price * 2^192.
func PriceToSqrtRatioX96(price decimal.Decimal) *uint256.Int {
	n := price.Mul(Q192Decimal).BigInt()
	r := new(big.Int).Sqrt(n)
	out, _ := uint256.FromBig(r)
	return out
}
