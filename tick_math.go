package uniswap_v3_math

import (
	"errors"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"

	"uniswap-v3-math/int256"
)

var INVALID_TICK = errors.New("INVALID_TICK")
var INVALID_SQRT_RATIO = errors.New("INVALID_SQRT_RATIO")

// sqrtRatioMul[k] is sqrt(1/1.0001)^(2^(k+1)) in Q128; together with the
// two seed values below they decompose sqrt(1.0001)^-absTick over the bits
// of absTick.
var (
	sqrtRatioSeedOdd  = fromHex("0xfffcb933bd6fad37aa2d162d1a594001")
	sqrtRatioSeedEven = fromHex("0x100000000000000000000000000000000")

	sqrtRatioMul = [19]*uint256.Int{
		fromHex("0xfff97272373d413259a46990580e213a"),
		fromHex("0xfff2e50f5f656932ef12357cf3c7fdcc"),
		fromHex("0xffe5caca7e10e4e61c3624eaa0941cd0"),
		fromHex("0xffcb9843d60f6159c9db58835c926644"),
		fromHex("0xff973b41fa98c081472e6896dfb254c0"),
		fromHex("0xff2ea16466c96a3843ec78b326b52861"),
		fromHex("0xfe5dee046a99a2a811c461f1969c3053"),
		fromHex("0xfcbe86c7900a88aedcffc83b479aa3a4"),
		fromHex("0xf987a7253ac413176f2b074cf7815e54"),
		fromHex("0xf3392b0822b70005940c7a398e4b70f3"),
		fromHex("0xe7159475a2c29b7443b29c7fa6e889d9"),
		fromHex("0xd097f3bdfd2022b8845ad8f792aa5825"),
		fromHex("0xa9f746462d870fdf8a65dc1f90e061e5"),
		fromHex("0x70d869a156d2a1b890bb3df62baf32f7"),
		fromHex("0x31be135f97d08fd981231505542fcfa6"),
		fromHex("0x9aa508b5b7a84e1c677de54f3e99bc9"),
		fromHex("0x5d6af8dedb81196699c329225ee604"),
		fromHex("0x2216e584f5fa1ea926041bedfe98"),
		fromHex("0x48a170391f7dc42444e8fa2"),
	}

	mask32 = fromHex("0xffffffff")
)

// thresholds for the most-significant-bit extraction in GetTickAtSqrtRatio
var msbSteps = [7]struct {
	threshold *uint256.Int
	shift     uint64
}{
	{fromHex("0xffffffffffffffffffffffffffffffff"), 128},
	{uint256.NewInt(0xffffffffffffffff), 64},
	{uint256.NewInt(0xffffffff), 32},
	{uint256.NewInt(0xffff), 16},
	{uint256.NewInt(0xff), 8},
	{uint256.NewInt(0xf), 4},
	{uint256.NewInt(0x3), 2},
}

var (
	logSqrt10001   = int256.FromUint128(0xa301d71055774c85, 0x3627, false)             // 255738958999603826347141
	tickLowMargin  = int256.FromUint128(0x5af012a19d003aaa, 0x28f6481ab7f045a, false)  // 3402992956809132418596140100660247210
	tickHighMargin = int256.FromUint128(0x455e260799a0632f, 0xdb2df09e81959a81, false) // 291339464771989622907027621153398088495
	uint256One     = uint256.NewInt(1)
)

// GetSqrtRatioAtTick returns sqrt(1.0001^tick) * 2^96 as a Q64.96 value.
// The mapping is exact and deterministic: callers on every platform must
// observe the same 256-bit result for the same tick.
func GetSqrtRatioAtTick(tick int64) (*uint256.Int, error) {
	if tick < MIN_TICK || tick > MAX_TICK {
		return nil, INVALID_TICK
	}
	absTick := tick
	if absTick < 0 {
		absTick = -absTick
	}

	ratio := new(uint256.Int)
	if absTick&0x1 != 0 {
		ratio.Set(sqrtRatioSeedOdd)
	} else {
		ratio.Set(sqrtRatioSeedEven)
	}
	// ratio stays below 2^129 and every multiplier below 2^128, so the
	// 256-bit product never truncates before the shift
	for i, mul := range sqrtRatioMul {
		if absTick&(1<<uint(i+1)) != 0 {
			ratio.Rsh(ratio.Mul(ratio, mul), 128)
		}
	}
	// the decomposition above computes sqrt(1.0001)^-absTick; take the
	// reciprocal for non-negative ticks
	if tick >= 0 {
		ratio.Div(MaxUint256, ratio)
	}

	// Q128 -> Q96, rounding up whenever the discarded bits are nonzero
	var rem uint256.Int
	rem.And(ratio, mask32)
	ratio.Rsh(ratio, 32)
	if !rem.IsZero() {
		ratio.AddUint64(ratio, 1)
	}
	return ratio, nil
}

// GetTickAtSqrtRatio returns the greatest tick whose sqrt ratio is less
// than or equal to sqrtRatioX96. The binary-log approximation can land one
// tick low near boundaries, so the upper candidate is verified by
// recomputing the forward direction; that recompute-and-compare is the
// authoritative tie-break.
func GetTickAtSqrtRatio(sqrtRatioX96 *uint256.Int) (int64, error) {
	if sqrtRatioX96.Cmp(MIN_SQRT_RATIO) < 0 || sqrtRatioX96.Cmp(MAX_SQRT_RATIO) >= 0 {
		return 0, INVALID_SQRT_RATIO
	}
	ratio := new(uint256.Int).Lsh(sqrtRatioX96, 32)

	r := new(uint256.Int).Set(ratio)
	msb := uint64(0)
	for _, s := range msbSteps {
		if r.Gt(s.threshold) {
			msb |= s.shift
			r.Rsh(r, uint(s.shift))
		}
	}
	if r.Gt(uint256One) {
		msb |= 1
	}

	// normalize r to [2^127, 2^128) and seed the Q64 base-2 log
	var log2 int256.Int
	if msb >= 128 {
		r.Rsh(ratio, uint(msb-127))
		log2 = int256.FromUint128(0, msb-128, false)
	} else {
		r.Lsh(ratio, uint(127-msb))
		log2 = int256.FromUint128(0, 128-msb, true)
	}

	// 14 rounds of squaring refine the fractional bits; each round
	// extracts the bit that crosses 2^128 and folds it into the log
	for offset := uint(63); offset >= 51; offset-- {
		r.Rsh(r.Mul(r, r), 127)
		carry := new(uint256.Int).Rsh(r, 128).Uint64()
		log2 = log2.Or(int256.FromUint64(carry<<offset, false))
		r.Rsh(r, uint(carry))
	}
	r.Rsh(r.Mul(r, r), 127)
	carry := new(uint256.Int).Rsh(r, 128).Uint64()
	log2 = log2.Or(int256.FromUint64(carry<<50, false))

	ls10001, err := log2.Mul(logSqrt10001)
	if err != nil {
		return 0, err
	}
	low, err := ls10001.Sub(tickLowMargin)
	if err != nil {
		return 0, err
	}
	tickLow, err := low.Shr(128).AsInt64()
	if err != nil {
		return 0, err
	}
	high, err := ls10001.Add(tickHighMargin)
	if err != nil {
		return 0, err
	}
	tickHigh, err := high.Shr(128).AsInt64()
	if err != nil {
		return 0, err
	}

	if tickLow == tickHigh {
		return tickLow, nil
	}
	upper, err := GetSqrtRatioAtTick(tickHigh)
	if err != nil {
		return 0, err
	}
	if upper.Cmp(sqrtRatioX96) <= 0 {
		return tickHigh, nil
	}
	return tickLow, nil
}

// TickSpacingToMaxLiquidityPerTick returns the maximum liquidity a single
// tick may hold so that the sum over all usable ticks stays within uint128.
func TickSpacingToMaxLiquidityPerTick(tickSpacing int64) decimal.Decimal {
	ts := decimal.NewFromInt(tickSpacing)
	minTick := decimal.NewFromInt(MIN_TICK).Div(ts).Floor().Mul(ts)
	maxTick := decimal.NewFromInt(MAX_TICK).Div(ts).Floor().Mul(ts)
	numTicks := maxTick.Sub(minTick).Div(ts).Floor().Add(decimal.NewFromInt(1))
	return MaxUint128Decimal.Div(numTicks).Floor()
}
