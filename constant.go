package uniswap_v3_math

import (
	"math/big"

	"github.com/holiman/uint256"
)

type FeeAmount int

const (
	FeeAmountLow    FeeAmount = 500
	FeeAmountMedium FeeAmount = 3000
	FeeAmountHigh   FeeAmount = 10000
)

var (
	MaxUint128 = fromHex("0xffffffffffffffffffffffffffffffff")
	MaxUint160 = fromHex("0xffffffffffffffffffffffffffffffffffffffff")
	MaxUint256 = fromHex("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	Q32  = fromHex("0x100000000")
	Q96  = fromHex("0x1000000000000000000000000")
	Q128 = fromHex("0x100000000000000000000000000000000")

	MAX_FEE = uint256.NewInt(1000000)

	TICK_SPACINGS = map[FeeAmount]int64{
		FeeAmountLow:    10,
		FeeAmountMedium: 60,
		FeeAmountHigh:   200,
	}

	MIN_TICK int64 = -887272
	MAX_TICK int64 = -MIN_TICK

	MIN_SQRT_RATIO = uint256.NewInt(4295128739)
	MAX_SQRT_RATIO = fromDec("1461446703485210103287273052203988822378723970342")
)

func fromHex(s string) *uint256.Int {
	n, _ := new(big.Int).SetString(s[2:], 16)
	return uint256.MustFromBig(n)
}

func fromDec(s string) *uint256.Int {
	n, _ := new(big.Int).SetString(s, 10)
	return uint256.MustFromBig(n)
}
