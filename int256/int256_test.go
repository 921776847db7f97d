package int256

import (
	"math"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// toBig converts an Int to the big.Int with the same value.
func toBig(z Int) *big.Int {
	b := z.abs.ToBig()
	if z.neg {
		b.Neg(b)
	}
	return b
}

// fromBig builds an Int from a big.Int that must fit the signed range.
func fromBig(t *testing.T, b *big.Int) Int {
	t.Helper()
	abs, overflow := uint256.FromBig(new(big.Int).Abs(b))
	require.False(t, overflow)
	require.Zero(t, abs[3]>>63)
	return makeInt(*abs, b.Sign() < 0)
}

func TestFromUint64(t *testing.T) {
	a := assert.New(t)

	a.Equal(int64(0), mustI64(t, FromUint64(0, false)))
	a.Equal(int64(-1000), mustI64(t, FromUint64(1000, true)))
	a.Equal(int64(1000), mustI64(t, FromUint64(1000, false)))

	// no negative zero
	a.False(FromUint64(0, true).IsNeg())
	a.True(FromUint64(0, true).Eq(Zero()))
}

func TestFromInt64(t *testing.T) {
	a := assert.New(t)
	for _, v := range []int64{0, 1, -1, 285, -375, math.MaxInt64, math.MinInt64} {
		a.Equal(v, mustI64(t, FromInt64(v)), "value %d", v)
	}
}

func TestFromUint128(t *testing.T) {
	a := assert.New(t)

	z := FromUint128(0, 1, false) // 2^64
	a.Equal("18446744073709551616", z.String())

	z = FromUint128(0, 5, true) // -(5 << 64)
	a.Equal("-92233720368547758080", z.String())

	a.False(FromUint128(0, 0, true).IsNeg())
}

func TestFromUint256(t *testing.T) {
	a := assert.New(t)

	v := uint256.NewInt(12345)
	z, err := FromUint256(v)
	a.NoError(err)
	a.Equal(int64(12345), mustI64(t, z))

	// top bit set is outside the signed range
	topBit := new(uint256.Int).Lsh(uint256.NewInt(1), 255)
	_, err = FromUint256(topBit)
	a.ErrorIs(err, ErrConversionOverflow)

	// the unchecked variant adopts the pattern as-is
	z = FromUint256Unchecked(topBit)
	a.False(z.IsNeg())
	a.Equal(uint64(1)<<63, z.abs[3])
}

func TestSign(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, Zero().Sign())
	a.Equal(1, FromInt64(7).Sign())
	a.Equal(-1, FromInt64(-7).Sign())
	a.Equal(1, FromInt64(-7).Neg().Sign())
	a.Equal(0, Zero().Neg().Sign())
}

func TestCmp(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y int64
		want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, -1},
		{-1, 1, -1},
		{1, -1, 1},
		{-2, -1, -1},
		{-1, -2, 1},
		{100, 100, 0},
		{-100, -100, 0},
		{math.MinInt64, math.MaxInt64, -1},
	}
	for _, tt := range tests {
		a.Equal(tt.want, FromInt64(tt.x).Cmp(FromInt64(tt.y)), "%d cmp %d", tt.x, tt.y)
	}

	// differing signs resolve by sign alone, regardless of magnitude
	wide := FromUint128(0, 1<<32, true)
	a.Equal(-1, wide.Cmp(FromInt64(1)))
	a.Equal(1, FromInt64(1).Cmp(wide))
}

func TestAbsCmp(t *testing.T) {
	a := assert.New(t)

	x := uint256.Int{0, 0, 0, 1}
	y := uint256.Int{^uint64(0), ^uint64(0), ^uint64(0), 0}
	a.Equal(1, absCmp(&x, &y))
	a.Equal(-1, absCmp(&y, &x))
	a.Equal(0, absCmp(&x, &x))

	// first differing limb from the top decides
	x = uint256.Int{5, 0, 7, 1}
	y = uint256.Int{9, 0, 6, 1}
	a.Equal(1, absCmp(&x, &y))
}

func TestAsInt64(t *testing.T) {
	a := assert.New(t)

	v, err := FromInt64(887272).AsInt64()
	a.NoError(err)
	a.Equal(int64(887272), v)

	v, err = FromInt64(-887272).AsInt64()
	a.NoError(err)
	a.Equal(int64(-887272), v)

	v, err = FromUint64(1<<63, true).AsInt64()
	a.NoError(err)
	a.Equal(int64(math.MinInt64), v)

	_, err = FromUint64(1<<63, false).AsInt64()
	a.ErrorIs(err, ErrCastOverflow)

	_, err = FromUint64(1<<63+1, true).AsInt64()
	a.ErrorIs(err, ErrCastOverflow)

	_, err = FromUint128(0, 1, false).AsInt64()
	a.ErrorIs(err, ErrCastOverflow)

	_, err = FromUint128(0, 1, true).AsInt64()
	a.ErrorIs(err, ErrCastOverflow)
}

func TestString(t *testing.T) {
	a := assert.New(t)
	a.Equal("0", Zero().String())
	a.Equal("-106875", FromInt64(-106875).String())
	a.Equal("106875", FromInt64(106875).String())
}

func mustI64(t *testing.T, z Int) int64 {
	t.Helper()
	v, err := z.AsInt64()
	require.NoError(t, err)
	return v
}
