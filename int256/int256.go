// Package int256 implements a signed 256-bit integer on top of an unsigned
// 256-bit magnitude, in sign-magnitude form. Every arithmetic operation
// detects overflow instead of wrapping: prices and liquidity deltas built on
// this type must never be silently misread as a different value.
package int256

import (
	"errors"
	"math"

	"github.com/holiman/uint256"
)

var (
	ErrConversionOverflow     = errors.New("int256: uint256 value exceeds the signed range")
	ErrAdditionOverflow       = errors.New("int256: addition overflow")
	ErrSubtractionOverflow    = errors.New("int256: subtraction overflow")
	ErrMultiplicationOverflow = errors.New("int256: multiplication overflow")
	ErrCastOverflow           = errors.New("int256: value does not fit in target type")
)

// Int is a signed 256-bit integer. The magnitude is an unsigned 256-bit
// value with bit 255 always clear, so the usable range is
// [-(2^255-1), 2^255-1]. Zero is never negative. Values are immutable:
// every operation returns a new Int.
type Int struct {
	neg bool
	abs uint256.Int
}

// makeInt normalizes the zero representation: there is no negative zero.
func makeInt(abs uint256.Int, neg bool) Int {
	if neg && abs.IsZero() {
		neg = false
	}
	return Int{neg: neg, abs: abs}
}

// Zero returns the Int zero value.
func Zero() Int {
	return Int{}
}

// FromUint64 returns v as an Int, negated when negative is set.
func FromUint64(v uint64, negative bool) Int {
	var abs uint256.Int
	abs.SetUint64(v)
	return makeInt(abs, negative)
}

// FromUint128 builds an Int from the low and high 64-bit words of an
// unsigned 128-bit magnitude.
func FromUint128(lo, hi uint64, negative bool) Int {
	abs := uint256.Int{lo, hi, 0, 0}
	return makeInt(abs, negative)
}

// FromInt64 converts a native signed 64-bit value.
func FromInt64(v int64) Int {
	if v < 0 {
		// two-step negation so math.MinInt64 does not overflow
		return FromUint64(uint64(-(v+1))+1, true)
	}
	return FromUint64(uint64(v), false)
}

// FromUint256 converts an unsigned 256-bit value to a non-negative Int.
// Fails with ErrConversionOverflow if bit 255 is set, since the magnitude
// would be outside the signed range.
func FromUint256(v *uint256.Int) (Int, error) {
	if v[3]>>63 != 0 {
		return Int{}, ErrConversionOverflow
	}
	return Int{abs: *v}, nil
}

// FromUint256Unchecked adopts v as a non-negative magnitude without the
// range check. Callers that feed two's-complement bit patterns back through
// the arithmetic (Shr, Or) rely on this.
func FromUint256Unchecked(v *uint256.Int) Int {
	return Int{abs: *v}
}

// IsZero reports whether z is zero.
func (z Int) IsZero() bool {
	return z.abs.IsZero()
}

// IsNeg reports whether z is strictly negative.
func (z Int) IsNeg() bool {
	return z.neg
}

// Sign returns -1, 0 or 1.
func (z Int) Sign() int {
	if z.abs.IsZero() {
		return 0
	}
	if z.neg {
		return -1
	}
	return 1
}

// Neg returns -z.
func (z Int) Neg() Int {
	return makeInt(z.abs, !z.neg)
}

// Abs returns a copy of the magnitude of z.
func (z Int) Abs() *uint256.Int {
	abs := z.abs
	return &abs
}

// Cmp returns -1 if z < other, 0 if equal, 1 if z > other. Differing signs
// resolve by sign alone; equal signs compare by magnitude, inverted for
// negatives.
func (z Int) Cmp(other Int) int {
	if z.neg != other.neg {
		if z.neg {
			return -1
		}
		return 1
	}
	c := absCmp(&z.abs, &other.abs)
	if z.neg {
		return -c
	}
	return c
}

// Eq reports whether z == other.
func (z Int) Eq(other Int) bool {
	return z.neg == other.neg && z.abs.Eq(&other.abs)
}

// absCmp compares two magnitudes limb by limb from the most significant
// down; the first differing limb decides.
func absCmp(a, b *uint256.Int) int {
	for i := 3; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// AsInt64 narrows z to int64. Fails with ErrCastOverflow unless the upper
// three magnitude limbs are zero and the low limb fits the signed range.
func (z Int) AsInt64() (int64, error) {
	if z.abs[1] != 0 || z.abs[2] != 0 || z.abs[3] != 0 {
		return 0, ErrCastOverflow
	}
	if z.neg {
		if z.abs[0] > 1<<63 {
			return 0, ErrCastOverflow
		}
		if z.abs[0] == 1<<63 {
			return math.MinInt64, nil
		}
		return -int64(z.abs[0]), nil
	}
	if z.abs[0] > math.MaxInt64 {
		return 0, ErrCastOverflow
	}
	return int64(z.abs[0]), nil
}

// String renders z in decimal with a leading minus for negatives.
func (z Int) String() string {
	if z.neg {
		return "-" + z.abs.ToBig().String()
	}
	return z.abs.ToBig().String()
}
