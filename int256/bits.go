package int256

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// allOnes is the substrate max(): every bit set.
var allOnes = uint256.Int{^uint64(0), ^uint64(0), ^uint64(0), ^uint64(0)}

// twosComplement converts between the sign-magnitude form and the
// two's-complement bit pattern of a negative value: bitwise NOT of the
// magnitude, then +1 with carry across limbs. Non-negative values pass
// through unchanged. Applied to a negative-flagged pattern it is its own
// inverse, which Shr and Or use to convert back.
func (z Int) twosComplement() Int {
	if !z.neg {
		return z
	}
	var (
		p     uint256.Int
		carry uint64 = 1
	)
	for i := 0; i < 4; i++ {
		p[i], carry = bits.Add64(^z.abs[i], 0, carry)
	}
	return Int{neg: true, abs: p}
}

// Shr returns z >> shift with arithmetic (sign-preserving) semantics:
// negative values round toward negative infinity. The shift is a byte, so
// the full 0-255 domain is defined; the word/bit decomposition below is
// total over it.
func (z Int) Shr(shift uint8) Int {
	if shift == 0 || z.abs.IsZero() {
		return z
	}
	p := z.twosComplement().abs

	words := int(shift / 64)
	off := uint(shift % 64)

	var r uint256.Int
	for i := 0; i+words < 4; i++ {
		r[i] = p[i+words]
	}
	if off > 0 {
		for i := 0; i < 3; i++ {
			r[i] = r[i]>>off | r[i+1]<<(64-off)
		}
		r[3] >>= off
	}
	if !z.neg {
		return Int{abs: r}
	}
	// sign extension: a mask of ones over the vacated high bits
	var mask uint256.Int
	mask.Lsh(&allOnes, 256-uint(shift))
	r.Or(&r, &mask)
	return Int{neg: true, abs: r}.twosComplement()
}

// Or returns the bitwise OR of z and other over their two's-complement
// patterns. The result sign is the logical OR of the operand signs. This is
// how a positive bit mask is folded into a negative fixed-point accumulator.
func (z Int) Or(other Int) Int {
	a := z.twosComplement().abs
	b := other.twosComplement().abs
	var r uint256.Int
	for i := 0; i < 4; i++ {
		r[i] = a[i] | b[i]
	}
	out := Int{neg: z.neg || other.neg, abs: r}
	if out.neg {
		out = out.twosComplement()
	}
	return out
}
