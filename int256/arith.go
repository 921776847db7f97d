package int256

import (
	"math/bits"

	"github.com/holiman/uint256"
)

// addAbs adds two magnitudes limb-wise with carry propagation. It fails if
// a carry survives the most significant limb or the result sets bit 255,
// either of which would leave the signed range.
func addAbs(a, b *uint256.Int) (uint256.Int, bool) {
	var (
		sum   uint256.Int
		carry uint64
	)
	for i := 0; i < 4; i++ {
		sum[i], carry = bits.Add64(a[i], b[i], carry)
	}
	if carry != 0 || sum[3]>>63 != 0 {
		return uint256.Int{}, false
	}
	return sum, true
}

// subAbs subtracts b from a limb-wise with borrow propagation. The caller
// arranges a >= b; a surviving borrow or a set top bit still fails rather
// than wrap.
func subAbs(a, b *uint256.Int) (uint256.Int, bool) {
	var (
		diff   uint256.Int
		borrow uint64
	)
	for i := 0; i < 4; i++ {
		diff[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	if borrow != 0 || diff[3]>>63 != 0 {
		return uint256.Int{}, false
	}
	return diff, true
}

// Add returns z + other, dispatching the four sign combinations onto the
// magnitude primitives. Same signs add magnitudes and keep the sign;
// differing signs subtract the smaller magnitude from the larger and take
// the larger operand's sign.
func (z Int) Add(other Int) (Int, error) {
	if z.neg == other.neg {
		sum, ok := addAbs(&z.abs, &other.abs)
		if !ok {
			return Int{}, ErrAdditionOverflow
		}
		return makeInt(sum, z.neg), nil
	}
	switch absCmp(&z.abs, &other.abs) {
	case 0:
		return Int{}, nil
	case 1:
		diff, ok := subAbs(&z.abs, &other.abs)
		if !ok {
			return Int{}, ErrAdditionOverflow
		}
		return makeInt(diff, z.neg), nil
	default:
		diff, ok := subAbs(&other.abs, &z.abs)
		if !ok {
			return Int{}, ErrAdditionOverflow
		}
		return makeInt(diff, other.neg), nil
	}
}

// Sub returns z - other by adding the negation.
func (z Int) Sub(other Int) (Int, error) {
	r, err := z.Add(other.Neg())
	if err != nil {
		return Int{}, ErrSubtractionOverflow
	}
	return r, nil
}

// di256 is the unsigned 512-bit accumulator for multiplication,
// little-limb-first. It never escapes the multiply.
type di256 [8]uint64

// narrow converts the accumulator back to a 256-bit magnitude. The upper
// four limbs must be zero and bit 255 clear, otherwise the product does
// not fit the signed range.
func (d *di256) narrow() (uint256.Int, bool) {
	if d[4]|d[5]|d[6]|d[7] != 0 || d[3]>>63 != 0 {
		return uint256.Int{}, false
	}
	return uint256.Int{d[0], d[1], d[2], d[3]}, true
}

// Mul returns z * other via schoolbook 4x4 limb multiplication into the
// 512-bit accumulator. Each limb pair produces a 128-bit partial product;
// the running carry per row never exceeds 64 bits because
// limb*limb + acc + carry <= 2^128 - 1. The result sign is the XOR of the
// operand signs.
func (z Int) Mul(other Int) (Int, error) {
	var acc di256
	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(z.abs[i], other.abs[j])
			var c uint64
			lo, c = bits.Add64(lo, acc[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			acc[i+j] = lo
			carry = hi
		}
		acc[i+4] = carry
	}
	mag, ok := acc.narrow()
	if !ok {
		return Int{}, ErrMultiplicationOverflow
	}
	return makeInt(mag, z.neg != other.neg), nil
}
