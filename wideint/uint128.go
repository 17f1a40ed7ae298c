package wideint

import (
	"encoding/binary"
	"math/bits"
	"strconv"
)

// Uint128 is a 128 bit unsigned integer composed of two 64 bit words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// U128From64 returns v widened to 128 bits.
func U128From64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Mul128 returns the full 128 bit product of x and y. It cannot overflow.
func Mul128(x, y uint64) Uint128 {
	hi, lo := bits.Mul64(x, y)

	return Uint128{Hi: hi, Lo: lo}
}

// U128FromBytesLE reconstructs a Uint128 from its 16 byte little-endian
// representation.
func U128FromBytesLE(data []byte) Uint128 {
	return Uint128{
		Lo: binary.LittleEndian.Uint64(data[0:8]),
		Hi: binary.LittleEndian.Uint64(data[8:16]),
	}
}

// PutBytesLE writes x to data in little-endian order. data must be at least
// 16 bytes.
func (x Uint128) PutBytesLE(data []byte) {
	binary.LittleEndian.PutUint64(data[0:8], x.Lo)
	binary.LittleEndian.PutUint64(data[8:16], x.Hi)
}

// IsZero returns true if x is zero.
func (x Uint128) IsZero() bool {
	return x.Hi == 0 && x.Lo == 0
}

// Cmp compares x and y and returns -1, 0, or +1.
func (x Uint128) Cmp(y Uint128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}

		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}

		return 1
	}

	return 0
}

// Uint64 returns x narrowed to 64 bits if it fits.
func (x Uint128) Uint64() (uint64, bool) {
	if x.Hi != 0 {
		return 0, false
	}

	return x.Lo, true
}

// AddChecked returns x + y and false on carry out of the width.
func (x Uint128) AddChecked(y Uint128) (Uint128, bool) {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	hi, c := bits.Add64(x.Hi, y.Hi, c)

	return Uint128{Hi: hi, Lo: lo}, c == 0
}

// SubChecked returns x - y and false on borrow below zero.
func (x Uint128) SubChecked(y Uint128) (Uint128, bool) {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	hi, b := bits.Sub64(x.Hi, y.Hi, b)

	return Uint128{Hi: hi, Lo: lo}, b == 0
}

// MulChecked returns x * y and false if the product exceeds 128 bits.
func (x Uint128) MulChecked(y Uint128) (Uint128, bool) {
	if x.Hi != 0 && y.Hi != 0 {
		return Uint128{}, false
	}

	prod := Mul128(x.Lo, y.Lo)

	// Cross terms land in the high word; their own high halves are
	// already past the width.
	c1h, c1l := bits.Mul64(x.Hi, y.Lo)
	c2h, c2l := bits.Mul64(x.Lo, y.Hi)
	if c1h != 0 || c2h != 0 {
		return Uint128{}, false
	}

	hi, c := bits.Add64(prod.Hi, c1l, 0)
	if c != 0 {
		return Uint128{}, false
	}

	hi, c = bits.Add64(hi, c2l, 0)
	if c != 0 {
		return Uint128{}, false
	}

	return Uint128{Hi: hi, Lo: prod.Lo}, true
}

// QuoChecked returns x / y and false if y is zero.
func (x Uint128) QuoChecked(y Uint128) (Uint128, bool) {
	if y.IsZero() {
		return Uint128{}, false
	}

	if y.Hi == 0 {
		quo, _ := x.quoRem64(y.Lo)

		return quo, true
	}

	return x.quoLong(y), true
}

// quoRem64 divides x by a single word divisor. d must not be zero.
func (x Uint128) quoRem64(d uint64) (Uint128, uint64) {
	qhi, r := bits.Div64(0, x.Hi, d)
	qlo, r := bits.Div64(r, x.Lo, d)

	return Uint128{Hi: qhi, Lo: qlo}, r
}

// quoLong is restoring long division for multi word divisors.
func (x Uint128) quoLong(y Uint128) Uint128 {
	var quo, rem Uint128

	for i := x.bitLen() - 1; i >= 0; i-- {
		rem = rem.shl1()
		rem.Lo |= x.bit(i)

		if rem.Cmp(y) >= 0 {
			rem, _ = rem.SubChecked(y)
			quo = quo.setBit(i)
		}
	}

	return quo
}

func (x Uint128) bitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}

	return bits.Len64(x.Lo)
}

func (x Uint128) bit(i int) uint64 {
	if i >= 64 {
		return (x.Hi >> (i - 64)) & 1
	}

	return (x.Lo >> i) & 1
}

func (x Uint128) shl1() Uint128 {
	return Uint128{
		Hi: x.Hi<<1 | x.Lo>>63,
		Lo: x.Lo << 1,
	}
}

func (x Uint128) setBit(i int) Uint128 {
	if i >= 64 {
		x.Hi |= 1 << (i - 64)
	} else {
		x.Lo |= 1 << i
	}

	return x
}

// String renders x in base 10, peeling 19 digit chunks (10^19 is the
// largest power of ten that fits a word).
func (x Uint128) String() string {
	quo, rem := x.quoRem64(chunk)
	if quo.IsZero() {
		return strconv.FormatUint(rem, 10)
	}

	return quo.String() + pad19(rem)
}
