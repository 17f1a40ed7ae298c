package wideint

import (
	"fmt"
	"math/bits"
	"strconv"
)

// chunk is 10^19, the largest power of ten representable in a word. Decimal
// rendering peels one chunk of 19 digits per divide.
const chunk uint64 = 10_000_000_000_000_000_000

func pad19(v uint64) string {
	return fmt.Sprintf("%019d", v)
}

// Uint192 is a 192 bit unsigned integer composed of three 64 bit words.
type Uint192 struct {
	Hi  uint64
	Mid uint64
	Lo  uint64
}

// U192From64 returns v widened to 192 bits.
func U192From64(v uint64) Uint192 {
	return Uint192{Lo: v}
}

// U192From128 returns v zero extended to 192 bits.
func U192From128(v Uint128) Uint192 {
	return Uint192{Mid: v.Hi, Lo: v.Lo}
}

// Mul192 returns the full 192 bit product of a 128 bit x and a 64 bit y. It
// cannot overflow.
func Mul192(x Uint128, y uint64) Uint192 {
	h0, l0 := bits.Mul64(x.Lo, y)
	h1, l1 := bits.Mul64(x.Hi, y)

	mid, c := bits.Add64(h0, l1, 0)

	return Uint192{Hi: h1 + c, Mid: mid, Lo: l0}
}

// IsZero returns true if x is zero.
func (x Uint192) IsZero() bool {
	return x.Hi == 0 && x.Mid == 0 && x.Lo == 0
}

// Cmp compares x and y and returns -1, 0, or +1.
func (x Uint192) Cmp(y Uint192) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}

		return 1
	case x.Mid != y.Mid:
		if x.Mid < y.Mid {
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
func (x Uint192) Uint64() (uint64, bool) {
	if x.Hi != 0 || x.Mid != 0 {
		return 0, false
	}

	return x.Lo, true
}

// Uint128 returns x narrowed to 128 bits if it fits.
func (x Uint192) Uint128() (Uint128, bool) {
	if x.Hi != 0 {
		return Uint128{}, false
	}

	return Uint128{Hi: x.Mid, Lo: x.Lo}, true
}

// AddChecked returns x + y and false on carry out of the width.
func (x Uint192) AddChecked(y Uint192) (Uint192, bool) {
	lo, c := bits.Add64(x.Lo, y.Lo, 0)
	mid, c := bits.Add64(x.Mid, y.Mid, c)
	hi, c := bits.Add64(x.Hi, y.Hi, c)

	return Uint192{Hi: hi, Mid: mid, Lo: lo}, c == 0
}

// SubChecked returns x - y and false on borrow below zero.
func (x Uint192) SubChecked(y Uint192) (Uint192, bool) {
	lo, b := bits.Sub64(x.Lo, y.Lo, 0)
	mid, b := bits.Sub64(x.Mid, y.Mid, b)
	hi, b := bits.Sub64(x.Hi, y.Hi, b)

	return Uint192{Hi: hi, Mid: mid, Lo: lo}, b == 0
}

// MulChecked returns x * y and false if the product exceeds 192 bits.
func (x Uint192) MulChecked(y Uint192) (Uint192, bool) {
	// Any partial product with word weight >= 3 is already past the
	// width.
	if x.Hi != 0 && (y.Mid != 0 || y.Hi != 0) {
		return Uint192{}, false
	}
	if y.Hi != 0 && (x.Mid != 0 || x.Hi != 0) {
		return Uint192{}, false
	}

	p00h, p00l := bits.Mul64(x.Lo, y.Lo)
	p01h, p01l := bits.Mul64(x.Lo, y.Mid)
	p10h, p10l := bits.Mul64(x.Mid, y.Lo)
	p02h, p02l := bits.Mul64(x.Lo, y.Hi)
	p20h, p20l := bits.Mul64(x.Hi, y.Lo)
	p11h, p11l := bits.Mul64(x.Mid, y.Mid)

	// High halves of weight 2 partials land at weight 3.
	if p02h != 0 || p20h != 0 || p11h != 0 {
		return Uint192{}, false
	}

	lo := p00l

	mid, c1 := bits.Add64(p00h, p01l, 0)
	mid, c2 := bits.Add64(mid, p10l, 0)

	hi, c := bits.Add64(p01h, p10h, 0)
	if c != 0 {
		return Uint192{}, false
	}

	hi, c = bits.Add64(hi, c1+c2, 0)
	if c != 0 {
		return Uint192{}, false
	}

	hi, c = bits.Add64(hi, p02l, 0)
	if c != 0 {
		return Uint192{}, false
	}

	hi, c = bits.Add64(hi, p20l, 0)
	if c != 0 {
		return Uint192{}, false
	}

	hi, c = bits.Add64(hi, p11l, 0)
	if c != 0 {
		return Uint192{}, false
	}

	return Uint192{Hi: hi, Mid: mid, Lo: lo}, true
}

// QuoChecked returns x / y and false if y is zero.
func (x Uint192) QuoChecked(y Uint192) (Uint192, bool) {
	if y.IsZero() {
		return Uint192{}, false
	}

	if y.Hi == 0 && y.Mid == 0 {
		quo, _ := x.quoRem64(y.Lo)

		return quo, true
	}

	return x.quoLong(y), true
}

// quoRem64 divides x by a single word divisor. d must not be zero.
func (x Uint192) quoRem64(d uint64) (Uint192, uint64) {
	qhi, r := bits.Div64(0, x.Hi, d)
	qmid, r := bits.Div64(r, x.Mid, d)
	qlo, r := bits.Div64(r, x.Lo, d)

	return Uint192{Hi: qhi, Mid: qmid, Lo: qlo}, r
}

// quoLong is restoring long division for multi word divisors.
func (x Uint192) quoLong(y Uint192) Uint192 {
	var quo, rem Uint192

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

func (x Uint192) bitLen() int {
	switch {
	case x.Hi != 0:
		return 128 + bits.Len64(x.Hi)
	case x.Mid != 0:
		return 64 + bits.Len64(x.Mid)
	}

	return bits.Len64(x.Lo)
}

func (x Uint192) bit(i int) uint64 {
	switch {
	case i >= 128:
		return (x.Hi >> (i - 128)) & 1
	case i >= 64:
		return (x.Mid >> (i - 64)) & 1
	}

	return (x.Lo >> i) & 1
}

func (x Uint192) shl1() Uint192 {
	return Uint192{
		Hi:  x.Hi<<1 | x.Mid>>63,
		Mid: x.Mid<<1 | x.Lo>>63,
		Lo:  x.Lo << 1,
	}
}

func (x Uint192) setBit(i int) Uint192 {
	switch {
	case i >= 128:
		x.Hi |= 1 << (i - 128)
	case i >= 64:
		x.Mid |= 1 << (i - 64)
	default:
		x.Lo |= 1 << i
	}

	return x
}

// String renders x in base 10.
func (x Uint192) String() string {
	quo, rem := x.quoRem64(chunk)
	if quo.IsZero() {
		return strconv.FormatUint(rem, 10)
	}

	return quo.String() + pad19(rem)
}
