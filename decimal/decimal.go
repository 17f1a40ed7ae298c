package decimal

import (
	"strings"

	"github.com/calebcase/wad"
	"github.com/calebcase/wad/rate"
	"github.com/calebcase/wad/wideint"
)

// Decimal is a large fixed point value, precise to 18 digits.
type Decimal struct {
	val wideint.Uint192
}

var (
	w      = wideint.U192From64(wad.WAD)
	halfW  = wideint.U192From64(wad.HalfWAD)
	wLess1 = wideint.U192From64(wad.WAD - 1)
)

// Zero returns the additive identity.
func Zero() Decimal {
	return Decimal{}
}

// One returns the multiplicative identity.
func One() Decimal {
	return Decimal{val: w}
}

// FromUint64 returns val scaled by WAD.
func FromUint64(val uint64) Decimal {
	return Decimal{val: wideint.U192From128(wideint.Mul128(val, wad.WAD))}
}

// FromUint128 returns val scaled by WAD. The product of a 128 bit value and
// WAD always fits at this width.
func FromUint128(val wideint.Uint128) Decimal {
	return Decimal{val: wideint.Mul192(val, wad.WAD)}
}

// FromPercent returns percent / 100.
func FromPercent(percent uint8) Decimal {
	return Decimal{val: wideint.U192From64(uint64(percent) * wad.PercentScaler)}
}

// FromBips returns bips / 10000. The multiply happens at storage width, so
// large inputs cannot wrap.
func FromBips(bips uint64) Decimal {
	return Decimal{val: wideint.U192From128(wideint.Mul128(bips, wad.BipsScaler))}
}

// FromScaled wraps an already scaled raw value.
func FromScaled(raw wideint.Uint128) Decimal {
	return Decimal{val: wideint.U192From128(raw)}
}

// FromRate widens r losslessly to the decimal width.
func FromRate(r rate.Rate) Decimal {
	return Decimal{val: wideint.U192From128(r.Scaled())}
}

// Scaled returns the raw scaled value if it fits within 128 bits.
func (d Decimal) Scaled() (wideint.Uint128, error) {
	raw, ok := d.val.Uint128()
	if !ok {
		return wideint.Uint128{}, wad.ErrUnableToRoundU128
	}

	return raw, nil
}

// IsZero returns true if d is zero.
func (d Decimal) IsZero() bool {
	return d.val.IsZero()
}

// Cmp compares d and o and returns -1, 0, or +1.
func (d Decimal) Cmp(o Decimal) int {
	return d.val.Cmp(o.val)
}

// TryRoundUint64 rounds d half up to a uint64.
func (d Decimal) TryRoundUint64() (uint64, error) {
	return wad.TryRound(d.val, halfW, w)
}

// TryCeilUint64 rounds d up to a uint64.
func (d Decimal) TryCeilUint64() (uint64, error) {
	return wad.TryCeil(d.val, wLess1, w)
}

// TryFloorUint64 truncates d to a uint64.
func (d Decimal) TryFloorUint64() (uint64, error) {
	return wad.TryFloor(d.val, w)
}

// TryAdd returns d + o.
func (d Decimal) TryAdd(o Decimal) (Decimal, error) {
	val, err := wad.TryAdd(d.val, o.val)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: val}, nil
}

// TrySub returns d - o.
func (d Decimal) TrySub(o Decimal) (Decimal, error) {
	val, err := wad.TrySub(d.val, o.val)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: val}, nil
}

// TryMul returns d * o.
func (d Decimal) TryMul(o Decimal) (Decimal, error) {
	val, err := wad.TryMulScaled(d.val, o.val, w)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: val}, nil
}

// TryMulRate returns d * r.
func (d Decimal) TryMulRate(r rate.Rate) (Decimal, error) {
	return d.TryMul(FromRate(r))
}

// TryMulUint64 returns d * val. The operand is unscaled, so there is no
// rescale step.
func (d Decimal) TryMulUint64(val uint64) (Decimal, error) {
	res, err := wad.TryMul(d.val, wideint.U192From64(val))
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: res}, nil
}

// TryDiv returns d / o.
func (d Decimal) TryDiv(o Decimal) (Decimal, error) {
	val, err := wad.TryDivScaled(d.val, o.val, w)
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: val}, nil
}

// TryDivRate returns d / r.
func (d Decimal) TryDivRate(r rate.Rate) (Decimal, error) {
	return d.TryDiv(FromRate(r))
}

// TryDivUint64 returns d / val. The operand is unscaled, so there is no
// rescale step.
func (d Decimal) TryDivUint64(val uint64) (Decimal, error) {
	res, err := wad.TryDiv(d.val, wideint.U192From64(val))
	if err != nil {
		return Decimal{}, err
	}

	return Decimal{val: res}, nil
}

// String renders d with exactly 18 fractional digits.
func (d Decimal) String() string {
	s := d.val.String()
	if len(s) <= wad.Scale {
		return "0." + strings.Repeat("0", wad.Scale-len(s)) + s
	}

	return s[:len(s)-wad.Scale] + "." + s[len(s)-wad.Scale:]
}
