// Package rate provides the compact fixed point ratio type. A Rate stores
// number * 10^18 in a 128 bit integer; it shares the scale, rounding, and
// packed layout of decimal.Decimal but rejects any result that exceeds the
// narrow width, even where the wide type would succeed.
package rate

import (
	"strings"

	"github.com/calebcase/wad"
	"github.com/calebcase/wad/wideint"
)

// Rate is a compact fixed point value, precise to 18 digits.
type Rate struct {
	val wideint.Uint128
}

var (
	w      = wideint.U128From64(wad.WAD)
	halfW  = wideint.U128From64(wad.HalfWAD)
	wLess1 = wideint.U128From64(wad.WAD - 1)
)

// Zero returns the additive identity.
func Zero() Rate {
	return Rate{}
}

// One returns the multiplicative identity.
func One() Rate {
	return Rate{val: w}
}

// FromUint64 returns val scaled by WAD. The product of a 64 bit value and
// WAD always fits at this width.
func FromUint64(val uint64) Rate {
	return Rate{val: wideint.Mul128(val, wad.WAD)}
}

// FromPercent returns percent / 100.
func FromPercent(percent uint8) Rate {
	return Rate{val: wideint.U128From64(uint64(percent) * wad.PercentScaler)}
}

// FromBips returns bips / 10000. The multiply happens at storage width, so
// large inputs cannot wrap.
func FromBips(bips uint64) Rate {
	return Rate{val: wideint.Mul128(bips, wad.BipsScaler)}
}

// FromScaled wraps an already scaled raw value.
func FromScaled(raw wideint.Uint128) Rate {
	return Rate{val: raw}
}

// Scaled returns the raw scaled value. The full width always fits.
func (r Rate) Scaled() wideint.Uint128 {
	return r.val
}

// IsZero returns true if r is zero.
func (r Rate) IsZero() bool {
	return r.val.IsZero()
}

// Cmp compares r and o and returns -1, 0, or +1.
func (r Rate) Cmp(o Rate) int {
	return r.val.Cmp(o.val)
}

// TryRoundUint64 rounds r half up to a uint64.
func (r Rate) TryRoundUint64() (uint64, error) {
	return wad.TryRound(r.val, halfW, w)
}

// TryCeilUint64 rounds r up to a uint64.
func (r Rate) TryCeilUint64() (uint64, error) {
	return wad.TryCeil(r.val, wLess1, w)
}

// TryFloorUint64 truncates r to a uint64.
func (r Rate) TryFloorUint64() (uint64, error) {
	return wad.TryFloor(r.val, w)
}

// TryAdd returns r + o.
func (r Rate) TryAdd(o Rate) (Rate, error) {
	val, err := wad.TryAdd(r.val, o.val)
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: val}, nil
}

// TrySub returns r - o.
func (r Rate) TrySub(o Rate) (Rate, error) {
	val, err := wad.TrySub(r.val, o.val)
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: val}, nil
}

// TryMul returns r * o.
func (r Rate) TryMul(o Rate) (Rate, error) {
	val, err := wad.TryMulScaled(r.val, o.val, w)
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: val}, nil
}

// TryMulUint64 returns r * val. The operand is unscaled, so there is no
// rescale step.
func (r Rate) TryMulUint64(val uint64) (Rate, error) {
	res, err := wad.TryMul(r.val, wideint.U128From64(val))
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: res}, nil
}

// TryDiv returns r / o.
func (r Rate) TryDiv(o Rate) (Rate, error) {
	val, err := wad.TryDivScaled(r.val, o.val, w)
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: val}, nil
}

// TryDivUint64 returns r / val. The operand is unscaled, so there is no
// rescale step.
func (r Rate) TryDivUint64(val uint64) (Rate, error) {
	res, err := wad.TryDiv(r.val, wideint.U128From64(val))
	if err != nil {
		return Rate{}, err
	}

	return Rate{val: res}, nil
}

// TryPow returns r to the power of exp by repeated squaring over the scaled
// multiply. r^0 is One.
func (r Rate) TryPow(exp uint64) (Rate, error) {
	result := One()
	base := r

	var err error

	for exp > 0 {
		if exp&1 == 1 {
			result, err = result.TryMul(base)
			if err != nil {
				return Rate{}, err
			}
		}

		exp >>= 1

		if exp > 0 {
			base, err = base.TryMul(base)
			if err != nil {
				return Rate{}, err
			}
		}
	}

	return result, nil
}

// String renders r with exactly 18 fractional digits.
func (r Rate) String() string {
	s := r.val.String()
	if len(s) <= wad.Scale {
		return "0." + strings.Repeat("0", wad.Scale-len(s)) + s
	}

	return s[:len(s)-wad.Scale] + "." + s[len(s)-wad.Scale:]
}
