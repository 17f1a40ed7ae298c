package wad

// Uint is the storage contract shared by the fixed point widths. Both
// wideint.Uint128 and wideint.Uint192 satisfy it, which lets the scaled
// arithmetic and the rounding conversions be written once and reused by
// Decimal and Rate.
type Uint[T any] interface {
	AddChecked(T) (T, bool)
	SubChecked(T) (T, bool)
	MulChecked(T) (T, bool)
	QuoChecked(T) (T, bool)
	IsZero() bool
	Uint64() (uint64, bool)
}

// TryAdd returns x + y. Addition is only defined for same-scale operands, so
// no rescale is needed.
func TryAdd[T Uint[T]](x, y T) (T, error) {
	sum, ok := x.AddChecked(y)
	if !ok {
		var zero T

		return zero, ErrAddOverflow
	}

	return sum, nil
}

// TrySub returns x - y.
func TrySub[T Uint[T]](x, y T) (T, error) {
	diff, ok := x.SubChecked(y)
	if !ok {
		var zero T

		return zero, ErrSubUnderflow
	}

	return diff, nil
}

// TryMul returns x * y with no rescale. This is the integer operand path:
// the right hand side is unscaled, so the raw product is already at the
// correct scale.
func TryMul[T Uint[T]](x, y T) (T, error) {
	prod, ok := x.MulChecked(y)
	if !ok {
		var zero T

		return zero, ErrMulOverflow
	}

	return prod, nil
}

// TryDiv returns x / y with no rescale. This is the integer operand path.
func TryDiv[T Uint[T]](x, y T) (T, error) {
	quo, ok := x.QuoChecked(y)
	if !ok {
		var zero T

		return zero, ErrDividedByZero
	}

	return quo, nil
}

// TryMulScaled returns x * y / wad, the product of two same-scale values.
// The raw product is scaled by WAD^2 and the single divide restores the
// scale. Each step reports its own fault.
func TryMulScaled[T Uint[T]](x, y, wad T) (T, error) {
	var zero T

	prod, ok := x.MulChecked(y)
	if !ok {
		return zero, ErrMulOverflow
	}

	quo, ok := prod.QuoChecked(wad)
	if !ok {
		return zero, ErrDividedByZero
	}

	return quo, nil
}

// TryDivScaled returns x * wad / y, the quotient of two same-scale values.
// The pre-multiply preserves the result's fractional scale and can itself
// overflow; it is checked before the divide is attempted.
func TryDivScaled[T Uint[T]](x, y, wad T) (T, error) {
	var zero T

	prod, ok := x.MulChecked(wad)
	if !ok {
		return zero, ErrMulOverflow
	}

	quo, ok := prod.QuoChecked(y)
	if !ok {
		return zero, ErrDividedByZero
	}

	return quo, nil
}

// TryRound returns x / wad rounded half up, as a uint64. half must be the
// half-wad at x's width.
func TryRound[T Uint[T]](x, half, wad T) (uint64, error) {
	sum, ok := half.AddChecked(x)
	if !ok {
		return 0, ErrAddOverflow
	}

	quo, ok := sum.QuoChecked(wad)
	if !ok {
		return 0, ErrDividedByZero
	}

	val, ok := quo.Uint64()
	if !ok {
		return 0, ErrUnableToRoundU64
	}

	return val, nil
}

// TryCeil returns x / wad rounded up, computed as (x + wad - 1) / wad.
// wadLess1 must be wad - 1 at x's width.
func TryCeil[T Uint[T]](x, wadLess1, wad T) (uint64, error) {
	sum, ok := wadLess1.AddChecked(x)
	if !ok {
		return 0, ErrAddOverflow
	}

	quo, ok := sum.QuoChecked(wad)
	if !ok {
		return 0, ErrDividedByZero
	}

	val, ok := quo.Uint64()
	if !ok {
		return 0, ErrUnableToRoundU64
	}

	return val, nil
}

// TryFloor returns x / wad truncated.
func TryFloor[T Uint[T]](x, wad T) (uint64, error) {
	quo, ok := x.QuoChecked(wad)
	if !ok {
		return 0, ErrDividedByZero
	}

	val, ok := quo.Uint64()
	if !ok {
		return 0, ErrUnableToRoundU64
	}

	return val, nil
}
