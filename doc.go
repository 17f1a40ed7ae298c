// Package wad provides exact, overflow checked fixed point math for token
// amounts and rates.
//
// Values are scaled by a WAD (10^18) to preserve precision up to 18 decimal
// places. Two storage widths are provided: decimal.Decimal is backed by a
// 192 bit integer and is sized to hold the product of two full range 64 bit
// token amounts, while rate.Rate is backed by a 128 bit integer and is sized
// for ratios and percentages. Both share the scale factor, the rounding
// conversions, and the packed binary layout.
//
// Scaling
//
// A scaled value stores number * WAD. Same-scale values add and subtract
// directly. A product of two scaled values is scaled by WAD^2 and must be
// divided by WAD once to restore scale. A quotient of two scaled values loses
// the scale and must be multiplied by WAD before the divide. Getting either
// correction backward corrupts every downstream result by a factor of WAD,
// so the scaled multiply and divide live in one place (TryMulScaled and
// TryDivScaled) and are shared by both widths.
//
// Errors
//
// Every fallible operation returns one of the MathError kinds. Nothing in
// this module clamps, saturates, or truncates silently: a result that does
// not fit the storage width is an error, never a wrapped value. The kinds
// are ordered and the ordinal is stable so embedding programs can map them
// into a numeric code space.
//
//  | Kind                 | Trigger                                         |
//  |----------------------|-------------------------------------------------|
//  | ErrAddOverflow       | sum exceeds the storage width                   |
//  | ErrSubUnderflow      | subtrahend exceeds minuend                      |
//  | ErrMulOverflow       | product exceeds the storage width               |
//  | ErrDividedByZero     | divisor's raw value is zero                     |
//  | ErrUnableToRoundU64  | rounded result exceeds the 64 bit range         |
//  | ErrUnableToRoundU128 | raw scaled value exceeds the 128 bit range      |
//
// Packed Layout
//
// A Decimal or Rate packs to exactly 16 bytes: the raw scaled value as a
// 128 bit little-endian integer (most significant byte at index 15). A
// Decimal whose raw value does not fit within 128 bits cannot be packed and
// reports ErrUnableToRoundU128.
package wad
