// Package decimal provides the wide fixed point amount type.
//
// A Decimal stores number * 10^18 in a 192 bit integer. The width is chosen
// so that the product of two values anywhere in the unsigned 64 bit range,
// scaled by 10^18, still fits: a 64x64 bit product needs 128 bits and the
// scale factor adds roughly 60 more. Ratios that never hold such products
// belong in the compact rate.Rate instead; a Rate widens losslessly into a
// Decimal but there is no narrowing in the other direction.
//
// All arithmetic is checked and immutable: operations return a new value or
// one of the wad.MathError kinds, and never wrap or truncate silently.
package decimal
