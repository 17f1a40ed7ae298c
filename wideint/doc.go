// Package wideint provides the fixed width unsigned integers backing the
// scaled value types: Uint128 (two 64 bit words) and Uint192 (three 64 bit
// words).
//
// All arithmetic is exact integer math on words via math/bits. The checked
// operations report overflow, underflow, and zero divisors through a second
// return value rather than wrapping; nothing here saturates. Uint192 exists
// so that the product of two full range 64 bit values, scaled by 10^18,
// still fits with room to spare; Uint128 is the compact width used where
// such products never occur.
package wideint
