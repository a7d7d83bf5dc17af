// Package fraction implements an immutable rational number type, [Fraction],
// with an int64 numerator and denominator.
//
// Values are always held in lowest terms, with a strictly positive
// denominator, meaning the sign (if any) is carried by the numerator. As a
// consequence, equal values have identical representations, and may be
// compared using ==, or used as map keys. The zero value is 0/1.
//
// Overflow is not detected. Callers working with large magnitudes should use
// [math/big.Rat] instead. An intermediate product that wraps to a zero
// denominator causes a panic, with [ErrInvalidArgument].
package fraction
