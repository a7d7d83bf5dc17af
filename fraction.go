package fraction

import (
	"errors"
	"strconv"
)

// Fraction is an immutable rational number, in lowest terms.
//
// There are no exported fields. Use [FromInt], [Of], or [MustOf], or the
// zero value, which is equal to [Zero]. All methods return new values.
type Fraction struct {
	num int64
	// den is the denominator minus one, which makes the zero value 0/1
	den int64
}

var (
	// ErrInvalidArgument is returned when a fraction would have a zero
	// denominator, including as the result of dividing by zero.
	ErrInvalidArgument = errors.New(`fraction: invalid argument: zero denominator`)

	// Zero is the additive identity, 0/1.
	Zero = FromInt(0)
)

// FromInt returns the fraction value/1.
func FromInt(value int64) Fraction {
	return Fraction{num: value}
}

// Of returns numerator/denominator, reduced to lowest terms, with the sign
// moved to the numerator. Returns [ErrInvalidArgument] if denominator is
// zero.
func Of(numerator, denominator int64) (Fraction, error) {
	if denominator == 0 {
		return Fraction{}, ErrInvalidArgument
	}

	// never zero, given denominator is non-zero
	g := gcd(numerator, denominator)
	numerator /= g
	denominator /= g

	if denominator < 0 {
		numerator, denominator = -numerator, -denominator
	}

	return Fraction{num: numerator, den: denominator - 1}, nil
}

// MustOf is like [Of] but panics if the denominator is zero.
func MustOf(numerator, denominator int64) Fraction {
	v, err := Of(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return v
}

// Num returns the numerator, which carries the sign.
func (x Fraction) Num() int64 {
	return x.num
}

// Den returns the denominator, which is always positive.
func (x Fraction) Den() int64 {
	return x.den + 1
}

// IsZero reports whether x is 0.
func (x Fraction) IsZero() bool {
	return x.num == 0
}

// IsInt reports whether the denominator of x is 1.
func (x Fraction) IsInt() bool {
	return x.den == 0
}

// Equal reports whether x and y represent the same value. It is equivalent
// to x == y.
func (x Fraction) Equal(y Fraction) bool {
	return x == y
}

// Hash returns a hash of x. Equal values always have the same hash, and the
// result doesn't vary between processes.
func (x Fraction) Hash() uint64 {
	h := uint64(1)
	h = 31*h + uint64(x.num)
	h = 31*h + uint64(x.Den())
	return h
}

// Append appends the string form of x to dst, returning the extended buffer.
// See also [Fraction.String].
func (x Fraction) Append(dst []byte) []byte {
	dst = strconv.AppendInt(dst, x.num, 10)
	if x.den != 0 {
		dst = append(dst, '/')
		dst = strconv.AppendInt(dst, x.Den(), 10)
	}
	return dst
}

// String implements [fmt.Stringer], formatting x like "-1/2", or just the
// numerator (e.g. "3") if x is an integer.
func (x Fraction) String() string {
	return string(x.Append(make([]byte, 0, 24)))
}
