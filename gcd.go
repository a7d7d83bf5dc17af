package fraction

import (
	"golang.org/x/exp/constraints"
)

// gcd returns the greatest common divisor of |a| and |b|, where gcd(0, b) is
// |b|. The result is zero only if both a and b are zero.
func gcd[E constraints.Signed](a, b E) E {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs[E constraints.Signed](v E) E {
	if v < 0 {
		return -v
	}
	return v
}
