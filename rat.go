package fraction

import (
	"math/big"
)

// Rat returns x as a new [math/big.Rat], for use where arbitrary precision
// is required.
func (x Fraction) Rat() *big.Rat {
	return new(big.Rat).SetFrac64(x.num, x.Den())
}
