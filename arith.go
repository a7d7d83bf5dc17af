package fraction

// Add returns x + y.
func (x Fraction) Add(y Fraction) Fraction {
	return MustOf(x.num*y.Den()+y.num*x.Den(), x.Den()*y.Den())
}

// Sub returns x - y.
func (x Fraction) Sub(y Fraction) Fraction {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Fraction) Mul(y Fraction) Fraction {
	return MustOf(x.num*y.num, x.Den()*y.Den())
}

// Div returns x / y, or [ErrInvalidArgument] if y is zero.
func (x Fraction) Div(y Fraction) (Fraction, error) {
	inv, err := y.Inv()
	if err != nil {
		return Fraction{}, err
	}
	return x.Mul(inv), nil
}

// Neg returns -x.
func (x Fraction) Neg() Fraction {
	return MustOf(-x.num, x.Den())
}

// Inv returns 1/x, or [ErrInvalidArgument] if x is zero.
func (x Fraction) Inv() (Fraction, error) {
	return Of(x.Den(), x.num)
}

// Sum adds all values, starting from [Zero].
func Sum(values ...Fraction) Fraction {
	sum := Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum
}
