package bigdecimal

import (
	"bytes"
	"fmt"
)

// coef is the coefficient of a decimal, that is its decimal digits without
// sign or decimal point.
// Digits are stored as ASCII characters '0' to '9', most significant first.
// A normalized coef has no leading zeros, and zero is represented as "0".
//
// Operations on coef never modify their operands.
type coef []byte

// coefZero is the normalized zero coefficient.
// It is shared and must never be modified.
var coefZero = coef{'0'}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isZero returns true if x is the normalized zero or empty.
func (x coef) isZero() bool {
	return len(x) == 0 || (len(x) == 1 && x[0] == '0')
}

// trim removes leading zeros from x.
// If x consists of zeros only, the last zero is kept.
func (x coef) trim() coef {
	if len(x) == 0 {
		return coefZero
	}
	i := 0
	for i < len(x)-1 && x[i] == '0' {
		i++
	}
	return x[i:]
}

// lsh (Left Shift) calculates x * 10^shift by appending zeros.
func (x coef) lsh(shift int) coef {
	if shift <= 0 || x.isZero() {
		return x
	}
	z := make(coef, len(x)+shift)
	copy(z, x)
	for i := len(x); i < len(z); i++ {
		z[i] = '0'
	}
	return z
}

// ntz returns the number of trailing zeros in x.
func (x coef) ntz() int {
	if x.isZero() {
		return 0
	}
	n := 0
	for i := len(x) - 1; i >= 0 && x[i] == '0'; i-- {
		n++
	}
	return n
}

// cmpAbs compares x and y by magnitude and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
//
// Both arguments must be normalized.
func cmpAbs(x, y coef) int {
	switch {
	case len(x) < len(y):
		return -1
	case len(x) > len(y):
		return 1
	}
	return bytes.Compare(x, y)
}

// addAbs calculates x + y.
func addAbs(x, y coef) coef {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make(coef, len(x)+1)
	carry := 0
	for i, j := len(x)-1, len(y)-1; i >= 0; i, j = i-1, j-1 {
		s := int(x[i]-'0') + carry
		if j >= 0 {
			s += int(y[j] - '0')
		}
		z[i+1] = byte(s%10) + '0'
		carry = s / 10
	}
	z[0] = byte(carry) + '0'
	return z.trim()
}

// subAbs calculates x - y.
// subAbs panics if x < y.
func subAbs(x, y coef) coef {
	if cmpAbs(x, y) < 0 {
		panic(fmt.Sprintf("subAbs(%s, %s) failed: negative difference", x, y))
	}
	z := make(coef, len(x))
	borrow := 0
	for i, j := len(x)-1, len(y)-1; i >= 0; i, j = i-1, j-1 {
		d := int(x[i]-'0') - borrow
		if j >= 0 {
			d -= int(y[j] - '0')
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		z[i] = byte(d) + '0'
	}
	return z.trim()
}

// mulAbs calculates x * y using long multiplication.
// Each partial product is accumulated into a digit cell and carried into the
// next more significant cell, so no cell holds more than one digit when
// the accumulation is complete.
func mulAbs(x, y coef) coef {
	if x.isZero() || y.isZero() {
		return coefZero
	}
	acc := make([]int, len(x)+len(y))
	for i := len(x) - 1; i >= 0; i-- {
		for j := len(y) - 1; j >= 0; j-- {
			s := acc[i+j+1] + int(x[i]-'0')*int(y[j]-'0')
			acc[i+j+1] = s % 10
			acc[i+j] += s / 10
		}
	}
	z := make(coef, len(acc))
	for i, d := range acc {
		z[i] = byte(d) + '0'
	}
	return z.trim()
}

// quoAbs calculates ⌊x * 10^prec / y⌋ using long division.
//
// The dividend is consumed one digit at a time, followed by prec zeros.
// Each step brings down the next digit into the running remainder and emits
// one quotient digit.
// Because the remainder is always less than y before a digit is brought down,
// each quotient digit lies in [0, 9] and is found by comparing the remainder
// against the multiples y*0 .. y*9.
// Whatever remains after the last step is discarded.
func quoAbs(x, y coef, prec int) (coef, error) {
	if y.isZero() {
		return nil, ErrDivisionByZero
	}

	var mults [10]coef
	mults[0] = coefZero
	for q := 1; q < len(mults); q++ {
		mults[q] = addAbs(mults[q-1], y)
	}

	steps := len(x) + prec
	z := make(coef, 0, steps)
	rem := make(coef, 0, len(y)+1)
	for i := 0; i < steps; i++ {
		d := byte('0')
		if i < len(x) {
			d = x[i]
		}
		rem = append(rem, d).trim()

		q := len(mults) - 1
		for cmpAbs(mults[q], rem) > 0 {
			q--
		}
		if q > 0 {
			rem = subAbs(rem, mults[q])
		}
		z = append(z, byte(q)+'0')
	}
	return z.trim(), nil
}
