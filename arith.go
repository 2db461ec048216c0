package bigdecimal

import "fmt"

func parseOperands(a, b string) (Decimal, Decimal, error) {
	x, err := Parse(a)
	if err != nil {
		return Decimal{}, Decimal{}, fmt.Errorf("parsing first operand %q: %w", a, err)
	}
	y, err := Parse(b)
	if err != nil {
		return Decimal{}, Decimal{}, fmt.Errorf("parsing second operand %q: %w", b, err)
	}
	return x, y, nil
}

// Add returns the canonical string representation of a + b.
// See [Parse] for the accepted input format and [Decimal.String] for the
// output format.
//
// Add returns [ErrInvalidDecimal] if either operand cannot be parsed.
func Add(a, b string) (string, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", err
	}
	return x.Add(y).String(), nil
}

// Subtract returns the canonical string representation of a - b,
// computed as the sum of a and the negation of b.
//
// Subtract returns [ErrInvalidDecimal] if either operand cannot be parsed.
func Subtract(a, b string) (string, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", err
	}
	return x.Sub(y).String(), nil
}

// Multiply returns the canonical string representation of a * b.
//
// Multiply returns [ErrInvalidDecimal] if either operand cannot be parsed.
func Multiply(a, b string) (string, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", err
	}
	return x.Mul(y).String(), nil
}

// Divide returns the canonical string representation of a / b truncated to
// [DefaultPrecision] digits after the decimal point.
// Also see [DividePrec].
func Divide(a, b string) (string, error) {
	return DividePrec(a, b, DefaultPrecision)
}

// DividePrec returns the canonical string representation of a / b truncated
// to prec digits after the decimal point.
// The quotient is truncated towards zero, so DividePrec("2", "3", 2) is "0.66".
//
// DividePrec returns an error if:
//   - either operand cannot be parsed ([ErrInvalidDecimal]);
//   - b is zero ([ErrDivisionByZero]);
//   - prec is negative ([ErrPrecisionRange]).
func DividePrec(a, b string, prec int) (string, error) {
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", err
	}
	q, err := x.QuoPrec(y, prec)
	if err != nil {
		return "", err
	}
	return q.String(), nil
}
