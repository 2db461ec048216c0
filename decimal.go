package bigdecimal

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision decimal number.
// The zero value is 0.
// Values never change after construction, so a Decimal can be shared
// freely between goroutines.
//
// A decimal is made of three parts:
//
//   - Sign: whether the number is below zero.
//   - Coefficient: the digits of the number with the decimal point removed.
//     Its length is not limited.
//   - Scale: how many of those digits lie after the decimal point.
//
// The coefficient 12345 with scale 2 is the number 123.45.
// The same number may be held with different scales: 5, 5.0 and 5.000
// compare equal and differ only in [Decimal.Scale].
//
// There is no negative zero, NaN or infinity.
type Decimal struct {
	neg   bool // true for numbers below zero
	scale int  // digits after the decimal point
	coef  coef // digits, most significant first
}

// DefaultPrecision is the number of digits after the decimal point
// computed by [Divide] and [Decimal.Quo].
const DefaultPrecision = 50

var (
	// ErrInvalidDecimal is returned when a string does not represent a decimal number.
	ErrInvalidDecimal = errors.New("invalid decimal")
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPrecisionRange is returned when the division precision is negative.
	ErrPrecisionRange = errors.New("precision out of range")
)

// Zero is the decimal 0.
var Zero = Decimal{}

func newDecimal(neg bool, coef coef, scale int) Decimal {
	coef = coef.trim()
	if coef.isZero() {
		neg = false
	}
	return Decimal{neg: neg, coef: coef, scale: scale}
}

// digits returns the coefficient of d, mapping the zero value to "0".
func (d Decimal) digits() coef {
	if len(d.coef) == 0 {
		return coefZero
	}
	return d.coef
}

// Parse converts a string to a decimal.
// Accepted inputs look like:
//
//	1.234
//	-1234
//	-0.000001234
//	.5
//	5.
//
// In EBNF:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Surrounding whitespace is ignored.
// Leading zeros of the integer part are dropped.
// Trailing zeros of the fraction are kept and count toward the scale.
// Parse returns [ErrInvalidDecimal] if the string does not follow the grammar.
func Parse(dec string) (Decimal, error) {
	var (
		pos     int
		width   int
		neg     bool
		scale   int
		hascoef bool
	)

	dec = strings.TrimSpace(dec)
	width = len(dec)
	coef := make(coef, 0, width)

	// Sign
	if pos < width && dec[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width && isDigit(dec[pos]) {
		coef = append(coef, dec[pos])
		hascoef = true
		pos++
	}

	// Fraction
	if pos < width && dec[pos] == '.' {
		pos++
		for pos < width && isDigit(dec[pos]) {
			coef = append(coef, dec[pos])
			hascoef = true
			scale++
			pos++
		}
	}

	if pos != width {
		return Decimal{}, fmt.Errorf("invalid character %q: %w", dec[pos], ErrInvalidDecimal)
	}
	if !hascoef {
		return Decimal{}, fmt.Errorf("no coefficient: %w", ErrInvalidDecimal)
	}

	return newDecimal(neg, coef, scale), nil
}

// MustParse is like [Parse] but panics on malformed input.
// It is meant for package-level constants.
func MustParse(dec string) Decimal {
	d, err := Parse(dec)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", dec, err))
	}
	return d
}

// String implements the [fmt.Stringer] interface.
// It returns the canonical form of d.
// Trailing zeros in the fractional part are removed, together with the
// decimal point if no fractional digits remain.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}

	coef := d.digits()
	scale := d.Scale()

	// Trailing zeros
	for scale > 0 && coef[len(coef)-1] == '0' {
		coef = coef[:len(coef)-1]
		scale--
	}

	buf := make([]byte, 0, len(coef)+scale+3)

	// Sign
	if d.IsNeg() {
		buf = append(buf, '-')
	}

	// Integer and fractional parts
	switch {
	case scale == 0:
		buf = append(buf, coef...)
	case len(coef) <= scale:
		buf = append(buf, '0', '.')
		for i := len(coef); i < scale; i++ {
			buf = append(buf, '0')
		}
		buf = append(buf, coef...)
	default:
		pos := len(coef) - scale
		buf = append(buf, coef[:pos]...)
		buf = append(buf, '.')
		buf = append(buf, coef[pos:]...)
	}

	return string(buf)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// The source value can be a string, a byte slice, an int64 or a float64.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*d, err = Parse(value)
	case []byte:
		*d, err = Parse(string(value))
	case int64:
		*d, err = Parse(strconv.FormatInt(value, 10))
	case float64:
		*d, err = Parse(strconv.FormatFloat(value, 'f', -1, 64))
	default:
		err = fmt.Errorf("failed to convert from %T to %T: %w", value, Decimal{}, ErrInvalidDecimal)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Coef returns the coefficient of the decimal as a string of digits.
// Also see method [Decimal.Prec].
func (d Decimal) Coef() string {
	return string(d.digits())
}

// Prec returns number of digits in the coefficient.
func (d Decimal) Prec() int {
	return len(d.digits())
}

// Scale returns number of digits after the decimal point.
// The scale is not reduced by trailing zeros, so 1.50 has scale 2
// even though its string representation is 1.5.
func (d Decimal) Scale() int {
	return d.scale
}

// MinScale returns the smallest scale that d can be rescaled to without
// losing digits.
// Also see method [Decimal.Reduce].
func (d Decimal) MinScale() int {
	if d.Scale() == 0 || d.IsZero() {
		return 0
	}
	z := d.digits().ntz()
	if z > d.Scale() {
		return 0
	}
	return d.Scale() - z
}

// IsInt returns true if fractional part of d is zero.
func (d Decimal) IsInt() bool {
	return d.MinScale() == 0
}

// Trunc returns d that is truncated to the given number of digits after
// the decimal point, discarding digits towards zero.
// If the scale of d is less than scale, d is returned unchanged.
// Trunc panics if the scale is negative.
func (d Decimal) Trunc(scale int) Decimal {
	if scale < 0 {
		panic(fmt.Sprintf("%q.Trunc(%v) failed: %v", d, scale, ErrPrecisionRange))
	}
	if d.Scale() <= scale {
		return d
	}
	coef := d.digits()
	drop := d.Scale() - scale
	if drop >= len(coef) {
		return newDecimal(false, coefZero, scale)
	}
	return newDecimal(d.IsNeg(), coef[:len(coef)-drop], scale)
}

// Reduce returns d with all trailing zeros removed.
func (d Decimal) Reduce() Decimal {
	return d.Trunc(d.MinScale())
}

// Neg returns d with opposite sign.
func (d Decimal) Neg() Decimal {
	return newDecimal(!d.IsNeg(), d.digits(), d.Scale())
}

// Abs returns absolute value of d.
func (d Decimal) Abs() Decimal {
	return newDecimal(false, d.digits(), d.Scale())
}

// CopySign returns d with the same sign as e.
// If e is zero, sign of the result remains unchanged.
func (d Decimal) CopySign(e Decimal) Decimal {
	switch {
	case e.IsZero():
		return d
	case d.IsNeg() != e.IsNeg():
		return d.Neg()
	default:
		return d
	}
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.neg
}

// IsZero returns true if d == 0.
func (d Decimal) IsZero() bool {
	return d.digits().isZero()
}

// align returns coefficients of d and e rescaled to the larger of their scales.
func align(d, e Decimal) (dcoef, ecoef coef, scale int) {
	scale = max(d.Scale(), e.Scale())
	dcoef = d.digits().lsh(scale - d.Scale())
	ecoef = e.digits().lsh(scale - e.Scale())
	return dcoef, ecoef, scale
}

// Add returns the exact sum of d and e.
// The scale of the result is the larger of the scales of d and e.
func (d Decimal) Add(e Decimal) Decimal {
	dcoef, ecoef, scale := align(d, e)

	// Same signs
	if d.IsNeg() == e.IsNeg() {
		return newDecimal(d.IsNeg(), addAbs(dcoef, ecoef), scale)
	}

	// Different signs
	switch cmpAbs(dcoef, ecoef) {
	case 1:
		return newDecimal(d.IsNeg(), subAbs(dcoef, ecoef), scale)
	case -1:
		return newDecimal(e.IsNeg(), subAbs(ecoef, dcoef), scale)
	default:
		return newDecimal(false, coefZero, scale)
	}
}

// Sub returns the exact difference between d and e.
// It is the sum of d and the negation of e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d.Add(e.Neg())
}

// Mul returns the exact product of d and e.
// The scale of the result is the sum of the scales of d and e.
func (d Decimal) Mul(e Decimal) Decimal {
	return newDecimal(d.IsNeg() != e.IsNeg(), mulAbs(d.digits(), e.digits()), d.Scale()+e.Scale())
}

// Quo returns the quotient of d and e truncated to [DefaultPrecision] digits
// after the decimal point.
// Also see method [Decimal.QuoPrec].
//
// Quo returns [ErrDivisionByZero] if e is zero.
func (d Decimal) Quo(e Decimal) (Decimal, error) {
	return d.QuoPrec(e, DefaultPrecision)
}

// QuoPrec returns the quotient of d and e truncated to prec digits after
// the decimal point.
// Digits beyond prec are never computed; the quotient is truncated
// towards zero, not rounded.
// The scale of the result is prec.
//
// QuoPrec returns an error if:
//   - e is zero ([ErrDivisionByZero]);
//   - prec is negative ([ErrPrecisionRange]).
func (d Decimal) QuoPrec(e Decimal, prec int) (Decimal, error) {
	if prec < 0 {
		return Decimal{}, fmt.Errorf("precision %v: %w", prec, ErrPrecisionRange)
	}

	// Alignment
	scale := prec + max(d.Scale(), e.Scale())
	dcoef := d.digits().lsh(scale - d.Scale())
	ecoef := e.digits().lsh(scale - e.Scale())

	// Quotient
	q, err := quoAbs(dcoef, ecoef, prec)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return newDecimal(d.IsNeg() != e.IsNeg(), q, prec), nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {

	// Special case: different signs
	switch {
	case e.Sign() < d.Sign():
		return 1
	case d.Sign() < e.Sign():
		return -1
	}

	// General case
	dcoef, ecoef, _ := align(d, e)
	r := cmpAbs(dcoef, ecoef)
	if d.IsNeg() {
		return -r
	}
	return r
}

// Equal returns true if d and e have the same numeric value.
// Also see method [Decimal.Cmp].
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns maximum of d and e.
func (d Decimal) Max(e Decimal) Decimal {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
func (d Decimal) Min(e Decimal) Decimal {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}
