/*
Package bigdecimal implements immutable arbitrary-precision decimal numbers.
It is designed for computations where the rounding error of binary floating
point is unacceptable and the range of fixed-width types is insufficient,
such as financial ledgers or scientific tables.

# Representation

[Decimal] is a struct with three fields:

  - Sign: a boolean indicating whether the decimal is negative.
  - Coefficient: an unbounded sequence of decimal digits representing the
    numeric value of the decimal without the decimal point.
  - Scale: a non-negative integer indicating the position of the decimal point
    within the coefficient.
    For example, a decimal with a coefficient of 12345 and a scale of 2 represents
    the value 123.45.

The numerical value of a decimal is calculated as:

  - -Coefficient / 10^Scale, if Sign is true.
  - Coefficient / 10^Scale, if Sign is false.

The coefficient never has leading zeros, and zero is always unsigned.
The only limit on the number of digits is available memory.

# Strings

The package functions [Add], [Subtract], [Multiply], [Divide] and [DividePrec]
accept and return decimal strings.
Input strings may contain surrounding whitespace, a leading minus sign and a
single decimal point:

	" -12.340 "
	"0.5"
	".5"

Output strings are canonical: no leading zeros in the integer part (except a
single 0 before the decimal point), no trailing zeros in the fractional part,
no bare decimal point, and no negative zero.
Scientific notation is not supported.

# Operations

Addition, subtraction and multiplication are exact.
Addition and subtraction align both operands to the larger scale; the scale
of a product is the sum of the scales of its factors.

Division is computed digit by digit using long division and is truncated,
not rounded, to the requested number of digits after the decimal point
([DefaultPrecision] by default).
Digits beyond that precision are never computed, so

	DividePrec("1", "3", 5)

returns "0.33333", and the remainder is discarded.

# Errors

Errors are reported through the sentinel values [ErrInvalidDecimal],
[ErrDivisionByZero] and [ErrPrecisionRange], which can be checked
with [errors.Is].
*/
package bigdecimal
