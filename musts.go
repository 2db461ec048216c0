package bigdecimal

import "fmt"

// MustQuo is like [Decimal.Quo] but panics if computing error.
func (d Decimal) MustQuo(e Decimal) Decimal {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}

// MustQuoPrec is like [Decimal.QuoPrec] but panics if computing error.
func (d Decimal) MustQuoPrec(e Decimal, prec int) Decimal {
	f, err := d.QuoPrec(e, prec)
	if err != nil {
		panic(fmt.Sprintf("MustQuoPrec(%v, %v) failed: %v", e, prec, err))
	}
	return f
}
