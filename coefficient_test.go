package bigdecimal

import (
	"errors"
	"strings"
	"testing"
)

func TestCoef_Trim(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"", "0"},
		{"0", "0"},
		{"000", "0"},
		{"0001", "1"},
		{"1000", "1000"},
		{"0102", "102"},
	}
	for _, tt := range tests {
		got := coef(tt.x).trim()
		if string(got) != tt.want {
			t.Errorf("coef(%q).trim() = %q, want %q", tt.x, got, tt.want)
		}
	}
}

func TestCoef_Lsh(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		want  string
	}{
		{"0", 5, "0"},
		{"1", 0, "1"},
		{"1", 3, "1000"},
		{"123", 2, "12300"},
	}
	for _, tt := range tests {
		x := coef(tt.x)
		got := x.lsh(tt.shift)
		if string(got) != tt.want {
			t.Errorf("coef(%q).lsh(%v) = %q, want %q", tt.x, tt.shift, got, tt.want)
		}
		if string(x) != tt.x {
			t.Errorf("coef(%q).lsh(%v) modified its receiver to %q", tt.x, tt.shift, x)
		}
	}
}

func TestCmpAbs(t *testing.T) {
	tests := []struct {
		x, y string
		want int
	}{
		{"0", "0", 0},
		{"0", "1", -1},
		{"1", "0", 1},
		{"9", "10", -1},
		{"10", "9", 1},
		{"123", "123", 0},
		{"123", "124", -1},
		{"124", "123", 1},
		{"99999", "100000", -1},
	}
	for _, tt := range tests {
		got := cmpAbs(coef(tt.x), coef(tt.y))
		if got != tt.want {
			t.Errorf("cmpAbs(%q, %q) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestAddAbs(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "7", "7"},
		{"7", "0", "7"},
		{"1", "1", "2"},
		{"999", "1", "1000"},
		{"1", "999", "1000"},
		{"5", "5", "10"},
		{"123", "877", "1000"},
		{"123456789", "987654321", "1111111110"},
		{strings.Repeat("9", 40), "1", "1" + strings.Repeat("0", 40)},
	}
	for _, tt := range tests {
		got := addAbs(coef(tt.x), coef(tt.y))
		if string(got) != tt.want {
			t.Errorf("addAbs(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSubAbs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y, want string
		}{
			{"0", "0", "0"},
			{"7", "0", "7"},
			{"7", "7", "0"},
			{"1000", "1", "999"},
			{"1000", "999", "1"},
			{"100", "99", "1"},
			{"1111111110", "987654321", "123456789"},
			{"1" + strings.Repeat("0", 40), "1", strings.Repeat("9", 40)},
		}
		for _, tt := range tests {
			got := subAbs(coef(tt.x), coef(tt.y))
			if string(got) != tt.want {
				t.Errorf("subAbs(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		}
	})

	t.Run("panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("subAbs(\"1\", \"2\") did not panic")
			}
		}()
		subAbs(coef("1"), coef("2"))
	})
}

func TestMulAbs(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"0", "0", "0"},
		{"0", "123", "0"},
		{"123", "0", "0"},
		{"1", "1", "1"},
		{"2", "3", "6"},
		{"9", "9", "81"},
		{"99", "99", "9801"},
		{"12345", "10", "123450"},
		{"123456789", "987654321", "121932631112635269"},
		{strings.Repeat("9", 30), strings.Repeat("9", 30), strings.Repeat("9", 29) + "8" + strings.Repeat("0", 29) + "1"},
	}
	for _, tt := range tests {
		got := mulAbs(coef(tt.x), coef(tt.y))
		if string(got) != tt.want {
			t.Errorf("mulAbs(%q, %q) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
		if len(got) > len(tt.x)+len(tt.y) {
			t.Errorf("mulAbs(%q, %q) has %v digits, want at most %v", tt.x, tt.y, len(got), len(tt.x)+len(tt.y))
		}
	}
}

func TestQuoAbs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			x, y string
			prec int
			want string
		}{
			{"0", "1", 0, "0"},
			{"0", "7", 10, "0"},
			{"1", "1", 0, "1"},
			{"1", "3", 0, "0"},
			{"1", "3", 5, "33333"},
			{"1", "7", 10, "1428571428"},
			{"10", "2", 0, "5"},
			{"10", "2", 3, "5000"},
			{"100", "7", 0, "14"},
			{"999", "999", 0, "1"},
			{"998", "999", 3, "998"},
			{"81", "9", 0, "9"},
			{"89", "9", 0, "9"},
			{"90", "9", 0, "10"},
			{"123456789", "987654321", 9, "124999998"},
			{"121932631112635269", "987654321", 0, "123456789"},
		}
		for _, tt := range tests {
			got, err := quoAbs(coef(tt.x), coef(tt.y), tt.prec)
			if err != nil {
				t.Errorf("quoAbs(%q, %q, %v) failed: %v", tt.x, tt.y, tt.prec, err)
				continue
			}
			if string(got) != tt.want {
				t.Errorf("quoAbs(%q, %q, %v) = %q, want %q", tt.x, tt.y, tt.prec, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := quoAbs(coef("1"), coef("0"), 5)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("quoAbs(\"1\", \"0\", 5) = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

// quoAbsRepeatedSub computes the same quotient as quoAbs by repeatedly
// subtracting the divisor from the running remainder.
func quoAbsRepeatedSub(x, y coef, prec int) coef {
	steps := len(x) + prec
	z := make(coef, 0, steps)
	rem := coef{}
	for i := 0; i < steps; i++ {
		d := byte('0')
		if i < len(x) {
			d = x[i]
		}
		rem = append(rem, d).trim()
		q := byte(0)
		for cmpAbs(rem, y) >= 0 {
			rem = subAbs(rem, y)
			q++
		}
		z = append(z, q+'0')
	}
	return z.trim()
}

func TestQuoAbs_RepeatedSubtraction(t *testing.T) {
	operands := []string{"1", "2", "3", "7", "9", "10", "11", "99", "100", "101", "12345", "99999", "100001", "31415926535"}
	for _, x := range operands {
		for _, y := range operands {
			for _, prec := range []int{0, 1, 7, 20} {
				want := quoAbsRepeatedSub(coef(x), coef(y), prec)
				got, err := quoAbs(coef(x), coef(y), prec)
				if err != nil {
					t.Errorf("quoAbs(%q, %q, %v) failed: %v", x, y, prec, err)
					continue
				}
				if string(got) != string(want) {
					t.Errorf("quoAbs(%q, %q, %v) = %q, want %q", x, y, prec, got, want)
				}
			}
		}
	}
}
