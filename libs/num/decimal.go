package num

import (
	"github.com/shopspring/decimal"
)

type Decimal = decimal.Decimal

var (
	dzero = decimal.Zero
	d1    = decimal.NewFromInt(1)
	d100  = decimal.NewFromInt(100)
)

func MustDecimalFromString(f string) Decimal {
	d, err := DecimalFromString(f)
	if err != nil {
		panic(err)
	}
	return d
}

func DecimalZero() Decimal {
	return dzero
}

func DecimalOne() Decimal {
	return d1
}

func DecimalHundred() Decimal {
	return d100
}

func DecimalFromInt64(i int64) Decimal {
	return decimal.NewFromInt(i)
}

func DecimalFromFloat(v float64) Decimal {
	return decimal.NewFromFloat(v)
}

func DecimalFromString(s string) (Decimal, error) {
	return decimal.NewFromString(s)
}

func MaxD(a, b Decimal) Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func MinD(a, b Decimal) Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}

// AvgD returns the arithmetic mean of the given decimals, zero for no input.
func AvgD(ds ...Decimal) Decimal {
	if len(ds) == 0 {
		return dzero
	}
	sum := dzero
	for _, d := range ds {
		sum = sum.Add(d)
	}
	return sum.Div(decimal.NewFromInt(int64(len(ds))))
}
