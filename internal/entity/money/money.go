// Package money parses raw monetary input and sums amounts without
// accumulating binary floating point drift.
package money

import (
	"math"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

var errNotNumber = errors.New("not a finite number")

// Parse converts user input such as "12.50" to a finite float.
func Parse(raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, errors.Wrapf(errNotNumber, "parse %q", raw)
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.Wrapf(errNotNumber, "parse %q", raw)
	}
	return f, nil
}

// Format renders an amount in its shortest exact decimal form, e.g. "12.5".
func Format(amount float64) string {
	return decimal.NewFromFloat(amount).String()
}

// Total accumulates amounts in decimal arithmetic.
// The zero value is an empty total.
type Total struct {
	sum decimal.Decimal
}

func (t *Total) Add(amount float64) {
	t.sum = t.sum.Add(decimal.NewFromFloat(amount))
}

func (t Total) Float64() float64 {
	return t.sum.InexactFloat64()
}
