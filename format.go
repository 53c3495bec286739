package bubblechart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// NumberFormat renders axis, legend and tooltip values with locale-aware
// digit grouping. Large magnitudes are abbreviated with a k, M or B suffix
// when Abbreviate is set.
type NumberFormat struct {
	printer    *message.Printer
	Decimals   int // fraction digits; negative means up to 2
	Abbreviate bool
}

// NewNumberFormat creates a formatter for the given locale.
func NewNumberFormat(tag language.Tag) *NumberFormat {
	return &NumberFormat{printer: message.NewPrinter(tag), Decimals: -1, Abbreviate: true}
}

// WithDecimals returns a copy with a fixed number of fraction digits.
func (f *NumberFormat) WithDecimals(d int) *NumberFormat {
	c := *f
	c.Decimals = d
	return &c
}

var defaultPrinter = message.NewPrinter(language.English)

var abbreviations = []struct {
	limit  float64
	suffix string
}{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "k"},
}

// Format renders v. NaN renders as "n/a".
func (f *NumberFormat) Format(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	suffix := ""
	if f.Abbreviate {
		for _, a := range abbreviations {
			if math.Abs(v) >= a.limit {
				v /= a.limit
				suffix = a.suffix
				break
			}
		}
	}
	var opts []number.Option
	if f.Decimals >= 0 {
		opts = append(opts, number.MinFractionDigits(f.Decimals), number.MaxFractionDigits(f.Decimals))
	} else {
		opts = append(opts, number.MaxFractionDigits(2))
	}
	p := f.printer
	if p == nil {
		p = defaultPrinter
	}
	return p.Sprint(number.Decimal(v, opts...)) + suffix
}
