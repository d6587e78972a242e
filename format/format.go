// Package format renders resolved values for display and reads display
// strings back into numeric strings.
package format

import (
	"strings"
	"unicode"

	"github.com/govalues/numinput/decimal"
	"github.com/govalues/numinput/resolve"
)

// Func converts one string into another.
// A formatter receives a canonical numeric string, such as "-1234.50",
// and a parser receives whatever the formatter produced or the user typed.
type Func func(string) string

// Formatter converts resolved values into display strings.
// It is immutable and safe for concurrent use.
type Formatter struct {
	precision int // negative if inferred
	step      decimal.Value
	format    Func
	parse     Func
	separator string
}

type Option func(f *Formatter)

// WithPrecision sets the number of fraction digits to display.
// Negative precision means the precision is inferred from the value and
// the step.
func WithPrecision(p int) Option {
	return func(f *Formatter) {
		f.precision = p
	}
}

// WithStep sets the step used to infer the precision.
func WithStep(step decimal.Value) Option {
	return func(f *Formatter) {
		if step != nil && !step.IsNaN() {
			f.step = step
		}
	}
}

// WithFormatter sets a function decorating canonical numeric strings.
// Its output is displayed as is; decimal separator substitution is skipped.
func WithFormatter(fn Func) Option {
	return func(f *Formatter) {
		f.format = fn
	}
}

// WithParser sets the inverse of the formatter.
func WithParser(fn Func) Option {
	return func(f *Formatter) {
		f.parse = fn
	}
}

// WithDecimalSeparator sets the string displayed instead of '.'.
func WithDecimalSeparator(sep string) Option {
	return func(f *Formatter) {
		f.separator = sep
	}
}

// FromResolver returns options matching the precision and the step of r.
func FromResolver(r *resolve.Resolver) []Option {
	p := -1
	if r.HasPrecision() {
		p = r.Precision(nil)
	}
	return []Option{WithPrecision(p), WithStep(r.StepSize())}
}

// New creates a formatter.
func New(opts ...Option) *Formatter {
	f := &Formatter{precision: -1}
	for _, o := range opts {
		if o != nil {
			o(f)
		}
	}
	return f
}

// With returns a copy of the formatter with opts applied on top of its options.
func (f *Formatter) With(opts ...Option) *Formatter {
	c := *f
	for _, o := range opts {
		if o != nil {
			o(&c)
		}
	}
	return &c
}

// HasFormatter reports whether a formatter function is configured.
func (f *Formatter) HasFormatter() bool {
	return f.format != nil
}

// Separator returns the decimal separator, "." by default.
func (f *Formatter) Separator() string {
	if f.separator == "" {
		return "."
	}
	return f.separator
}

// Precision returns the number of fraction digits used to display v.
func (f *Formatter) Precision(v decimal.Value) int {
	if f.precision >= 0 {
		return f.precision
	}
	p := 0
	if f.step != nil {
		p = f.step.Scale()
	}
	if v != nil && !v.IsNaN() {
		p = max(p, v.Reduce().Scale())
	}
	return p
}

// Numeric returns the canonical numeric string of a resolved value padded
// or rounded to the display precision, or an empty string.
func (f *Formatter) Numeric(r resolve.Result) string {
	if r.IsEmpty() {
		return ""
	}
	return r.Value.Round(f.Precision(r.Value)).String()
}

// Format returns the display string of a resolved value.
// An empty result is displayed as an empty string.
func (f *Formatter) Format(r resolve.Result) string {
	s := f.Numeric(r)
	if s == "" {
		return ""
	}
	return f.decorate(s)
}

func (f *Formatter) decorate(s string) string {
	if f.format != nil {
		return f.format(s)
	}
	if sep := f.Separator(); sep != "." {
		return strings.Replace(s, ".", sep, 1)
	}
	return s
}

// Typing returns the display string for text being typed by the user.
// The text is not rounded; only the formatter function is applied,
// so that a partial number such as "1." stays as typed.
func (f *Formatter) Typing(text string) string {
	if f.format == nil || text == "" {
		return text
	}
	return f.format(f.Parse(text))
}

// Parse converts a display string back into a numeric string.
// The parser function is used if configured.
// Otherwise full stop variants and the decimal separator are replaced by '.',
// and everything except letters, digits, '.', '+' and '-' is removed.
// Letters are kept so that garbage stays malformed.
func (f *Formatter) Parse(s string) string {
	if f.parse != nil {
		return strings.TrimSpace(f.parse(s))
	}
	s = decimal.ReplaceFullStops(s)
	if sep := f.Separator(); sep != "." {
		s = strings.ReplaceAll(s, sep, ".")
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '.' || r == '+' || r == '-':
			return r
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return r
		}
		return -1
	}, s)
}
