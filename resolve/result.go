package resolve

import "github.com/govalues/numinput/decimal"

// Result is a resolved value.
// The zero value is the empty result.
type Result struct {
	Value   decimal.Value // nil if empty
	Clamped bool          // true if Value was replaced by a bound
}

// Empty is the result of resolving anything that is not a number.
var Empty = Result{}

// IsEmpty reports whether the result holds no value.
func (r Result) IsEmpty() bool {
	return r.Value == nil
}

// Equal reports whether both results are empty or hold numerically
// equal values. The Clamped flag is ignored.
func (r Result) Equal(o Result) bool {
	switch {
	case r.IsEmpty() || o.IsEmpty():
		return r.IsEmpty() == o.IsEmpty()
	}
	return r.Value.Cmp(o.Value) == decimal.OrderEqual
}

// String returns the canonical representation of the value,
// or an empty string.
func (r Result) String() string {
	if r.IsEmpty() {
		return ""
	}
	return r.Value.String()
}
