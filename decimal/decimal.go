package decimal

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"sync"
)

// Value is an immutable decimal number.
//
// Two implementations exist: an arbitrary-precision one backed by [big.Int]
// and a fallback backed by float64, see [Backend].
// Both keep the number of digits after the decimal point as it was written,
// so 9, 9.0 and 9.000 have the same numeric value but different scales.
// Callers must depend on this interface only.
//
// A special value [NaN] is returned when a non-numeric float is converted.
// It propagates through arithmetic and is unordered with every value,
// including itself.
type Value interface {
	// Add returns the exact sum of the receiver and e.
	// The scale of the sum is the larger of the two scales.
	Add(e Value) Value

	// Neg returns the value with opposite sign.
	Neg() Value

	// Shift returns the value multiplied by 10^n.
	Shift(n int) Value

	// Cmp compares the receiver and e numerically.
	Cmp(e Value) Ordering

	// Round returns the value rounded half away from zero to the specified
	// number of digits after the decimal point.
	// If the scale of the value is less than the specified scale,
	// the result is zero-padded to the right.
	Round(scale int) Value

	// Reduce returns the value with trailing fraction zeros removed.
	Reduce() Value

	// Scale returns the number of digits after the decimal point.
	Scale() int

	// Sign returns -1, 0 or +1.
	Sign() int

	// IsNaN returns true if the value is the NaN sentinel.
	IsNaN() bool

	// Float64 returns the nearest binary floating-point number.
	Float64() float64

	// String returns the canonical representation without exponent,
	// e.g. "-0.0009".
	String() string
}

// Ordering is the result of comparing two values.
type Ordering int

const (
	OrderLess    Ordering = -1
	OrderEqual   Ordering = 0
	OrderGreater Ordering = 1
	Unordered    Ordering = 2 // at least one operand is NaN
)

func (o Ordering) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	}
	return "unordered"
}

var (
	ErrEmpty          = errors.New("empty decimal")
	ErrIncomplete     = errors.New("incomplete decimal")
	ErrMalformed      = errors.New("malformed decimal")
	ErrUnknownBackend = errors.New("unknown backend")
)

// Backend creates values of one implementation.
type Backend interface {
	// Name returns "big" or "float".
	Name() string

	// Parse converts a string to a value.
	// See [Normalize] for the accepted format.
	// The string "NaN" is converted to [NaN].
	//
	// Parse returns an error wrapping:
	//   - [ErrEmpty] if the string is blank;
	//   - [ErrIncomplete] if the string is a prefix of a number, such as "-";
	//   - [ErrMalformed] otherwise.
	Parse(s string) (Value, error)

	// FromFloat64 converts a float to a value using the shortest decimal
	// representation that rounds back to f.
	// NaN and infinities are converted to [NaN].
	FromFloat64(f float64) Value

	// FromInt64 converts an integer to a value with zero scale.
	FromInt64(n int64) Value
}

var (
	// Big is the arbitrary-precision backend.
	Big Backend = bigBackend{}

	// Float is the fallback backend.
	// Values with more than 15 significant digits may lose trailing digits.
	Float Backend = floatBackend{}
)

var (
	defaultOnce    sync.Once
	defaultBackend Backend
)

// Default returns the backend used by package-level functions.
// The arbitrary-precision backend is selected whenever big integers are
// available; the check is performed once per process.
func Default() Backend {
	defaultOnce.Do(func() {
		if hasBigIntegers() {
			defaultBackend = Big
		} else {
			defaultBackend = Float
		}
	})
	return defaultBackend
}

// hasBigIntegers checks that integers wider than 64 bits are exact.
func hasBigIntegers() bool {
	x := new(big.Int).Exp(big.NewInt(10), big.NewInt(40), nil)
	x.Add(x, big.NewInt(1))
	return x.String() == "1"+strings.Repeat("0", 39)+"1"
}

// Lookup returns the backend with the given name.
// Empty name selects [Default].
func Lookup(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return Default(), nil
	case "big", "bigint", "arbitrary":
		return Big, nil
	case "float", "float64", "native":
		return Float, nil
	}
	return nil, fmt.Errorf("backend %q: %w", name, ErrUnknownBackend)
}

// Parse converts a string to a value using the [Default] backend.
func Parse(s string) (Value, error) {
	return Default().Parse(s)
}

// FromFloat64 converts a float to a value using the [Default] backend.
func FromFloat64(f float64) Value {
	return Default().FromFloat64(f)
}

// FromInt64 converts an integer to a value using the [Default] backend.
func FromInt64(n int64) Value {
	return Default().FromInt64(n)
}

// Add returns the exact sum of d and e.
func Add(d, e Value) Value {
	return d.Add(e)
}

// Compare compares d and e numerically.
func Compare(d, e Value) Ordering {
	return d.Cmp(e)
}

// Equal returns true if d and e are numerically equal.
// NaN is not equal to anything.
func Equal(d, e Value) bool {
	return d.Cmp(e) == OrderEqual
}

// Less returns true if d < e.
func Less(d, e Value) bool {
	return d.Cmp(e) == OrderLess
}

// Max returns the larger of d and e; unordered operands return d.
func Max(d, e Value) Value {
	if d.Cmp(e) == OrderLess {
		return e
	}
	return d
}

// Min returns the smaller of d and e; unordered operands return d.
func Min(d, e Value) Value {
	if d.Cmp(e) == OrderGreater {
		return e
	}
	return d
}

const nanString = "NaN"

// parseNumber is the common first step of all backends.
func parseNumber(s string) (Number, error) {
	n := Normalize(s)
	if n.Valid {
		return n, nil
	}
	switch Classify(s) {
	case StatusEmpty:
		return Number{}, ErrEmpty
	case StatusPartial:
		return Number{}, fmt.Errorf("%q: %w", s, ErrIncomplete)
	}
	return Number{}, fmt.Errorf("%q: %w", s, ErrMalformed)
}

// nan is the NaN sentinel shared by all backends.
type nan struct{}

// NaN is a value that is unordered with every value, including itself.
var NaN Value = nan{}

func (nan) Add(Value) Value    { return NaN }
func (nan) Neg() Value         { return NaN }
func (nan) Shift(int) Value    { return NaN }
func (nan) Cmp(Value) Ordering { return Unordered }
func (nan) Round(int) Value    { return NaN }
func (nan) Reduce() Value      { return NaN }
func (nan) Scale() int         { return 0 }
func (nan) Sign() int          { return 0 }
func (nan) IsNaN() bool        { return true }
func (nan) Float64() float64   { return math.NaN() }
func (nan) String() string     { return nanString }

func (nan) MarshalText() ([]byte, error) { return []byte(nanString), nil }
