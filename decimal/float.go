package decimal

import (
	"math"
	"strconv"
	"strings"
)

type floatBackend struct{}

func (floatBackend) Name() string { return "float" }

func (b floatBackend) Parse(s string) (Value, error) {
	if strings.TrimSpace(s) == nanString {
		return NaN, nil
	}
	n, err := parseNumber(s)
	if err != nil {
		return nil, err
	}
	return newFloatFromNumber(n), nil
}

func (b floatBackend) FromFloat64(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	return newFloatFromNumber(Normalize(strconv.FormatFloat(f, 'f', -1, 64)))
}

func (floatBackend) FromInt64(n int64) Value {
	return &floatDecimal{f: float64(n)}
}

// floatDecimal is a binary float remembering its decimal scale.
// After every operation the float is the nearest one to the exact decimal
// result rounded to scale, so that repeated additions do not accumulate error.
type floatDecimal struct {
	f     float64
	scale int
}

func newFloatFromNumber(n Number) *floatDecimal {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		// Out of float range, keep the sign.
		f = math.Copysign(math.MaxFloat64, f)
	}
	if f == 0 {
		f = 0 // no negative zeros
	}
	return &floatDecimal{f: f, scale: len(n.Fraction)}
}

// number returns the decimal digits of d rounded to its scale.
func (d *floatDecimal) number() Number {
	return Normalize(strconv.FormatFloat(d.f, 'f', -1, 64)).roundHalfUp(d.scale)
}

func (d *floatDecimal) Add(e Value) Value {
	if e.IsNaN() {
		return NaN
	}
	g := toFloat(e)
	sum := d.f + g.f
	n := Normalize(strconv.FormatFloat(sum, 'f', -1, 64))
	return newFloatFromNumber(n.roundHalfUp(max(d.scale, g.scale)))
}

// toFloat converts any non-NaN value to the float representation.
func toFloat(e Value) *floatDecimal {
	if g, ok := e.(*floatDecimal); ok {
		return g
	}
	return newFloatFromNumber(Normalize(e.String()))
}

func (d *floatDecimal) Neg() Value {
	return &floatDecimal{f: 0 - d.f, scale: d.scale}
}

func (d *floatDecimal) Shift(n int) Value {
	return newFloatFromNumber(d.number().shift(n))
}

func (d *floatDecimal) Cmp(e Value) Ordering {
	switch g := e.(type) {
	case *floatDecimal:
		switch {
		case d.f < g.f:
			return OrderLess
		case d.f > g.f:
			return OrderGreater
		}
		return OrderEqual
	case nan:
		return Unordered
	}
	return toBig(d).Cmp(e)
}

func (d *floatDecimal) Round(scale int) Value {
	if scale < 0 {
		scale = 0
	}
	return newFloatFromNumber(d.number().roundHalfUp(scale))
}

func (d *floatDecimal) Reduce() Value {
	return newFloatFromNumber(d.number().reduce())
}

func (d *floatDecimal) Scale() int { return d.scale }

func (d *floatDecimal) Sign() int {
	switch {
	case d.f < 0:
		return -1
	case d.f > 0:
		return 1
	}
	return 0
}

func (d *floatDecimal) IsNaN() bool { return false }

func (d *floatDecimal) Float64() float64 { return d.f }

func (d *floatDecimal) String() string {
	return d.number().String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d *floatDecimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
