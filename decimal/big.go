package decimal

import (
	"strconv"
	"strings"
)

type bigBackend struct{}

func (bigBackend) Name() string { return "big" }

func (b bigBackend) Parse(s string) (Value, error) {
	if strings.TrimSpace(s) == nanString {
		return NaN, nil
	}
	n, err := parseNumber(s)
	if err != nil {
		return nil, err
	}
	return newBigFromNumber(n), nil
}

func (b bigBackend) FromFloat64(f float64) Value {
	v, err := b.Parse(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		return NaN // NaN and infinities
	}
	return v
}

func (bigBackend) FromInt64(n int64) Value {
	z := new(bint)
	z.setInt64(n)
	return &bigDecimal{coef: z}
}

// bigDecimal is an arbitrary-precision decimal coef / 10^scale.
type bigDecimal struct {
	coef  *bint
	scale int
}

func newBigFromNumber(n Number) *bigDecimal {
	z, ok := newBint(n.Integer+n.Fraction, n.Negative)
	if !ok {
		panic("newBigFromNumber: invalid number " + n.String())
	}
	return &bigDecimal{coef: z, scale: len(n.Fraction)}
}

// toBig converts any non-NaN value to the arbitrary-precision representation.
func toBig(e Value) *bigDecimal {
	if b, ok := e.(*bigDecimal); ok {
		return b
	}
	return newBigFromNumber(Normalize(e.String()))
}

// align returns coefficients of d and e rescaled to the same scale.
func (d *bigDecimal) align(e *bigDecimal) (x, y *bint, scale int) {
	x, y = d.coef, e.coef
	switch {
	case d.scale < e.scale:
		z := new(bint)
		z.lsh(x, e.scale-d.scale)
		return z, y, e.scale
	case d.scale > e.scale:
		z := new(bint)
		z.lsh(y, d.scale-e.scale)
		return x, z, d.scale
	}
	return x, y, d.scale
}

func (d *bigDecimal) Add(e Value) Value {
	if e.IsNaN() {
		return NaN
	}
	x, y, scale := d.align(toBig(e))
	z := new(bint)
	z.add(x, y)
	return &bigDecimal{coef: z, scale: scale}
}

func (d *bigDecimal) Neg() Value {
	z := new(bint)
	z.neg(d.coef)
	return &bigDecimal{coef: z, scale: d.scale}
}

func (d *bigDecimal) Shift(n int) Value {
	if n <= d.scale {
		return &bigDecimal{coef: d.coef, scale: d.scale - n}
	}
	z := new(bint)
	z.lsh(d.coef, n-d.scale)
	return &bigDecimal{coef: z, scale: 0}
}

func (d *bigDecimal) Cmp(e Value) Ordering {
	if e.IsNaN() {
		return Unordered
	}
	x, y, _ := d.align(toBig(e))
	return Ordering(x.cmp(y))
}

func (d *bigDecimal) Round(scale int) Value {
	if scale < 0 {
		scale = 0
	}
	z := new(bint)
	if scale >= d.scale {
		z.lsh(d.coef, scale-d.scale)
	} else {
		z.rshHalfUp(d.coef, d.scale-scale)
	}
	return &bigDecimal{coef: z, scale: scale}
}

func (d *bigDecimal) Reduce() Value {
	n := d.coef.ntz(d.scale)
	if n == 0 {
		return d
	}
	z := new(bint)
	r := getBint()
	defer putBint(r)
	y := getBint()
	defer putBint(y)
	y.pow10(n)
	z.quoRem(d.coef, y, r)
	return &bigDecimal{coef: z, scale: d.scale - n}
}

func (d *bigDecimal) Scale() int { return d.scale }

func (d *bigDecimal) Sign() int { return d.coef.sign() }

func (d *bigDecimal) IsNaN() bool { return false }

func (d *bigDecimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

func (d *bigDecimal) String() string {
	m := new(bint)
	m.abs(d.coef)
	digits := m.string()
	if len(digits) <= d.scale {
		digits = strings.Repeat("0", d.scale-len(digits)+1) + digits
	}

	var buf strings.Builder
	buf.Grow(len(digits) + 2)
	if d.coef.sign() < 0 {
		buf.WriteByte('-')
	}
	split := len(digits) - d.scale
	buf.WriteString(digits[:split])
	if d.scale > 0 {
		buf.WriteByte('.')
		buf.WriteString(digits[split:])
	}
	return buf.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (d *bigDecimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
