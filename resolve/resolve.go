// Package resolve turns candidate input into a committed decimal value.
//
// A [Resolver] holds the bounds, the step and the precision of a numeric
// field and applies them in a fixed order: parse, clamp to [min, max],
// round half-up to the precision.
// Failures are never returned: anything that is not a number resolves to
// an empty [Result].
package resolve

import (
	"math"

	"github.com/govalues/numinput/decimal"
)

// MaxSafeInteger is the largest integer the float backend represents exactly.
// Values resolved with [decimal.Float] never exceed it in magnitude.
const MaxSafeInteger = 1<<53 - 1

// Direction of a step.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Multiplier scales the step of a single stepping action.
type Multiplier int

const (
	Normal Multiplier = iota // step as configured
	Fast                     // step * 10
	Fine                     // step / 10
)

func (m Multiplier) String() string {
	switch m {
	case Fast:
		return "fast"
	case Fine:
		return "fine"
	}
	return "normal"
}

// Resolver applies clamping, precision and stepping rules.
// It is immutable and safe for concurrent use.
type Resolver struct {
	backend   decimal.Backend
	min       decimal.Value // nil if unbounded
	max       decimal.Value // nil if unbounded
	step      decimal.Value
	precision int // negative if not configured
	conflict  bool

	// raw option values, kept to derive new resolvers with another backend
	rawMin, rawMax, rawStep any
}

type Option func(r *Resolver)

// WithMin sets the lower bound.
// Nil, NaN and anything that is not a number leave the field unbounded.
func WithMin(v any) Option {
	return func(r *Resolver) {
		r.rawMin = v
	}
}

// WithMax sets the upper bound.
// Nil, NaN and anything that is not a number leave the field unbounded.
func WithMax(v any) Option {
	return func(r *Resolver) {
		r.rawMax = v
	}
}

// WithStep sets the step, 1 by default.
// Zero, NaN and anything that is not a number restore the default.
func WithStep(v any) Option {
	return func(r *Resolver) {
		r.rawStep = v
	}
}

// WithPrecision sets the number of digits after the decimal point.
// Negative precision removes the setting.
func WithPrecision(p int) Option {
	return func(r *Resolver) {
		r.precision = p
	}
}

// WithBackend selects the decimal implementation, [decimal.Default] by default.
func WithBackend(b decimal.Backend) Option {
	return func(r *Resolver) {
		if b != nil {
			r.backend = b
		}
	}
}

// New creates a resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		backend:   decimal.Default(),
		precision: -1,
	}
	for _, o := range opts {
		if o != nil {
			o(r)
		}
	}
	r.init()
	return r
}

// With returns a copy of the resolver with opts applied on top of its options.
func (r *Resolver) With(opts ...Option) *Resolver {
	c := &Resolver{
		backend:   r.backend,
		precision: r.precision,
		rawMin:    r.rawMin,
		rawMax:    r.rawMax,
		rawStep:   r.rawStep,
	}
	for _, o := range opts {
		if o != nil {
			o(c)
		}
	}
	c.init()
	return c
}

func (r *Resolver) init() {
	r.min = r.bound(r.rawMin)
	r.max = r.bound(r.rawMax)
	if r.backend == decimal.Float {
		limit := r.backend.FromInt64(MaxSafeInteger)
		if r.max == nil || r.max.Cmp(limit) == decimal.OrderGreater {
			r.max = limit
		}
		if r.min == nil || r.min.Cmp(limit.Neg()) == decimal.OrderLess {
			r.min = limit.Neg()
		}
	}
	// Max is authoritative if the bounds cross.
	if r.min != nil && r.max != nil && r.min.Cmp(r.max) == decimal.OrderGreater {
		r.min = r.max
		r.conflict = true
	}

	r.step = r.backend.FromInt64(1)
	if v, ok := Convert(r.backend, r.rawStep); ok && v.Sign() != 0 {
		r.step = v
	}
}

func (r *Resolver) bound(raw any) decimal.Value {
	v, ok := Convert(r.backend, raw)
	if !ok {
		return nil
	}
	return v
}

// Backend returns the decimal implementation used by the resolver.
func (r *Resolver) Backend() decimal.Backend {
	return r.backend
}

// Min returns the effective lower bound, or nil if unbounded.
func (r *Resolver) Min() decimal.Value {
	return r.min
}

// Max returns the effective upper bound, or nil if unbounded.
func (r *Resolver) Max() decimal.Value {
	return r.max
}

// StepSize returns the configured step.
func (r *Resolver) StepSize() decimal.Value {
	return r.step
}

// Conflict reports whether the configured min was greater than max.
// In that case max is used as both bounds.
func (r *Resolver) Conflict() bool {
	return r.conflict
}

// HasPrecision reports whether the precision is configured explicitly.
func (r *Resolver) HasPrecision() bool {
	return r.precision >= 0
}

// Precision returns the number of fraction digits used to display v.
// It is the configured precision, or the larger of the scale of the step
// and the scale of v without trailing zeros.
func (r *Resolver) Precision(v decimal.Value) int {
	if r.precision >= 0 {
		return r.precision
	}
	p := r.step.Scale()
	if v != nil && !v.IsNaN() {
		p = max(p, v.Reduce().Scale())
	}
	return p
}

// Convert converts a candidate to a value of backend b.
// Candidates of type string, float32, float64, int, int32, int64,
// [decimal.Value] and [Result] are supported.
// It returns false for empty, incomplete, malformed and NaN candidates.
func Convert(b decimal.Backend, candidate any) (decimal.Value, bool) {
	var v decimal.Value
	switch c := candidate.(type) {
	case nil:
		return nil, false
	case Result:
		v = c.Value
	case *Result:
		if c == nil {
			return nil, false
		}
		v = c.Value
	case decimal.Value:
		v = c
	case string:
		d, err := b.Parse(c)
		if err != nil {
			return nil, false
		}
		v = d
	case float64:
		if math.IsNaN(c) {
			return nil, false
		}
		v = b.FromFloat64(c)
	case float32:
		v = b.FromFloat64(float64(c))
	case int:
		v = b.FromInt64(int64(c))
	case int32:
		v = b.FromInt64(int64(c))
	case int64:
		v = b.FromInt64(c)
	default:
		return nil, false
	}
	if v == nil || v.IsNaN() {
		return nil, false
	}
	return v, true
}

// Resolve converts the candidate, clamps it to the bounds and rounds it
// to the configured precision.
// Empty, incomplete and malformed candidates resolve to an empty result.
func (r *Resolver) Resolve(candidate any) Result {
	v, ok := Convert(r.backend, candidate)
	if !ok {
		return Result{}
	}
	return r.apply(v)
}

// Reclamp re-applies bounds and precision to a previously resolved result,
// e.g. after the bounds have changed.
func (r *Resolver) Reclamp(res Result) Result {
	if res.IsEmpty() {
		return Result{}
	}
	return r.apply(res.Value)
}

// apply clamps v and then rounds it to the precision.
// A bound with more fraction digits than the precision is rounded as well,
// so the result may lie up to half a unit beyond it.
func (r *Resolver) apply(v decimal.Value) Result {
	res := Result{Value: v}
	switch {
	case r.max != nil && v.Cmp(r.max) == decimal.OrderGreater:
		res = Result{Value: r.max, Clamped: true}
	case r.min != nil && v.Cmp(r.min) == decimal.OrderLess:
		res = Result{Value: r.min, Clamped: true}
	}
	if r.precision >= 0 {
		res.Value = res.Value.Round(r.precision)
	}
	return res
}

// Step adds the signed, multiplied step to current and resolves the sum.
// An empty current value starts from zero, unless zero is outside the bounds;
// then the bound closest to zero is returned.
func (r *Resolver) Step(current Result, dir Direction, mult Multiplier) Result {
	if current.IsEmpty() {
		zero := r.backend.FromInt64(0)
		switch {
		case r.min != nil && r.min.Cmp(zero) == decimal.OrderGreater:
			return r.apply(r.min)
		case r.max != nil && r.max.Cmp(zero) == decimal.OrderLess:
			return r.apply(r.max)
		}
		current = Result{Value: zero}
	}
	return r.apply(current.Value.Add(r.delta(dir, mult)))
}

// delta returns the signed step for a single stepping action.
func (r *Resolver) delta(dir Direction, mult Multiplier) decimal.Value {
	d := r.step
	switch mult {
	case Fast:
		d = d.Shift(1)
	case Fine:
		d = d.Shift(-1)
	}
	if dir == Down {
		d = d.Neg()
	}
	return d
}
