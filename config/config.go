// Package config loads the options of a numeric input field from YAML or
// TOML files and turns them into a resolver, a formatter and session options.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/govalues/numinput/decimal"
	"github.com/govalues/numinput/format"
	"github.com/govalues/numinput/internal/repeat"
	"github.com/govalues/numinput/resolve"
	"github.com/govalues/numinput/session"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrUnknownFormat = errors.New("unknown config format")
	ErrInvalid       = errors.New("invalid config")
)

// Options of a numeric input field.
// Numbers are kept as written, so that "0.1" stays exactly 0.1.
type Options struct {
	Min              Number       `yaml:"min" toml:"min"`
	Max              Number       `yaml:"max" toml:"max"`
	Step             Number       `yaml:"step" toml:"step"`
	Value            Number       `yaml:"value" toml:"value"`
	Precision        *int         `yaml:"precision" toml:"precision"`
	Backend          string       `yaml:"backend" toml:"backend"`
	DecimalSeparator string       `yaml:"decimal_separator" toml:"decimal_separator"`
	Affix            AffixConfig  `yaml:"affix" toml:"affix"`
	Controlled       bool         `yaml:"controlled" toml:"controlled"`
	ReadOnly         bool         `yaml:"read_only" toml:"read_only"`
	Disabled         bool         `yaml:"disabled" toml:"disabled"`
	Keyboard         *bool        `yaml:"keyboard" toml:"keyboard"`
	Repeat           RepeatConfig `yaml:"repeat" toml:"repeat"`
	LogLevel         string       `yaml:"log_level" toml:"log_level"`
}

// AffixConfig decorates the display, e.g. "$ 1,234.50".
type AffixConfig struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
	Suffix string `yaml:"suffix" toml:"suffix"`
	Group  string `yaml:"group" toml:"group"`
}

// IsZero reports whether no decoration is configured.
func (a AffixConfig) IsZero() bool {
	return a == AffixConfig{}
}

// RepeatConfig holds the timing of the auto-repeat of a held step button.
type RepeatConfig struct {
	Delay        Duration `yaml:"delay" toml:"delay"`
	Interval     Duration `yaml:"interval" toml:"interval"`
	MinInterval  Duration `yaml:"min_interval" toml:"min_interval"`
	Acceleration float64  `yaml:"acceleration" toml:"acceleration"`
}

// Number is a decimal number kept as its text.
// The empty Number means the option is not set.
type Number string

// IsSet reports whether the number is configured.
func (n Number) IsSet() bool {
	return n != ""
}

func (n Number) String() string {
	return string(n)
}

// Value parses the number with backend b.
func (n Number) Value(b decimal.Backend) (decimal.Value, error) {
	return b.Parse(string(n))
}

func (n *Number) set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*n = ""
		return nil
	}
	if !decimal.Normalize(s).Valid {
		return fmt.Errorf("%q: %w", s, ErrInvalidNumber)
	}
	*n = Number(s)
	return nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
// The text of the node is used as is, without a round trip through float64.
func (n *Number) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: not a scalar", node.Line, ErrInvalidNumber)
	}
	if node.Tag == "!!null" {
		*n = ""
		return nil
	}
	if err := n.set(node.Value); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}

// UnmarshalTOML implements the [toml.Unmarshaler] interface.
// Floats are converted to their shortest exact representation.
func (n *Number) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		return n.set(v)
	case int64:
		*n = Number(strconv.FormatInt(v, 10))
		return nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%v: %w", v, ErrInvalidNumber)
		}
		*n = Number(strconv.FormatFloat(v, 'f', -1, 64))
		return nil
	}
	return fmt.Errorf("%v: %w: unsupported type %T", v, ErrInvalidNumber, v)
}

// Duration wraps time.Duration for parsing strings such as "600ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements the [yaml.Unmarshaler] interface.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	return d.UnmarshalText([]byte(node.Value))
}

// Load loads options from a YAML or TOML file, selected by the extension.
func Load(path string) (*Options, error) {
	path = os.ExpandEnv(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()

	return Decode(f, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Decode reads options in the given format, "yaml", "yml" or "toml".
// Unknown keys are rejected.
func Decode(r io.Reader, format string) (*Options, error) {
	var o Options
	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case "toml":
		md, err := toml.NewDecoder(r).Decode(&o)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if keys := md.Undecoded(); len(keys) > 0 {
			return nil, fmt.Errorf("failed to parse config: unknown keys %v", keys)
		}
	default:
		return nil, fmt.Errorf("%q: %w", format, ErrUnknownFormat)
	}

	o.applyDefaults()
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func (o *Options) applyDefaults() {
	if !o.Step.IsSet() {
		o.Step = "1"
	}
	if o.Keyboard == nil {
		enabled := true
		o.Keyboard = &enabled
	}
	if o.LogLevel == "" {
		o.LogLevel = "info"
	}
}

// Validate reports all problems of the options at once.
// A minimum greater than the maximum is not an error; see [Options.Conflict].
func (o *Options) Validate() error {
	var errs []error
	b, err := decimal.Lookup(o.Backend)
	if err != nil {
		errs = append(errs, err)
		b = decimal.Default()
	}
	if o.Precision != nil && *o.Precision < 0 {
		errs = append(errs, fmt.Errorf("precision %d: %w", *o.Precision, ErrInvalid))
	}
	if o.Step.IsSet() {
		step, err := o.Step.Value(b)
		switch {
		case err != nil:
			errs = append(errs, fmt.Errorf("step: %w", err))
		case step.Sign() == 0:
			errs = append(errs, fmt.Errorf("step %v: %w: must not be zero", step, ErrInvalid))
		}
	}
	for _, f := range []struct {
		name string
		n    Number
	}{
		{"min", o.Min},
		{"max", o.Max},
		{"value", o.Value},
	} {
		if !f.n.IsSet() {
			continue
		}
		if _, err := f.n.Value(b); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
		}
	}
	if a := o.Repeat.Acceleration; a < 0 || a > 1 {
		errs = append(errs, fmt.Errorf("acceleration %v: %w: must be in [0, 1]", a, ErrInvalid))
	}
	if _, err := zapcore.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log level: %w", err))
	}
	return errors.Join(errs...)
}

// Conflict reports whether min is greater than max.
// The resolver then uses max for both bounds.
func (o *Options) Conflict() bool {
	r, err := o.Resolver()
	return err == nil && r.Conflict()
}

// Level returns the configured log level, info if it cannot be parsed.
func (o *Options) Level() zapcore.Level {
	l, err := zapcore.ParseLevel(o.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// Resolver creates the resolver of the field.
func (o *Options) Resolver() (*resolve.Resolver, error) {
	b, err := decimal.Lookup(o.Backend)
	if err != nil {
		return nil, err
	}
	opts := []resolve.Option{resolve.WithBackend(b)}
	if o.Min.IsSet() {
		opts = append(opts, resolve.WithMin(o.Min.String()))
	}
	if o.Max.IsSet() {
		opts = append(opts, resolve.WithMax(o.Max.String()))
	}
	if o.Step.IsSet() {
		opts = append(opts, resolve.WithStep(o.Step.String()))
	}
	if o.Precision != nil {
		opts = append(opts, resolve.WithPrecision(*o.Precision))
	}
	return resolve.New(opts...), nil
}

// Formatter creates the formatter of the field matching resolver r.
func (o *Options) Formatter(r *resolve.Resolver) *format.Formatter {
	opts := format.FromResolver(r)
	if o.DecimalSeparator != "" {
		opts = append(opts, format.WithDecimalSeparator(o.DecimalSeparator))
	}
	if !o.Affix.IsZero() {
		fn, parse := format.Affix(o.Affix.Prefix, o.Affix.Suffix, o.Affix.Group)
		opts = append(opts, format.WithFormatter(fn), format.WithParser(parse))
	}
	return format.New(opts...)
}

// SessionOptions returns the session options for the initial value,
// the modes and the auto-repeat timing.
func (o *Options) SessionOptions() []session.Option {
	var opts []session.Option
	if o.Value.IsSet() {
		opts = append(opts, session.WithValue(o.Value.String()))
	}
	if o.Controlled {
		opts = append(opts, session.WithControlled())
	}
	if o.ReadOnly {
		opts = append(opts, session.WithReadOnly())
	}
	if o.Disabled {
		opts = append(opts, session.WithDisabled())
	}
	if o.Keyboard != nil {
		opts = append(opts, session.WithKeyboard(*o.Keyboard))
	}
	opts = append(opts, session.WithRepeat(
		repeat.WithDelay(o.Repeat.Delay.Duration),
		repeat.WithInterval(o.Repeat.Interval.Duration),
		repeat.WithMinInterval(o.Repeat.MinInterval.Duration),
		repeat.WithAcceleration(o.Repeat.Acceleration),
	))
	return opts
}

// Session creates a session from the options.
// Extra options are applied after the configured ones.
func (o *Options) Session(extra ...session.Option) (*session.Session, error) {
	r, err := o.Resolver()
	if err != nil {
		return nil, err
	}
	return session.New(r, o.Formatter(r), append(o.SessionOptions(), extra...)...), nil
}
