package decimal

import (
	"strings"
)

// MaxExponent is the largest absolute exponent accepted by [Normalize]
// in scientific notation.
const MaxExponent = 4096

// Status classifies a raw numeric string while it is being typed.
type Status int

const (
	StatusEmpty     Status = iota // nothing but whitespace
	StatusPartial                 // prefix of a number, e.g. "-", "1.", "1e-"
	StatusValid                   // complete number
	StatusMalformed               // cannot become a number by appending characters
)

func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusPartial:
		return "partial"
	case StatusValid:
		return "valid"
	case StatusMalformed:
		return "malformed"
	}
	return "unknown"
}

// Number is a numeric string decomposed into canonical parts.
// Use [Normalize] or [NormalizeSigned] to obtain it.
type Number struct {
	Negative bool   // sign, false for zero unless kept by NormalizeSigned
	Integer  string // integer digits without redundant leading zeros, at least "0"
	Fraction string // fraction digits as written, trailing zeros included
	Valid    bool   // false if the input was not a number
}

// fullStops converts period glyphs produced by some input methods.
var fullStops = strings.NewReplacer(
	"。", ".", // ideographic full stop
	"．", ".", // fullwidth full stop
	"｡", ".", // halfwidth ideographic full stop
)

// ReplaceFullStops replaces alternative period glyphs with '.'.
func ReplaceFullStops(s string) string {
	return fullStops.Replace(s)
}

// Normalize trims and validates a numeric string.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.
//	.5
//	1.83e5
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') [sign] digits
//	numeric-string ::= [sign] significand [exponent]
//
// Surrounding whitespace is ignored and alternative full stops are accepted.
// Normalize removes leading zeros from the integer part, keeps trailing zeros
// in the fractional part and expands the exponent.
// The sign of a zero is discarded.
// If the string is not a number, the result has Valid set to false.
func Normalize(s string) Number {
	n := scan(s)
	if n.IsZero() {
		n.Negative = false
	}
	return n
}

// NormalizeSigned is like [Normalize], but it keeps the sign of a zero,
// so that "-0" typed by a user can be displayed as such.
func NormalizeSigned(s string) Number {
	return scan(s)
}

// Classify reports how far s is from being a complete number.
// A string such as "1." is parseable but still reported as [StatusPartial],
// because the user is most likely going to type more digits.
func Classify(s string) Status {
	t := strings.TrimSpace(ReplaceFullStops(s))
	if t == "" {
		return StatusEmpty
	}
	if scan(t).Valid {
		if t[len(t)-1] == '.' {
			return StatusPartial
		}
		return StatusValid
	}
	// Anything that becomes valid with one more digit is a prefix of a number.
	if scan(t + "0").Valid {
		return StatusPartial
	}
	return StatusMalformed
}

func scan(s string) Number {
	var (
		pos     int
		width   int
		neg     bool
		intpart string
		frac    string
		eneg    bool
		exp     int
		hasexp  bool
		hasesym bool
	)

	s = strings.TrimSpace(ReplaceFullStops(s))
	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start := pos
	for pos < width && isDigit(s[pos]) {
		pos++
	}
	intpart = s[start:pos]

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && isDigit(s[pos]) {
			pos++
		}
		frac = s[start:pos]
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		hasesym = true
		pos++
		// Sign
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		// Integer
		for pos < width && isDigit(s[pos]) {
			exp = exp*10 + int(s[pos]-'0')
			if exp > MaxExponent {
				return Number{}
			}
			hasexp = true
			pos++
		}
	}

	switch {
	case pos != width:
		return Number{}
	case intpart == "" && frac == "":
		return Number{}
	case hasesym && !hasexp:
		return Number{}
	}

	if eneg {
		exp = -exp
	}
	n := Number{Negative: neg, Integer: intpart, Fraction: frac, Valid: true}
	return n.shift(exp)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// shift moves the decimal point exp places to the right (left if negative).
func (n Number) shift(exp int) Number {
	i, f := n.Integer, n.Fraction
	switch {
	case exp > 0 && exp >= len(f):
		i, f = i+f+strings.Repeat("0", exp-len(f)), ""
	case exp > 0:
		i, f = i+f[:exp], f[exp:]
	case exp < 0 && -exp >= len(i):
		i, f = "0", strings.Repeat("0", -exp-len(i))+i+f
	case exp < 0:
		i, f = i[:len(i)+exp], i[len(i)+exp:]+f
	}
	i = strings.TrimLeft(i, "0")
	if i == "" {
		i = "0"
	}
	n.Integer, n.Fraction = i, f
	return n
}

// IsZero returns true if all digits of n are zeros.
// An invalid number is not zero.
func (n Number) IsZero() bool {
	if !n.Valid {
		return false
	}
	return strings.Trim(n.Integer, "0") == "" && strings.Trim(n.Fraction, "0") == ""
}

// Digits returns the unsigned canonical form of n, e.g. "12.50".
func (n Number) Digits() string {
	switch {
	case !n.Valid:
		return ""
	case n.Fraction == "":
		return n.Integer
	}
	return n.Integer + "." + n.Fraction
}

// String returns the canonical form of n, or an empty string if n is invalid.
func (n Number) String() string {
	if n.Negative && n.Valid {
		return "-" + n.Digits()
	}
	return n.Digits()
}

// roundHalfUp rounds n to scale digits after the decimal point.
// Ties are rounded away from zero.
// If n has fewer digits, it is zero-padded to the right.
func (n Number) roundHalfUp(scale int) Number {
	if scale < 0 {
		scale = 0
	}
	switch {
	case !n.Valid:
		return n
	case len(n.Fraction) == scale:
		return n
	case len(n.Fraction) < scale:
		n.Fraction += strings.Repeat("0", scale-len(n.Fraction))
		return n
	}

	digits := []byte(n.Integer + n.Fraction[:scale])
	if n.Fraction[scale] >= '5' {
		i := len(digits) - 1
		for ; i >= 0; i-- {
			if digits[i] == '9' {
				digits[i] = '0'
				continue
			}
			digits[i]++
			break
		}
		// Carry out of the most significant digit, e.g. 9.995 -> 10.00
		if i < 0 {
			digits = append([]byte{'1'}, digits...)
		}
	}

	split := len(digits) - scale
	n.Integer = strings.TrimLeft(string(digits[:split]), "0")
	if n.Integer == "" {
		n.Integer = "0"
	}
	n.Fraction = string(digits[split:])
	if n.IsZero() {
		n.Negative = false
	}
	return n
}

// reduce removes trailing zeros from the fractional part.
func (n Number) reduce() Number {
	n.Fraction = strings.TrimRight(n.Fraction, "0")
	return n
}
