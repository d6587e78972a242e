package format

import "strings"

// Affix returns a formatter and parser pair adding a prefix, a suffix and
// a group separator between every three integer digits, e.g. "$ 1,234.5".
// Strings that are not numbers, such as "-" or "1e", are only wrapped.
func Affix(prefix, suffix, group string) (Func, Func) {
	format := func(s string) string {
		return prefix + groupDigits(s, group) + suffix
	}
	parse := func(s string) string {
		s = strings.TrimSpace(s)
		s = strings.TrimPrefix(s, strings.TrimSpace(prefix))
		s = strings.TrimSuffix(s, strings.TrimSpace(suffix))
		if group != "" {
			s = strings.ReplaceAll(s, group, "")
		}
		return strings.TrimSpace(s)
	}
	return format, parse
}

// groupDigits inserts sep between groups of three digits of the integer part.
func groupDigits(s, sep string) string {
	if sep == "" {
		return s
	}
	start := 0
	if start < len(s) && (s[start] == '-' || s[start] == '+') {
		start++
	}
	end := start
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	digits := s[start:end]
	if len(digits) <= 3 {
		return s
	}

	var buf strings.Builder
	buf.WriteString(s[:start])
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	buf.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		buf.WriteString(sep)
		buf.WriteString(digits[i : i+3])
	}
	buf.WriteString(s[end:])
	return buf.String()
}
