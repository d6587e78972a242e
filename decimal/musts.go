package decimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) Value {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return d
}

// mustParseWith is like [Backend.Parse] but panics if the string cannot be parsed.
// Use only for test code!
func mustParseWith(b Backend, s string) Value {
	d, err := b.Parse(s)
	if err != nil {
		panic(fmt.Sprintf("%v.Parse(%q) failed: %v", b.Name(), s, err))
	}
	return d
}
