package session

import (
	"slices"
	"unicode/utf8"
)

// projector maps caret positions between display strings and the
// significant characters they contain.
// Without a formatter every character is significant.
type projector struct {
	decorated bool
	sep       rune
}

func newProjector(decorated bool, sep string) projector {
	r, _ := utf8.DecodeRuneInString(sep)
	return projector{decorated: decorated, sep: r}
}

func (p projector) significant(r rune) bool {
	if !p.decorated {
		return true
	}
	switch {
	case r >= '0' && r <= '9':
		return true
	case r == '.' || r == '-' || r == '+' || r == 'e' || r == 'E':
		return true
	}
	return r == p.sep
}

// strip returns the significant characters of s.
func (p projector) strip(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if p.significant(r) {
			out = append(out, r)
		}
	}
	return out
}

// logical returns the number of significant characters before the rune
// offset pos of s.
func (p projector) logical(s string, pos int) int {
	n, i := 0, 0
	for _, r := range s {
		if i >= pos {
			break
		}
		if p.significant(r) {
			n++
		}
		i++
	}
	return n
}

// physical returns the rune offset in s right after its n-th significant
// character, moved past decorations such as group separators when more
// significant characters follow them.
// For n == 0 it is the offset of the first significant character.
func (p projector) physical(s string, n int) int {
	runes := []rune(s)
	if !p.decorated {
		return min(max(n, 0), len(runes))
	}
	count := 0
	for i, r := range runes {
		if !p.significant(r) {
			continue
		}
		if n == 0 {
			return i
		}
		count++
		if count < n {
			continue
		}
		j := i + 1
		for j < len(runes) && !p.significant(runes[j]) {
			j++
		}
		if j < len(runes) {
			return j
		}
		return i + 1
	}
	return len(runes)
}

// caret returns the caret position in next after old was edited with
// the selection [start, end) and the last key pressed.
//
// Deleting a single character inside a run of identical characters is
// ambiguous: "99999" becomes "9999" whichever 9 is removed. Backspace then
// moves the caret one position back, while forward delete keeps it.
func caret(old []rune, start, end int, next []rune, key Key) int {
	start = min(max(start, 0), len(old))
	end = min(max(end, start), len(old))

	// Collapsed caret, characters removed
	if start == end && len(next) < len(old) {
		k := len(old) - len(next)
		back := start >= k && spliced(old, start-k, start, next)
		forward := start+k <= len(old) && spliced(old, start, start+k, next)
		switch {
		case back && forward:
			if key == KeyDelete {
				return start
			}
			return start - k
		case back:
			return start - k
		case forward:
			return start
		}
	}

	// Selection replaced by typed text
	tail := len(old) - end
	if len(next) >= start+tail &&
		slices.Equal(old[:start], next[:start]) &&
		slices.Equal(old[end:], next[len(next)-tail:]) {
		return len(next) - tail
	}

	// Unrelated text: the caret follows the end of the changed region.
	prefix := 0
	for prefix < len(old) && prefix < len(next) && old[prefix] == next[prefix] {
		prefix++
	}
	suffix := 0
	for suffix < len(old)-prefix && suffix < len(next)-prefix &&
		old[len(old)-1-suffix] == next[len(next)-1-suffix] {
		suffix++
	}
	return len(next) - suffix
}

// spliced reports whether old without old[i:j] equals next.
func spliced(old []rune, i, j int, next []rune) bool {
	if len(old)-(j-i) != len(next) {
		return false
	}
	return slices.Equal(old[:i], next[:i]) && slices.Equal(old[j:], next[i:])
}
