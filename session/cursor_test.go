package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCaret(t *testing.T) {
	for _, tt := range []struct {
		old        string
		start, end int
		next       string
		key        Key
		want       int
	}{
		// repeated digits
		{"99999", 3, 3, "9999", KeyDelete, 3},
		{"99999", 3, 3, "9999", KeyBackspace, 2},
		{"99999", 3, 3, "9999", KeyUnknown, 2},
		{"99999", 1, 3, "999", KeyDelete, 1},

		// distinct digits
		{"12345", 3, 3, "1235", KeyDelete, 3},
		{"12345", 3, 3, "1245", KeyBackspace, 2},
		{"12345", 3, 3, "1245", KeyDelete, 2},
		{"12345", 1, 3, "145", KeyDelete, 1},
		{"12345", 1, 3, "145", KeyBackspace, 1},

		// typing
		{"12345", 1, 3, "1045", KeyChar, 2},
		{"12345", 3, 3, "123045", KeyChar, 4},
		{"", 0, 0, "1", KeyChar, 1},
		{"1", 0, 0, "111", KeyChar, 2},
		{"456", 0, 0, "123456", KeyUnknown, 3},

		// replaced text
		{"123", 1, 1, "9", KeyUnknown, 1},
		{"123", 5, 9, "1234", KeyChar, 4},
	} {
		got := caret([]rune(tt.old), tt.start, tt.end, []rune(tt.next), tt.key)
		require.Equal(t, tt.want, got, "%q [%d,%d) -> %q", tt.old, tt.start, tt.end, tt.next)
	}
}

func TestProjector(t *testing.T) {
	t.Run("decorated", func(t *testing.T) {
		p := newProjector(true, ".")
		require.Equal(t, "1234.5", string(p.strip("$ 1,234.5 ¥")))
		require.Equal(t, 3, p.logical("$ 123,456", 6))
		require.Equal(t, 0, p.logical("$ 123,456", 2))

		for _, tt := range []struct {
			s    string
			n    int
			want int
		}{
			{"$ 1", 0, 2},
			{"$ 1", 1, 3},
			{"$ 111", 2, 4},
			{"$ 123,456", 3, 6},
			{"$ 123,456", 6, 9},
			{"$ 1 ¥", 1, 3},
			{"$ 1 ¥", 5, 5},
			{"", 1, 0},
		} {
			require.Equal(t, tt.want, p.physical(tt.s, tt.n), "%q %d", tt.s, tt.n)
		}
	})

	t.Run("decimal separator", func(t *testing.T) {
		p := newProjector(true, ",")
		require.Equal(t, "1,5", string(p.strip("€ 1,5")))
	})

	t.Run("plain", func(t *testing.T) {
		p := newProjector(false, ".")
		require.Equal(t, "a b", string(p.strip("a b")))
		require.Equal(t, 2, p.logical("a b", 2))
		require.Equal(t, 3, p.physical("abc", 5))
		require.Equal(t, 0, p.physical("abc", -1))
	})
}
