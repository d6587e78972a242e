package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/numinput/decimal"
	"github.com/govalues/numinput/resolve"
)

func result(s string) resolve.Result {
	return resolve.New().Resolve(s)
}

func TestFormat(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		require.Equal(t, "", New().Format(resolve.Empty))
		require.Equal(t, "", New(WithPrecision(2)).Format(resolve.Empty))
	})

	t.Run("inferred precision", func(t *testing.T) {
		for _, tt := range []struct {
			f    *Formatter
			v    string
			want string
		}{
			{New(), "6.0", "6"},
			{New(), "1.25", "1.25"},
			{New(WithStep(decimal.MustParse("1.000"))), "2.1", "2.100"},
			{New(WithStep(decimal.MustParse("0.01"))), "2.1", "2.10"},
			{New(WithStep(decimal.MustParse("0.000000001"))), "1", "1.000000000"},
			{New(WithStep(decimal.MustParse("0.1"))), "1.25", "1.25"},
		} {
			require.Equal(t, tt.want, tt.f.Format(result(tt.v)), tt.v)
		}
	})

	t.Run("explicit precision", func(t *testing.T) {
		f := New(WithPrecision(2))
		require.Equal(t, "3.46", f.Format(result("3.455")))
		require.Equal(t, "3.47", f.Format(result("3.465")))
		require.Equal(t, "10.00", f.Format(result("9.995")))
		require.Equal(t, "1.00", f.Format(result("1")))
		require.Equal(t, "0", New(WithPrecision(0)).Format(result("0.4")))
	})

	t.Run("decimal separator", func(t *testing.T) {
		f := New(WithDecimalSeparator(","))
		require.Equal(t, "1,5", f.Format(result("1.5")))
		require.Equal(t, "-1000", f.Format(result("-1000")))
		require.Equal(t, ",", f.Separator())
		require.Equal(t, ".", New().Separator())
	})

	t.Run("formatter", func(t *testing.T) {
		f := New(
			WithFormatter(func(s string) string { return "$ " + s + " boeing 737" }),
			WithParser(func(s string) string { return strings.Split(s, " ")[1] }),
			WithDecimalSeparator(","),
		)
		require.True(t, f.HasFormatter())
		require.Equal(t, "$ 6.5 boeing 737", f.Format(result("6.5")))
		require.Equal(t, "6.5", f.Parse("$ 6.5 boeing 737"))
	})
}

func TestNumeric(t *testing.T) {
	f := New(WithDecimalSeparator(","), WithPrecision(1))
	require.Equal(t, "1.5", f.Numeric(result("1.46")))
	require.Equal(t, "", f.Numeric(resolve.Empty))
}

func TestTyping(t *testing.T) {
	require.Equal(t, "1.", New().Typing("1."))
	require.Equal(t, "-", New().Typing("-"))

	format, parse := Affix("$ ", "", ",")
	f := New(WithFormatter(format), WithParser(parse))
	require.Equal(t, "$ 1.", f.Typing("1."))
	require.Equal(t, "$ 123,456", f.Typing("123456"))
	require.Equal(t, "$ 123,456", f.Typing("$ 123456"))
	require.Equal(t, "", f.Typing(""))
}

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		f    *Formatter
		s    string
		want string
	}{
		{New(), "1.5", "1.5"},
		{New(), "8。1", "8.1"},
		{New(), " $ 1 234.5 ", "1234.5"},
		{New(), "xx", "xx"},
		{New(), "-3.6e-12", "-3.6e-12"},
		{New(WithDecimalSeparator(",")), "1,5", "1.5"},
		{New(WithDecimalSeparator(",")), "8。1", "8.1"},
	} {
		require.Equal(t, tt.want, tt.f.Parse(tt.s), tt.s)
	}
}

func TestAffix(t *testing.T) {
	format, parse := Affix("$ ", " ¥", ",")
	for _, tt := range []struct {
		s, want string
	}{
		{"1", "$ 1 ¥"},
		{"123", "$ 123 ¥"},
		{"1234", "$ 1,234 ¥"},
		{"123456", "$ 123,456 ¥"},
		{"-1234567.125", "$ -1,234,567.125 ¥"},
		{"-", "$ - ¥"},
		{"1e5", "$ 1e5 ¥"},
	} {
		got := format(tt.s)
		require.Equal(t, tt.want, got)
		require.Equal(t, tt.s, parse(got))
	}
}

func TestWith(t *testing.T) {
	f := New(WithPrecision(2))
	g := f.With(WithPrecision(-1))
	require.Equal(t, "1.50", f.Format(result("1.5")))
	require.Equal(t, "1.5", g.Format(result("1.5")))
}

func TestFromResolver(t *testing.T) {
	r := resolve.New(resolve.WithStep("0.01"))
	f := New(FromResolver(r)...)
	require.Equal(t, "2.10", f.Format(r.Resolve("2.1")))

	r = resolve.New(resolve.WithPrecision(1), resolve.WithStep("0.01"))
	f = New(FromResolver(r)...)
	require.Equal(t, "2.1", f.Format(r.Resolve("2.1")))
}
