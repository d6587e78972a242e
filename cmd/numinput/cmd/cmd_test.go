package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/govalues/numinput/decimal"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAdd(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"add", "0.1", "0.2"}, "0.3\n"},
		{[]string{"add", "0.1", "0.2", "-0.3"}, "0.0\n"},
		{[]string{"add", "--backend", "float", "0.1", "0.2"}, "0.3\n"},
		{[]string{"add", "1e3", "0.25"}, "1000.25\n"},
		{[]string{"add", "1", "-1.5"}, "-0.5\n"},
		{[]string{"add", "--", "-1", "0.5"}, "-0.5\n"},
	} {
		got, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		require.Equal(t, tt.want, got, tt.args)
	}

	_, err := run(t, "add", "1", "x")
	require.ErrorIs(t, err, decimal.ErrMalformed)

	_, err = run(t, "add", "1")
	require.Error(t, err)

	_, err = run(t, "add", "--backend", "quantum", "1", "2")
	require.ErrorIs(t, err, decimal.ErrUnknownBackend)
}

func TestCmp(t *testing.T) {
	for _, tt := range []struct {
		a, b string
		want string
	}{
		{"1.10", "1.1", "equal\n"},
		{"-2", "1", "less\n"},
		{"0.3", "0.29999999999999999", "greater\n"},
		{"NaN", "NaN", "unordered\n"},
	} {
		got, err := run(t, "cmp", "--", tt.a, tt.b)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, tt.a+" "+tt.b)
	}

	got, err := run(t, "cmp", "1", "-2")
	require.NoError(t, err)
	require.Equal(t, "greater\n", got)
}

func TestResolve(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"resolve", "13", "--min", "0", "--max", "10"}, "10\n"},
		{[]string{"resolve", "--min", "0", "--max", "10", "--", "-1"}, "0\n"},
		{[]string{"resolve", "3.455", "--precision", "2"}, "3.46\n"},
		{[]string{"resolve", "3.465", "--precision", "2"}, "3.47\n"},
		{[]string{"resolve", "2.00", "--step", "0.01", "--down", "400", "--up", "300"}, "1.00\n"},
		{[]string{"resolve", "2.00", "--step=-0.01", "--down", "300", "--up", "400"}, "1.00\n"},
		{[]string{"resolve", "1", "--up", "1", "--fast"}, "11\n"},
		{[]string{"resolve", "1", "--up", "1", "--fine"}, "1.1\n"},
		{[]string{"resolve", "xx"}, "\n"},
		{[]string{"resolve", "5", "--min", "10", "--max", "2"}, "2\n"},
	} {
		got, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		require.Equal(t, tt.want, got, tt.args)
	}

	_, err := run(t, "resolve", "1", "--fast", "--fine")
	require.Error(t, err)

	_, err = run(t, "resolve", "1", "--step", "0")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"format", "1234.5", "--precision", "2", "--prefix", "$ ", "--group", ","}, "$ 1,234.50\n"},
		{[]string{"format", "1.5", "--separator", ","}, "1,5\n"},
		{[]string{"format", "6.10"}, "6.1\n"},
		{[]string{"format", "2.1", "--step", "0.01"}, "2.10\n"},
		{[]string{"format", ""}, "\n"},
	} {
		got, err := run(t, tt.args...)
		require.NoError(t, err, tt.args)
		require.Equal(t, tt.want, got, tt.args)
	}
}

func TestConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "field.toml")
	err := os.WriteFile(path, []byte("max = 5\nstep = 0.5\n"), 0o600)
	require.NoError(t, err)

	got, err := run(t, "resolve", "8", "--config", path)
	require.NoError(t, err)
	require.Equal(t, "5.0\n", got)

	got, err = run(t, "resolve", "8", "--config", path, "--max", "7")
	require.NoError(t, err)
	require.Equal(t, "7.0\n", got)

	_, err = run(t, "resolve", "8", "--config", filepath.Join(dir, "missing.toml"))
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	got, err := run(t, "version")
	require.NoError(t, err)
	require.Equal(t, "numinput "+Version+"\n", got)
}
