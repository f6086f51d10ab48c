package hl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const reset = "\x1b[39m"

func process(t *testing.T, opts *Options, line string) (string, error) {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	err := NewProcessor(opts).ProcessLine(buf, line)
	return buf.String(), err
}

func optsWith(fields ...string) *Options {
	opts := DefaultOptions()
	for _, f := range fields {
		fc, err := ParseFieldColor(f)
		if err != nil {
			panic(err)
		}
		opts.Fields = append(opts.Fields, fc)
	}
	return opts
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		line  string
		delim string
		want  []string
	}{
		{"linux 131672735\n", " ", []string{"linux ", "131672735\n"}},
		{"a b ", " ", []string{"a ", "b "}},
		{"a  b", " ", []string{"a ", " ", "b"}},
		{"abc", " ", []string{"abc"}},
		{"", " ", []string{}},
		{"a::b::", "::", []string{"a::", "b::"}},
		{"héllo→wörld", "→", []string{"héllo→", "wörld"}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := SplitFields(tt.line, tt.delim)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.line, strings.Join(got, ""))
		})
	}
}

func TestProcessLineUnmatchedRoundTrip(t *testing.T) {
	lines := []string{
		"linux 131672735\n",
		"one two three four\n",
		"no newline at the end",
		"trailing delimiter \n",
		"\n",
		"",
	}
	opts := optsWith("7:red", "-1:blue", "-2:size")
	for _, line := range lines {
		got, err := process(t, opts, line)
		require.NoError(t, err)
		require.Equal(t, line, got)
	}
}

func TestProcessLineWrap(t *testing.T) {
	got, err := process(t, optsWith("1:green"), "one two three\n")
	require.NoError(t, err)
	require.Equal(t, "one \x1b[32mtwo "+reset+"three\n", got)

	got, err = process(t, optsWith("0:fixed(200)", "2:rgb(1,2,3)"), "one two three\n")
	require.NoError(t, err)
	require.Equal(t, "\x1b[38;5;200mone "+reset+"two \x1b[38;2;1;2;3mthree\n"+reset, got)
}

func TestProcessLineFirstBindingWins(t *testing.T) {
	got, err := process(t, optsWith("0:red", "0:blue"), "a b\n")
	require.NoError(t, err)
	require.Equal(t, "\x1b[31ma "+reset+"b\n", got)
}

func TestProcessLineNegativeIndexNeverMatches(t *testing.T) {
	line := "a b c\n"
	got, err := process(t, optsWith("-1:red"), line)
	require.NoError(t, err)
	require.Equal(t, line, got)
	require.NotContains(t, got, "\x1b[31m")
}

func TestProcessLineSkip(t *testing.T) {
	opts := optsWith("0:red")
	skip := ": "
	opts.Skip = &skip

	got, err := process(t, opts, "cpu family  : 6\n")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "cpu family  : "))
	require.Equal(t, "cpu family  : \x1b[31m6\n"+reset, got)

	// only the first occurrence is skipped
	got, err = process(t, opts, "a: b: c\n")
	require.NoError(t, err)
	require.Equal(t, "a: \x1b[31mb: "+reset+"c\n", got)

	got, err = process(t, opts, "processor\t:0\n")
	require.ErrorIs(t, err, ErrSkipNotFound)
	require.Empty(t, got)
}

func TestProcessLineEmptySkip(t *testing.T) {
	opts := optsWith("0:red")
	skip := ""
	opts.Skip = &skip

	got, err := process(t, opts, "a b\n")
	require.NoError(t, err)
	require.Equal(t, "\x1b[31ma "+reset+"b\n", got)
}

func TestProcessLineSize(t *testing.T) {
	opts := optsWith("1:size")
	tests := []struct {
		line string
		want string
	}{
		{"linux 131672735\n", "linux \x1b[31m131672735\n" + reset},
		{"llvm 99457316\n", "llvm \x1b[33m99457316\n" + reset},
		{"dmenu 52591\n", "dmenu \x1b[32m52591\n" + reset},
		{"base 0\n", "base \x1b[32m0\n" + reset},
		{"exact 100000000\n", "exact \x1b[33m100000000\n" + reset},
		{"over 100000001\n", "over \x1b[31m100000001\n" + reset},
		{"firefox 221M\n", "firefox \x1b[31m221M\n" + reset},
	}
	for _, tt := range tests {
		got, err := process(t, opts, tt.line)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	_, err := process(t, opts, "linux lots\n")
	var serr *SizeParseError
	require.ErrorAs(t, err, &serr)
	require.Contains(t, err.Error(), "field 1")
}

func TestProcessLineCustomThresholds(t *testing.T) {
	opts := optsWith("0:size")
	opts.RedSize = 1000
	opts.YellowSize = 10
	got, err := process(t, opts, "11,x\n")
	require.Error(t, err)

	opts.Delimiter = ","
	got, err = process(t, opts, "11,x\n")
	require.NoError(t, err)
	require.Equal(t, "\x1b[33m11,"+reset+"x\n", got)
}
