package hl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifySize(t *testing.T) {
	const (
		red    = 100_000_000
		yellow = 20_000_000
	)
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{"zero", "0", GreenColor},
		{"small", "52591", GreenColor},
		{"yellow boundary is not yellow", strconv.Itoa(yellow), GreenColor},
		{"just above yellow", strconv.Itoa(yellow + 1), YellowColor},
		{"red boundary is yellow", strconv.Itoa(red), YellowColor},
		{"just above red", strconv.Itoa(red + 1), RedColor},
		{"linux", "131672735", RedColor},
		{"trailing newline", "131672735\n", RedColor},
		{"padded", "  99457316 ", YellowColor},
		{"humanized", "126M", RedColor},
		{"humanized small", "8.4M", GreenColor},
		{"humanized binary", "50 MiB", YellowColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifySize(tt.input, red, yellow)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifySizeDefaults(t *testing.T) {
	require.Equal(t, uint64(100_000_000), DefaultRedSize)
	require.Equal(t, uint64(20_000_000), DefaultYellowSize)
}

func TestClassifySizeError(t *testing.T) {
	for _, input := range []string{"", "linux", "12 parsecs", "-5"} {
		t.Run(input, func(t *testing.T) {
			_, err := ClassifySize(input, DefaultRedSize, DefaultYellowSize)
			var serr *SizeParseError
			require.ErrorAs(t, err, &serr)
		})
	}
}
