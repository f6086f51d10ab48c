package hl

import (
	"strings"

	"github.com/dustin/go-humanize"
)

const (
	DefaultRedSize    uint64 = 100 * humanize.MByte
	DefaultYellowSize uint64 = 20 * humanize.MByte
)

// ClassifySize resolves the size color for a field holding a byte
// quantity, either a bare byte count or a humanized size like "126M".
// Thresholds are exclusive: a size equal to red is yellow.
func ClassifySize(text string, red, yellow uint64) (Color, error) {
	text = strings.TrimSpace(text)
	size, err := humanize.ParseBytes(text)
	if err != nil {
		return Color{}, &SizeParseError{Input: text, Err: err}
	}
	switch {
	case size > red:
		return RedColor, nil
	case size > yellow:
		return YellowColor, nil
	default:
		return GreenColor, nil
	}
}
