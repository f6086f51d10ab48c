package hl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ColorKind tells which arm of a Color is populated.
type ColorKind int

const (
	// KindAnsi colors carry a complete SGR escape sequence.
	KindAnsi ColorKind = iota + 1
	// KindSize colors are resolved per field by ClassifySize.
	KindSize
)

// fgDefault resets the foreground to the terminal default. fatih/color
// has no attribute for it.
const fgDefault color.Attribute = 39

var namedColors = map[string]color.Attribute{
	"default": fgDefault,
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

// Colors used to reset fields and to render the size classes.
var (
	DefaultColor = MustParseColor("default")
	GreenColor   = MustParseColor("green")
	YellowColor  = MustParseColor("yellow")
	RedColor     = MustParseColor("red")

	// SizeColor is resolved per field from the field's byte count.
	SizeColor = Color{kind: KindSize}
)

// Color is either a ready-made escape sequence or the size marker. The
// zero value is not a valid color.
type Color struct {
	kind ColorKind
	seq  string
}

func (c Color) Kind() ColorKind { return c.kind }

// Render returns the escape sequence of an ANSI color. Size colors must
// be resolved with ClassifySize first.
func (c Color) Render() (string, error) {
	switch c.kind {
	case KindAnsi:
		return c.seq, nil
	case KindSize:
		return "", ErrRenderSize
	default:
		return "", fmt.Errorf("invalid color kind %d", c.kind)
	}
}

func (c Color) String() string {
	switch c.kind {
	case KindAnsi:
		return strconv.Quote(c.seq)
	case KindSize:
		return "size"
	default:
		return "invalid"
	}
}

// ParseColor parses a color description: one of the named colors,
// fixed(N) for the 256 color palette, rgb(R,G,B) for truecolor or size.
func ParseColor(input string) (Color, error) {
	if attr, ok := namedColors[input]; ok {
		return ansi("%d", int(attr))
	}
	switch {
	case input == "size":
		return SizeColor, nil

	case strings.HasPrefix(input, "fixed(") && strings.HasSuffix(input, ")"):
		inPar := strings.TrimSuffix(strings.TrimPrefix(input, "fixed("), ")")
		n, err := parseUint(inPar)
		if err != nil {
			return Color{}, err
		}
		return ansi("38;5;%d", n)

	case strings.HasPrefix(input, "rgb(") && strings.Count(input, ",") == 2 && strings.HasSuffix(input, ")"):
		inPar := strings.TrimSuffix(strings.TrimPrefix(input, "rgb("), ")")
		parts := strings.SplitN(inPar, ",", 3)
		var rgb [3]uint64
		for i, part := range parts {
			v, err := parseUint(part)
			if err != nil {
				return Color{}, err
			}
			rgb[i] = v
		}
		return ansi("38;2;%d;%d;%d", rgb[0], rgb[1], rgb[2])
	}
	return Color{}, &UnknownColorError{Color: input}
}

// MustParseColor is like ParseColor but panics on error.
func MustParseColor(input string) Color {
	c, err := ParseColor(input)
	if err != nil {
		panic(err)
	}
	return c
}

// ansi builds a foreground SGR sequence. The body is formatted whole
// before the color is returned, so a failure never leaves half a sequence.
func ansi(format string, args ...interface{}) (Color, error) {
	var sb strings.Builder
	sb.WriteString("\x1b[")
	if _, err := fmt.Fprintf(&sb, format, args...); err != nil {
		return Color{}, &AnsiFormatError{Err: err}
	}
	sb.WriteByte('m')
	return Color{kind: KindAnsi, seq: sb.String()}, nil
}

// parseUint accepts an optional leading '+'.
func parseUint(s string) (uint64, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64)
	if err != nil {
		return 0, &IntParseError{Input: s, Err: err}
	}
	return v, nil
}
