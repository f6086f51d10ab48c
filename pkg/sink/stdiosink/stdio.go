package stdiosink

import (
	"context"
	"io"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	"github.com/humanlogio/hl/internal/pkg/config"
	"github.com/humanlogio/hl/pkg/sink"
)

// Stdio writes lines to an io.Writer, optionally without their escape
// sequences.
type Stdio struct {
	w    io.Writer
	opts StdioOpts
}

type StdioOpts struct {
	// StripColors removes every escape sequence before writing.
	StripColors bool
}

var DefaultStdioOpts = StdioOpts{
	StripColors: false,
}

// StdioOptsFrom resolves a color mode. In auto mode colors are kept when
// stdout is a terminal and NO_COLOR isn't set.
func StdioOptsFrom(mode config.ColorMode) StdioOpts {
	opts := DefaultStdioOpts
	switch mode {
	case config.ColorModeOn:
		opts.StripColors = false
	case config.ColorModeOff:
		opts.StripColors = true
	case config.ColorModeAuto:
		opts.StripColors = color.NoColor
	}
	return opts
}

var (
	_ sink.Sink      = (*Stdio)(nil)
	_ sink.BatchSink = (*Stdio)(nil)
)

func NewStdio(w io.Writer, opts StdioOpts) *Stdio {
	return &Stdio{w: w, opts: opts}
}

func (std *Stdio) Receive(ctx context.Context, line []byte) error {
	if std.opts.StripColors {
		_, err := io.WriteString(std.w, ansi.Strip(string(line)))
		return err
	}
	_, err := std.w.Write(line)
	return err
}

// ReceiveBatch writes lines in order, stopping at the first error.
func (std *Stdio) ReceiveBatch(ctx context.Context, lines [][]byte) error {
	for _, line := range lines {
		if err := std.Receive(ctx, line); err != nil {
			return err
		}
	}
	return nil
}
