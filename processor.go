package hl

import (
	"fmt"
	"io"
	"strings"
)

// Processor highlights single lines according to its options.
type Processor struct {
	opts  *Options
	reset string
}

func NewProcessor(opts *Options) *Processor {
	return &Processor{opts: opts, reset: DefaultColor.seq}
}

// SplitFields splits line after each occurrence of delim. Every field
// keeps its trailing delimiter, so joining the fields gives back line.
func SplitFields(line, delim string) []string {
	fields := strings.SplitAfter(line, delim)
	if last := len(fields) - 1; fields[last] == "" {
		fields = fields[:last]
	}
	return fields
}

// ProcessLine writes line to w with its bound fields wrapped in color.
// When a skip pattern is set, everything up to and including it is
// written as is and fields are counted from what follows.
func (p *Processor) ProcessLine(w io.Writer, line string) error {
	if p.opts.Skip != nil {
		pat := *p.opts.Skip
		i := strings.Index(line, pat)
		if i < 0 {
			return fmt.Errorf("%w: %q", ErrSkipNotFound, pat)
		}
		if _, err := io.WriteString(w, line[:i+len(pat)]); err != nil {
			return err
		}
		line = line[i+len(pat):]
	}

	for i, field := range SplitFields(line, p.opts.Delimiter) {
		fc, ok := p.opts.fieldColor(i)
		if !ok {
			if _, err := io.WriteString(w, field); err != nil {
				return err
			}
			continue
		}
		if err := p.writeColored(w, fc.Color, field); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}
	return nil
}

func (p *Processor) writeColored(w io.Writer, c Color, field string) error {
	if c.Kind() == KindSize {
		var err error
		c, err = ClassifySize(field, p.opts.RedSize, p.opts.YellowSize)
		if err != nil {
			return err
		}
	}
	seq, err := c.Render()
	if err != nil {
		return err
	}
	for _, s := range [...]string{seq, field, p.reset} {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}
