package hl

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/humanlogio/hl/internal/errutil"
	"github.com/humanlogio/hl/pkg/sink"
)

// Scan reads lines from src, highlights them and hands them to sink one
// at a time. Line terminators are kept. Scan returns nil at the end of src
// or when sink's reader went away.
func Scan(ctx context.Context, src io.Reader, sink sink.Sink, opts *Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	proc := NewProcessor(opts)

	in := bufio.NewReader(src)
	out := bytes.NewBuffer(nil)

	var line uint64
	for {
		text, rerr := in.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			return rerr
		}
		if text == "" {
			return nil
		}
		line++

		out.Reset()
		if err := proc.ProcessLine(out, text); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := sink.Receive(ctx, out.Bytes()); err != nil {
			if errutil.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
		if rerr != nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}
	}
}
