package teesink

import (
	"context"
	"fmt"

	"github.com/humanlogio/hl/pkg/sink"
)

var _ sink.Sink = (*Tee)(nil)

// NewTeeSink sends every line to each sink in order. A single sink is
// returned as is.
func NewTeeSink(sinks ...sink.Sink) sink.Sink {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &Tee{sinks: sinks}
}

type Tee struct {
	sinks []sink.Sink
}

func (sn *Tee) Receive(ctx context.Context, line []byte) error {
	for i, snk := range sn.sinks {
		if err := snk.Receive(ctx, line); err != nil {
			return fmt.Errorf("tee sink %d: %w", i, err)
		}
	}
	return nil
}
