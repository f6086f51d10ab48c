package sink

import (
	"context"
)

// Sink receives highlighted lines, terminator included. The line is only
// valid for the duration of the call.
type Sink interface {
	Receive(ctx context.Context, line []byte) error
}

type BatchSink interface {
	ReceiveBatch(ctx context.Context, lines [][]byte) error
}
