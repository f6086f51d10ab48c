package bufsink

import (
	"context"

	"github.com/humanlogio/hl/pkg/sink"
)

// SizedBuffer keeps copies of the lines it receives and hands them to
// flush once size lines are buffered. A nil flush buffers forever.
type SizedBuffer struct {
	size     int
	Buffered [][]byte
	flush    sink.BatchSink
}

var _ sink.Sink = (*SizedBuffer)(nil)

func NewSizedBufferedSink(size int, flush sink.BatchSink) *SizedBuffer {
	return &SizedBuffer{
		size:     size,
		Buffered: make([][]byte, 0, size),
		flush:    flush,
	}
}

func (sn *SizedBuffer) Receive(ctx context.Context, line []byte) error {
	cline := append([]byte(nil), line...)
	sn.Buffered = append(sn.Buffered, cline)
	if sn.flush != nil && len(sn.Buffered) == sn.size {
		if err := sn.flush.ReceiveBatch(ctx, sn.Buffered); err != nil {
			sn.Buffered = sn.Buffered[:len(sn.Buffered)-1]
			return err
		}
		sn.Buffered = make([][]byte, 0, sn.size)
	}
	return nil
}

// Flush hands whatever is buffered to flush.
func (sn *SizedBuffer) Flush(ctx context.Context) error {
	if sn.flush == nil || len(sn.Buffered) == 0 {
		return nil
	}
	if err := sn.flush.ReceiveBatch(ctx, sn.Buffered); err != nil {
		return err
	}
	sn.Buffered = make([][]byte, 0, sn.size)
	return nil
}

// String joins the buffered lines.
func (sn *SizedBuffer) String() string {
	var n int
	for _, l := range sn.Buffered {
		n += len(l)
	}
	out := make([]byte, 0, n)
	for _, l := range sn.Buffered {
		out = append(out, l...)
	}
	return string(out)
}
