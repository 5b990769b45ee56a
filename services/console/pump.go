// Package console moves bytes from the serial line to the command
// dispatcher. A Pump is the asynchronous producer; it only ever pushes into a
// bytefifo.Fifo. A Loop is the single main-loop consumer; it pops, assembles
// lines and hands them on, and runs housekeeping between bytes.
package console

import (
	"context"
	"errors"
	"time"

	"rfswitch-go/x/bytefifo"
)

const (
	chunkSize = 64
	// Bounds each blocking receive so cancellation is noticed.
	recvWindow = 250 * time.Millisecond
)

// Pump copies bytes from a Source into a Fifo.
type Pump struct {
	src  Source
	fifo *bytefifo.Fifo
}

func NewPump(src Source, f *bytefifo.Fifo) *Pump { return &Pump{src: src, fifo: f} }

// Run pushes every received byte until ctx ends (nil) or the source fails.
// Bytes that find the queue full are dropped and counted by the Fifo.
func (p *Pump) Run(ctx context.Context) error {
	buf := make([]byte, chunkSize)
	for {
		rctx, cancel := context.WithTimeout(ctx, recvWindow)
		n, err := p.src.RecvSomeContext(rctx, buf)
		cancel()
		for _, b := range buf[:max(n, 0)] {
			_ = p.fifo.Push(b)
		}
		switch {
		case ctx.Err() != nil:
			return nil
		case err == nil:
		case errors.Is(err, context.DeadlineExceeded):
		default:
			return err
		}
	}
}
