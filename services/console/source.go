package console

import (
	"context"
	"errors"
	"io"
	"time"

	"tinygo.org/x/drivers"
)

// Source delivers received bytes. RecvSomeContext blocks until at least one
// byte is available, the source fails, or ctx ends.
//
// The rp2 uartx UART implements it directly.
type Source interface {
	RecvSomeContext(ctx context.Context, p []byte) (int, error)
}

// FromUART adapts a polled UART. Buffered is checked every poll interval.
func FromUART(u drivers.UART, poll time.Duration) Source {
	if poll <= 0 {
		poll = 5 * time.Millisecond
	}
	return &uartSource{u: u, poll: poll}
}

type uartSource struct {
	u    drivers.UART
	poll time.Duration
}

func (s *uartSource) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	var t *time.Timer
	for {
		if s.u.Buffered() > 0 {
			return s.u.Read(p)
		}
		if t == nil {
			t = time.NewTimer(s.poll)
			defer t.Stop()
		} else {
			t.Reset(s.poll)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-t.C:
		}
	}
}

// idlePause separates reads that return nothing.
const idlePause = 5 * time.Millisecond

// FromReader adapts a reader whose Read returns on its own from time to time.
// io.EOF, or any other error, ends the stream. A Read that is already
// blocked is not interrupted by ctx.
func FromReader(r io.Reader) Source { return readerSource{r: r} }

// FromSerial adapts a serial port opened with an inter-character timeout.
// Such a port reports an idle line as a zero-byte read, with io.EOF on
// Linux; only other errors end the stream.
func FromSerial(port io.Reader) Source { return readerSource{r: port, idleEOF: true} }

type readerSource struct {
	r       io.Reader
	idleEOF bool
}

func (s readerSource) RecvSomeContext(ctx context.Context, p []byte) (int, error) {
	var t *time.Timer
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		n, err := s.r.Read(p)
		if n == 0 && s.idleEOF && errors.Is(err, io.EOF) {
			err = nil
		}
		if n > 0 || err != nil {
			return n, err
		}
		if t == nil {
			t = time.NewTimer(idlePause)
			defer t.Stop()
		} else {
			t.Reset(idlePause)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-t.C:
		}
	}
}
