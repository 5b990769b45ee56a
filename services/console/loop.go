package console

import (
	"context"
	"io"
	"time"

	"rfswitch-go/x/bytefifo"
	"rfswitch-go/x/mathx"
)

// MaxLine is the longest command line; a longer run of bytes is dispatched
// in MaxLine pieces.
const MaxLine = 256

// Dispatcher executes one complete command line. The slice is only valid for
// the duration of the call.
type Dispatcher interface {
	Dispatch(line []byte)
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(line []byte)

func (f DispatchFunc) Dispatch(line []byte) { f(line) }

// Housekeeper is periodic main-loop work such as the status LED.
type Housekeeper interface {
	Tick(now time.Time)
}

type LoopConfig struct {
	Echo    bool          // write each received byte back
	MaxLine int           // clamp 16..MaxLine
	Tick    time.Duration // housekeeping period; default 10ms
}

// Stats are loop counters.
type Stats struct {
	Lines     uint32 // dispatched lines
	Overlong  uint32 // lines cut at MaxLine
	RxDropped uint32 // bytes lost to a full queue
}

// Loop is the main loop. All of its methods must be called from one
// goroutine.
type Loop struct {
	fifo *bytefifo.Fifo
	echo io.Writer
	d    Dispatcher
	hk   []Housekeeper
	cfg  LoopConfig

	line  []byte
	stats Stats
}

// NewLoop wires a consumer. echo may be nil when cfg.Echo is false.
func NewLoop(f *bytefifo.Fifo, echo io.Writer, d Dispatcher, cfg LoopConfig, hk ...Housekeeper) *Loop {
	if cfg.MaxLine <= 0 {
		cfg.MaxLine = MaxLine
	}
	cfg.MaxLine = mathx.Clamp(cfg.MaxLine, 16, MaxLine)
	if cfg.Tick <= 0 {
		cfg.Tick = 10 * time.Millisecond
	}
	if echo == nil {
		cfg.Echo = false
	}
	return &Loop{
		fifo: f,
		echo: echo,
		d:    d,
		hk:   hk,
		cfg:  cfg,
		line: make([]byte, 0, cfg.MaxLine),
	}
}

// Run drains the queue whenever it becomes readable and on every tick, and
// runs housekeeping on every tick. It returns when ctx ends.
func (l *Loop) Run(ctx context.Context) error {
	tick := time.NewTicker(l.cfg.Tick)
	defer tick.Stop()
	for {
		l.Drain()
		select {
		case <-ctx.Done():
			return nil
		case <-l.fifo.Readable():
		case now := <-tick.C:
			l.Drain()
			l.Housekeep(now)
		}
	}
}

// Drain consumes every queued byte and returns how many there were.
func (l *Loop) Drain() int {
	n := 0
	for l.fifo.Len() > 0 {
		b, err := l.fifo.Pop()
		if err != nil {
			break
		}
		l.Feed(b)
		n++
	}
	return n
}

// Feed processes one received byte: CR is ignored, LF ends a line, and a
// full buffer is dispatched as is.
func (l *Loop) Feed(b byte) {
	if l.cfg.Echo {
		_, _ = l.echo.Write([]byte{b})
	}
	switch b {
	case '\n':
		l.flush()
	case '\r':
	default:
		l.line = append(l.line, b)
		if len(l.line) >= l.cfg.MaxLine {
			l.stats.Overlong++
			l.flush()
		}
	}
}

func (l *Loop) flush() {
	if len(l.line) == 0 {
		return
	}
	l.stats.Lines++
	l.d.Dispatch(l.line)
	l.line = l.line[:0]
}

// Housekeep runs every Housekeeper once.
func (l *Loop) Housekeep(now time.Time) {
	for _, h := range l.hk {
		h.Tick(now)
	}
}

// Stats returns the counters.
func (l *Loop) Stats() Stats {
	s := l.stats
	s.RxDropped = l.fifo.Drops()
	return s
}
