// Package bytefifo is a fixed-capacity single-producer, single-consumer byte
// queue. The producer side (Push) may run in an interrupt-like context and
// never blocks; the consumer side (Pop, Len) is polled by the main loop.
package bytefifo

import (
	"sync/atomic"

	"rfswitch-go/errcode"
)

// Fifo is a two-index ring of n bytes holding at most n-1 of them.
// Full is (tail+1) mod n == head; empty is tail == head.
//
// The producer only writes tail and reads head; the consumer only writes head
// and reads tail. Each index therefore has exactly one writer.
type Fifo struct {
	buf  []byte
	head atomic.Uint32 // next slot to read (consumer-owned)
	tail atomic.Uint32 // next slot to write (producer-owned)

	drops atomic.Uint32

	readable chan struct{} // empty->non-empty edge
}

// New allocates a Fifo backed by n bytes (n-1 usable). It panics if n < 2.
func New(n int) *Fifo {
	if n < 2 {
		panic("bytefifo: size must be >= 2")
	}
	return &Fifo{
		buf:      make([]byte, n),
		readable: make(chan struct{}, 1),
	}
}

func (f *Fifo) size() uint32 { return uint32(len(f.buf)) }

func (f *Fifo) next(i uint32) uint32 {
	i++
	if i == f.size() {
		return 0
	}
	return i
}

// Producer side

// Push queues b. When the queue is full the byte is dropped, the drop counter
// is incremented and errcode.BufferFull is returned.
func (f *Fifo) Push(b byte) error {
	tail := f.tail.Load()
	head := f.head.Load() // acquire consumer progress
	nt := f.next(tail)
	if nt == head {
		f.drops.Add(1)
		return errcode.BufferFull
	}
	f.buf[tail] = b
	f.tail.Store(nt) // release

	if tail == head {
		select {
		case f.readable <- struct{}{}:
		default:
		}
	}
	return nil
}

// Write pushes p in order and returns how many bytes were queued. Bytes that
// did not fit are dropped and counted like Push.
func (f *Fifo) Write(p []byte) (n int) {
	for _, b := range p {
		if f.Push(b) == nil {
			n++
		}
	}
	return n
}

// Consumer side

// Pop removes the oldest byte. It returns errcode.BufferEmpty when nothing is
// queued; that is the normal "no data yet" condition.
func (f *Fifo) Pop() (byte, error) {
	head := f.head.Load()
	tail := f.tail.Load() // acquire
	if head == tail {
		return 0, errcode.BufferEmpty
	}
	b := f.buf[head]
	f.head.Store(f.next(head)) // release
	return b, nil
}

// Len reports the number of queued bytes.
func (f *Fifo) Len() int {
	head := f.head.Load()
	tail := f.tail.Load()
	if tail >= head {
		return int(tail - head)
	}
	return int(f.size() - head + tail)
}

// Cap reports the usable capacity (backing size minus one).
func (f *Fifo) Cap() int { return len(f.buf) - 1 }

// Drops reports how many bytes were discarded because the queue was full.
func (f *Fifo) Drops() uint32 { return f.drops.Load() }

// Readable delivers one token each time the queue goes from empty to
// non-empty. Tokens coalesce; always re-check Len after waking.
func (f *Fifo) Readable() <-chan struct{} { return f.readable }
