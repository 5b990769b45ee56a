package hal

import (
	"sync"

	"tinygo.org/x/drivers"
)

// MemUART is an in-memory UART. Inject feeds the receive side; everything
// written is kept and can be taken with TakeOutput. OnWrite, if set, is called
// with each write.
type MemUART struct {
	mu sync.Mutex
	rx []byte
	tx []byte

	OnWrite func(p []byte)
}

var _ drivers.UART = (*MemUART)(nil)

func NewMemUART() *MemUART { return &MemUART{} }

// Inject appends bytes to the receive side as if they arrived on the wire.
func (u *MemUART) Inject(p []byte) {
	u.mu.Lock()
	u.rx = append(u.rx, p...)
	u.mu.Unlock()
}

func (u *MemUART) Buffered() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.rx)
}

func (u *MemUART) Read(p []byte) (int, error) {
	u.mu.Lock()
	n := copy(p, u.rx)
	u.rx = u.rx[n:]
	u.mu.Unlock()
	return n, nil
}

func (u *MemUART) Write(p []byte) (int, error) {
	u.mu.Lock()
	u.tx = append(u.tx, p...)
	cb := u.OnWrite
	u.mu.Unlock()
	if cb != nil {
		cb(p)
	}
	return len(p), nil
}

// TakeOutput returns and clears everything written so far.
func (u *MemUART) TakeOutput() []byte {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := u.tx
	u.tx = nil
	return out
}
