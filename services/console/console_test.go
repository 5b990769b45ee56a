package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/hal"
	"rfswitch-go/x/bytefifo"
)

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) Dispatch(line []byte) {
	r.mu.Lock()
	r.lines = append(r.lines, string(line))
	r.mu.Unlock()
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}

type tickCounter struct {
	mu sync.Mutex
	n  int
}

func (c *tickCounter) Tick(time.Time) { c.mu.Lock(); c.n++; c.mu.Unlock() }
func (c *tickCounter) count() int     { c.mu.Lock(); defer c.mu.Unlock(); return c.n }

func TestLoopAssemblesLines(t *testing.T) {
	f := bytefifo.New(128)
	rec := &recorder{}
	l := NewLoop(f, nil, rec, LoopConfig{})

	f.Write([]byte("*IDN?\r\nROUT:CONN \"AB\"\n\r\n\npartial"))
	assert.Equal(t, 32, l.Drain())
	assert.Equal(t, []string{"*IDN?", `ROUT:CONN "AB"`}, rec.got())
	assert.Equal(t, 0, f.Len())

	f.Write([]byte(" line\n"))
	l.Drain()
	assert.Equal(t, []string{"*IDN?", `ROUT:CONN "AB"`, "partial line"}, rec.got())
	assert.Equal(t, uint32(3), l.Stats().Lines)
}

func TestLoopCutsOverlongLines(t *testing.T) {
	f := bytefifo.New(128)
	rec := &recorder{}
	l := NewLoop(f, nil, rec, LoopConfig{MaxLine: 1}) // clamped to 16

	f.Write([]byte(strings.Repeat("x", 40) + "\n"))
	l.Drain()
	assert.Equal(t, []string{strings.Repeat("x", 16), strings.Repeat("x", 16), strings.Repeat("x", 8)}, rec.got())
	assert.Equal(t, uint32(2), l.Stats().Overlong)
}

func TestLoopDefaultMaxLine(t *testing.T) {
	f := bytefifo.New(1024)
	rec := &recorder{}
	l := NewLoop(f, nil, rec, LoopConfig{})
	f.Write([]byte(strings.Repeat("y", MaxLine+1) + "\n"))
	l.Drain()
	got := rec.got()
	require.Len(t, got, 2)
	assert.Len(t, got[0], MaxLine)
	assert.Equal(t, "y", got[1])
}

func TestLoopEcho(t *testing.T) {
	f := bytefifo.New(32)
	var echo bytes.Buffer
	l := NewLoop(f, &echo, DispatchFunc(func([]byte) {}), LoopConfig{Echo: true})
	f.Write([]byte("ab\r\n"))
	l.Drain()
	assert.Equal(t, "ab\r\n", echo.String())
}

func TestLoopRunTicksAndStops(t *testing.T) {
	f := bytefifo.New(64)
	rec := &recorder{}
	hk := &tickCounter{}
	l := NewLoop(f, nil, rec, LoopConfig{Tick: time.Millisecond}, hk)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	f.Write([]byte("SYST:ERR?\n"))
	require.Eventually(t, func() bool { return len(rec.got()) == 1 }, time.Second, time.Millisecond)
	require.Eventually(t, func() bool { return hk.count() >= 3 }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestPumpFromUART(t *testing.T) {
	u := hal.NewMemUART()
	f := bytefifo.New(64)
	p := NewPump(FromUART(u, time.Millisecond), f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	u.Inject([]byte("ROUT:OPEN\n"))
	require.Eventually(t, func() bool { return f.Len() == 10 }, time.Second, time.Millisecond)

	var got []byte
	for f.Len() > 0 {
		b, err := f.Pop()
		require.NoError(t, err)
		got = append(got, b)
	}
	assert.Equal(t, "ROUT:OPEN\n", string(got))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pump did not stop")
	}
}

func TestPumpCountsDrops(t *testing.T) {
	u := hal.NewMemUART()
	f := bytefifo.New(4)
	p := NewPump(FromUART(u, time.Millisecond), f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.Run(ctx) }()

	u.Inject([]byte("0123456789"))
	require.Eventually(t, func() bool { return f.Drops() == 7 }, time.Second, time.Millisecond)
	assert.Equal(t, 3, f.Len())
}

func TestPumpFromReaderEOF(t *testing.T) {
	f := bytefifo.New(64)
	p := NewPump(FromReader(strings.NewReader("*RST\n")), f)
	err := p.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 5, f.Len())
}

// timeoutPort behaves like a tty read with VMIN=0: an idle line gives
// (0, io.EOF). Queued chunks are returned one per Read.
type timeoutPort struct {
	mu     sync.Mutex
	chunks [][]byte
	reads  int
}

func (p *timeoutPort) Read(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reads++
	if len(p.chunks) == 0 || p.reads < 4 {
		return 0, io.EOF
	}
	n := copy(b, p.chunks[0])
	p.chunks = p.chunks[1:]
	return n, nil
}

func (p *timeoutPort) feed(s string) {
	p.mu.Lock()
	p.chunks = append(p.chunks, []byte(s))
	p.mu.Unlock()
}

func (p *timeoutPort) readCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}

func TestPumpFromSerialSurvivesIdleLine(t *testing.T) {
	port := &timeoutPort{}
	port.feed("ROUT:OPEN\n")
	f := bytefifo.New(64)
	p := NewPump(FromSerial(port), f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	require.Eventually(t, func() bool { return f.Len() == 10 }, time.Second, time.Millisecond)

	// Idle well past the port timeout; the pump keeps running.
	require.Eventually(t, func() bool { return port.readCount() > 10 }, time.Second, time.Millisecond)
	select {
	case err := <-done:
		t.Fatalf("pump stopped on an idle line: %v", err)
	default:
	}

	port.feed("*RST\n")
	require.Eventually(t, func() bool { return f.Len() == 15 }, time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("pump did not stop")
	}
}

// emptyReader never has data and never fails.
type emptyReader struct {
	mu    sync.Mutex
	reads int
}

func (r *emptyReader) Read([]byte) (int, error) {
	r.mu.Lock()
	r.reads++
	r.mu.Unlock()
	return 0, nil
}

func TestReaderSourcePausesBetweenEmptyReads(t *testing.T) {
	r := &emptyReader{}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	n, err := FromReader(r).RecvSomeContext(ctx, make([]byte, 8))
	assert.Zero(t, n)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	r.mu.Lock()
	defer r.mu.Unlock()
	assert.Less(t, r.reads, 50)
}

func TestPumpAndLoopEndToEnd(t *testing.T) {
	u := hal.NewMemUART()
	f := bytefifo.New(4096)
	rec := &recorder{}
	l := NewLoop(f, nil, rec, LoopConfig{Tick: 2 * time.Millisecond})
	p := NewPump(FromUART(u, time.Millisecond), f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = p.Run(ctx) }()
	go func() { _ = l.Run(ctx) }()

	var want []string
	for i := 0; i < 50; i++ {
		line := "ROUT:CONN? \"AB\"" + strings.Repeat("!", i%7)
		want = append(want, line)
		u.Inject([]byte(line + "\r\n"))
	}
	require.Eventually(t, func() bool { return len(rec.got()) == len(want) }, 2*time.Second, time.Millisecond)
	assert.Equal(t, want, rec.got())
}
