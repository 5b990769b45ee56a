package app

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/board"
	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/services/console"
)

// output collects everything the instrument writes.
type output struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (o *output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.Write(p)
}

func (o *output) String() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.buf.String()
}

type recLog struct {
	mu    sync.Mutex
	warns []string
}

func (l *recLog) Info(string, ...any) {}
func (l *recLog) Warn(msg string, _ ...any) {
	l.mu.Lock()
	l.warns = append(l.warns, msg)
	l.mu.Unlock()
}

func (l *recLog) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns)
}

func newApp(t *testing.T, mutate ...func(*Config)) (*App, *hal.Memory, *hal.MemUART, *output) {
	t.Helper()
	mem := hal.NewMemory()
	uart := hal.NewMemUART()
	out := &output{}
	cfg := Config{
		Board:    board.Pico(),
		Provider: mem,
		Source:   console.FromUART(uart, time.Millisecond),
		Out:      out,
		Tick:     time.Millisecond,
	}
	for _, m := range mutate {
		m(&cfg)
	}
	a, err := New(cfg)
	require.NoError(t, err)
	return a, mem, uart, out
}

func TestStartsIdle(t *testing.T) {
	a, mem, _, _ := newApp(t)
	assert.True(t, a.Registry().IsIdle())
	// Every switch line is an output.
	b := board.Pico()
	for _, id := range b.Lines() {
		_, isOut := mem.Level(id)
		assert.True(t, isOut, "line %s", id)
	}
}

func TestServeConsole(t *testing.T) {
	log := &recLog{}
	a, _, uart, out := newApp(t, func(c *Config) { c.Log = log })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	uart.Inject([]byte("ROUT:CONN \"gf\"\r\nROUT:CONN?\r\nROUT:CONN \"CE\"\r\n"))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "\"FG\"\r\n") && log.count() == 1
	}, 2*time.Second, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return")
	}

	assert.True(t, strings.HasPrefix(out.String(), BannerPrefix+board.DefaultIdentity.Model+" version "))
	st := a.Status(time.Unix(5, 0))
	assert.False(t, st.Idle)
	assert.Equal(t, []string{"FG"}, st.Connected)
	assert.Equal(t, "RF6", st.Switches[5].Pin)
	assert.Equal(t, "RF4", st.Switches[6].Pin)
	assert.Equal(t, int64(5000), st.TS)
	assert.Equal(t, uint32(3), a.Stats().Lines)
}

func TestCloseOpensAndReleases(t *testing.T) {
	a, mem, _, _ := newApp(t)
	require.NoError(t, a.Registry().Connect(0, 1))
	a.Close()
	assert.True(t, a.Registry().IsIdle())

	_, err := mem.ClaimLine("other", "GP2")
	assert.NoError(t, err)
	_, err = mem.ClaimLine("other", "GP25")
	assert.NoError(t, err)
}

func TestNewReleasesOnError(t *testing.T) {
	b := board.Pico()
	mem := hal.NewMemory(b.Lines()[:10]...)
	_, err := New(Config{
		Board:    b,
		Provider: mem,
		Source:   console.FromUART(hal.NewMemUART(), 0),
		Out:      &output{},
	})
	assert.ErrorIs(t, err, errcode.UnknownLine)

	for _, id := range b.Lines()[:10] {
		_, err := mem.ClaimLine("other", id)
		assert.NoError(t, err, "line %s", id)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	b := board.Pico()
	b.Switches[3].V2 = b.Switches[0].V1
	_, err := New(Config{Board: b, Provider: hal.NewMemory(), Source: console.FromUART(hal.NewMemUART(), 0), Out: &output{}})
	assert.ErrorIs(t, err, errcode.InvalidConfig)

	_, err = New(Config{Board: board.Pico()})
	assert.ErrorIs(t, err, errcode.InvalidConfig)
}

func TestLineInUse(t *testing.T) {
	mem := hal.NewMemory()
	_, err := mem.ClaimLine("someone", "GP25")
	require.NoError(t, err)
	_, err = New(Config{Board: board.Pico(), Provider: mem, Source: console.FromUART(hal.NewMemUART(), 0), Out: &output{}})
	assert.ErrorIs(t, err, errcode.LineInUse)
}
