package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/hal"
)

type fakeRouter struct{ idle bool }

func (f *fakeRouter) IsIdle() bool { return f.idle }

func setup(t *testing.T, cfg Config, drops func() uint32) (*Indicator, *hal.Memory, *fakeRouter) {
	t.Helper()
	mem := hal.NewMemory("LED")
	led, err := mem.ClaimLine("status", "LED")
	require.NoError(t, err)
	r := &fakeRouter{idle: true}
	in := New(led, r, drops, cfg)
	require.NoError(t, in.Init())
	return in, mem, r
}

func lit(mem *hal.Memory) bool {
	l, _ := mem.Level("LED")
	return l
}

func TestIdleSlowBlink(t *testing.T) {
	in, mem, _ := setup(t, Config{}, nil)
	t0 := time.Unix(1000, 0)

	in.Tick(t0)
	assert.Equal(t, ModeIdle, in.Mode())
	assert.True(t, lit(mem))

	in.Tick(t0.Add(500 * time.Millisecond))
	assert.True(t, lit(mem))
	in.Tick(t0.Add(time.Second))
	assert.False(t, lit(mem))
	in.Tick(t0.Add(2 * time.Second))
	assert.True(t, lit(mem))
}

func TestConnectedSteady(t *testing.T) {
	in, mem, r := setup(t, Config{}, nil)
	r.idle = false
	t0 := time.Unix(1000, 0)

	in.Tick(t0)
	assert.Equal(t, ModeConnected, in.Mode())
	assert.True(t, lit(mem))
	w := mem.Writes("LED")
	for i := 1; i <= 30; i++ {
		in.Tick(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	assert.True(t, lit(mem))
	assert.Equal(t, w, mem.Writes("LED"))

	// Readback is polled, not sampled on every tick.
	r.idle = true
	in.Tick(t0.Add(3050 * time.Millisecond))
	assert.Equal(t, ModeConnected, in.Mode())
	in.Tick(t0.Add(3100 * time.Millisecond))
	assert.Equal(t, ModeIdle, in.Mode())
}

func TestAlertFastBlinkThenRecovers(t *testing.T) {
	in, mem, r := setup(t, Config{}, nil)
	r.idle = false
	t0 := time.Unix(1000, 0)
	in.Tick(t0)
	require.True(t, lit(mem))

	in.Alert()
	in.Tick(t0.Add(10 * time.Millisecond))
	assert.Equal(t, ModeAlert, in.Mode())
	assert.False(t, lit(mem))
	in.Tick(t0.Add(110 * time.Millisecond))
	assert.True(t, lit(mem))
	in.Tick(t0.Add(210 * time.Millisecond))
	assert.False(t, lit(mem))

	in.Tick(t0.Add(2010 * time.Millisecond))
	assert.Equal(t, ModeConnected, in.Mode())
	assert.True(t, lit(mem))
}

func TestDropsRaiseAlert(t *testing.T) {
	var drops uint32 = 3
	in, _, _ := setup(t, Config{Hold: time.Second}, func() uint32 { return drops })
	t0 := time.Unix(1000, 0)

	in.Tick(t0)
	assert.Equal(t, ModeIdle, in.Mode())

	drops++
	in.Tick(t0.Add(10 * time.Millisecond))
	assert.Equal(t, ModeAlert, in.Mode())
	in.Tick(t0.Add(1010 * time.Millisecond))
	assert.Equal(t, ModeIdle, in.Mode())
}

func TestActiveLow(t *testing.T) {
	in, mem, r := setup(t, Config{ActiveLow: true}, nil)
	l, out := mem.Level("LED")
	assert.True(t, out)
	assert.True(t, l, "off is high")

	r.idle = false
	in.Tick(time.Unix(1000, 0))
	assert.False(t, lit(mem))
}
