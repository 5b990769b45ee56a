package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/board"
	"rfswitch-go/hal"
	"rfswitch-go/internal/app"
	"rfswitch-go/services/console"
)

func newShell(t *testing.T) (*shell, *bytes.Buffer) {
	t.Helper()
	b := board.NucleoL152()
	mem := hal.NewMemory(b.Lines()...)
	uart := hal.NewMemUART()
	out := &bytes.Buffer{}
	a, err := app.New(app.Config{
		Board:    b,
		Provider: mem,
		Source:   console.FromUART(uart, time.Millisecond),
		Out:      &bytes.Buffer{},
	})
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return &shell{app: a, board: b, mem: mem, uart: uart, out: out}, out
}

func TestShellForwardsCommands(t *testing.T) {
	s, out := newShell(t)
	assert.True(t, s.exec(`  ROUT:CONN "AB"  `))
	assert.True(t, s.exec(""))
	buf := make([]byte, 64)
	n, _ := s.uart.Read(buf)
	assert.Equal(t, "ROUT:CONN \"AB\"\n", string(buf[:n]))
	assert.Empty(t, out.String())
}

func TestShellForce(t *testing.T) {
	s, out := newShell(t)

	assert.True(t, s.exec(".force A.V3 1"))
	lvl, _ := s.mem.Level("PA6")
	assert.True(t, lvl)

	assert.True(t, s.exec(".force pa12 0"))
	lvl, _ = s.mem.Level("PA12")
	assert.False(t, lvl)

	out.Reset()
	s.exec(".force A.V4 1")
	assert.Contains(t, out.String(), "unknown line")
	out.Reset()
	s.exec(".force PA6 2")
	assert.Contains(t, out.String(), "usage")
}

func TestShellStatusAndLines(t *testing.T) {
	s, out := newShell(t)
	require.NoError(t, s.app.Registry().Connect(0, 6))

	s.exec(".status")
	assert.Contains(t, out.String(), `"AG"`)
	assert.Contains(t, out.String(), `"idle": false`)

	out.Reset()
	s.exec(".lines")
	assert.Contains(t, out.String(), "SMA_A")
	assert.Contains(t, out.String(), "PA12=")
}

func TestShellQuitAndUnknown(t *testing.T) {
	s, out := newShell(t)
	assert.True(t, s.exec(".bogus"))
	assert.Contains(t, out.String(), "Unknown command: .bogus")
	assert.True(t, s.exec(`."unterminated`))
	assert.False(t, s.exec(".quit"))
}
