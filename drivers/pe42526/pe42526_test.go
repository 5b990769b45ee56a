package pe42526

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/errcode"
)

type fakeLine struct {
	level  bool
	output bool
	sets   int
	err    error
}

func (f *fakeLine) ConfigureOutput(initial bool) error {
	if f.err != nil {
		return f.err
	}
	f.output = true
	f.level = initial
	return nil
}
func (f *fakeLine) Set(level bool) { f.sets++; f.level = level }
func (f *fakeLine) Get() bool      { return f.level }

func newDevice() (*Device, *fakeLine, *fakeLine, *fakeLine) {
	v1, v2, v3 := &fakeLine{}, &fakeLine{}, &fakeLine{}
	return New("SMA_A", Lines{V1: v1, V2: v2, V3: v3}), v1, v2, v3
}

func TestInitForcesCommon(t *testing.T) {
	d, v1, v2, v3 := newDevice()
	require.NoError(t, d.Init())
	assert.True(t, v1.output && v2.output && v3.output)
	assert.True(t, d.IsSelected(RFC))
	assert.Equal(t, RFC, d.Selected())

	// Idempotent.
	require.NoError(t, d.Init())
	assert.True(t, d.IsSelected(RFC))
}

func TestInitPropagatesLineError(t *testing.T) {
	d, _, v2, _ := newDevice()
	v2.err = errcode.UnknownLine
	err := d.Init()
	require.Error(t, err)
	assert.ErrorIs(t, err, errcode.UnknownLine)
}

func TestSelectEveryState(t *testing.T) {
	d, v1, v2, v3 := newDevice()
	require.NoError(t, d.Init())
	for p := RF1; p <= RFC; p++ {
		require.NoError(t, d.Select(p))
		want := ConnectionMap[p]
		assert.Equal(t, want, Code{v1.level, v2.level, v3.level}, "pin %s", p)
		assert.Equal(t, p, d.Selected())
		for q := RF1; q <= RFC; q++ {
			assert.Equal(t, p == q, d.IsSelected(q), "selected %s, asked %s", p, q)
		}
	}
}

func TestSelectInvalid(t *testing.T) {
	d, v1, _, _ := newDevice()
	require.NoError(t, d.Init())
	before := v1.sets
	for _, p := range []Pin{NoPin, 7, 42} {
		err := d.Select(p)
		assert.ErrorIs(t, err, errcode.InvalidPin)
		assert.False(t, d.IsSelected(p))
	}
	assert.Equal(t, before, v1.sets, "invalid select must not touch lines")
	assert.True(t, d.IsSelected(RFC))
}

func TestReadbackSeesExternalChange(t *testing.T) {
	d, _, v2, v3 := newDevice()
	require.NoError(t, d.Init())
	require.NoError(t, d.Select(RF4))
	require.True(t, d.IsSelected(RF4))

	v3.level = false // line reset outside the driver
	assert.False(t, d.IsSelected(RF4))
	assert.Equal(t, RF3, d.Selected())

	v2.level = true
	v3.level = true
	assert.Equal(t, RF4, d.Selected())
}

func TestUndefinedCode(t *testing.T) {
	d, v1, v2, v3 := newDevice()
	v1.level, v2.level, v3.level = true, true, true
	assert.Equal(t, NoPin, d.Selected())
}

func TestDisable(t *testing.T) {
	d, _, _, _ := newDevice()
	require.NoError(t, d.Init())
	require.NoError(t, d.Select(RF6))
	d.Disable()
	assert.True(t, d.IsSelected(RFC))
}

func TestPinString(t *testing.T) {
	assert.Equal(t, "RF1", RF1.String())
	assert.Equal(t, "RF6", RF6.String())
	assert.Equal(t, "RFC", RFC.String())
	assert.Equal(t, "NONE", NoPin.String())
	assert.True(t, errors.Is(errcode.Wrap(errcode.InvalidPin, "x", ""), errcode.InvalidPin))
}
