//go:build linux && !(rp2040 || rp2350)

package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"rfswitch-go/errcode"
)

// inputPin counts switches to input.
type inputPin struct {
	*gpiotest.Pin
	inputs int
}

func (p *inputPin) In(pull gpio.Pull, edge gpio.Edge) error {
	p.inputs++
	return p.Pin.In(pull, edge)
}

func TestPeriphReleaseKeepsLineDriven(t *testing.T) {
	pin := &inputPin{Pin: &gpiotest.Pin{N: "RFSW_TEST_V1", Num: -1}}
	require.NoError(t, gpioreg.Register(pin))
	t.Cleanup(func() { _ = gpioreg.Unregister(pin.Name()) })

	p := &Periph{}
	l, err := p.ClaimLine("SMA_A", "RFSW_TEST_V1")
	require.NoError(t, err)
	require.NoError(t, l.ConfigureOutput(false))
	l.Set(true)

	_, err = p.ClaimLine("other", "RFSW_TEST_V1")
	assert.ErrorIs(t, err, errcode.LineInUse)

	p.ReleaseLine("SMA_A", "RFSW_TEST_V1")
	assert.Zero(t, pin.inputs)
	assert.True(t, l.Get())

	_, err = p.ClaimLine("other", "RFSW_TEST_V1")
	assert.NoError(t, err)
}

func TestPeriphUnknownLine(t *testing.T) {
	_, err := (&Periph{}).ClaimLine("SMA_A", "RFSW_NO_SUCH_LINE")
	assert.ErrorIs(t, err, errcode.UnknownLine)
}
