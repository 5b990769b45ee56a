package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/types"
)

func TestBuiltinsValid(t *testing.T) {
	for _, n := range Names() {
		b, err := Builtin(n)
		require.NoError(t, err, n)
		assert.NoError(t, b.Validate(), n)
		assert.Equal(t, n, b.Name)
		assert.Len(t, b.Lines(), 3*types.NumEndpoints+1)
		assert.Equal(t, uint32(115200), b.Console.Baud)
	}
	_, err := Builtin("nope")
	assert.ErrorIs(t, err, errcode.InvalidConfig)
}

func TestNucleoPinMap(t *testing.T) {
	b := NucleoL152()
	assert.Equal(t, SwitchLines{Name: "SMA_A", V1: "PA12", V2: "PA11", V3: "PA6"}, b.Switches[types.EndpointA])
	assert.Equal(t, SwitchLines{Name: "SMA_E", V1: "PA0", V2: "PB7", V3: "PA15"}, b.Switches[types.EndpointE])
	assert.Equal(t, SwitchLines{Name: "SMA_G", V1: "PB6", V2: "PB12", V3: "PA7"}, b.Switches[types.EndpointG])
	assert.Equal(t, DefaultIdentity, b.Identity)
}

func TestValidate(t *testing.T) {
	b := NucleoL152()
	b.Switches[types.EndpointC].V2 = ""
	assert.ErrorIs(t, b.Validate(), errcode.InvalidConfig)

	b = NucleoL152()
	b.Switches[types.EndpointD].V1 = "PA12"
	err := b.Validate()
	require.ErrorIs(t, err, errcode.InvalidConfig)
	assert.Contains(t, err.Error(), "A.V1")

	b = NucleoL152()
	b.StatusLED = "PB6"
	assert.Error(t, b.Validate())

	b.StatusLED = ""
	assert.NoError(t, b.Validate())
}

func TestLoadFile(t *testing.T) {
	b, err := Load("testdata/rpi-hat.yaml")
	require.NoError(t, err)
	assert.Equal(t, "rpi-hat", b.Name)
	assert.Equal(t, "HAT-0001", b.Identity.Serial)
	assert.Equal(t, SwitchLines{Name: "SMA_B", V1: "GPIO22", V2: "GPIO5", V3: "GPIO6"}, b.Switches[types.EndpointB])
	assert.Equal(t, hal.LineID("GPIO10"), b.StatusLED)
	assert.Equal(t, "/dev/ttyAMA0", b.Console.Port)
	assert.Equal(t, uint8(8), b.Console.DataBits)
	assert.Equal(t, types.ParityNone, b.Console.Parity)
}

func TestParseOverridesBase(t *testing.T) {
	b, err := Parse([]byte(`
base: nucleo-l152
name: bench-2
switches:
  c: {v2: PB10}
console:
  parity: even
  echo: true
`))
	require.NoError(t, err)
	assert.Equal(t, "bench-2", b.Name)
	assert.Equal(t, SwitchLines{Name: "SMA_C", V1: "PC5", V2: "PB10", V3: "PC6"}, b.Switches[types.EndpointC])
	assert.Equal(t, NucleoL152().Switches[types.EndpointA], b.Switches[types.EndpointA])
	assert.Equal(t, hal.LineID("PA5"), b.StatusLED)
	assert.Equal(t, types.ParityEven, b.Console.Parity)
	assert.True(t, b.Console.Echo)
	assert.Equal(t, uint32(115200), b.Console.Baud)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"bad yaml":     "switches: [",
		"unknown base": "base: missing",
		"bad key":      "base: pico\nswitches:\n  H: {v1: GP0}\n",
		"long key":     "base: pico\nswitches:\n  AB: {v1: GP0}\n",
		"incomplete":   "switches:\n  A: {v1: GP0, v2: GP1, v3: GP2}\n",
		"duplicate":    "base: pico\nswitches:\n  B: {v1: GP2}\n",
	}
	for name, in := range cases {
		_, err := Parse([]byte(in))
		assert.ErrorIs(t, err, errcode.InvalidConfig, name)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Pico())
	require.NoError(t, err)
	b, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Pico(), b)
}

func TestResolve(t *testing.T) {
	b, err := Resolve("pico")
	require.NoError(t, err)
	assert.Equal(t, "pico", b.Name)

	b, err = Resolve("testdata/rpi-hat.yaml")
	require.NoError(t, err)
	assert.Equal(t, "rpi-hat", b.Name)

	_, err = Resolve("atari")
	assert.ErrorIs(t, err, errcode.InvalidConfig)
}

func TestParseKeepsUnsetConsoleFields(t *testing.T) {
	b, err := Parse([]byte("base: nucleo-l152\nconsole: {baud: 9600}\nidentity: {serial: X42}\n"))
	require.NoError(t, err)
	assert.Equal(t, "USART2", b.Console.Port)
	assert.Equal(t, uint32(9600), b.Console.Baud)
	assert.Equal(t, "X42", b.Identity.Serial)
	assert.Equal(t, DefaultIdentity.Model, b.Identity.Model)
}
