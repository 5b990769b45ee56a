package hal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/errcode"
)

func TestMemoryClaimOwnership(t *testing.T) {
	m := NewMemory("PA12", "PA11")

	l, err := m.ClaimLine("sw_a", "PA12")
	require.NoError(t, err)
	assert.Equal(t, LineID("PA12"), l.ID())

	// Same owner may re-claim.
	_, err = m.ClaimLine("sw_a", "PA12")
	require.NoError(t, err)

	_, err = m.ClaimLine("sw_b", "PA12")
	assert.ErrorIs(t, err, errcode.LineInUse)

	_, err = m.ClaimLine("sw_b", "PZ99")
	assert.ErrorIs(t, err, errcode.UnknownLine)

	m.ReleaseLine("sw_a", "PA12")
	_, err = m.ClaimLine("sw_b", "PA12")
	assert.NoError(t, err)
}

func TestMemoryLineReadback(t *testing.T) {
	m := NewMemory()
	l, err := m.ClaimLine("x", "L1")
	require.NoError(t, err)

	require.NoError(t, l.ConfigureOutput(true))
	level, out := m.Level("L1")
	assert.True(t, level)
	assert.True(t, out)

	l.Set(false)
	assert.False(t, l.Get())

	m.Force("L1", true)
	assert.True(t, l.Get(), "readback must reflect the forced level")
	assert.Equal(t, 2, m.Writes("L1"))
}

func TestMemUART(t *testing.T) {
	u := NewMemUART()
	u.Inject([]byte("*IDN?\n"))
	assert.Equal(t, 6, u.Buffered())

	buf := make([]byte, 4)
	n, err := u.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "*IDN", string(buf[:n]))
	assert.Equal(t, 2, u.Buffered())

	var seen []byte
	u.OnWrite = func(p []byte) { seen = append(seen, p...) }
	_, _ = u.Write([]byte("ok\r\n"))
	assert.Equal(t, "ok\r\n", string(seen))
	assert.Equal(t, "ok\r\n", string(u.TakeOutput()))
	assert.Empty(t, u.TakeOutput())
}
