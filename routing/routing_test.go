package routing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/drivers/pe42526"
	"rfswitch-go/errcode"
	"rfswitch-go/hal"
	"rfswitch-go/types"
)

func ep(c byte) types.Endpoint {
	e, err := types.ParseEndpoint(c)
	if err != nil {
		panic(err)
	}
	return e
}

func lineID(e types.Endpoint, v int) hal.LineID {
	return hal.LineID(fmt.Sprintf("%s.V%d", e, v))
}

func newRegistry(t *testing.T) (*Registry, *hal.Memory) {
	t.Helper()
	mem := hal.NewMemory()
	var sw [types.NumEndpoints]Switch
	for _, e := range types.Endpoints {
		var ls [3]hal.Line
		for v := range ls {
			l, err := mem.ClaimLine("test", lineID(e, v+1))
			require.NoError(t, err)
			ls[v] = l
		}
		sw[e] = pe42526.New("SMA_"+e.String(), pe42526.Lines{V1: ls[0], V2: ls[1], V3: ls[2]})
	}
	r := NewRegistry(NewMatrix(), sw)
	require.NoError(t, r.Init())
	return r, mem
}

func TestMatrixDiagonalUnsupported(t *testing.T) {
	m := NewMatrix()
	for _, x := range types.Endpoints {
		assert.False(t, m.IsSupported(x, x), "%s%s", x, x)
		assert.Equal(t, pe42526.NoPin, m.Lookup(x, x).Pin1)
	}
}

func TestMatrixSymmetric(t *testing.T) {
	m := NewMatrix()
	for _, x := range types.Endpoints {
		for _, y := range types.Endpoints {
			assert.Equal(t, m.Lookup(x, y), m.Lookup(y, x), "%s%s", x, y)
		}
	}
}

func TestMatrixPaths(t *testing.T) {
	m := NewMatrix()
	var got []string
	for _, p := range m.Paths() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{
		"AB", "AC", "AD", "AE", "AF", "AG",
		"BC", "BD", "BE", "BF", "BG",
		"CD", "DE", "EF", "FG",
	}, got)

	assert.Equal(t, Entry{pe42526.RF1, pe42526.RF6}, m.Lookup(ep('B'), ep('A')))
	assert.Equal(t, Entry{pe42526.RF4, pe42526.RF3}, m.Lookup(ep('D'), ep('E')))
	assert.False(t, m.IsSupported(ep('C'), ep('E')))
	assert.False(t, m.IsSupported(types.Endpoint(9), ep('A')))
}

func TestConnectThenQuery(t *testing.T) {
	r, _ := newRegistry(t)
	for _, p := range r.Matrix().Paths() {
		r.DisconnectAll()
		require.NoError(t, r.Connect(p.B, p.A))
		got, err := r.Query(&p)
		require.NoError(t, err)
		assert.Equal(t, []types.Path{p}, got)
		assert.False(t, r.IsIdle())
	}
}

func TestLowercaseReversedConnect(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.Connect(ep('b'), ep('a')))

	ab := types.NewPath(ep('A'), ep('B'))
	got, err := r.Query(&ab)
	require.NoError(t, err)
	assert.Equal(t, []types.Path{ab}, got)

	all, err := r.Query(nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Path{ab}, all)
}

func TestDisconnectAllIdle(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.Connect(ep('A'), ep('B')))
	require.NoError(t, r.Connect(ep('C'), ep('D')))

	r.DisconnectAll()
	got, err := r.Query(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)
	assert.True(t, r.IsIdle())
	for _, s := range r.States() {
		assert.Equal(t, "RFC", s.Pin)
	}
}

func TestSameEndpointChangesNothing(t *testing.T) {
	r, mem := newRegistry(t)
	before := map[hal.LineID]int{}
	for _, id := range mem.IDs() {
		before[id] = mem.Writes(id)
	}

	err := r.Connect(ep('A'), ep('a'))
	assert.ErrorIs(t, err, errcode.SameEndpoint)
	assert.ErrorIs(t, r.Disconnect(ep('C'), ep('C')), errcode.SameEndpoint)

	for _, id := range mem.IDs() {
		assert.Equal(t, before[id], mem.Writes(id), "line %s", id)
	}
	assert.True(t, r.IsIdle())
}

func TestUnsupportedPath(t *testing.T) {
	r, _ := newRegistry(t)
	ce := types.NewPath(ep('C'), ep('E'))

	assert.ErrorIs(t, r.Connect(ce.A, ce.B), errcode.UnsupportedPath)
	assert.ErrorIs(t, r.Disconnect(ce.B, ce.A), errcode.UnsupportedPath)
	_, err := r.Query(&ce)
	assert.ErrorIs(t, err, errcode.UnsupportedPath)

	diag := types.Path{A: ep('D'), B: ep('D')}
	_, err = r.Query(&diag)
	assert.ErrorIs(t, err, errcode.UnsupportedPath)
	assert.ErrorIs(t, r.Connect(diag.A, diag.B), errcode.SameEndpoint)
	assert.True(t, r.IsIdle())
}

func TestQueryOrdering(t *testing.T) {
	r, _ := newRegistry(t)
	// Disjoint device sets so none overrides another.
	require.NoError(t, r.Connect(ep('G'), ep('F')))
	require.NoError(t, r.Connect(ep('D'), ep('E')))
	require.NoError(t, r.Connect(ep('B'), ep('C')))

	got, err := r.Query(nil)
	require.NoError(t, err)
	var s []string
	for _, p := range got {
		s = append(s, p.String())
	}
	assert.Equal(t, []string{"BC", "DE", "FG"}, s)
}

func TestConnectOverridesPrior(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.Connect(ep('A'), ep('B')))
	require.NoError(t, r.Connect(ep('A'), ep('C'))) // re-targets A

	got, err := r.Query(nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Path{types.NewPath(ep('A'), ep('C'))}, got)

	// AB is no longer live: disconnecting it must not disturb AC.
	require.NoError(t, r.Disconnect(ep('A'), ep('B')))
	got, err = r.Query(nil)
	require.NoError(t, err)
	assert.Equal(t, []types.Path{types.NewPath(ep('A'), ep('C'))}, got)

	require.NoError(t, r.Disconnect(ep('C'), ep('A')))
	assert.Equal(t, "RFC", r.States()[ep('A')].Pin)
	assert.Equal(t, "RFC", r.States()[ep('C')].Pin)
	// B still holds its half of the old AB selection.
	assert.Equal(t, "RF6", r.States()[ep('B')].Pin)
	assert.False(t, r.IsIdle())
}

func TestDisconnectInactiveIsNoop(t *testing.T) {
	r, mem := newRegistry(t)
	id := lineID(ep('A'), 1)
	before := mem.Writes(id)
	require.NoError(t, r.Disconnect(ep('A'), ep('B')))
	assert.Equal(t, before, mem.Writes(id))
}

func TestExternalResetDropsPath(t *testing.T) {
	r, mem := newRegistry(t)
	require.NoError(t, r.Connect(ep('C'), ep('D')))
	cd := types.NewPath(ep('C'), ep('D'))

	got, err := r.Query(&cd)
	require.NoError(t, err)
	require.Len(t, got, 1)

	// C selects RF4 (V2,V3 high); pulling V3 low leaves it on RF3.
	mem.Force(lineID(ep('C'), 3), false)
	got, err = r.Query(&cd)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, "RF3", r.States()[ep('C')].Pin)
}

func TestStatesNames(t *testing.T) {
	r, _ := newRegistry(t)
	require.NoError(t, r.Connect(ep('A'), ep('G')))
	st := r.States()
	assert.Equal(t, "A", st[0].Endpoint)
	assert.Equal(t, "SMA_A", st[0].Name)
	assert.Equal(t, "RF6", st[0].Pin)
	assert.Equal(t, "RF1", st[6].Pin)
}
