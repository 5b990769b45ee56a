package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/errcode"
)

func TestParseEndpoint(t *testing.T) {
	for i, c := range []byte("ABCDEFG") {
		e, err := ParseEndpoint(c)
		require.NoError(t, err)
		assert.Equal(t, Endpoint(i), e)

		e, err = ParseEndpoint(c + ('a' - 'A'))
		require.NoError(t, err)
		assert.Equal(t, Endpoint(i), e)
	}
	for _, c := range []byte("H@z0 ") {
		_, err := ParseEndpoint(c)
		assert.ErrorIs(t, err, errcode.InvalidEndpoint, "%q", c)
	}
}

func TestParsePathNormalizes(t *testing.T) {
	p, err := ParsePath("ba")
	require.NoError(t, err)
	assert.Equal(t, Path{A: EndpointA, B: EndpointB}, p)
	assert.Equal(t, "AB", p.String())

	p, err = ParsePath("Gc")
	require.NoError(t, err)
	assert.Equal(t, "CG", p.String())
}

func TestParsePathErrors(t *testing.T) {
	cases := map[string]errcode.Code{
		"":    errcode.InvalidParams,
		"A":   errcode.InvalidParams,
		"ABC": errcode.InvalidParams,
		"AX":  errcode.InvalidEndpoint,
		"1B":  errcode.InvalidEndpoint,
		"aa":  errcode.SameEndpoint,
	}
	for in, want := range cases {
		_, err := ParsePath(in)
		assert.ErrorIs(t, err, want, "input %q", in)
	}
}

func TestPathOrdering(t *testing.T) {
	assert.True(t, NewPath(EndpointA, EndpointB).Less(NewPath(EndpointA, EndpointC)))
	assert.True(t, NewPath(EndpointA, EndpointG).Less(NewPath(EndpointB, EndpointC)))
	assert.False(t, NewPath(EndpointC, EndpointD).Less(NewPath(EndpointC, EndpointD)))
	assert.Equal(t, NewPath(EndpointF, EndpointB), NewPath(EndpointB, EndpointF))
}
