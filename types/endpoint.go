package types

import "rfswitch-go/errcode"

// ------------------------
// Endpoints & paths
// ------------------------

// Endpoint is one of the seven switch ports A..G. The numeric value doubles as
// the device index, so ordering follows the letters.
type Endpoint uint8

const (
	EndpointA Endpoint = iota
	EndpointB
	EndpointC
	EndpointD
	EndpointE
	EndpointF
	EndpointG
)

// NumEndpoints is the number of ports (and switch devices).
const NumEndpoints = 7

// Endpoints lists A..G in order.
var Endpoints = [NumEndpoints]Endpoint{EndpointA, EndpointB, EndpointC, EndpointD, EndpointE, EndpointF, EndpointG}

func (e Endpoint) Valid() bool { return e < NumEndpoints }

// Letter returns 'A'..'G', or '?' for an invalid endpoint.
func (e Endpoint) Letter() byte {
	if !e.Valid() {
		return '?'
	}
	return 'A' + byte(e)
}

func (e Endpoint) String() string { return string([]byte{e.Letter()}) }

// ParseEndpoint accepts 'A'..'G' in either case.
func ParseEndpoint(c byte) (Endpoint, error) {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'G' {
		return 0, errcode.InvalidEndpoint
	}
	return Endpoint(c - 'A'), nil
}

// Path is an unordered pair of endpoints, stored with the lower one first.
type Path struct {
	A Endpoint `json:"a"`
	B Endpoint `json:"b"`
}

// NewPath normalizes (x, y) to (min, max). It does not reject x == y.
func NewPath(x, y Endpoint) Path {
	if x > y {
		x, y = y, x
	}
	return Path{A: x, B: y}
}

// ParsePath reads a two-letter path such as "AB", "ba" or "Dc".
func ParsePath(s string) (Path, error) {
	if len(s) != 2 {
		return Path{}, errcode.Wrap(errcode.InvalidParams, "parse path", "wrong length")
	}
	x, err := ParseEndpoint(s[0])
	if err != nil {
		return Path{}, errcode.Wrap(errcode.InvalidEndpoint, "parse path", "wrong endpoint1")
	}
	y, err := ParseEndpoint(s[1])
	if err != nil {
		return Path{}, errcode.Wrap(errcode.InvalidEndpoint, "parse path", "wrong endpoint2")
	}
	if x == y {
		return Path{}, errcode.Wrap(errcode.SameEndpoint, "parse path", "same endpoint")
	}
	return NewPath(x, y), nil
}

// Less orders paths by (A, B).
func (p Path) Less(q Path) bool {
	if p.A != q.A {
		return p.A < q.A
	}
	return p.B < q.B
}

func (p Path) String() string { return string([]byte{p.A.Letter(), p.B.Letter()}) }
