// Package routing maps endpoint pairs onto switch pin selections and keeps
// track of live connections by reading the switches back.
package routing

import (
	"rfswitch-go/drivers/pe42526"
	"rfswitch-go/types"
)

// Entry is the pin each of the two devices must select to join a path.
// Pin1 belongs to the lower endpoint.
type Entry struct {
	Pin1, Pin2 pe42526.Pin
}

// Supported reports whether the entry describes a real connection.
func (e Entry) Supported() bool { return e.Pin1 != pe42526.NoPin && e.Pin2 != pe42526.NoPin }

var none = Entry{pe42526.NoPin, pe42526.NoPin}

func pins(a, b int) Entry { return Entry{pe42526.Pin(a - 1), pe42526.Pin(b - 1)} }

// Only the upper triangle is filled. Lookups normalize first, which is what
// makes (x,y) and (y,x) the same connection; the lower triangle stays NONE.
var table = [types.NumEndpoints][types.NumEndpoints]Entry{
	/*          A     B           C           D           E           F           G */
	/* A */ {none, pins(1, 6), pins(2, 6), pins(3, 5), pins(4, 2), pins(5, 2), pins(6, 1)},
	/* B */ {none, none, pins(5, 1), pins(4, 2), pins(3, 5), pins(2, 5), pins(1, 6)},
	/* C */ {none, none, none, pins(4, 6), none, none, none},
	/* D */ {none, none, none, none, pins(4, 3), none, none},
	/* E */ {none, none, none, none, none, pins(6, 4), none},
	/* F */ {none, none, none, none, none, none, pins(6, 4)},
	/* G */ {none, none, none, none, none, none, none},
}

// Matrix is the static switch topology.
type Matrix struct {
	t     *[types.NumEndpoints][types.NumEndpoints]Entry
	paths []types.Path
}

// NewMatrix returns the topology of the seven-port board.
func NewMatrix() *Matrix {
	m := &Matrix{t: &table}
	for _, a := range types.Endpoints {
		for _, b := range types.Endpoints[a+1:] {
			if m.t[a][b].Supported() {
				m.paths = append(m.paths, types.Path{A: a, B: b})
			}
		}
	}
	return m
}

// Lookup returns the entry for the normalized pair. Invalid endpoints and the
// diagonal yield the NONE entry.
func (m *Matrix) Lookup(x, y types.Endpoint) Entry {
	if !x.Valid() || !y.Valid() {
		return none
	}
	p := types.NewPath(x, y)
	return m.t[p.A][p.B]
}

// IsSupported reports whether x and y can be joined.
func (m *Matrix) IsSupported(x, y types.Endpoint) bool { return m.Lookup(x, y).Supported() }

// Paths lists every supported path in ascending (A, B) order.
func (m *Matrix) Paths() []types.Path {
	out := make([]types.Path, len(m.paths))
	copy(out, m.paths)
	return out
}
