// Package attenuation serves the tabulated insertion loss of every routed
// path. Tables are sampled on one uniform frequency grid and generated into
// tables_gen.go from data/paths.csv.
package attenuation

//go:generate go run ../cmd/attgen --manifest data/manifest.yaml

import (
	"rfswitch-go/errcode"
	"rfswitch-go/types"
	"rfswitch-go/x/mathx"
)

// Grid is a uniform frequency grid: Count points from Base, Step apart.
type Grid struct {
	Base  int64 `json:"base_hz" yaml:"base_hz"`
	Step  int64 `json:"step_hz" yaml:"step_hz"`
	Count int   `json:"points" yaml:"points"`
}

// DefaultGrid is the grid of the generated tables.
var DefaultGrid = Grid{Base: BaseHz, Step: StepHz, Count: Points}

// Max is the highest frequency on the grid.
func (g Grid) Max() int64 { return g.Base + int64(g.Count-1)*g.Step }

// FrequencyAt returns the frequency of point i.
func (g Grid) FrequencyAt(i int) int64 { return g.Base + int64(i)*g.Step }

// Contains reports Base <= f <= Max.
func (g Grid) Contains(f int64) bool { return mathx.Between(f, g.Base, g.Max()) }

// Index returns the grid point at or below f, clamped to the grid.
func (g Grid) Index(f int64) int {
	return int(mathx.Clamp(mathx.FloorDiv(f-g.Base, g.Step), 0, int64(g.Count-1)))
}

// Point is one tabulated sample. Loss is in hundredths of a dB.
type Point struct {
	FrequencyHz int64  `json:"frequency_hz"`
	Loss        uint16 `json:"loss_cdb"`
}

// Bracket is the pair of grid points around a requested frequency. Lo and Hi
// are the same point at the top of the grid.
type Bracket struct {
	Lo Point `json:"lo"`
	Hi Point `json:"hi"`
}

// Interpolate returns the linear estimate of the loss at f, in centi-dB.
func (b Bracket) Interpolate(f int64) float64 {
	if b.Hi.FrequencyHz == b.Lo.FrequencyHz {
		return float64(b.Lo.Loss)
	}
	t := float64(f-b.Lo.FrequencyHz) / float64(b.Hi.FrequencyHz-b.Lo.FrequencyHz)
	t = mathx.Clamp(t, 0, 1)
	return float64(b.Lo.Loss) + t*(float64(b.Hi.Loss)-float64(b.Lo.Loss))
}

// Lookup answers loss queries. Tables are read only; it is safe for
// concurrent use.
type Lookup struct {
	grid   Grid
	tables *[types.NumEndpoints][types.NumEndpoints][]uint16
}

// New returns a Lookup over the generated tables.
func New() *Lookup {
	var t [types.NumEndpoints][types.NumEndpoints][]uint16
	for a := range tables {
		for b, tab := range tables[a] {
			if tab != nil {
				t[a][b] = tab[:]
			}
		}
	}
	return &Lookup{grid: DefaultGrid, tables: &t}
}

// NewWith builds a Lookup from explicit tables, each of grid.Count samples.
func NewWith(grid Grid, tabs map[types.Path][]uint16) (*Lookup, error) {
	if grid.Count < 1 || grid.Step <= 0 {
		return nil, errcode.Wrap(errcode.InvalidConfig, "attenuation", "bad grid")
	}
	var t [types.NumEndpoints][types.NumEndpoints][]uint16
	for p, tab := range tabs {
		if !p.A.Valid() || !p.B.Valid() || p.A == p.B {
			return nil, errcode.Wrap(errcode.InvalidEndpoint, "attenuation", p.String())
		}
		if len(tab) != grid.Count {
			return nil, errcode.Wrap(errcode.InvalidConfig, "attenuation", "table "+p.String()+" length")
		}
		n := types.NewPath(p.A, p.B)
		t[n.A][n.B] = tab
	}
	return &Lookup{grid: grid, tables: &t}, nil
}

// Grid returns the grid every table is sampled on.
func (l *Lookup) Grid() Grid { return l.grid }

// TableFor returns the samples for x-y in either order. The slice aliases
// the constant table and must not be modified; use CopyTable to own one.
func (l *Lookup) TableFor(x, y types.Endpoint) ([]uint16, bool) {
	if !x.Valid() || !y.Valid() {
		return nil, false
	}
	p := types.NewPath(x, y)
	t := l.tables[p.A][p.B]
	return t, t != nil
}

// CopyTable is TableFor returning a private copy.
func (l *Lookup) CopyTable(x, y types.Endpoint) ([]uint16, bool) {
	t, ok := l.TableFor(x, y)
	if !ok {
		return nil, false
	}
	return append([]uint16(nil), t...), true
}

// Paths lists every path with a table, in ascending order.
func (l *Lookup) Paths() []types.Path {
	var out []types.Path
	for _, a := range types.Endpoints {
		for _, b := range types.Endpoints[a+1:] {
			if l.tables[a][b] != nil {
				out = append(out, types.Path{A: a, B: b})
			}
		}
	}
	return out
}

// QueryPoint returns the grid points bracketing f on path x-y. The frequency
// is checked before the path.
func (l *Lookup) QueryPoint(x, y types.Endpoint, f int64) (Bracket, error) {
	const op = "attenuation query"
	if !l.grid.Contains(f) {
		return Bracket{}, errcode.Wrap(errcode.FrequencyOutOfRange, op, "")
	}
	if x == y {
		return Bracket{}, errcode.Wrap(errcode.SameEndpoint, op, types.NewPath(x, y).String())
	}
	t, ok := l.TableFor(x, y)
	if !ok {
		return Bracket{}, errcode.Wrap(errcode.UnsupportedPath, op, types.NewPath(x, y).String())
	}
	i := l.grid.Index(f)
	j := mathx.Clamp(i+1, 0, l.grid.Count-1)
	return Bracket{
		Lo: Point{FrequencyHz: l.grid.FrequencyAt(i), Loss: t[i]},
		Hi: Point{FrequencyHz: l.grid.FrequencyAt(j), Loss: t[j]},
	}, nil
}
