package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"rfswitch-go/routing"
	"rfswitch-go/types"
)

// Manifest describes one table source.
type Manifest struct {
	Package string  `yaml:"package"`
	Source  string  `yaml:"source"`
	Output  string  `yaml:"output"`
	Unit    string  `yaml:"unit"`
	Scale   float64 `yaml:"scale"` // source unit -> stored integer
	Grid    struct {
		BaseHz int64 `yaml:"base_hz"`
		StepHz int64 `yaml:"step_hz"`
		Points int   `yaml:"points"`
	} `yaml:"grid"`
}

// LoadManifest reads and checks a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if m.Package == "" {
		m.Package = "attenuation"
	}
	if m.Output == "" {
		m.Output = "tables_gen.go"
	}
	if m.Scale == 0 {
		m.Scale = 100
	}
	switch {
	case m.Source == "":
		return nil, errors.New("manifest: source is required")
	case m.Grid.StepHz <= 0:
		return nil, errors.New("manifest: grid.step_hz must be positive")
	case m.Grid.Points < 2:
		return nil, errors.New("manifest: grid.points must be at least 2")
	case m.Grid.BaseHz < 0:
		return nil, errors.New("manifest: grid.base_hz must not be negative")
	}
	return &m, nil
}

// Tables holds the scaled samples per path, in routing order.
type Tables struct {
	Paths   []types.Path
	Samples map[types.Path][]uint16
}

// ReadTables parses the CSV source: a freq_hz column followed by one column
// per path, one row per grid point. Lines starting with '#' are comments.
// The frequency column must match the manifest grid exactly, and the path set
// must be exactly the set the routing matrix supports.
func ReadTables(r io.Reader, m *Manifest) (*Tables, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 || strings.TrimSpace(header[0]) != "freq_hz" {
		return nil, errors.New("header must start with freq_hz")
	}

	cols := make([]types.Path, len(header)-1)
	seen := map[types.Path]bool{}
	for i, h := range header[1:] {
		p, err := types.ParsePath(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", h, err)
		}
		if seen[p] {
			return nil, fmt.Errorf("column %q: duplicate path %s", h, p)
		}
		seen[p] = true
		cols[i] = p
	}

	want := routing.NewMatrix().Paths()
	for _, p := range want {
		if !seen[p] {
			return nil, fmt.Errorf("missing column for routed path %s", p)
		}
		delete(seen, p)
	}
	for p := range seen {
		return nil, fmt.Errorf("column %s is not a routed path", p)
	}

	t := &Tables{Paths: want, Samples: make(map[types.Path][]uint16, len(want))}
	for _, p := range want {
		t.Samples[p] = make([]uint16, 0, m.Grid.Points)
	}

	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			if row != m.Grid.Points {
				return nil, fmt.Errorf("got %d rows, grid has %d points", row, m.Grid.Points)
			}
			return t, nil
		}
		if err != nil {
			return nil, err
		}
		if row >= m.Grid.Points {
			return nil, fmt.Errorf("more rows than the %d grid points", m.Grid.Points)
		}
		f, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: frequency: %w", row+1, err)
		}
		if exp := m.Grid.BaseHz + int64(row)*m.Grid.StepHz; f != exp {
			return nil, fmt.Errorf("row %d: frequency %d off grid, want %d", row+1, f, exp)
		}
		for i, p := range cols {
			v, err := scale(rec[i+1], m.Scale)
			if err != nil {
				return nil, fmt.Errorf("row %d, %s: %w", row+1, p, err)
			}
			t.Samples[p] = append(t.Samples[p], v)
		}
	}
}

func scale(s string, k float64) (uint16, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	n := math.Round(v * k)
	if n < 0 || n > math.MaxUint16 {
		return 0, fmt.Errorf("value %s out of range", s)
	}
	return uint16(n), nil
}
