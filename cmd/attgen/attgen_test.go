package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rfswitch-go/routing"
)

func testManifest(points int) *Manifest {
	m := &Manifest{Package: "attenuation", Source: "paths.csv", Output: "tables_gen.go", Scale: 100}
	m.Grid.BaseHz = 1000
	m.Grid.StepHz = 10
	m.Grid.Points = points
	return m
}

// csvFor builds a source with every routed path; edit tweaks each row.
func csvFor(points int, edit func(row int, freq int64) int64) string {
	var b strings.Builder
	b.WriteString("# test data\nfreq_hz")
	paths := routing.NewMatrix().Paths()
	for _, p := range paths {
		b.WriteString("," + p.String())
	}
	b.WriteByte('\n')
	for i := 0; i < points; i++ {
		f := int64(1000 + 10*i)
		if edit != nil {
			f = edit(i, f)
		}
		b.WriteString(strconv.FormatInt(f, 10))
		for j := range paths {
			b.WriteString("," + strconv.FormatFloat(0.5+float64(i)/10+float64(j)/100, 'f', 2, 64))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func TestReadTables(t *testing.T) {
	m := testManifest(4)
	tabs, err := ReadTables(strings.NewReader(csvFor(4, nil)), m)
	require.NoError(t, err)
	assert.Len(t, tabs.Paths, 15)
	ab := tabs.Paths[0]
	assert.Equal(t, "AB", ab.String())
	assert.Equal(t, []uint16{50, 60, 70, 80}, tabs.Samples[ab])
	assert.Equal(t, []uint16{64, 74, 84, 94}, tabs.Samples[tabs.Paths[14]])
}

func TestRejectsNonUniformGrid(t *testing.T) {
	m := testManifest(4)
	src := csvFor(4, func(row int, f int64) int64 {
		if row == 2 {
			return f + 1
		}
		return f
	})
	_, err := ReadTables(strings.NewReader(src), m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "off grid")
}

func TestRejectsRowCountMismatch(t *testing.T) {
	_, err := ReadTables(strings.NewReader(csvFor(3, nil)), testManifest(4))
	assert.ErrorContains(t, err, "got 3 rows")

	_, err = ReadTables(strings.NewReader(csvFor(5, nil)), testManifest(4))
	assert.ErrorContains(t, err, "more rows")
}

func TestRejectsPathSet(t *testing.T) {
	m := testManifest(1)

	_, err := ReadTables(strings.NewReader("freq_hz,AB\n1000,1\n"), m)
	assert.ErrorContains(t, err, "missing column")

	extra := "freq_hz,AB,CE\n1000,1,2\n"
	_, err = ReadTables(strings.NewReader(extra), m)
	assert.Error(t, err)

	dup := strings.Replace(csvFor(1, nil), "freq_hz,AB", "freq_hz,BA,AB", 1)
	_, err = ReadTables(strings.NewReader(dup), m)
	assert.Error(t, err)
}

func TestRejectsBadValues(t *testing.T) {
	m := testManifest(1)
	src := strings.Replace(csvFor(1, nil), "1000,0.50", "1000,-3", 1)
	_, err := ReadTables(strings.NewReader(src), m)
	assert.ErrorContains(t, err, "out of range")
}

func TestGenerate(t *testing.T) {
	m := testManifest(20)
	tabs, err := ReadTables(strings.NewReader(csvFor(20, nil)), m)
	require.NoError(t, err)

	code, err := Generate(m, tabs)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(code, "// Code generated by attgen from paths.csv; DO NOT EDIT."))
	assert.Contains(t, code, "package attenuation")
	assert.Contains(t, code, "Points       = 20")
	assert.Contains(t, code, "types.EndpointA: {types.EndpointB: &lossAB, types.EndpointC: &lossAC,")
	assert.Contains(t, code, "types.EndpointF: {types.EndpointG: &lossFG},")
	assert.Contains(t, code, "var lossCD = [Points]uint16{")
	// 20 samples at 16 per line.
	assert.Contains(t, code, "\t50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150, 160, 170, 180, 190, 200,\n\t210, 220, 230, 240,\n}")
}

func TestRunWritesFormattedOutput(t *testing.T) {
	dir := t.TempDir()
	manifest := `package: attenuation
source: paths.csv
output: tables_gen.go
grid:
  base_hz: 1000
  step_hz: 10
  points: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.yaml"), []byte(manifest), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "paths.csv"), []byte(csvFor(3, nil)), 0o644))

	require.NoError(t, run(filepath.Join(dir, "manifest.yaml"), true))
	_, err := os.Stat(filepath.Join(dir, "tables_gen.go"))
	assert.True(t, os.IsNotExist(err), "check mode must not write")

	require.NoError(t, run(filepath.Join(dir, "manifest.yaml"), false))
	out, err := os.ReadFile(filepath.Join(dir, "tables_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "var lossAB = [Points]uint16{")
}

func TestLoadManifestDefaults(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "m.yaml")
	require.NoError(t, os.WriteFile(p, []byte("source: x.csv\ngrid: {base_hz: 0, step_hz: 5, points: 2}\n"), 0o644))
	m, err := LoadManifest(p)
	require.NoError(t, err)
	assert.Equal(t, "attenuation", m.Package)
	assert.Equal(t, "tables_gen.go", m.Output)
	assert.Equal(t, 100.0, m.Scale)

	require.NoError(t, os.WriteFile(p, []byte("source: x.csv\ngrid: {step_hz: 0, points: 2}\n"), 0o644))
	_, err = LoadManifest(p)
	assert.Error(t, err)
}
