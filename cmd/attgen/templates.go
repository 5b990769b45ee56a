package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"rfswitch-go/types"
)

const perLine = 16

var funcMap = template.FuncMap{
	"rows": rows,
}

var tablesTmpl = template.Must(template.New("tables").Funcs(funcMap).Parse(`// Code generated by attgen from {{.Source}}; DO NOT EDIT.

package {{.Package}}

import "rfswitch-go/types"

// Grid of the tables below.
const (
	BaseHz int64 = {{.BaseHz}}
	StepHz int64 = {{.StepHz}}
	Points       = {{.Points}}
)

var tables = [types.NumEndpoints][types.NumEndpoints]*[Points]uint16{
{{- range .Index}}
	types.Endpoint{{.From}}: { {{- .To}}},
{{- end}}
}
{{range .Tables}}
// loss{{.Name}} is path {{.A}}-{{.B}} in centi-dB.
var loss{{.Name}} = [Points]uint16{
{{- range rows .Samples}}
	{{.}},
{{- end}}
}
{{end -}}
`))

type tableData struct {
	Name, A, B string
	Samples    []uint16
}

type indexRow struct {
	From string
	To   string
}

type fileData struct {
	Source, Package string
	BaseHz, StepHz  int64
	Points          int
	Index           []indexRow
	Tables          []tableData
}

// Generate renders the Go source for t.
func Generate(m *Manifest, t *Tables) (string, error) {
	d := fileData{
		Source:  m.Source,
		Package: m.Package,
		BaseHz:  m.Grid.BaseHz,
		StepHz:  m.Grid.StepHz,
		Points:  m.Grid.Points,
	}
	byFrom := map[types.Endpoint][]string{}
	for _, p := range t.Paths {
		byFrom[p.A] = append(byFrom[p.A], fmt.Sprintf("types.Endpoint%s: &loss%s", p.B, p))
		d.Tables = append(d.Tables, tableData{
			Name:    p.String(),
			A:       p.A.String(),
			B:       p.B.String(),
			Samples: t.Samples[p],
		})
	}
	for _, e := range types.Endpoints {
		if to := byFrom[e]; len(to) > 0 {
			d.Index = append(d.Index, indexRow{From: e.String(), To: strings.Join(to, ", ")})
		}
	}

	var b strings.Builder
	if err := tablesTmpl.Execute(&b, d); err != nil {
		return "", fmt.Errorf("template: %w", err)
	}
	return b.String(), nil
}

// rows splits samples into comma-joined lines.
func rows(s []uint16) []string {
	var out []string
	for i := 0; i < len(s); i += perLine {
		end := min(i+perLine, len(s))
		parts := make([]string, 0, end-i)
		for _, v := range s[i:end] {
			parts = append(parts, strconv.FormatUint(uint64(v), 10))
		}
		out = append(out, strings.Join(parts, ", "))
	}
	return out
}
