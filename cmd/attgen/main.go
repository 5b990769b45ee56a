// cmd/attgen generates attenuation/tables_gen.go from the measured loss CSV.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"golang.org/x/tools/imports"
)

func main() {
	manifestPath := pflag.StringP("manifest", "m", "data/manifest.yaml", "path to the table manifest")
	check := pflag.Bool("check", false, "validate the source data without writing output")
	pflag.Parse()

	if err := run(*manifestPath, *check); err != nil {
		fmt.Fprintf(os.Stderr, "attgen: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestPath string, check bool) error {
	m, err := LoadManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("loading manifest: %w", err)
	}
	dir := filepath.Dir(manifestPath)

	f, err := os.Open(filepath.Join(dir, m.Source))
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer f.Close()

	tabs, err := ReadTables(f, m)
	if err != nil {
		return fmt.Errorf("%s: %w", m.Source, err)
	}
	if check {
		fmt.Printf("  %s: %d paths, %d points ok\n", m.Source, len(tabs.Paths), m.Grid.Points)
		return nil
	}

	code, err := Generate(m, tabs)
	if err != nil {
		return err
	}
	out := filepath.Join(dir, m.Output)
	if err := writeFormatted(out, code); err != nil {
		return err
	}
	fmt.Printf("  generated %s\n", out)
	return nil
}

// writeFormatted runs the source through goimports before writing it.
func writeFormatted(path string, code string) error {
	formatted, err := imports.Process(path, []byte(code), nil)
	if err != nil {
		// Keep the raw output around for debugging the template.
		_ = os.WriteFile(path+".broken", []byte(code), 0o644)
		return fmt.Errorf("goimports %s: %w", filepath.Base(path), err)
	}
	return os.WriteFile(path, formatted, 0o644)
}
