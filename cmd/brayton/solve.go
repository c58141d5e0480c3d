package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bft-labs/brayton/internal/cliconfig"
	"github.com/bft-labs/brayton/internal/report"
	"github.com/bft-labs/brayton/pkg/cycle"
	"github.com/bft-labs/brayton/pkg/diagram"
)

// solveOnce solves the configured cycle, writes the report to out and, when
// an SVG directory is set, both diagrams next to it.
func solveOnce(cfg cliconfig.Config, out io.Writer) error {
	gas, err := cfg.Gas()
	if err != nil {
		return err
	}
	in, err := cycle.ParseForm(cfg.Form())
	if err != nil {
		return err
	}
	res, err := cycle.Solve(in, gas)
	if err != nil {
		return err
	}

	if err := report.Write(out, res, cfg.Format); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if cfg.SVGDir != "" {
		if err := writeDiagrams(cfg.SVGDir, res); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagrams(dir string, res cycle.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create svg dir: %w", err)
	}
	for _, kind := range []diagram.Kind{diagram.KindPV, diagram.KindTS} {
		path := filepath.Join(dir, "cycle-"+string(kind)+".svg")
		if err := writeDiagram(path, diagram.Build(kind, res)); err != nil {
			return err
		}
	}
	return nil
}

func writeDiagram(path string, chart diagram.Chart) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := chart.WriteSVG(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
