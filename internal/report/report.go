// Package report formats a solved cycle for people and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/bft-labs/brayton/pkg/cycle"
)

// Write renders res in the given format: "text", "json" or "toml".
func Write(w io.Writer, res cycle.Result, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, Text(res))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "toml":
		return toml.NewEncoder(w).Encode(res)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Text returns the result table in display units.
func Text(res cycle.Result) string {
	var b strings.Builder

	p2, _ := res.Point(cycle.Point2)
	p3, _ := res.Point(cycle.Point3)
	p4, _ := res.Point(cycle.Point4)

	fmt.Fprintf(&b, "P2:    %.2f kPa\n", p2.Pressure/1e3)
	fmt.Fprintf(&b, "T2:    %.2f K\n", p2.Temperature)
	fmt.Fprintf(&b, "P3:    %.2f kPa\n", p3.Pressure/1e3)
	if p2r, ok := res.Point(cycle.Point2Prime); ok {
		fmt.Fprintf(&b, "T2':   %.2f K\n", p2r.Temperature)
	} else {
		fmt.Fprintf(&b, "T2':   ---\n")
	}
	fmt.Fprintf(&b, "Wc:    %.2f kJ/kg\n", res.CompressorWork)
	fmt.Fprintf(&b, "T4:    %.2f K\n", p4.Temperature)
	fmt.Fprintf(&b, "Wt:    %.2f kJ/kg\n", res.TurbineWork)
	fmt.Fprintf(&b, "Wnet:  %.2f kJ/kg\n", res.NetWork)
	fmt.Fprintf(&b, "q_in:  %.2f kJ/kg\n", res.HeatIn)
	fmt.Fprintf(&b, "m:     %.2f kg/s\n", res.MassFlow)
	fmt.Fprintf(&b, "eta:   %.2f %%\n", res.Efficiency*100)

	b.WriteString("\npoint  P (kPa)     T (K)      v (m³/kg)   s (kJ/kg·K)\n")
	for _, p := range res.Points {
		fmt.Fprintf(&b, "%-5s  %-10.2f  %-9.2f  %-10.4f  %.4f\n",
			p.Label, p.Pressure/1e3, p.Temperature, p.SpecificVolume, p.SpecificEntropy)
	}
	return b.String()
}
