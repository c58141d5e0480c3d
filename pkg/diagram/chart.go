package diagram

import (
	"github.com/bft-labs/brayton/pkg/cycle"
)

// Leg is one process of the cycle drawn as a straight segment between two
// labelled points.
type Leg struct {
	Name  string     `json:"name"`
	From  string     `json:"from"`
	To    string     `json:"to"`
	Color string     `json:"color"`
	X     [2]float64 `json:"x"`
	Y     [2]float64 `json:"y"`
}

// Chart is a titled set of legs with axis labels.
type Chart struct {
	Title  string `json:"title"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Legs   []Leg  `json:"legs"`
}

// Kind selects a diagram.
type Kind string

const (
	KindPV Kind = "pv"
	KindTS Kind = "ts"
)

// ParseKind accepts "pv" or "ts".
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindPV, KindTS:
		return Kind(s), true
	}
	return "", false
}

// Build returns the chart of the given kind.
func Build(kind Kind, res cycle.Result) Chart {
	if kind == KindTS {
		return TS(res)
	}
	return PV(res)
}

// PV returns the pressure (kPa) against specific volume (m³/kg) diagram.
func PV(res cycle.Result) Chart {
	return Chart{
		Title:  "Brayton cycle – P × v",
		XLabel: "Specific volume (m³/kg)",
		YLabel: "Pressure (kPa)",
		Legs: legs(res, func(p cycle.Point) (float64, float64) {
			return p.SpecificVolume, p.Pressure / 1e3
		}),
	}
}

// TS returns the temperature (K) against specific entropy (kJ/kg·K) diagram.
func TS(res cycle.Result) Chart {
	return Chart{
		Title:  "Brayton cycle – T × s",
		XLabel: "Specific entropy (kJ/kg·K)",
		YLabel: "Temperature (K)",
		Legs: legs(res, func(p cycle.Point) (float64, float64) {
			return p.SpecificEntropy, p.Temperature
		}),
	}
}

const (
	colorCompression = "gold"
	colorRegen       = "orange"
	colorHeatAdd     = "red"
	colorExpansion   = "limegreen"
	colorHeatReject  = "deepskyblue"
)

func legs(res cycle.Result, xy func(cycle.Point) (float64, float64)) []Leg {
	n := len(res.Points)
	if n < 2 {
		return nil
	}
	out := make([]Leg, 0, n)
	for i := 0; i < n; i++ {
		a, b := res.Points[i], res.Points[(i+1)%n]
		name, color := process(a.Label, b.Label)
		ax, ay := xy(a)
		bx, by := xy(b)
		out = append(out, Leg{
			Name:  name,
			From:  a.Label,
			To:    b.Label,
			Color: color,
			X:     [2]float64{ax, bx},
			Y:     [2]float64{ay, by},
		})
	}
	return out
}

// process names the leg that starts at point from.
func process(from, to string) (string, string) {
	arrow := " (" + from + "→" + to + ")"
	switch from {
	case cycle.Point1:
		return "Compression" + arrow, colorCompression
	case cycle.Point2:
		if to == cycle.Point2Prime {
			return "Regeneration" + arrow, colorRegen
		}
		return "Heat addition" + arrow, colorHeatAdd
	case cycle.Point2Prime:
		return "Heat addition" + arrow, colorHeatAdd
	case cycle.Point3:
		return "Expansion" + arrow, colorExpansion
	default:
		return "Heat rejection" + arrow, colorHeatReject
	}
}
