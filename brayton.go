// Package brayton solves ideal-gas Brayton (gas turbine) cycles.
//
// Example usage:
//
//	in := brayton.Inputs{P1: 100e3, T1: 288, RP: 8, Power: 50e6, Tmax: 1100}
//	res, err := brayton.Solve(in, brayton.Air)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("efficiency %.1f%%\n", res.Efficiency*100)
//
// The solver lives in pkg/cycle and the diagram builders in pkg/diagram;
// this package re-exports the common entry points.
package brayton

import (
	"github.com/bft-labs/brayton/pkg/cycle"
	"github.com/bft-labs/brayton/pkg/diagram"
)

// Inputs are the cycle inputs in SI units (Pa, K, W).
type Inputs = cycle.Inputs

// Form carries the cycle inputs as text in form units (kPa, K, MW).
type Form = cycle.Form

// Gas holds the constant specific heats of the working fluid.
type Gas = cycle.Gas

// Result is a solved cycle.
type Result = cycle.Result

// Point is the thermodynamic state at one labelled cycle point.
type Point = cycle.Point

// InvalidInputError reports which input was rejected and why.
type InvalidInputError = cycle.InvalidInputError

// Chart is a P-v or T-s diagram ready to render.
type Chart = diagram.Chart

// Air is the default working fluid.
var Air = cycle.Air

// ErrInvalidInput matches every InvalidInputError via errors.Is.
var ErrInvalidInput = cycle.ErrInvalidInput

// Solve computes all cycle points and performance figures.
func Solve(in Inputs, gas Gas) (Result, error) {
	return cycle.Solve(in, gas)
}

// ParseForm converts form text into Inputs.
func ParseForm(f Form) (Inputs, error) {
	return cycle.ParseForm(f)
}

// NewGas derives k and R from cp and cv.
func NewGas(cp, cv float64) (Gas, error) {
	return cycle.NewGas(cp, cv)
}

// Effectiveness returns a regenerator effectiveness for Inputs.Regen.
func Effectiveness(v float64) *float64 {
	return cycle.Effectiveness(v)
}

// PV returns the pressure-volume diagram of res.
func PV(res Result) Chart {
	return diagram.PV(res)
}

// TS returns the temperature-entropy diagram of res.
func TS(res Result) Chart {
	return diagram.TS(res)
}
