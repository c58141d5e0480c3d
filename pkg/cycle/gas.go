package cycle

import "math"

// Gas holds the ideal-gas properties used by the solver, in kJ/kg·K.
type Gas struct {
	Cp float64 `json:"cp" toml:"cp"` // specific heat at constant pressure
	Cv float64 `json:"cv" toml:"cv"` // specific heat at constant volume
	K  float64 `json:"k" toml:"k"`   // cp/cv
	R  float64 `json:"r" toml:"r"`   // cp - cv
}

// Air is the default working fluid. K and R are the tabulated values for air
// and agree with cp/cv and cp-cv only to table precision, so isentropic legs
// show a small entropy drift. Use NewGas for exactly derived properties.
var Air = Gas{Cp: 1.005, Cv: 0.718, K: 1.4, R: 0.287}

// NewGas derives K and R from the two specific heats.
func NewGas(cp, cv float64) (Gas, error) {
	g := Gas{Cp: cp, Cv: cv, K: cp / cv, R: cp - cv}
	if err := g.Validate(); err != nil {
		return Gas{}, err
	}
	return g, nil
}

// Validate checks that the properties describe a physical ideal gas.
func (g Gas) Validate() error {
	switch {
	case !finite(g.Cp) || g.Cp <= 0:
		return invalid("cp", "must be a positive number, got %g", g.Cp)
	case !finite(g.Cv) || g.Cv <= 0:
		return invalid("cv", "must be a positive number, got %g", g.Cv)
	case g.Cp <= g.Cv:
		return invalid("cp", "must exceed cv (%g <= %g)", g.Cp, g.Cv)
	case !finite(g.K) || g.K <= 1:
		return invalid("k", "must be greater than 1, got %g", g.K)
	case !finite(g.R) || g.R <= 0:
		return invalid("r", "must be a positive number, got %g", g.R)
	}
	return nil
}

// exponent is (k-1)/k, the isentropic temperature-pressure exponent.
func (g Gas) exponent() float64 {
	return (g.K - 1) / g.K
}

// isentropicT returns the temperature reached from (t, p1) along an isentropic
// path ending at pressure p2.
func (g Gas) isentropicT(t, p1, p2 float64) float64 {
	return t * math.Pow(p2/p1, g.exponent())
}

// specificVolume applies the ideal-gas law with R converted to J/kg·K.
func (g Gas) specificVolume(p, t float64) float64 {
	return g.R * 1000 * t / p
}

// deltaS is the specific entropy change between two states, in kJ/kg·K.
func (g Gas) deltaS(ta, pa, tb, pb float64) float64 {
	return g.Cp*math.Log(tb/ta) - g.R*math.Log(pb/pa)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
