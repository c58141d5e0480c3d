package cycle

import (
	"strconv"
	"strings"
)

// Inputs are the scalar inputs of one solve, in SI units.
type Inputs struct {
	P1    float64 `json:"p1"`    // inlet pressure, Pa
	T1    float64 `json:"t1"`    // inlet temperature, K
	RP    float64 `json:"rp"`    // pressure ratio P2/P1
	Power float64 `json:"power"` // net power, W
	Tmax  float64 `json:"tmax"`  // turbine inlet temperature, K

	// Regen is the regenerator effectiveness in [0, 1]. Nil means the cycle
	// has no regenerator.
	Regen *float64 `json:"regen,omitempty"`
}

// Effectiveness returns a regenerator effectiveness for Inputs.Regen.
func Effectiveness(v float64) *float64 {
	return &v
}

// regenerated reports whether point 2' exists. An effectiveness of exactly 1
// is treated as no regenerator at all.
func (in Inputs) regenerated() bool {
	return in.Regen != nil && *in.Regen != 1
}

func (in Inputs) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"p1", in.P1},
		{"t1", in.T1},
		{"rp", in.RP},
		{"power", in.Power},
		{"tmax", in.Tmax},
	} {
		if !finite(f.v) {
			return invalid(f.name, "must be a finite number, got %g", f.v)
		}
	}
	if in.P1 <= 0 {
		return invalid("p1", "pressure must be positive, got %g Pa", in.P1)
	}
	if in.T1 <= 0 {
		return invalid("t1", "temperature must be positive, got %g K", in.T1)
	}
	if in.RP <= 1 {
		return invalid("rp", "pressure ratio must be greater than 1, got %g", in.RP)
	}
	if in.Power <= 0 {
		return invalid("power", "net power must be positive, got %g W", in.Power)
	}
	if in.Tmax <= 0 {
		return invalid("tmax", "temperature must be positive, got %g K", in.Tmax)
	}
	if in.Regen != nil {
		e := *in.Regen
		if !finite(e) || e < 0 || e > 1 {
			return invalid("regen", "effectiveness must be within [0, 1], got %g", e)
		}
	}
	return nil
}

// Form carries the raw text of an input form, in form units: kPa for P1,
// K for temperatures, MW for power. Regen may be blank or "none".
type Form struct {
	P1    string `json:"p1_kpa"`
	T1    string `json:"t1_k"`
	RP    string `json:"pressure_ratio"`
	Power string `json:"power_mw"`
	Tmax  string `json:"tmax_k"`
	Regen string `json:"regen"`
}

// ParseForm converts a form into Inputs. Missing or non-numeric fields are
// reported as *InvalidInputError. Domain checks are left to Solve.
func ParseForm(f Form) (Inputs, error) {
	var in Inputs
	var err error

	if in.P1, err = parseField("p1", f.P1); err != nil {
		return Inputs{}, err
	}
	if in.T1, err = parseField("t1", f.T1); err != nil {
		return Inputs{}, err
	}
	if in.RP, err = parseField("rp", f.RP); err != nil {
		return Inputs{}, err
	}
	if in.Power, err = parseField("power", f.Power); err != nil {
		return Inputs{}, err
	}
	if in.Tmax, err = parseField("tmax", f.Tmax); err != nil {
		return Inputs{}, err
	}
	in.P1 *= 1e3
	in.Power *= 1e6

	regen := strings.TrimSpace(f.Regen)
	if regen != "" && !strings.EqualFold(regen, "none") {
		e, err := parseField("regen", regen)
		if err != nil {
			return Inputs{}, err
		}
		in.Regen = &e
	}
	return in, nil
}

func parseField(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, invalid(name, "value is required")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, invalid(name, "%q is not a number", raw)
	}
	return v, nil
}
