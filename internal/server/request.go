package server

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bft-labs/brayton/pkg/cycle"
)

// CycleRequest is the body of the solve and diagram endpoints, in form units.
type CycleRequest struct {
	P1    formValue   `json:"p1_kpa"`
	T1    formValue   `json:"t1_k"`
	RP    formValue   `json:"pressure_ratio"`
	Power formValue   `json:"power_mw"`
	Tmax  formValue   `json:"tmax_k"`
	Regen formValue   `json:"regen"`
	Gas   *GasRequest `json:"gas,omitempty"`
}

// GasRequest overrides the specific heats, in kJ/kg·K.
type GasRequest struct {
	Cp float64 `json:"cp"`
	Cv float64 `json:"cv"`
}

// ErrorResponse is returned with every 4xx and 5xx status.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// formValue accepts a JSON number, a JSON string or null and keeps it as the
// text a form field would hold.
type formValue string

func (v *formValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = formValue(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("expected number or string, got %s", b)
		}
		*v = formValue(n.String())
	}
	return nil
}

// MarshalJSON writes v as a JSON number when it is one and as a string
// otherwise, so NaN, Inf and hex floats stay quoted.
func (v formValue) MarshalJSON() ([]byte, error) {
	var f float64
	if err := json.Unmarshal([]byte(v), &f); err == nil {
		return []byte(v), nil
	}
	return json.Marshal(string(v))
}

func (r CycleRequest) form() cycle.Form {
	return cycle.Form{
		P1:    string(r.P1),
		T1:    string(r.T1),
		RP:    string(r.RP),
		Power: string(r.Power),
		Tmax:  string(r.Tmax),
		Regen: string(r.Regen),
	}
}

// solve parses and solves the request against the fallback gas.
func (r CycleRequest) solve(fallback cycle.Gas) (cycle.Result, error) {
	gas := fallback
	if r.Gas != nil {
		g, err := cycle.NewGas(r.Gas.Cp, r.Gas.Cv)
		if err != nil {
			return cycle.Result{}, err
		}
		gas = g
	}
	in, err := cycle.ParseForm(r.form())
	if err != nil {
		return cycle.Result{}, err
	}
	return cycle.Solve(in, gas)
}
