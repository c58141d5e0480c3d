// Package cycle solves the ideal-gas Brayton cycle.
//
// The solver is a pure function: it maps a set of scalar inputs and the gas
// properties to every cycle-point state, the specific works, the mass flow rate
// and the efficiency. Nothing is cached and a Result is never mutated after
// Solve returns, so the package is safe for concurrent use.
//
// # Cycle points
//
//	1   compressor inlet        (P1, T1)
//	2   compressor exit         isentropic compression, P2 = P1·RP
//	2'  regenerator exit        only with a regenerator of effectiveness ≠ 1
//	3   turbine inlet           isobaric heat addition to Tmax
//	4   turbine exit            isentropic expansion back to P1
//
// # Units
//
// Pressures are in Pa, temperatures in K, power in W, specific works in kJ/kg,
// specific volumes in m³/kg and specific entropies in kJ/kg·K.
//
// # Entropy reference
//
// Specific entropy is only defined up to an additive constant. Point 1 is the
// reference state and its entropy is exactly 0; every other value is relative
// to it. This is a convention, not a physical zero.
//
// # Usage
//
//	res, err := cycle.Solve(cycle.Inputs{
//	    P1: 100e3, T1: 288, RP: 8, Power: 50e6, Tmax: 1400,
//	    Regen: cycle.Effectiveness(0.5),
//	}, cycle.Air)
//	if errors.Is(err, cycle.ErrInvalidInput) {
//	    // show err.Error() to the user
//	}
package cycle
