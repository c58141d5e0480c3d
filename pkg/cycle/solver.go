package cycle

// compression is the 1→2 stage.
type compression struct {
	P2, T2, Work float64
}

// expansion is the 3→4 stage.
type expansion struct {
	P3, T3, P4, T4, Work float64
}

// Solve computes every cycle point and the derived quantities. It either
// returns a complete Result or an *InvalidInputError; it never returns a
// partial result.
func Solve(in Inputs, gas Gas) (Result, error) {
	if err := gas.Validate(); err != nil {
		return Result{}, err
	}
	if err := in.validate(); err != nil {
		return Result{}, err
	}

	c := compress(in, gas)
	if in.Tmax <= c.T2 {
		return Result{}, invalid("tmax", "must exceed the compressor exit temperature (%.2f K <= %.2f K)", in.Tmax, c.T2)
	}

	e := expand(in, c, gas)
	if e.Work <= 0 {
		return Result{}, invalid("tmax", "turbine work must be positive, got %g kJ/kg", e.Work)
	}

	res, err := aggregate(in, c, e)
	if err != nil {
		return Result{}, err
	}

	points := []Point{
		{Label: Point1, Pressure: in.P1, Temperature: in.T1},
		{Label: Point2, Pressure: c.P2, Temperature: c.T2},
	}
	combustorInlet := c.T2
	if in.regenerated() {
		t2r := regenerate(c.T2, e.T4, *in.Regen)
		points = append(points, Point{Label: Point2Prime, Pressure: c.P2, Temperature: t2r})
		combustorInlet = t2r
	}
	points = append(points,
		Point{Label: Point3, Pressure: e.P3, Temperature: e.T3},
		Point{Label: Point4, Pressure: e.P4, Temperature: e.T4},
	)

	volumes(points, gas)
	entropies(points, gas)

	res.Points = points
	res.HeatIn = gas.Cp * (e.T3 - combustorInlet)
	if err := checkFinite(res); err != nil {
		return Result{}, err
	}
	return res, nil
}

// checkFinite rejects results that overflowed even though every input was
// finite, such as a subnormal inlet pressure driving v to +Inf.
func checkFinite(res Result) error {
	for _, p := range res.Points {
		switch {
		case !finite(p.SpecificVolume):
			return invalid("", "specific volume at point %s is not finite", p.Label)
		case !finite(p.SpecificEntropy):
			return invalid("", "specific entropy at point %s is not finite", p.Label)
		}
	}
	for _, q := range []struct {
		name  string
		value float64
	}{
		{"compressor work", res.CompressorWork},
		{"turbine work", res.TurbineWork},
		{"net work", res.NetWork},
		{"heat input", res.HeatIn},
		{"mass flow", res.MassFlow},
		{"efficiency", res.Efficiency},
	} {
		if !finite(q.value) {
			return invalid("", "%s is not finite", q.name)
		}
	}
	return nil
}

// compress applies isentropic compression from point 1 by the pressure ratio.
func compress(in Inputs, gas Gas) compression {
	p2 := in.P1 * in.RP
	t2 := gas.isentropicT(in.T1, in.P1, p2)
	return compression{P2: p2, T2: t2, Work: gas.Cp * (t2 - in.T1)}
}

// expand applies isobaric heat addition to Tmax followed by isentropic
// expansion back to the inlet pressure.
func expand(in Inputs, c compression, gas Gas) expansion {
	p3, t3 := c.P2, in.Tmax
	p4 := in.P1
	t4 := gas.isentropicT(t3, p3, p4)
	return expansion{P3: p3, T3: t3, P4: p4, T4: t4, Work: gas.Cp * (t3 - t4)}
}

// aggregate derives net work, mass flow and efficiency. Power is in W and the
// works in kJ/kg, so the net work is scaled to J/kg for the mass flow.
func aggregate(in Inputs, c compression, e expansion) (Result, error) {
	net := e.Work - c.Work
	if net <= 0 {
		return Result{}, invalid("tmax", "net work must be positive, got %g kJ/kg", net)
	}
	return Result{
		CompressorWork: c.Work,
		TurbineWork:    e.Work,
		NetWork:        net,
		MassFlow:       in.Power / (net * 1e3),
		Efficiency:     net / e.Work,
	}, nil
}

// regenerate returns the regenerator exit temperature T2'.
func regenerate(t2, t4, effectiveness float64) float64 {
	return t2 + (t4-t2)*effectiveness
}

func volumes(points []Point, gas Gas) {
	for i := range points {
		points[i].SpecificVolume = gas.specificVolume(points[i].Pressure, points[i].Temperature)
	}
}

// entropies accumulates entropy along the cycle starting from s1 = 0.
//
// With a regenerator, s2' is not derived from a heat balance: it is placed on
// the 2→3 segment at the fraction (T4-T1)/(T3-T1), and s3 accumulates from 2'.
// The placement only positions 2' on the T-s diagram.
func entropies(points []Point, gas Gas) {
	step := func(a, b Point) float64 {
		return gas.deltaS(a.Temperature, a.Pressure, b.Temperature, b.Pressure)
	}

	p1, p2 := &points[0], &points[1]
	p1.SpecificEntropy = 0
	p2.SpecificEntropy = p1.SpecificEntropy + step(*p1, *p2)

	prev := p2
	if len(points) == 5 {
		p2r, p3, p4 := &points[2], &points[3], &points[4]
		s3direct := p2.SpecificEntropy + step(*p2, *p3)
		frac := (p4.Temperature - p1.Temperature) / (p3.Temperature - p1.Temperature)
		p2r.SpecificEntropy = p2.SpecificEntropy + frac*(s3direct-p2.SpecificEntropy)
		prev = p2r
	}

	p3, p4 := &points[len(points)-2], &points[len(points)-1]
	p3.SpecificEntropy = prev.SpecificEntropy + step(*prev, *p3)
	p4.SpecificEntropy = p3.SpecificEntropy + step(*p3, *p4)
}
