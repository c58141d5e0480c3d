package cycle

// Point labels in cycle order.
const (
	Point1      = "1"
	Point2      = "2"
	Point2Prime = "2'"
	Point3      = "3"
	Point4      = "4"
)

// Point is the state of the working fluid at one labelled cycle point.
type Point struct {
	Label           string  `json:"label" toml:"label"`
	Pressure        float64 `json:"pressure" toml:"pressure"`                 // Pa
	Temperature     float64 `json:"temperature" toml:"temperature"`           // K
	SpecificVolume  float64 `json:"specific_volume" toml:"specific_volume"`   // m³/kg
	SpecificEntropy float64 `json:"specific_entropy" toml:"specific_entropy"` // kJ/kg·K, relative to point 1
}

// Result is the outcome of one solve. Points are in cycle order and the loop
// closes from the last point back to the first.
type Result struct {
	Points []Point `json:"points" toml:"points"`

	CompressorWork float64 `json:"compressor_work" toml:"compressor_work"` // kJ/kg
	TurbineWork    float64 `json:"turbine_work" toml:"turbine_work"`       // kJ/kg
	NetWork        float64 `json:"net_work" toml:"net_work"`               // kJ/kg
	HeatIn         float64 `json:"heat_in" toml:"heat_in"`                 // kJ/kg, cp·(T3 − T2'), or T2 without a regenerator
	MassFlow       float64 `json:"mass_flow" toml:"mass_flow"`             // kg/s
	Efficiency     float64 `json:"efficiency" toml:"efficiency"`           // Wnet/Wt
}

// Point returns the point with the given label.
func (r Result) Point(label string) (Point, bool) {
	for _, p := range r.Points {
		if p.Label == label {
			return p, true
		}
	}
	return Point{}, false
}

// HasRegenerator reports whether the cycle includes point 2'.
func (r Result) HasRegenerator() bool {
	_, ok := r.Point(Point2Prime)
	return ok
}
