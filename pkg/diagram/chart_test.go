package diagram

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bft-labs/brayton/pkg/cycle"
)

func solve(t *testing.T, regen *float64) cycle.Result {
	t.Helper()
	res, err := cycle.Solve(cycle.Inputs{P1: 100e3, T1: 288, RP: 8, Power: 50e6, Tmax: 1400, Regen: regen}, cycle.Air)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return res
}

func TestLegsWithoutRegenerator(t *testing.T) {
	res := solve(t, nil)

	tests := []struct {
		name  string
		chart Chart
	}{
		{"pv", PV(res)},
		{"ts", TS(res)},
	}
	wantColors := []string{"gold", "red", "limegreen", "deepskyblue"}
	wantNames := []string{"Compression (1→2)", "Heat addition (2→3)", "Expansion (3→4)", "Heat rejection (4→1)"}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.chart.Legs) != 4 {
				t.Fatalf("got %d legs, want 4", len(tt.chart.Legs))
			}
			for i, l := range tt.chart.Legs {
				if l.Color != wantColors[i] {
					t.Errorf("leg %d color = %s, want %s", i, l.Color, wantColors[i])
				}
				if l.Name != wantNames[i] {
					t.Errorf("leg %d name = %q, want %q", i, l.Name, wantNames[i])
				}
			}
			first, last := tt.chart.Legs[0], tt.chart.Legs[len(tt.chart.Legs)-1]
			if first.X[0] != last.X[1] || first.Y[0] != last.Y[1] {
				t.Errorf("polyline is not closed: start (%v,%v) end (%v,%v)", first.X[0], first.Y[0], last.X[1], last.Y[1])
			}
		})
	}
}

func TestLegsWithRegenerator(t *testing.T) {
	res := solve(t, cycle.Effectiveness(0.5))
	chart := TS(res)

	want := []struct{ from, to, color string }{
		{"1", "2", "gold"},
		{"2", "2'", "orange"},
		{"2'", "3", "red"},
		{"3", "4", "limegreen"},
		{"4", "1", "deepskyblue"},
	}
	if len(chart.Legs) != len(want) {
		t.Fatalf("got %d legs, want %d", len(chart.Legs), len(want))
	}
	for i, w := range want {
		l := chart.Legs[i]
		if l.From != w.from || l.To != w.to || l.Color != w.color {
			t.Errorf("leg %d = %s→%s %s, want %s→%s %s", i, l.From, l.To, l.Color, w.from, w.to, w.color)
		}
	}

	p2r, _ := res.Point(cycle.Point2Prime)
	if chart.Legs[1].Y[1] != p2r.Temperature {
		t.Errorf("regeneration leg ends at T=%v, want %v", chart.Legs[1].Y[1], p2r.Temperature)
	}
}

func TestPVUsesKilopascal(t *testing.T) {
	res := solve(t, nil)
	chart := PV(res)
	if got := chart.Legs[0].Y[0]; got != 100 {
		t.Fatalf("P1 plotted as %v, want 100 kPa", got)
	}
	if got := chart.Legs[0].Y[1]; got != 800 {
		t.Fatalf("P2 plotted as %v, want 800 kPa", got)
	}
}

func TestWriteSVG(t *testing.T) {
	res := solve(t, cycle.Effectiveness(0.5))

	var buf bytes.Buffer
	if err := Build(KindPV, res).WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Fatalf("output is not an svg document:\n%s", out)
	}
	if n := strings.Count(out, "<polyline"); n != 5 {
		t.Errorf("got %d polylines, want 5", n)
	}
	if !strings.Contains(out, "Regeneration (2→2&#39;)") {
		t.Errorf("legend does not contain escaped regeneration label")
	}
	if strings.Contains(out, "NaN") {
		t.Errorf("svg contains NaN coordinates")
	}
}

func TestWriteSVGEmptyChart(t *testing.T) {
	var buf bytes.Buffer
	if err := (Chart{Title: "empty"}).WriteSVG(&buf); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	if strings.Contains(buf.String(), "NaN") || strings.Contains(buf.String(), "Inf") {
		t.Fatalf("empty chart produced invalid coordinates:\n%s", buf.String())
	}
}

func TestParseKind(t *testing.T) {
	for _, s := range []string{"pv", "ts"} {
		if _, ok := ParseKind(s); !ok {
			t.Errorf("ParseKind(%q) rejected", s)
		}
	}
	if _, ok := ParseKind("hs"); ok {
		t.Error("ParseKind(\"hs\") accepted")
	}
}
