package diagram

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"
)

// Canvas geometry in SVG user units.
const (
	svgWidth    = 640
	svgHeight   = 420
	marginLeft  = 80
	marginRight = 200
	marginTop   = 40
	marginBot   = 60
	tickCount   = 5
)

// WriteSVG renders the chart as a standalone SVG document.
func (c Chart) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	xmin, xmax, ymin, ymax := c.bounds()

	plotW := float64(svgWidth - marginLeft - marginRight)
	plotH := float64(svgHeight - marginTop - marginBot)
	sx := func(x float64) float64 { return marginLeft + (x-xmin)/(xmax-xmin)*plotW }
	sy := func(y float64) float64 { return marginTop + (ymax-y)/(ymax-ymin)*plotH }

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" font-family="sans-serif" font-size="11">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintf(bw, `<rect width="%d" height="%d" fill="white"/>`+"\n", svgWidth, svgHeight)
	fmt.Fprintf(bw, `<text x="%d" y="%d" font-size="14" font-weight="bold">%s</text>`+"\n",
		marginLeft, marginTop-15, html.EscapeString(c.Title))

	// grid and ticks
	for i := 0; i <= tickCount; i++ {
		f := float64(i) / tickCount
		xv := xmin + f*(xmax-xmin)
		yv := ymin + f*(ymax-ymin)
		px, py := sx(xv), sy(yv)
		fmt.Fprintf(bw, `<line x1="%.2f" y1="%d" x2="%.2f" y2="%d" stroke="#ddd"/>`+"\n", px, marginTop, px, svgHeight-marginBot)
		fmt.Fprintf(bw, `<line x1="%d" y1="%.2f" x2="%d" y2="%.2f" stroke="#ddd"/>`+"\n", marginLeft, py, svgWidth-marginRight, py)
		fmt.Fprintf(bw, `<text x="%.2f" y="%d" text-anchor="middle">%s</text>`+"\n", px, svgHeight-marginBot+15, tick(xv))
		fmt.Fprintf(bw, `<text x="%d" y="%.2f" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n", marginLeft-6, py, tick(yv))
	}
	fmt.Fprintf(bw, `<rect x="%d" y="%d" width="%.0f" height="%.0f" fill="none" stroke="black"/>`+"\n",
		marginLeft, marginTop, plotW, plotH)
	fmt.Fprintf(bw, `<text x="%.2f" y="%d" text-anchor="middle">%s</text>`+"\n",
		marginLeft+plotW/2, svgHeight-15, html.EscapeString(c.XLabel))
	fmt.Fprintf(bw, `<text transform="translate(18 %.2f) rotate(-90)" text-anchor="middle">%s</text>`+"\n",
		marginTop+plotH/2, html.EscapeString(c.YLabel))

	for i, l := range c.Legs {
		x1, y1, x2, y2 := sx(l.X[0]), sy(l.Y[0]), sx(l.X[1]), sy(l.Y[1])
		fmt.Fprintf(bw, `<polyline points="%.2f,%.2f %.2f,%.2f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
			x1, y1, x2, y2, l.Color)
		fmt.Fprintf(bw, `<circle cx="%.2f" cy="%.2f" r="3" fill="%s"/>`+"\n", x1, y1, l.Color)
		fmt.Fprintf(bw, `<circle cx="%.2f" cy="%.2f" r="3" fill="%s"/>`+"\n", x2, y2, l.Color)

		ly := marginTop + 10 + i*18
		lx := svgWidth - marginRight + 15
		fmt.Fprintf(bw, `<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="2"/>`+"\n", lx, ly, lx+20, ly, l.Color)
		fmt.Fprintf(bw, `<text x="%d" y="%d" dominant-baseline="middle">%s</text>`+"\n", lx+26, ly, html.EscapeString(l.Name))
	}

	fmt.Fprintln(bw, `</svg>`)
	return bw.Flush()
}

// bounds returns the data range padded by 5% on each side.
func (c Chart) bounds() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, l := range c.Legs {
		for i := 0; i < 2; i++ {
			xmin, xmax = math.Min(xmin, l.X[i]), math.Max(xmax, l.X[i])
			ymin, ymax = math.Min(ymin, l.Y[i]), math.Max(ymax, l.Y[i])
		}
	}
	if len(c.Legs) == 0 {
		return 0, 1, 0, 1
	}
	xmin, xmax = pad(xmin, xmax)
	ymin, ymax = pad(ymin, ymax)
	return xmin, xmax, ymin, ymax
}

func pad(lo, hi float64) (float64, float64) {
	span := hi - lo
	if span <= 0 {
		span = math.Max(math.Abs(lo), 1)
	}
	return lo - span*0.05, hi + span*0.05
}

func tick(v float64) string {
	switch a := math.Abs(v); {
	case a == 0:
		return "0"
	case a >= 1000:
		return fmt.Sprintf("%.0f", v)
	case a >= 1:
		return fmt.Sprintf("%.2f", v)
	default:
		return fmt.Sprintf("%.3f", v)
	}
}
