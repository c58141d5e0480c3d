// Package diagram turns a solved Brayton cycle into the two classic process
// diagrams: pressure against specific volume and temperature against specific
// entropy.
//
// Each diagram is a closed polyline split into legs, one per process, in cycle
// order:
//
//	Compression     1→2      gold
//	Regeneration    2→2'     orange       (only when 2' exists)
//	Heat addition   2→3/2'→3 red
//	Expansion       3→4      limegreen
//	Heat rejection  4→1      deepskyblue
//
// Charts can be consumed as data or rendered with Chart.WriteSVG.
package diagram
