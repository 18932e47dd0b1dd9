package main

import "flag"

// Command-line flags. The origin may also be given as the first positional argument.
var (
	// squareFlag is the origin square, as an index ("27") or in algebraic notation ("d4").
	squareFlag = flag.String("square", "27", "origin square as index 0-63 or algebraic (d4)")

	// formatFlag selects the encoding of the printed result.
	formatFlag = flag.String("format", formatText, "output format: text, json or bencode")

	// literalFlag prints the accumulator as it stands before any walk runs,
	// which is always an empty sequence.
	literalFlag = flag.Bool("literal", false, "print the unfilled accumulator (an empty sequence) instead of the result")

	// drawFlag appends an ASCII board to text output.
	drawFlag = flag.Bool("draw", false, "draw the reach as an ASCII board (text format only)")

	// svgFlag writes an SVG board of the reach to the named file.
	svgFlag = flag.String("svg", "", "write an SVG board of the reach to this file")

	// geometricFlag reports where the walk differs from empty-board bishop geometry.
	geometricFlag = flag.Bool("geometric", false, "also report divergence from empty-board bishop moves")

	allFlag = flag.Bool("all", false, "report every origin square 0-63")
)
