// Package image is a go library that creates SVG images of diagonal reaches.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/0x5844/bishop"
)

// SVG writes the reach as an SVG board to w. The origin square is marked with
// a disc and every other reachable square is filled with the highlight color.
func SVG(w io.Writer, r bishop.Reach, options ...func(*encoder)) error {
	e := new(w, options)
	return e.encode(r)
}

// SquareSize sets the side length of one square in pixels. Sizes below 8 are ignored.
func SquareSize(px int) func(*encoder) {
	return func(e *encoder) {
		if px >= 8 {
			e.sqSize = px
		}
	}
}

// SquareColors sets the colors of the light and dark squares.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// Highlight sets the fill color of reachable squares.
func Highlight(c color.Color) func(*encoder) {
	return func(e *encoder) {
		e.highlight = c
	}
}

// Coordinates toggles the file letters and rank numbers drawn inside the edge squares.
func Coordinates(on bool) func(*encoder) {
	return func(e *encoder) {
		e.coords = on
	}
}

// Indices toggles the square index drawn in the centre of each reachable square.
func Indices(on bool) func(*encoder) {
	return func(e *encoder) {
		e.indices = on
	}
}

type encoder struct {
	w         io.Writer
	sqSize    int
	light     color.Color
	dark      color.Color
	highlight color.Color
	coords    bool
	indices   bool
}

func new(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:         w,
		sqSize:    45,
		light:     color.RGBA{235, 209, 166, 255},
		dark:      color.RGBA{165, 117, 81, 255},
		highlight: color.RGBA{106, 168, 79, 255},
		coords:    true,
	}
	for _, op := range options {
		op(e)
	}
	return e
}

func (e *encoder) encode(r bishop.Reach) error {
	if !r.Origin.Valid() {
		return fmt.Errorf("image: %w: %d", bishop.ErrInvalidSquare, r.Origin)
	}
	boardSize := e.sqSize * bishop.NumOfFiles
	canvas := svg.New(e.w)
	canvas.Start(boardSize, boardSize)
	canvas.Rect(0, 0, boardSize, boardSize)

	for i := 0; i < bishop.NumOfSquaresInBoard; i++ {
		sq := bishop.Square(i)
		x, y := e.xy(sq)
		fill := e.colorForSquare(sq)
		if r.Contains(sq) {
			fill = e.highlight
		}
		canvas.Rect(x, y, e.sqSize, e.sqSize, "fill: "+colorToHex(fill))

		if sq == r.Origin {
			canvas.Circle(x+e.sqSize/2, y+e.sqSize/2, e.sqSize/3, "fill: #202020")
		} else if e.indices && r.Contains(sq) {
			canvas.Text(x+e.sqSize/2, y+e.sqSize/2+5, fmt.Sprint(i),
				"font-size:14px;text-anchor:middle;fill:#ffffff")
		}

		if !e.coords {
			continue
		}
		txtColor := e.colorForText(sq)
		if sq.Rank() == bishop.Rank1 {
			canvas.Text(x+e.sqSize-3, y+e.sqSize-3, sq.File().String(),
				"font-size:11px;text-anchor:end;fill: "+colorToHex(txtColor))
		}
		if sq.File() == bishop.FileA {
			canvas.Text(x+2, y+12, sq.Rank().String(),
				"font-size:11px;fill: "+colorToHex(txtColor))
		}
	}
	canvas.End()
	return nil
}

// xy returns the top-left pixel of sq with rank 8 drawn at the top.
func (e *encoder) xy(sq bishop.Square) (int, int) {
	x := int(sq.File()) * e.sqSize
	y := (bishop.NumOfRanks - 1 - int(sq.Rank())) * e.sqSize
	return x, y
}

func (e *encoder) colorForSquare(sq bishop.Square) color.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.dark
	}
	return e.light
}

func (e *encoder) colorForText(sq bishop.Square) color.Color {
	if (int(sq.File())+int(sq.Rank()))%2 == 0 {
		return e.light
	}
	return e.dark
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
