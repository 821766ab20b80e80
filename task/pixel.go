package task

import (
	"fmt"
	"image/color"
)

// Pixel is the result of evaluating one Coordinate: the color that belongs
// at (Column, Row) in the output image. Every coordinate of the output grid
// produces exactly one Pixel per render.
type Pixel struct {
	Color  color.RGBA
	Column uint
	Row    uint
}

func (p *Pixel) String() string {
	output := "{Pixel "
	output += fmt.Sprintf("Color: %v ", p.Color)
	output += fmt.Sprintf("Column: %d ", p.Column)
	output += fmt.Sprintf("Row: %d}", p.Row)
	return output
}
