package task

import "fmt"

// Coordinate identifies a single pixel of the output image to be evaluated.
// Pixels are independent of each other, so coordinates may be handed to
// workers in any order.
type Coordinate struct {
	Column uint
	Row    uint
}

func (c *Coordinate) String() string {
	output := "{Coordinate "
	output += fmt.Sprintf("Column: %d ", c.Column)
	output += fmt.Sprintf("Row: %d}", c.Row)
	return output
}
