package mandelbrot

import (
	"github.com/troeggla/mandelbrot/task"
)

// bailout is the squared orbit magnitude beyond which a point is guaranteed
// to diverge. Testing against the square avoids a square root per iteration.
const bailout = 4.0

type Mandelbrot struct {
	settings Settings
}

// NewMandelbrot wraps a verified Settings value. The returned value is
// read-only after construction and safe to share across workers.
func NewMandelbrot(settings Settings) Mandelbrot {
	return Mandelbrot{settings: settings}
}

// Escape is the outcome of iterating a single point: whether its orbit left
// the bailout radius, and how many iterations it survived before doing so.
// Iterations is always MaxIterations when Escaped is false. Membership in
// the set is carried by the Escaped flag alone, never inferred from a color.
type Escape struct {
	Escaped    bool
	Iterations uint
}

// PointForPixel converts the (column, row) point on the image to the (x, y)
// point on the complex plane.
//
// The viewport spans Radius units of the plane across each image dimension,
// centered on (CenterX, CenterY). The vertical axis is flipped: row indices
// grow downward in image space while the imaginary part shrinks.
func (m *Mandelbrot) PointForPixel(coordinate task.Coordinate) (float64, float64) {
	radius := m.settings.Radius
	x := (float64(coordinate.Column)/float64(m.settings.Width))*radius - radius/2 + m.settings.CenterX
	y := -((float64(coordinate.Row)/float64(m.settings.Height))*radius - radius/2) + m.settings.CenterY
	return x, y
}

// EscapeTime iterates z = z^2 + c with z starting at c itself, giving up
// after MaxIterations. The orbit is tested before each step and the loop
// exits at the first escape.
func (m *Mandelbrot) EscapeTime(x float64, y float64) Escape {
	zx, zy := x, y

	var i uint
	for i = 0; i < m.settings.MaxIterations; i++ {
		if zx*zx+zy*zy > bailout {
			return Escape{Escaped: true, Iterations: i}
		}
		zx, zy = zx*zx-zy*zy+x, 2*zx*zy+y
	}

	return Escape{Escaped: false, Iterations: m.settings.MaxIterations}
}
