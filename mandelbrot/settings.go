package mandelbrot

import (
	"fmt"
	"image/color"

	"github.com/BrugadaSyndrome/bslogger"
)

type Settings struct {
	logger bslogger.Logger

	CenterX                 float64
	CenterY                 float64
	ColorMode               Mode
	GeneratePaletteSettings []GeneratePaletteSettings
	Height                  uint
	MaxIterations           uint
	Palette                 []color.RGBA
	Radius                  float64
	Width                   uint
}

// Verify fills in defaults for unset values and rejects values that cannot
// be rendered. The renderer assumes verified settings and performs no
// further validation of its own.
func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("MandelbrotSettings", bslogger.Normal, nil)

	if s.Width == 0 {
		s.Width = 1000
	}
	if s.Height == 0 {
		s.Height = 1000
	}
	if s.Radius < 0 {
		return fmt.Errorf("radius must be positive: %g", s.Radius)
	}
	if s.Radius == 0 {
		s.Radius = 0.5
	}
	if s.CenterX > 4.0 || s.CenterX < -4.0 {
		s.logger.Infof("CenterX %g is outside the set. Resetting to 0.", s.CenterX)
		s.CenterX = 0.0
	}
	if s.CenterY > 4.0 || s.CenterY < -4.0 {
		s.logger.Infof("CenterY %g is outside the set. Resetting to 0.", s.CenterY)
		s.CenterY = 0.0
	}
	if s.MaxIterations == 0 {
		s.MaxIterations = 250
	}
	if s.ColorMode < Grayscale || s.ColorMode > Palette {
		return fmt.Errorf("unknown color mode: %d", s.ColorMode)
	}

	if s.ColorMode == Palette {
		if len(s.GeneratePaletteSettings) > 0 {
			s.Palette = make([]color.RGBA, 0)
			for i := 0; i < len(s.GeneratePaletteSettings); i++ {
				s.Palette = append(s.Palette, s.GeneratePaletteSettings[i].GeneratePalette()...)
			}
		}
		if len(s.Palette) == 0 {
			s.logger.Info("No palette specified. Defaulting to white.")
			s.Palette = []color.RGBA{{R: 255, G: 255, B: 255, A: 255}}
		}
	}

	return nil
}

func (s *Settings) String() string {
	output := "\nMandelbrot settings\n"
	output += fmt.Sprintf("Size: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Center: (%g, %g)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Radius: %g\n", s.Radius)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Color Mode: %s\n", s.ColorMode)
	return output
}
