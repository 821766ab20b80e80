package mandelbrot

import (
	"fmt"
	"image/color"
	"math"
)

const (
	Grayscale Mode = iota
	Spectrum
	Palette
)

type Mode int

func (m Mode) String() string {
	return []string{
		"Grayscale", "Spectrum", "Palette",
	}[m]
}

// inSetColor marks points that never escaped. All color modes share it, but
// it is applied off the Escaped flag; an escaped point is allowed to come
// out black on its own (Spectrum does at iteration zero).
var inSetColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// A Colorizer maps one escape result to a pixel color. Implementations are
// deterministic and stateless, so a single value is shared by all workers.
type Colorizer interface {
	Colorize(escape Escape) color.RGBA
}

func NewColorizer(settings Settings) (Colorizer, error) {
	switch settings.ColorMode {
	case Grayscale:
		return grayscaleColorizer{maxIterations: settings.MaxIterations}, nil
	case Spectrum:
		return spectrumColorizer{maxIterations: settings.MaxIterations}, nil
	case Palette:
		if len(settings.Palette) == 0 {
			return nil, fmt.Errorf("palette color mode requires a palette")
		}
		return paletteColorizer{palette: settings.Palette}, nil
	default:
		return nil, fmt.Errorf("unknown color mode: %d", settings.ColorMode)
	}
}

// escapeRatio is the fraction of the iteration budget the point survived,
// in [0, 1) for escaped points.
func escapeRatio(escape Escape, maxIterations uint) float64 {
	return float64(escape.Iterations) / float64(maxIterations)
}

type grayscaleColorizer struct {
	maxIterations uint
}

func (g grayscaleColorizer) Colorize(escape Escape) color.RGBA {
	if !escape.Escaped {
		return inSetColor
	}
	level := uint8(math.Round(escapeRatio(escape, g.maxIterations) * 255))
	return color.RGBA{R: level, G: level, B: level, A: 255}
}

type spectrumColorizer struct {
	maxIterations uint
}

// Colorize spreads the escape ratio over the full 24-bit RGB space: the
// ratio scaled to 0xFFFFFF is split into its three component bytes.
func (s spectrumColorizer) Colorize(escape Escape) color.RGBA {
	if !escape.Escaped {
		return inSetColor
	}
	value := uint32(math.Round(escapeRatio(escape, s.maxIterations) * 0xFFFFFF))
	return color.RGBA{
		R: uint8((value & 0xFF0000) >> 16),
		G: uint8((value & 0x00FF00) >> 8),
		B: uint8(value & 0x0000FF),
		A: 255,
	}
}

type paletteColorizer struct {
	palette []color.RGBA
}

func (p paletteColorizer) Colorize(escape Escape) color.RGBA {
	if !escape.Escaped {
		return inSetColor
	}
	return p.palette[int(escape.Iterations)%len(p.palette)]
}
