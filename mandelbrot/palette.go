package mandelbrot

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/troeggla/mandelbrot/misc"
)

// GeneratePaletteSettings describes one color ramp: NumberColors steps
// interpolated from StartColor towards EndColor.
type GeneratePaletteSettings struct {
	StartColor   color.RGBA
	EndColor     color.RGBA
	NumberColors int
}

func (gps *GeneratePaletteSettings) GeneratePalette() []color.RGBA {
	palette := make([]color.RGBA, 0, gps.NumberColors)
	for j := 0; j < gps.NumberColors; j++ {
		fraction := float64(j) / float64(gps.NumberColors)
		palette = append(palette, misc.LinearInterpolationRGB(gps.StartColor, gps.EndColor, fraction))
	}
	return palette
}

// LoadPaletteFile reads palette ramps from a TOML file with one or more
// [[GeneratePaletteSettings]] tables.
func LoadPaletteFile(fileName string) ([]GeneratePaletteSettings, error) {
	var parsed struct {
		GeneratePaletteSettings []GeneratePaletteSettings
	}

	fileBytes, err := misc.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	if err := toml.Unmarshal(fileBytes, &parsed); err != nil {
		return nil, fmt.Errorf("unable to parse palette file %s - %s", fileName, err)
	}
	if len(parsed.GeneratePaletteSettings) == 0 {
		return nil, fmt.Errorf("no palette ramps found in %s", fileName)
	}

	return parsed.GeneratePaletteSettings, nil
}
