package misc

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDimensions parses an image size given as "WIDTHxHEIGHT".
func ParseDimensions(dimensions string) (uint, uint, error) {
	parts := strings.Split(dimensions, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("dimensions must be given as WIDTHxHEIGHT: %q", dimensions)
	}
	width, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse width %q - %s", parts[0], err)
	}
	height, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse height %q - %s", parts[1], err)
	}
	return uint(width), uint(height), nil
}

// ParsePoint parses a point on the complex plane given as "RE,IM".
func ParsePoint(point string) (float64, float64, error) {
	parts := strings.Split(point, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("point must be given as RE,IM: %q", point)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse real part %q - %s", parts[0], err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("unable to parse imaginary part %q - %s", parts[1], err)
	}
	return x, y, nil
}
