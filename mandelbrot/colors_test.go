package mandelbrot

import (
	"image/color"
	"testing"
)

func testColorizer(t *testing.T, settings Settings) Colorizer {
	t.Helper()
	colorizer, err := NewColorizer(settings)
	if err != nil {
		t.Fatalf("NewColorizer error: %v", err)
	}
	return colorizer
}

func TestColorizeInSetIsBlackInEveryMode(t *testing.T) {
	inSet := Escape{Escaped: false, Iterations: 100}
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	colorizers := []Colorizer{
		testColorizer(t, Settings{ColorMode: Grayscale, MaxIterations: 100}),
		testColorizer(t, Settings{ColorMode: Spectrum, MaxIterations: 100}),
		testColorizer(t, Settings{ColorMode: Palette, MaxIterations: 100, Palette: []color.RGBA{{R: 255, A: 255}}}),
	}
	for i, colorizer := range colorizers {
		if got := colorizer.Colorize(inSet); got != black {
			t.Errorf("colorizer %d: in-set point colored %v, want black", i, got)
		}
	}
}

func TestGrayscaleLevels(t *testing.T) {
	colorizer := testColorizer(t, Settings{ColorMode: Grayscale, MaxIterations: 10})

	tests := []struct {
		iterations uint
		level      uint8
	}{
		{0, 0},
		{1, 26},  // round(0.1 * 255)
		{5, 128}, // round(127.5)
		{9, 230}, // round(229.5)
	}
	for _, test := range tests {
		got := colorizer.Colorize(Escape{Escaped: true, Iterations: test.iterations})
		want := color.RGBA{R: test.level, G: test.level, B: test.level, A: 255}
		if got != want {
			t.Errorf("iterations %d: got %v, want %v", test.iterations, got, want)
		}
	}
}

func TestSpectrumSplitsRatioIntoComponentBytes(t *testing.T) {
	colorizer := testColorizer(t, Settings{ColorMode: Spectrum, MaxIterations: 16})

	tests := []struct {
		iterations uint
		want       color.RGBA
	}{
		// round(ratio * 0xFFFFFF) for ratio = iterations/16.
		{1, color.RGBA{R: 0x10, G: 0x00, B: 0x00, A: 255}}, // 0x100000
		{4, color.RGBA{R: 0x40, G: 0x00, B: 0x00, A: 255}}, // 0x400000
		{8, color.RGBA{R: 0x80, G: 0x00, B: 0x00, A: 255}}, // 0x800000
	}
	for _, test := range tests {
		got := colorizer.Colorize(Escape{Escaped: true, Iterations: test.iterations})
		if got != test.want {
			t.Errorf("iterations %d: got %v, want %v", test.iterations, got, test.want)
		}
	}
}

func TestSpectrumEscapedAtZeroIsStillBlack(t *testing.T) {
	// An escape at iteration zero legitimately produces black. That no
	// longer conflicts with the in-set sentinel, which is a tagged state
	// rather than a color value.
	colorizer := testColorizer(t, Settings{ColorMode: Spectrum, MaxIterations: 16})
	got := colorizer.Colorize(Escape{Escaped: true, Iterations: 0})
	if got != (color.RGBA{R: 0, G: 0, B: 0, A: 255}) {
		t.Errorf("got %v, want black", got)
	}
}

func TestPaletteCyclesThroughEntries(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	colorizer := testColorizer(t, Settings{ColorMode: Palette, MaxIterations: 100, Palette: []color.RGBA{red, green, blue}})

	tests := []struct {
		iterations uint
		want       color.RGBA
	}{
		{0, red},
		{1, green},
		{2, blue},
		{3, red},
		{7, green},
	}
	for _, test := range tests {
		if got := colorizer.Colorize(Escape{Escaped: true, Iterations: test.iterations}); got != test.want {
			t.Errorf("iterations %d: got %v, want %v", test.iterations, got, test.want)
		}
	}
}

func TestColorizeDeterministic(t *testing.T) {
	escape := Escape{Escaped: true, Iterations: 42}
	colorizers := []Colorizer{
		testColorizer(t, Settings{ColorMode: Grayscale, MaxIterations: 100}),
		testColorizer(t, Settings{ColorMode: Spectrum, MaxIterations: 100}),
		testColorizer(t, Settings{ColorMode: Palette, MaxIterations: 100, Palette: []color.RGBA{{R: 1, A: 255}, {R: 2, A: 255}}}),
	}
	for i, colorizer := range colorizers {
		if first, second := colorizer.Colorize(escape), colorizer.Colorize(escape); first != second {
			t.Errorf("colorizer %d: identical escapes colored %v then %v", i, first, second)
		}
	}
}

func TestNewColorizerRejectsBadSettings(t *testing.T) {
	if _, err := NewColorizer(Settings{ColorMode: Mode(9), MaxIterations: 10}); err == nil {
		t.Error("unknown mode: expected an error")
	}
	if _, err := NewColorizer(Settings{ColorMode: Palette, MaxIterations: 10}); err == nil {
		t.Error("palette mode without a palette: expected an error")
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{Grayscale, "Grayscale"},
		{Spectrum, "Spectrum"},
		{Palette, "Palette"},
	}
	for _, test := range tests {
		if got := test.mode.String(); got != test.want {
			t.Errorf("Mode(%d).String() = %q, want %q", test.mode, got, test.want)
		}
	}
}
