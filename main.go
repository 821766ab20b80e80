package main

import (
	"os"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/troeggla/mandelbrot/mandelbrot"
	"github.com/troeggla/mandelbrot/misc"
	"github.com/troeggla/mandelbrot/render"
)

var (
	centerFlag     string
	colorFlag      bool
	dimensionsFlag string
	fnameFlag      string
	iterationsFlag uint
	paletteFlag    string
	radiusFlag     float64
	settingsFlag   string
	threadsFlag    int
	verboseFlag    bool
)

func main() {
	command := &cobra.Command{
		Use:          "mandelbrot",
		Short:        "Renders images of portions of the Mandelbrot set",
		SilenceUsage: true,
		RunE:         run,
	}

	flags := command.Flags()
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&colorFlag, "color", false, "generate the output image in full-spectrum colour")
	flags.StringVarP(&dimensionsFlag, "size", "s", "1000x1000", "output image dimensions, separated by 'x'")
	flags.StringVarP(&centerFlag, "center", "c", "-0.75,0.3", "centre point of the set, separated by a comma")
	flags.Float64VarP(&radiusFlag, "radius", "r", 0.5, "radius of the set to be examined")
	flags.UintVarP(&iterationsFlag, "iterations", "i", 250, "number of iterations")
	flags.IntVarP(&threadsFlag, "threads", "t", 10, "number of workers to spawn")
	flags.StringVarP(&fnameFlag, "fname", "f", "fractal.png", "output file name")
	flags.StringVar(&paletteFlag, "palette", "", "TOML file with colour palette ramps (enables palette colouring)")
	flags.StringVar(&settingsFlag, "settings", "", "TOML settings file (takes precedence over the other flags)")

	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(command *cobra.Command, arguments []string) error {
	verbosity := bslogger.Normal
	if verboseFlag {
		verbosity = bslogger.All
	}
	logger := bslogger.NewLogger("Mandelbrot", verbosity, nil)

	settings, err := buildSettings()
	if err != nil {
		return err
	}

	var progress render.ProgressObserver
	if verboseFlag {
		progress = newProgressBar(settings.MandelbrotSettings.Width * settings.MandelbrotSettings.Height)
	}

	renderer, err := render.NewRenderer(settings, progress)
	if err != nil {
		return err
	}

	logger.Infof("Generating output image of size %dx%d at point (%g, %g) with radius %g and iteration depth %d",
		settings.MandelbrotSettings.Width, settings.MandelbrotSettings.Height,
		settings.MandelbrotSettings.CenterX, settings.MandelbrotSettings.CenterY,
		settings.MandelbrotSettings.Radius, settings.MandelbrotSettings.MaxIterations)

	startTime := time.Now()
	img, err := renderer.Render()
	if err != nil {
		return err
	}

	// A sink fault is terminal: the run is reported as failed rather than
	// silently discarding the computed image.
	logger.Info("Saving output image")
	misc.CheckError(misc.SavePNG(fnameFlag, img), logger, misc.Fatal)

	logger.Infof("Output image saved as '%s'", fnameFlag)
	logger.Debugf("Time taken: %s", time.Since(startTime).Round(time.Millisecond))

	return nil
}

// buildSettings assembles render settings from the settings file when one is
// given, otherwise from the individual flags.
func buildSettings() (render.Settings, error) {
	if settingsFlag != "" {
		return render.NewSettings(settingsFlag)
	}

	width, height, err := misc.ParseDimensions(dimensionsFlag)
	if err != nil {
		return render.Settings{}, err
	}
	centerX, centerY, err := misc.ParsePoint(centerFlag)
	if err != nil {
		return render.Settings{}, err
	}

	settings := render.Settings{
		MandelbrotSettings: mandelbrot.Settings{
			CenterX:       centerX,
			CenterY:       centerY,
			Height:        height,
			MaxIterations: iterationsFlag,
			Radius:        radiusFlag,
			Width:         width,
		},
		WorkerCount: threadsFlag,
	}
	if colorFlag {
		settings.MandelbrotSettings.ColorMode = mandelbrot.Spectrum
	}
	if paletteFlag != "" {
		ramps, err := mandelbrot.LoadPaletteFile(paletteFlag)
		if err != nil {
			return render.Settings{}, err
		}
		settings.MandelbrotSettings.ColorMode = mandelbrot.Palette
		settings.MandelbrotSettings.GeneratePaletteSettings = ramps
	}

	if err := settings.Verify(); err != nil {
		return render.Settings{}, err
	}
	return settings, nil
}

// progressBar adapts a terminal progress bar to the renderer's observer
// contract. It only watches the collection stream; dropping updates on the
// floor would not change the image.
type progressBar struct {
	bar *progressbar.ProgressBar
}

func newProgressBar(pixelCount uint) *progressBar {
	return &progressBar{
		bar: progressbar.NewOptions(int(pixelCount),
			progressbar.OptionSetDescription("Collecting pixels"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionThrottle(100*time.Millisecond),
			progressbar.OptionOnCompletion(func() { os.Stderr.WriteString("\n") }),
		),
	}
}

func (p *progressBar) Advance(collected uint) {
	_ = p.bar.Set(int(collected))
}
