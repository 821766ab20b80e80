// Package render drives the full-frame computation: it fans the pixels of
// the output image out across a fixed pool of workers and folds their
// results back into a single RGBA buffer.
package render

import (
	"fmt"
	"image"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"github.com/troeggla/mandelbrot/mandelbrot"
	"github.com/troeggla/mandelbrot/task"
)

// channelBuffer sizes the coordinate and result channels so workers rarely
// block against the single collector.
const channelBuffer = 1024

// heartBeatInterval is how often the collector logs its progress while a
// render is running.
const heartBeatInterval = 30 * time.Second

// A ProgressObserver is told the running count of collected pixels. It is
// purely observational; rendering never depends on it.
type ProgressObserver interface {
	Advance(collected uint)
}

type Renderer struct {
	colorizer  mandelbrot.Colorizer
	logger     bslogger.Logger
	pixelCount uint
	progress   ProgressObserver
	rectangle  image.Rectangle
	set        mandelbrot.Mandelbrot
	settings   Settings
}

// NewRenderer verifies settings and builds a renderer. progress may be nil.
func NewRenderer(settings Settings, progress ProgressObserver) (Renderer, error) {
	if err := settings.Verify(); err != nil {
		return Renderer{}, err
	}
	colorizer, err := mandelbrot.NewColorizer(settings.MandelbrotSettings)
	if err != nil {
		return Renderer{}, err
	}

	renderer := Renderer{
		colorizer:  colorizer,
		logger:     bslogger.NewLogger("Renderer", bslogger.Normal, nil),
		pixelCount: settings.MandelbrotSettings.Width * settings.MandelbrotSettings.Height,
		progress:   progress,
		rectangle: image.Rectangle{
			Min: image.Point{X: 0, Y: 0},
			Max: image.Point{
				X: int(settings.MandelbrotSettings.Width),
				Y: int(settings.MandelbrotSettings.Height),
			},
		},
		set:      mandelbrot.NewMandelbrot(settings.MandelbrotSettings),
		settings: settings,
	}

	return renderer, nil
}

// Render computes every pixel of the viewport and returns the finished
// image. The render is complete only once all Width*Height pixels have been
// collected; a worker fault aborts the whole render instead of producing a
// partial image.
func (r *Renderer) Render() (*image.RGBA, error) {
	coordinates := make(chan task.Coordinate, channelBuffer)
	results := make(chan task.Pixel, channelBuffer)
	faults := make(chan error, r.settings.WorkerCount)

	for w := 0; w < r.settings.WorkerCount; w++ {
		go r.work(coordinates, results, faults)
	}
	go r.generateCoordinates(coordinates)

	// The collector below is the only writer to the image buffer, so no
	// locking is needed on it. Arrival order is irrelevant: each result
	// carries its own coordinate and every coordinate arrives exactly once.
	img := image.NewRGBA(r.rectangle)

	heartBeat := time.NewTicker(heartBeatInterval)
	defer heartBeat.Stop()

	var collected uint
	for collected < r.pixelCount {
		select {
		case pixel := <-results:
			img.SetRGBA(int(pixel.Column), int(pixel.Row), pixel.Color)
			collected++
			if r.progress != nil {
				r.progress.Advance(collected)
			}
		case err := <-faults:
			return nil, fmt.Errorf("render aborted: %s", err)
		case <-heartBeat.C:
			r.logger.Infof("Pixels [Collected: %d] [Todo: %d]", collected, r.pixelCount-collected)
		}
	}

	return img, nil
}

// generateCoordinates enumerates every pixel of the output image into the
// coordinate channel. Dispatch itself is single threaded; only the per-pixel
// computation is parallelized.
func (r *Renderer) generateCoordinates(coordinates chan<- task.Coordinate) {
	var column, row uint
	for column = 0; column < r.settings.MandelbrotSettings.Width; column++ {
		for row = 0; row < r.settings.MandelbrotSettings.Height; row++ {
			coordinates <- task.Coordinate{Column: column, Row: row}
		}
	}
	close(coordinates)
}

// work consumes coordinates until the channel is drained, emitting one Pixel
// per coordinate. A panic while processing is reported as a fault instead of
// silently losing the pixel.
func (r *Renderer) work(coordinates <-chan task.Coordinate, results chan<- task.Pixel, faults chan<- error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			faults <- fmt.Errorf("worker: %v", recovered)
		}
	}()

	for coordinate := range coordinates {
		x, y := r.set.PointForPixel(coordinate)
		results <- task.Pixel{
			Color:  r.colorizer.Colorize(r.set.EscapeTime(x, y)),
			Column: coordinate.Column,
			Row:    coordinate.Row,
		}
	}
}
