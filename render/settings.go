package render

import (
	"fmt"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/BurntSushi/toml"

	"github.com/troeggla/mandelbrot/mandelbrot"
	"github.com/troeggla/mandelbrot/misc"
)

type Settings struct {
	logger bslogger.Logger

	MandelbrotSettings mandelbrot.Settings
	WorkerCount        int
}

// NewSettings loads render settings from a TOML file: WorkerCount at the top
// level plus a [MandelbrotSettings] table.
func NewSettings(settingsFile string) (Settings, error) {
	var s Settings

	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err := toml.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse settings file %s - %s", settingsFile, err)
	}
	if err := s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())

	return s, nil
}

func (s *Settings) Verify() error {
	s.logger = bslogger.NewLogger("RenderSettings", bslogger.Normal, nil)

	if s.WorkerCount < 0 {
		return fmt.Errorf("worker count must be positive: %d", s.WorkerCount)
	}
	if s.WorkerCount == 0 {
		s.WorkerCount = 10
	}

	return s.MandelbrotSettings.Verify()
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Worker Count: %d\n", s.WorkerCount)
	output += s.MandelbrotSettings.String()
	return output
}
