package misc

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
)

// SavePNG encodes img as PNG and writes it to fileName. The image is only
// handed over here once every pixel has been collected; a failure to persist
// it is terminal for the run.
func SavePNG(fileName string, img image.Image) error {
	var buffer bytes.Buffer
	if err := png.Encode(&buffer, img); err != nil {
		return fmt.Errorf("unable to encode image %s - %s", fileName, err)
	}
	if _, err := WriteFile(fileName, buffer.Bytes()); err != nil {
		return err
	}
	return nil
}
