package pipeline

import (
	"fmt"
	"image"
	"os"

	"github.com/pkg/browser"

	"github.com/ironsheep/ocr-annotate/internal/imaging"
)

// Viewer opens an image file for the user.
type Viewer func(path string) error

// DefaultViewer hands the file to the platform's default opener.
func DefaultViewer(path string) error {
	return browser.OpenFile(path)
}

// Display shows img in the viewer. Failures are logged and never stop a run.
// The temporary PNG is left for the viewer, which may read it after return.
func (p *Pipeline) Display(img image.Image) {
	path, err := writeTempPNG(img)
	if err != nil {
		p.log.Warnw("display skipped", "error", err)
		return
	}
	if err := p.viewer(path); err != nil {
		p.log.Warnw("failed to open viewer", "path", path, "error", err)
		return
	}
	p.log.Debugw("image displayed", "path", path)
}

func writeTempPNG(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "ocr-annotate-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	err = imaging.EncodePNG(f, img)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}
