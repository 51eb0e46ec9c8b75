package pipeline

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
	"github.com/ironsheep/ocr-annotate/internal/imaging"
)

// Artifacts locates the files written for one run.
type Artifacts struct {
	Dir        string
	ImagePath  string
	ReportPath string
}

// Persist writes <dir>/<stamp>.jpg and <dir>/<stamp>.txt, creating dir as
// needed. Each file appears under its final name only once fully written.
func (p *Pipeline) Persist(dir, stamp string, img image.Image, text string) (Artifacts, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return Artifacts{}, apperr.NewIOError("create output directory", dir, err)
	}

	a := Artifacts{
		Dir:        dir,
		ImagePath:  filepath.Join(dir, stamp+".jpg"),
		ReportPath: filepath.Join(dir, stamp+".txt"),
	}

	err := writeFileAtomic(a.ImagePath, func(w io.Writer) error {
		return imaging.EncodeJPEG(w, img, p.quality)
	})
	if err != nil {
		return Artifacts{}, apperr.NewIOError("write annotated image", a.ImagePath, err)
	}

	err = writeFileAtomic(a.ReportPath, func(w io.Writer) error {
		_, err := io.WriteString(w, text)
		return err
	})
	if err != nil {
		return Artifacts{}, apperr.NewIOError("write report", a.ReportPath, err)
	}

	p.log.Infow("results saved", "image", a.ImagePath, "report", a.ReportPath)
	return a, nil
}

// writeFileAtomic writes through a temporary sibling of path and renames it
// into place. The temporary file is removed on any failure.
func writeFileAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	err = write(tmp)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
