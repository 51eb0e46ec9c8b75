package pipeline

import (
	"path/filepath"
	"time"
)

// StampLayout formats run timestamps as YYYY_MM_DD_HH_MM_SS.
const StampLayout = "2006_01_02_15_04_05"

// Job describes one annotation run.
type Job struct {
	// ImageDir and ImageName locate the source image.
	ImageDir  string
	ImageName string

	// OutputDir receives the <stamp>/ directory when Persist is set.
	OutputDir string

	// Timestamp names the run's artifacts. Zero means the pipeline clock.
	Timestamp time.Time

	Persist bool
	Display bool
}

// ImagePath returns the source image location.
func (j Job) ImagePath() string {
	return filepath.Join(j.ImageDir, j.ImageName)
}

// Stamp formats the job timestamp in local time.
func (j Job) Stamp() string {
	return j.Timestamp.Local().Format(StampLayout)
}

// RunDir returns <OutputDir>/<stamp>.
func (j Job) RunDir() string {
	return filepath.Join(j.OutputDir, j.Stamp())
}
