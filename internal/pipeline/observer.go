package pipeline

import (
	"go.uber.org/zap"

	"github.com/ironsheep/ocr-annotate/internal/engine"
	"github.com/ironsheep/ocr-annotate/internal/report"
)

// Observer receives progress checkpoints. Calls are made synchronously from
// the goroutine running the pipeline.
type Observer interface {
	engine.LoadObserver

	// ImageLoaded is called once the source image has been decoded.
	ImageLoaded(path string, width, height int)

	// ResultDetected is called for each result, in engine order.
	ResultDetected(index int, r engine.Result)

	// RunComplete is called after every enabled stage has finished.
	RunComplete(out *Outcome)
}

// NopObserver ignores every checkpoint.
type NopObserver struct{}

func (NopObserver) EngineLoading(engine.Config)       {}
func (NopObserver) ImageLoaded(string, int, int)      {}
func (NopObserver) ResultDetected(int, engine.Result) {}
func (NopObserver) RunComplete(*Outcome)              {}

// LogObserver writes checkpoints to a zap logger.
type LogObserver struct {
	log *zap.SugaredLogger
}

// NewLogObserver returns an observer logging through log.
func NewLogObserver(log *zap.SugaredLogger) *LogObserver {
	return &LogObserver{log: log}
}

func (o *LogObserver) EngineLoading(cfg engine.Config) {
	o.log.Infow("loading engine",
		"languages", cfg.Languages,
		"weights_dir", cfg.WeightsDir,
		"accelerator", cfg.UseAccelerator,
	)
}

func (o *LogObserver) ImageLoaded(path string, width, height int) {
	o.log.Infow("image loaded", "path", path, "width", width, "height", height)
}

func (o *LogObserver) ResultDetected(index int, r engine.Result) {
	o.log.Infow("text detected", "index", index, "line", report.Line(r))
}

func (o *LogObserver) RunComplete(out *Outcome) {
	fields := []any{"results", len(out.Results)}
	if out.Dir != "" {
		fields = append(fields, "dir", out.Dir, "image", out.ImagePath, "report", out.ReportPath)
	}
	o.log.Infow("run complete", fields...)
}
