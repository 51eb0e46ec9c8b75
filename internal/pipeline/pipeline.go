package pipeline

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/ironsheep/ocr-annotate/internal/engine"
	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
	"github.com/ironsheep/ocr-annotate/internal/imaging"
	"github.com/ironsheep/ocr-annotate/internal/report"
)

// Options configures a Pipeline.
type Options struct {
	// FontPath is the label font file. Empty selects the embedded face.
	FontPath string
	FontSize float64

	// Color is the "#RRGGBB" highlight for boxes and labels.
	Color       string
	StrokeWidth int

	// Threshold is the binarization cutoff. Unlike the other numeric
	// fields, zero is used as given (every non-black pixel turns white);
	// start from DefaultOptions to get 100.
	Threshold uint8

	// JPEGQuality of zero or less selects imaging.DefaultJPEGQuality.
	JPEGQuality int

	Observer Observer
	Log      *zap.SugaredLogger

	// Viewer opens a file in the system image viewer.
	Viewer Viewer

	// Now supplies the run timestamp for jobs without one.
	Now func() time.Time
}

// DefaultOptions returns the standard drawing and output settings with the
// embedded label font.
func DefaultOptions() Options {
	style := imaging.DefaultStyle()
	return Options{
		FontSize:    float64(style.FontSize),
		Color:       imaging.HexColor(style.Color),
		StrokeWidth: style.StrokeWidth,
		Threshold:   imaging.DefaultThreshold,
		JPEGQuality: imaging.DefaultJPEGQuality,
	}
}

// Outcome records what a run produced.
type Outcome struct {
	Results   []engine.Result
	Annotated *image.RGBA
	Report    string

	// Artifacts is zero unless the job persisted its output.
	Artifacts
}

// Pipeline annotates images using a shared engine.
type Pipeline struct {
	engine    engine.Engine
	face      font.Face
	annotator *imaging.Annotator
	threshold uint8
	quality   int
	observer  Observer
	viewer    Viewer
	now       func() time.Time
	log       *zap.SugaredLogger
}

// New prepares a pipeline around eng. The label font is loaded here, so a
// missing font file fails before any image is read.
func New(eng engine.Engine, opts Options) (*Pipeline, error) {
	if eng == nil {
		return nil, fmt.Errorf("engine is required")
	}

	hl, err := imaging.ParseColor(opts.Color)
	if err != nil {
		return nil, apperr.NewConfigError("parse color", "", err)
	}

	face, err := imaging.LoadFace(opts.FontPath, opts.FontSize)
	if err != nil {
		return nil, err
	}

	style := imaging.DefaultStyle()
	style.Color = hl
	style.FontSize = int(opts.FontSize + 0.5)
	if opts.StrokeWidth > 0 {
		style.StrokeWidth = opts.StrokeWidth
	}

	p := &Pipeline{
		engine:    eng,
		face:      face,
		annotator: imaging.NewAnnotator(face, style),
		threshold: opts.Threshold,
		quality:   opts.JPEGQuality,
		observer:  opts.Observer,
		viewer:    opts.Viewer,
		now:       opts.Now,
		log:       opts.Log,
	}
	if p.quality <= 0 {
		p.quality = imaging.DefaultJPEGQuality
	}
	if p.observer == nil {
		p.observer = NopObserver{}
	}
	if p.viewer == nil {
		p.viewer = DefaultViewer
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.log == nil {
		p.log = zap.NewNop().Sugar()
	}
	return p, nil
}

// Run executes every stage for job and returns what it produced.
func (p *Pipeline) Run(job Job) (*Outcome, error) {
	if job.Timestamp.IsZero() {
		job.Timestamp = p.now()
	}

	img, info, err := p.LoadImage(job.ImageDir, job.ImageName)
	if err != nil {
		return nil, err
	}
	p.observer.ImageLoaded(info.Path, info.Width, info.Height)

	binary := p.Preprocess(img)

	results, err := p.Recognize(binary)
	if err != nil {
		return nil, err
	}
	for i, r := range results {
		p.observer.ResultDetected(i, r)
	}

	out := &Outcome{
		Results:   results,
		Annotated: p.Annotate(img, results),
		Report:    p.Report(results),
	}

	if job.Persist {
		artifacts, err := p.Persist(job.RunDir(), job.Stamp(), out.Annotated, out.Report)
		if err != nil {
			return nil, err
		}
		out.Artifacts = artifacts
	}

	if job.Display {
		p.Display(out.Annotated)
	}

	p.observer.RunComplete(out)
	return out, nil
}

// LoadImage decodes <dir>/<name>.
func (p *Pipeline) LoadImage(dir, name string) (image.Image, *imaging.ImageInfo, error) {
	return imaging.LoadFromDir(dir, name)
}

// Preprocess returns the binarized image handed to the engine.
func (p *Pipeline) Preprocess(img image.Image) *image.Gray {
	return imaging.Binarize(img, p.threshold)
}

// Recognize runs the engine. Results are returned unfiltered, in engine order.
func (p *Pipeline) Recognize(img image.Image) ([]engine.Result, error) {
	start := time.Now()
	results, err := p.engine.Read(img)
	if err != nil {
		return nil, err
	}
	p.log.Debugw("recognition finished", "results", len(results), "elapsed", time.Since(start))
	return results, nil
}

// Annotate draws results on a copy of src.
func (p *Pipeline) Annotate(src image.Image, results []engine.Result) *image.RGBA {
	return p.annotator.Annotate(src, results)
}

// Report renders the text report for results.
func (p *Pipeline) Report(results []engine.Result) string {
	return report.Build(results)
}

// Close releases the label font. The engine belongs to the caller.
func (p *Pipeline) Close() error {
	return p.face.Close()
}
