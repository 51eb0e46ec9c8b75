package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"strings"
	"sync"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
)

// LoadObserver is notified when engine loading starts.
type LoadObserver interface {
	EngineLoading(cfg Config)
}

// Option customizes Load.
type Option func(*loadOptions)

type loadOptions struct {
	log        *zap.SugaredLogger
	observer   LoadObserver
	baseURL    string
	httpClient *http.Client
}

// WithLogger sets the logger used during loading and reading.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(o *loadOptions) { o.log = log }
}

// WithObserver registers an observer for the loading checkpoint.
func WithObserver(obs LoadObserver) Option {
	return func(o *loadOptions) { o.observer = obs }
}

// WithDownloadBaseURL overrides where missing weights are fetched from.
func WithDownloadBaseURL(url string) Option {
	return func(o *loadOptions) { o.baseURL = url }
}

// WithHTTPClient sets the client used for weight downloads.
func WithHTTPClient(c *http.Client) Option {
	return func(o *loadOptions) { o.httpClient = c }
}

// TesseractEngine is an Engine backed by a gosseract client.
type TesseractEngine struct {
	mu     sync.Mutex
	client *gosseract.Client
	cfg    Config
	log    *zap.SugaredLogger
}

// Load validates cfg, stages the weights and constructs the engine.
//
// All failures are reported as MODEL_LOAD_FAILED. The model is loaded into
// memory before Load returns, so a successful Load means Read can run.
func Load(cfg Config, opts ...Option) (*TesseractEngine, error) {
	o := loadOptions{log: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}

	if o.observer != nil {
		o.observer.EngineLoading(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, apperr.NewModelLoadError("validate engine config", err)
	}
	cfg = cfg.normalized()

	if cfg.UseAccelerator {
		o.log.Warnw("accelerator requested but the tesseract backend is CPU-only", "languages", cfg.Languages)
	}

	fetcher := newWeightsFetcher(o.baseURL, o.httpClient, o.log)
	if err := ensureWeights(cfg, fetcher); err != nil {
		return nil, apperr.NewModelLoadError("stage weights", err)
	}

	client := gosseract.NewClient()
	if err := configureClient(client, cfg); err != nil {
		client.Close()
		return nil, apperr.NewModelLoadError("configure tesseract", err)
	}

	e := &TesseractEngine{
		client: client,
		cfg:    cfg,
		log:    o.log,
	}
	if err := e.warmUp(); err != nil {
		client.Close()
		return nil, apperr.NewModelLoadError("initialize tesseract", err)
	}

	o.log.Infow("engine ready",
		"backend", "tesseract",
		"version", e.Version(),
		"languages", e.Languages(),
		"accelerator", e.AcceleratorRequested(),
		"weights_dir", cfg.WeightsDir,
		"detector", cfg.EnableDetector,
		"recognizer", cfg.EnableRecognizer,
	)
	return e, nil
}

func configureClient(client *gosseract.Client, cfg Config) error {
	if err := client.SetTessdataPrefix(cfg.WeightsDir); err != nil {
		return fmt.Errorf("failed to set tessdata path: %w", err)
	}
	if err := client.SetLanguage(cfg.Languages...); err != nil {
		return fmt.Errorf("failed to set language: %w", err)
	}
	mode := gosseract.PSM_AUTO
	if !cfg.EnableDetector {
		mode = gosseract.PSM_SINGLE_BLOCK
	}
	if err := client.SetPageSegMode(mode); err != nil {
		return fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	return nil
}

// warmUp forces Tesseract to initialize with the configured weights by
// reading a blank image.
func (e *TesseractEngine) warmUp() error {
	blank := image.NewGray(image.Rect(0, 0, 8, 8))
	for i := range blank.Pix {
		blank.Pix[i] = 0xff
	}
	data, err := encodePNG(blank)
	if err != nil {
		return err
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return fmt.Errorf("failed to set image: %w", err)
	}
	if _, err := e.client.Text(); err != nil {
		return err
	}
	return nil
}

// Read runs the engine on img and returns the detected regions in engine order.
// No confidence filtering is applied.
//
// With the recognizer enabled, text lines for which Tesseract produced no
// characters are dropped: they carry a box but nothing to report. With the
// recognizer disabled every detected line is kept with empty Text.
func (e *TesseractEngine) Read(img image.Image) ([]Result, error) {
	data, err := encodePNG(img)
	if err != nil {
		return nil, apperr.NewRecognitionError(err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.client == nil {
		return nil, apperr.NewRecognitionError(fmt.Errorf("engine is closed"))
	}
	if err := e.client.SetImageFromBytes(data); err != nil {
		return nil, apperr.NewRecognitionError(fmt.Errorf("failed to set image: %w", err))
	}

	var results []Result
	if e.cfg.EnableDetector {
		results, err = e.readLines()
	} else {
		results, err = e.readBlock(img.Bounds())
	}
	if err != nil {
		return nil, apperr.NewRecognitionError(err)
	}

	e.log.Debugw("engine read complete", "regions", len(results))
	return results, nil
}

// readLines returns one result per text line.
func (e *TesseractEngine) readLines() ([]Result, error) {
	boxes, err := e.client.GetBoundingBoxes(gosseract.RIL_TEXTLINE)
	if err != nil {
		return nil, fmt.Errorf("failed to get bounding boxes: %w", err)
	}
	return lineResults(boxes, e.cfg.EnableRecognizer), nil
}

// lineResults converts text-line boxes to results. Confidence is scaled from
// Tesseract's 0-100 to 0-1.
func lineResults(boxes []gosseract.BoundingBox, recognize bool) []Result {
	results := make([]Result, 0, len(boxes))
	for _, box := range boxes {
		text := strings.TrimSpace(box.Word)
		if recognize && text == "" {
			continue
		}
		if !recognize {
			text = ""
		}
		results = append(results, Result{
			Box:        BoxFromRect(box.Box),
			Text:       text,
			Confidence: clampConfidence(box.Confidence / 100.0),
		})
	}
	return results
}

// readBlock treats the whole image as one region.
func (e *TesseractEngine) readBlock(bounds image.Rectangle) ([]Result, error) {
	text, err := e.client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return []Result{}, nil
	}

	var confidence float64
	if words, err := e.client.GetBoundingBoxes(gosseract.RIL_WORD); err == nil && len(words) > 0 {
		var sum float64
		for _, w := range words {
			sum += float64(w.Confidence)
		}
		confidence = sum / float64(len(words)) / 100.0
	}

	return []Result{{
		Box:        BoxFromRect(bounds),
		Text:       text,
		Confidence: clampConfidence(confidence),
	}}, nil
}

// Version returns the Tesseract library version, or "" once closed.
func (e *TesseractEngine) Version() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return ""
	}
	return e.client.Version()
}

// Languages returns the resolved language codes.
func (e *TesseractEngine) Languages() []string {
	return append([]string(nil), e.cfg.Languages...)
}

// AcceleratorRequested reports whether the config asked for acceleration.
func (e *TesseractEngine) AcceleratorRequested() bool {
	return e.cfg.UseAccelerator
}

// Close releases the Tesseract client.
func (e *TesseractEngine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.client == nil {
		return nil
	}
	err := e.client.Close()
	e.client = nil
	return err
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
