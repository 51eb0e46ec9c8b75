// Package config holds the run configuration for ocr-annotate.
//
// Values come from Default, optionally overlaid by a JSON file (Load) and
// then by OCR_ANNOTATE_* environment variables (ApplyEnv). A .env file in the
// working directory can supply the same variables (EnvFile).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/ocr-annotate/internal/engine"
	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
	"github.com/ironsheep/ocr-annotate/internal/imaging"
	"github.com/ironsheep/ocr-annotate/internal/logging"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OCR_ANNOTATE_"

// DefaultEnvFile is read by EnvFile when no path is given.
const DefaultEnvFile = ".env"

// Config is the full run configuration.
type Config struct {
	Engine engine.Config `json:"engine"`

	// Source image, read from ImageDir/ImageName.
	ImageDir  string `json:"image_dir"`
	ImageName string `json:"image_name"`

	// OutputDir receives one timestamped subdirectory per run.
	OutputDir string `json:"output_dir"`
	Persist   bool   `json:"persist"`
	Display   bool   `json:"display"`

	// Label font. An empty FontName selects the embedded face.
	FontDir  string  `json:"font_dir"`
	FontName string  `json:"font_name"`
	FontSize float64 `json:"font_size"`

	Color       string `json:"color"`
	StrokeWidth int    `json:"stroke_width"`
	Threshold   int    `json:"threshold"`
	JPEGQuality int    `json:"jpeg_quality"`
	LogLevel    string `json:"log_level"`
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		Engine: engine.Config{
			Languages:        []string{"ch_sim"},
			UseAccelerator:   true,
			WeightsDir:       "./tessdata",
			AllowDownload:    false,
			EnableDetector:   true,
			EnableRecognizer: true,
		},
		ImageDir:    "images",
		ImageName:   "traffic_sign.jpg",
		OutputDir:   "0_res",
		Persist:     true,
		Display:     false,
		FontDir:     "ttf",
		FontName:    "YaHei.ttf",
		FontSize:    imaging.DefaultFontSize,
		Color:       "#E1A105",
		StrokeWidth: 3,
		Threshold:   int(imaging.DefaultThreshold),
		JPEGQuality: imaging.DefaultJPEGQuality,
		LogLevel:    "info",
	}
}

// Load reads a JSON config file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperr.NewConfigError("read config", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, apperr.NewConfigError("parse config", path, err)
	}
	return cfg, nil
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// EnvFile returns a lookup that prefers the process environment and falls
// back to the variables in a dotenv file. A missing file is not an error.
func EnvFile(path string) (LookupFunc, error) {
	if path == "" {
		path = DefaultEnvFile
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return os.LookupEnv, nil
		}
		return nil, apperr.NewConfigError("read env file", path, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides fields from OCR_ANNOTATE_* variables.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		return strings.TrimSpace(v), true
	}

	var errs []string
	setBool := func(name string, dst *bool) {
		if v, ok := get(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s%s: %v", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	setInt := func(name string, dst *int) {
		if v, ok := get(name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Sprintf("%s%s: %v", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}
	setString := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}

	if v, ok := get("LANGUAGES"); ok {
		var langs []string
		for _, l := range strings.Split(v, ",") {
			if l = strings.TrimSpace(l); l != "" {
				langs = append(langs, l)
			}
		}
		c.Engine.Languages = langs
	}
	setBool("USE_ACCELERATOR", &c.Engine.UseAccelerator)
	setString("WEIGHTS_DIR", &c.Engine.WeightsDir)
	setBool("ALLOW_DOWNLOAD", &c.Engine.AllowDownload)
	setBool("ENABLE_DETECTOR", &c.Engine.EnableDetector)
	setBool("ENABLE_RECOGNIZER", &c.Engine.EnableRecognizer)

	setString("IMAGE_DIR", &c.ImageDir)
	setString("IMAGE_NAME", &c.ImageName)
	setString("OUTPUT_DIR", &c.OutputDir)
	setBool("PERSIST", &c.Persist)
	setBool("DISPLAY", &c.Display)
	setString("FONT_DIR", &c.FontDir)
	setString("FONT_NAME", &c.FontName)
	if v, ok := get("FONT_SIZE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%sFONT_SIZE: %v", EnvPrefix, err))
		} else {
			c.FontSize = f
		}
	}
	setString("COLOR", &c.Color)
	setInt("STROKE_WIDTH", &c.StrokeWidth)
	setInt("THRESHOLD", &c.Threshold)
	setInt("JPEG_QUALITY", &c.JPEGQuality)
	if v, ok := lookup(logging.EnvLevel); ok {
		c.LogLevel = strings.TrimSpace(v)
	}

	if len(errs) > 0 {
		return apperr.NewConfigError("apply env", "", fmt.Errorf("%s", strings.Join(errs, "; ")))
	}
	return nil
}

// Validate checks every field. Engine settings are checked again by
// engine.Load, which reports them as MODEL_LOAD_FAILED.
func (c *Config) Validate() error {
	fail := func(format string, args ...any) error {
		return apperr.NewConfigError("validate", "", fmt.Errorf(format, args...))
	}

	if err := c.Engine.Validate(); err != nil {
		return fail("engine: %w", err)
	}
	if c.ImageName == "" {
		return fail("image_name is required")
	}
	if c.Persist && c.OutputDir == "" {
		return fail("output_dir is required when persist is enabled")
	}
	if c.FontSize <= 0 {
		return fail("font_size must be positive, got %v", c.FontSize)
	}
	if _, err := imaging.ParseColor(c.Color); err != nil {
		return fail("color: %w", err)
	}
	if c.StrokeWidth < 1 {
		return fail("stroke_width must be at least 1, got %d", c.StrokeWidth)
	}
	if c.Threshold < 0 || c.Threshold > 255 {
		return fail("threshold must be within 0-255, got %d", c.Threshold)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fail("log_level: %w", err)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fail("jpeg_quality must be within 1-100, got %d", c.JPEGQuality)
	}
	return nil
}

// FontPath returns the label font location, or "" for the embedded face.
func (c *Config) FontPath() string {
	if c.FontName == "" {
		return ""
	}
	return filepath.Join(c.FontDir, c.FontName)
}

// ImagePath returns the source image location.
func (c *Config) ImagePath() string {
	return filepath.Join(c.ImageDir, c.ImageName)
}
