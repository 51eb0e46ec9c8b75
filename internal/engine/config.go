package engine

import (
	"fmt"
	"strings"
)

// Config describes how the recognition engine is constructed.
//
// A Config is consumed once by Load and must not be modified afterwards.
type Config struct {
	// Languages lists the languages to recognize, e.g. []string{"chi_sim"}.
	Languages []string `json:"languages"`

	// UseAccelerator requests hardware acceleration when the backend has it.
	UseAccelerator bool `json:"use_accelerator"`

	// WeightsDir is the directory holding the "<lang>.traineddata" files.
	WeightsDir string `json:"weights_dir"`

	// AllowDownload permits fetching missing weights over the network.
	AllowDownload bool `json:"allow_download"`

	// EnableDetector turns on text-region detection.
	EnableDetector bool `json:"enable_detector"`

	// EnableRecognizer turns on text recognition.
	EnableRecognizer bool `json:"enable_recognizer"`
}

// languageAliases maps short toolkit codes to Tesseract language codes.
var languageAliases = map[string]string{
	"ch_sim": "chi_sim",
	"ch_tra": "chi_tra",
	"en":     "eng",
	"ja":     "jpn",
	"ko":     "kor",
}

// NormalizeLanguage returns the Tesseract code for lang.
// Unknown codes are returned trimmed but otherwise unchanged.
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if code, ok := languageAliases[lang]; ok {
		return code
	}
	return lang
}

// Validate checks the configuration for values Load can never satisfy.
func (c Config) Validate() error {
	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}
	for i, lang := range c.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("language %d is empty", i)
		}
	}
	if c.WeightsDir == "" {
		return fmt.Errorf("weights directory is required")
	}
	if !c.EnableDetector && !c.EnableRecognizer {
		return fmt.Errorf("detector and recognizer cannot both be disabled")
	}
	return nil
}

// normalized returns a copy with language aliases resolved and duplicates removed.
func (c Config) normalized() Config {
	out := c
	out.Languages = make([]string, 0, len(c.Languages))
	seen := make(map[string]bool, len(c.Languages))
	for _, lang := range c.Languages {
		code := NormalizeLanguage(lang)
		if seen[code] {
			continue
		}
		seen[code] = true
		out.Languages = append(out.Languages, code)
	}
	return out
}
