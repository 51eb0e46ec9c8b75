package engine

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultDownloadBaseURL hosts the fast integer Tesseract models.
const DefaultDownloadBaseURL = "https://github.com/tesseract-ocr/tessdata_fast/raw/main"

const weightsExt = ".traineddata"

// WeightsPath returns the expected weights file for a language.
func WeightsPath(dir, lang string) string {
	return filepath.Join(dir, lang+weightsExt)
}

// MissingWeights lists the languages whose weights file is absent from dir.
func MissingWeights(dir string, langs []string) []string {
	var missing []string
	for _, lang := range langs {
		info, err := os.Stat(WeightsPath(dir, lang))
		if err != nil || info.IsDir() || info.Size() == 0 {
			missing = append(missing, lang)
		}
	}
	return missing
}

// weightsFetcher downloads traineddata files.
type weightsFetcher struct {
	baseURL string
	client  *http.Client
	log     *zap.SugaredLogger
}

func newWeightsFetcher(baseURL string, client *http.Client, log *zap.SugaredLogger) *weightsFetcher {
	if baseURL == "" {
		baseURL = DefaultDownloadBaseURL
	}
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	return &weightsFetcher{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     log,
	}
}

// ensureWeights makes sure every language has a weights file in cfg.WeightsDir.
// Missing files are downloaded only when cfg.AllowDownload is set.
func ensureWeights(cfg Config, fetcher *weightsFetcher) error {
	missing := MissingWeights(cfg.WeightsDir, cfg.Languages)
	if len(missing) == 0 {
		return nil
	}

	if !cfg.AllowDownload {
		files := make([]string, 0, len(missing))
		for _, lang := range missing {
			files = append(files, WeightsPath(cfg.WeightsDir, lang))
		}
		return fmt.Errorf("missing weights %s and download is disabled", strings.Join(files, ", "))
	}

	if err := os.MkdirAll(cfg.WeightsDir, 0755); err != nil {
		return fmt.Errorf("failed to create weights directory: %w", err)
	}

	for _, lang := range missing {
		if err := fetcher.fetch(cfg.WeightsDir, lang); err != nil {
			return err
		}
	}
	return nil
}

// fetch downloads one language into dir. The file is written under a
// temporary name and renamed once complete.
func (f *weightsFetcher) fetch(dir, lang string) error {
	url := f.baseURL + "/" + lang + weightsExt
	f.log.Infow("downloading weights", "language", lang, "url", url)

	resp, err := f.client.Get(url)
	if err != nil {
		return fmt.Errorf("failed to download %s: %w", lang, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download %s: unexpected status %s", lang, resp.Status)
	}

	tmp, err := os.CreateTemp(dir, lang+weightsExt+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	n, err := io.Copy(tmp, resp.Body)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil && n == 0 {
		err = fmt.Errorf("empty response body")
	}
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write %s weights: %w", lang, err)
	}

	if err := os.Rename(tmpPath, WeightsPath(dir, lang)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to install %s weights: %w", lang, err)
	}

	f.log.Infow("weights installed", "language", lang, "bytes", n)
	return nil
}
