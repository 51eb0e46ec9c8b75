package imaging

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
)

func TestLoadFace_Embedded(t *testing.T) {
	face, err := LoadFace("", DefaultFontSize)
	if err != nil {
		t.Fatalf("LoadFace failed: %v", err)
	}
	defer face.Close()

	m := face.Metrics()
	if m.Ascent <= 0 || m.Height <= 0 {
		t.Errorf("unexpected metrics: %+v", m)
	}
}

func TestLoadFace_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}

	face, err := LoadFace(path, 32)
	if err != nil {
		t.Fatalf("LoadFace failed: %v", err)
	}
	defer face.Close()

	small, _ := LoadFace(path, 12)
	if face.Metrics().Height <= small.Metrics().Height {
		t.Error("larger size should produce a taller face")
	}
}

func TestLoadFace_Missing(t *testing.T) {
	_, err := LoadFace(filepath.Join(t.TempDir(), "ttf", "YaHei.ttf"), DefaultFontSize)
	if !apperr.Is(err, apperr.FontLoadFailed) {
		t.Errorf("error = %v, want FONT_LOAD_FAILED", err)
	}
}

func TestLoadFace_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadFace(path, DefaultFontSize)
	if !apperr.Is(err, apperr.FontLoadFailed) {
		t.Errorf("error = %v, want FONT_LOAD_FAILED", err)
	}
}

func TestLoadFace_BadSize(t *testing.T) {
	_, err := LoadFace("", 0)
	if !apperr.Is(err, apperr.FontLoadFailed) {
		t.Errorf("error = %v, want FONT_LOAD_FAILED", err)
	}
}
