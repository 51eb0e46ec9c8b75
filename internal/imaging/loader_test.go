package imaging

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
)

// createTestImage writes a solid-colour PNG into t.TempDir and returns its path.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "test-image.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestLoad_PNG(t *testing.T) {
	path := createTestImage(t, 100, 60, color.RGBA{255, 0, 0, 255})

	img, info, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img == nil {
		t.Fatal("Load returned nil image")
	}
	if info.Width != 100 || info.Height != 60 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x60", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format = %q, want png", info.Format)
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
}

func TestLoad_JPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := jpeg.Encode(f, image.NewRGBA(image.Rect(0, 0, 32, 16)), nil); err != nil {
		t.Fatal(err)
	}
	f.Close()

	_, info, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.Format != "jpeg" {
		t.Errorf("Format = %q, want jpeg", info.Format)
	}
}

func TestLoad_NonExistent(t *testing.T) {
	_, _, err := Load("/nonexistent/path/to/image.png")
	if err == nil {
		t.Fatal("Load should fail for non-existent file")
	}
	if !apperr.Is(err, apperr.ImageNotFound) {
		t.Errorf("error code = %q, want %q", apperr.CodeOf(err), apperr.ImageNotFound)
	}
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.jpg")
	if err := os.WriteFile(path, []byte("this is not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(path)
	if !apperr.Is(err, apperr.ImageDecodeFailed) {
		t.Errorf("error = %v, want IMAGE_DECODE_FAILED", err)
	}
}

func TestLoad_Directory(t *testing.T) {
	_, _, err := Load(t.TempDir())
	if !apperr.Is(err, apperr.ImageDecodeFailed) {
		t.Errorf("error = %v, want IMAGE_DECODE_FAILED", err)
	}
}

func TestLoadFromDir(t *testing.T) {
	path := createTestImage(t, 10, 10, color.White)

	_, info, err := LoadFromDir(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if info.Path != path {
		t.Errorf("Path = %q, want %q", info.Path, path)
	}
}
