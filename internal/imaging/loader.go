package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
)

// ImageInfo describes a decoded source image.
type ImageInfo struct {
	// Path is the file the image was read from.
	Path string `json:"path"`

	// Format is the decoder name reported by image.Decode ("jpeg", "png", ...).
	Format string `json:"format"`

	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`
}

// Load opens and decodes the image at path.
//
// Returns:
//   - image.Image: The decoded image in its native color model.
//   - *ImageInfo: Path, format and dimensions.
//   - error: IMAGE_NOT_FOUND if the path does not exist, IMAGE_DECODE_FAILED
//     if it cannot be read or is not a supported raster format.
func Load(path string) (image.Image, *ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, apperr.NewImageNotFoundError(path, err)
		}
		return nil, nil, apperr.NewImageDecodeError(path, fmt.Errorf("failed to open image: %w", err))
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, apperr.NewImageDecodeError(path, fmt.Errorf("failed to stat image: %w", err))
	}
	if info.IsDir() {
		return nil, nil, apperr.NewImageDecodeError(path, fmt.Errorf("path is a directory"))
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, nil, apperr.NewImageDecodeError(path, fmt.Errorf("failed to decode image: %w", err))
	}

	bounds := img.Bounds()
	return img, &ImageInfo{
		Path:   path,
		Format: format,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}

// LoadFromDir joins dir and name and loads the result.
func LoadFromDir(dir, name string) (image.Image, *ImageInfo, error) {
	return Load(filepath.Join(dir, name))
}
