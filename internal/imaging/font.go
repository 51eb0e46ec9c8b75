package imaging

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	apperr "github.com/ironsheep/ocr-annotate/internal/errors"
)

// DefaultFontSize is the label size in pixels.
const DefaultFontSize = 20

// LoadFace loads a TrueType/OpenType font (or the first font of a collection)
// at the given pixel size.
//
// An empty path selects the embedded Go Regular face. Any other path must
// exist; a missing or unparsable file returns FONT_LOAD_FAILED.
func LoadFace(path string, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, apperr.NewFontLoadError(path, fmt.Errorf("invalid font size %v", size))
	}

	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, apperr.NewFontLoadError(path, err)
		}
	}

	f, err := opentype.Parse(data)
	if err != nil {
		coll, collErr := opentype.ParseCollection(data)
		if collErr != nil {
			return nil, apperr.NewFontLoadError(path, fmt.Errorf("failed to parse font: %w", err))
		}
		f, err = coll.Font(0)
		if err != nil {
			return nil, apperr.NewFontLoadError(path, fmt.Errorf("failed to read font collection: %w", err))
		}
	}

	// 72 DPI makes one point equal one pixel.
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, apperr.NewFontLoadError(path, fmt.Errorf("failed to create face: %w", err))
	}
	return face, nil
}
