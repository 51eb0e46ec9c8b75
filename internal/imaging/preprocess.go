package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/parallel"
)

// DefaultThreshold is the binarization cutoff applied before recognition.
const DefaultThreshold uint8 = 100

// Luminance weights (ITU-R BT.601) used for grayscale conversion.
const (
	lumaR = 0.299
	lumaG = 0.587
	lumaB = 0.114
)

// Grayscale converts img to a single-channel image with BT.601 weights.
func Grayscale(img image.Image) *image.Gray {
	rgba := effect.GrayscaleWithWeights(img, lumaR, lumaG, lumaB)
	bounds := rgba.Bounds()
	gray := image.NewGray(bounds)
	width := bounds.Dx()

	// bild writes the luminance to all three colour channels; keep R.
	parallel.Line(bounds.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			srcRow := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			dstRow := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			for x := range dstRow {
				dstRow[x] = srcRow[x*4]
			}
		}
	})
	return gray
}

// Threshold returns a binary copy of gray: pixels strictly above level become
// 255, all others 0. The input is not modified.
func Threshold(gray *image.Gray, level uint8) *image.Gray {
	bounds := gray.Bounds()
	dst := image.NewGray(bounds)
	width := bounds.Dx()

	parallel.Line(bounds.Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			dstRow := dst.Pix[y*dst.Stride : y*dst.Stride+width]
			for x, v := range srcRow {
				if v > level {
					dstRow[x] = 0xFF
				} else {
					dstRow[x] = 0x00
				}
			}
		}
	})
	return dst
}

// Binarize prepares an image for recognition: grayscale, then Threshold at level.
//
// The result has the same dimensions as img and every pixel is exactly 0 or
// 255. Colour information is discarded; keep the source image for
// annotation.
func Binarize(img image.Image, level uint8) *image.Gray {
	return Threshold(Grayscale(img), level)
}
