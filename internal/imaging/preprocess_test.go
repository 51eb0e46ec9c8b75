package imaging

import (
	"image"
	"image/color"
	"testing"
)

// gradientImage has a horizontal grayscale ramp 0..255 on every row.
func gradientImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / (width - 1))
			img.Set(x, y, color.RGBA{v, v, v, 255})
		}
	}
	return img
}

func TestGrayscale_Dimensions(t *testing.T) {
	src := gradientImage(64, 20)
	gray := Grayscale(src)

	if gray.Bounds().Dx() != 64 || gray.Bounds().Dy() != 20 {
		t.Errorf("dimensions = %dx%d, want 64x20", gray.Bounds().Dx(), gray.Bounds().Dy())
	}
}

func TestGrayscale_Weights(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 1))
	src.Set(0, 0, color.RGBA{255, 0, 0, 255})
	src.Set(1, 0, color.RGBA{0, 255, 0, 255})
	src.Set(2, 0, color.RGBA{0, 0, 255, 255})

	gray := Grayscale(src)

	// Green carries the most weight, blue the least.
	r, g, b := gray.GrayAt(0, 0).Y, gray.GrayAt(1, 0).Y, gray.GrayAt(2, 0).Y
	if !(g > r && r > b) {
		t.Errorf("unexpected luminance ordering: r=%d g=%d b=%d", r, g, b)
	}
	if r < 74 || r > 78 {
		t.Errorf("red luminance = %d, want about 76", r)
	}
}

func TestThreshold_Cutoff(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 4, 1))
	gray.Pix = []uint8{99, 100, 101, 255}

	out := Threshold(gray, 100)

	want := []uint8{0, 0, 255, 255}
	for x, w := range want {
		if got := out.GrayAt(x, 0).Y; got != w {
			t.Errorf("pixel %d (input %d) = %d, want %d", x, gray.Pix[x], got, w)
		}
	}
	if gray.Pix[1] != 100 {
		t.Error("Threshold must not modify its input")
	}
}

func TestThreshold_MaxLevel(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.Pix = []uint8{0, 255}

	out := Threshold(gray, 255)
	if out.Pix[0] != 0 || out.Pix[1] != 0 {
		t.Errorf("nothing exceeds 255, got %v", out.Pix)
	}
}

func TestBinarize_OnlyBlackAndWhite(t *testing.T) {
	src := gradientImage(256, 12)
	out := Binarize(src, DefaultThreshold)

	b := out.Bounds()
	if b.Dx() != 256 || b.Dy() != 12 {
		t.Fatalf("dimensions = %dx%d, want 256x12", b.Dx(), b.Dy())
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := out.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 0 or 255", x, y, v)
			}
		}
	}
	if out.GrayAt(0, 0).Y != 0 {
		t.Error("dark end of the ramp should be black")
	}
	if out.GrayAt(255, 0).Y != 255 {
		t.Error("bright end of the ramp should be white")
	}
}

func TestBinarize_NonZeroOrigin(t *testing.T) {
	src := gradientImage(40, 40).SubImage(image.Rect(10, 10, 30, 25))
	out := Binarize(src, DefaultThreshold)

	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 15 {
		t.Errorf("dimensions = %dx%d, want 20x15", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestBinarize_ColourSource(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		// Top row bright yellow, bottom row dark blue.
		src.Set(x, 0, color.NRGBA{240, 220, 30, 255})
		src.Set(x, 1, color.NRGBA{10, 20, 120, 255})
	}

	out := Binarize(src, DefaultThreshold)

	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 2 {
		t.Fatalf("dimensions = %dx%d, want 4x2", out.Bounds().Dx(), out.Bounds().Dy())
	}
	for x := 0; x < 4; x++ {
		if out.GrayAt(out.Bounds().Min.X+x, out.Bounds().Min.Y).Y != 255 {
			t.Errorf("bright pixel %d should be white", x)
		}
		if out.GrayAt(out.Bounds().Min.X+x, out.Bounds().Min.Y+1).Y != 0 {
			t.Errorf("dark pixel %d should be black", x)
		}
	}
}

func TestGrayscale_Empty(t *testing.T) {
	gray := Grayscale(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if !gray.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", gray.Bounds())
	}
}
