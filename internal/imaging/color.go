package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// PackARGB packs a colour into the 32-bit 0xAARRGGBB form used by camera
// and bitmap APIs.
func PackARGB(c color.NRGBA) uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// UnpackARGB is the inverse of PackARGB.
func UnpackARGB(v uint32) color.NRGBA {
	return color.NRGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes one pixel in several representations.
type ColorResult struct {
	X    int         `json:"x"`
	Y    int         `json:"y"`
	Hex  string      `json:"hex"`  // "#RRGGBB" (no alpha)
	ARGB uint32      `json:"argb"` // packed 0xAARRGGBB
	RGBA color.NRGBA `json:"rgba"`
	HSL  HSLColor    `json:"hsl"`
}

// SampleColor reports the non-premultiplied colour at (x, y).
//
// Coordinates are 0-based from the top-left corner; anything outside the
// image bounds wraps ErrInvalidArgument.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	bounds := img.Bounds()
	if !(image.Point{X: x, Y: y}).In(bounds) {
		return nil, fmt.Errorf("%w: coordinates (%d,%d) outside image bounds", ErrInvalidArgument, x, y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	cf := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	h, s, l := cf.Hsl()

	return &ColorResult{
		X:    x,
		Y:    y,
		Hex:  strings.ToUpper(cf.Hex()),
		ARGB: PackARGB(c),
		RGBA: c,
		HSL: HSLColor{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}, nil
}

// NewFilled creates an opaque width x height canvas filled with a colour
// given as "#RRGGBB". An empty colour leaves the canvas transparent black.
func NewFilled(width, height int, hex string) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: canvas size must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if hex == "" {
		return img, nil
	}

	cf, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("%w: bad colour %q: %w", ErrInvalidArgument, hex, err)
	}
	r, g, b := cf.RGB255()
	fill := []uint8{r, g, b, 255}

	for i := 0; i < len(img.Pix); i += 4 {
		copy(img.Pix[i:i+4], fill)
	}
	return img, nil
}
