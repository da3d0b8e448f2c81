package imaging

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Tensor is a normalized RGB input buffer for an inference engine.
//
// Data holds Width*Height*3 values in reading order (rows top to bottom,
// pixels left to right), each pixel contributing R, G, B in that order.
type Tensor struct {
	Width  int
	Height int
	Data   []float32
}

// At returns channel c (0=R, 1=G, 2=B) of the pixel at (x, y).
func (t *Tensor) At(x, y, c int) float32 {
	return t.Data[(y*t.Width+x)*3+c]
}

// Bytes returns Data as little-endian IEEE 754 floats, the layout of the
// direct buffers handed to the inference engine.
func (t *Tensor) Bytes() []byte {
	buf := make([]byte, 4*len(t.Data))
	for i, v := range t.Data {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

// ToTensor scales img to width x height with ScaleToExact and converts every
// channel byte v to (v - mean) / std.
//
// A zero std wraps ErrDomain and non-positive dimensions wrap
// ErrInvalidArgument; in both cases nothing is computed.
func ToTensor(img image.Image, width, height int, mean, std float32) (*Tensor, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: tensor size must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	if std == 0 {
		return nil, fmt.Errorf("%w: std must be non-zero", ErrDomain)
	}

	src := imaging.Clone(ScaleToExact(img, width, height))

	data := make([]float32, 0, width*height*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := src.PixOffset(x, y)
			data = append(data,
				(float32(src.Pix[i+0])-mean)/std,
				(float32(src.Pix[i+1])-mean)/std,
				(float32(src.Pix[i+2])-mean)/std,
			)
		}
	}

	return &Tensor{Width: width, Height: height, Data: data}, nil
}

// FromTensor rebuilds an opaque image from a model output shaped
// [1][rows][cols][3] with channel values in [0, 1].
//
// Output position [0][x][y] becomes the pixel at column y, row x. Each
// channel is multiplied by 255 and truncated, then clamped to [0, 255].
// Positions that fall outside the width x height canvas, an empty batch, or
// a pixel with fewer than three channels wrap ErrInvalidArgument. Pixels the
// output does not cover stay transparent black.
func FromTensor(out [][][][]float32, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty tensor batch", ErrInvalidArgument)
	}

	rows := out[0]
	if len(rows) > height {
		return nil, fmt.Errorf("%w: tensor has %d rows, image height is %d", ErrInvalidArgument, len(rows), height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for x, row := range rows {
		if len(row) > width {
			return nil, fmt.Errorf("%w: tensor row %d has %d columns, image width is %d", ErrInvalidArgument, x, len(row), width)
		}
		for y, px := range row {
			if len(px) < 3 {
				return nil, fmt.Errorf("%w: tensor position (%d,%d) has %d channels", ErrInvalidArgument, x, y, len(px))
			}
			img.SetNRGBA(y, x, color.NRGBA{
				R: unitToByte(px[0]),
				G: unitToByte(px[1]),
				B: unitToByte(px[2]),
				A: 255,
			})
		}
	}
	return img, nil
}

// unitToByte maps a [0,1] channel value to a byte by truncation.
func unitToByte(v float32) uint8 {
	f := v * 255
	switch {
	case math.IsNaN(float64(f)) || f <= 0:
		return 0
	case f >= 255:
		return 255
	}
	return uint8(f)
}
