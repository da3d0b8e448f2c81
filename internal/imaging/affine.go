package imaging

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// AffineTransform is a 2D affine transformation in raster coordinates
// (origin top-left, Y growing downward):
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
//
// so that x' = a*x + b*y + c and y' = d*x + e*y + f.
//
// The zero value is not a valid transform; start from IdentityTransform.
type AffineTransform struct {
	a, b, c float64
	d, e, f float64
}

// IdentityTransform returns the transform that leaves every point in place.
func IdentityTransform() AffineTransform {
	return AffineTransform{a: 1, e: 1}
}

func translation(tx, ty float64) AffineTransform {
	return AffineTransform{a: 1, c: tx, e: 1, f: ty}
}

func scaling(sx, sy float64) AffineTransform {
	return AffineTransform{a: sx, e: sy}
}

// rotation returns a clockwise rotation about the origin. Quarter turns are
// built from exact values so that pixel mapping stays lossless.
func rotation(degrees float64) AffineTransform {
	var sin, cos float64
	switch math.Mod(math.Mod(degrees, 360)+360, 360) {
	case 0:
		sin, cos = 0, 1
	case 90:
		sin, cos = 1, 0
	case 180:
		sin, cos = 0, -1
	case 270:
		sin, cos = -1, 0
	default:
		rad := degrees * math.Pi / 180
		sin, cos = math.Sin(rad), math.Cos(rad)
	}
	return AffineTransform{a: cos, b: -sin, d: sin, e: cos}
}

// Multiply returns m * other: the result applies other first, then m.
func (m AffineTransform) Multiply(other AffineTransform) AffineTransform {
	return AffineTransform{
		a: m.a*other.a + m.b*other.d,
		b: m.a*other.b + m.b*other.e,
		c: m.a*other.c + m.b*other.f + m.c,
		d: m.d*other.a + m.e*other.d,
		e: m.d*other.b + m.e*other.e,
		f: m.d*other.c + m.e*other.f + m.f,
	}
}

// PostRotate appends a clockwise rotation by degrees after m.
func (m AffineTransform) PostRotate(degrees float64) AffineTransform {
	return rotation(degrees).Multiply(m)
}

// PostScale appends a scale by (sx, sy) after m. Negative factors mirror.
func (m AffineTransform) PostScale(sx, sy float64) AffineTransform {
	return scaling(sx, sy).Multiply(m)
}

// Invert returns the inverse transform, or false if m is singular.
func (m AffineTransform) Invert() (AffineTransform, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return AffineTransform{}, false
	}
	inv := 1.0 / det
	return AffineTransform{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// TransformPoint maps (x, y) through m.
func (m AffineTransform) TransformPoint(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

// Matrix returns the six coefficients in row order: a, b, c, d, e, f.
func (m AffineTransform) Matrix() [6]float64 {
	return [6]float64{m.a, m.b, m.c, m.d, m.e, m.f}
}

// IsIdentity reports whether m leaves every point in place.
func (m AffineTransform) IsIdentity() bool {
	return m == IdentityTransform()
}

// Apply renders img through m and returns a new image.
//
// The output canvas is the bounding box of the transformed source rectangle,
// shifted so that its top-left corner sits at the origin. Each destination
// pixel takes the source pixel under its mapped center, which is exact for
// the quarter turns and mirrors produced by TransformForOrientation.
// The input is never modified.
func (m AffineTransform) Apply(img image.Image) *image.NRGBA {
	src := imaging.Clone(img)
	if m.IsIdentity() {
		return src
	}

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	minX, minY, maxX, maxY := m.boundingBox(float64(w), float64(h))
	dw := int(math.Round(maxX - minX))
	dh := int(math.Round(maxY - minY))

	toDst := translation(-minX, -minY).Multiply(m)
	toSrc, ok := toDst.Invert()
	if !ok {
		return src
	}

	dst := image.NewNRGBA(image.Rect(0, 0, dw, dh))
	for dy := 0; dy < dh; dy++ {
		for dx := 0; dx < dw; dx++ {
			sx, sy := toSrc.TransformPoint(float64(dx)+0.5, float64(dy)+0.5)
			ix, iy := int(math.Floor(sx)), int(math.Floor(sy))
			if ix < 0 || iy < 0 || ix >= w || iy >= h {
				continue
			}
			si := src.PixOffset(ix, iy)
			di := dst.PixOffset(dx, dy)
			copy(dst.Pix[di:di+4], src.Pix[si:si+4])
		}
	}
	return dst
}

// boundingBox returns the extent of the rectangle [0,w]x[0,h] after mapping.
func (m AffineTransform) boundingBox(w, h float64) (minX, minY, maxX, maxY float64) {
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range corners {
		x, y := m.TransformPoint(p[0], p[1])
		minX = math.Min(minX, x)
		minY = math.Min(minY, y)
		maxX = math.Max(maxX, x)
		maxY = math.Max(maxY, y)
	}
	return minX, minY, maxX, maxY
}
