package imaging

import (
	"math"
	"testing"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAffineTransform_RotateIsClockwise(t *testing.T) {
	m := IdentityTransform().PostRotate(90)
	x, y := m.TransformPoint(1, 0)
	if !approxEqual(x, 0) || !approxEqual(y, 1) {
		t.Errorf("(1,0) rotated 90: got (%v,%v), want (0,1)", x, y)
	}
}

func TestAffineTransform_QuarterTurnsAreExact(t *testing.T) {
	for _, deg := range []float64{90, 180, 270, -90, 450} {
		for _, v := range IdentityTransform().PostRotate(deg).Matrix() {
			if v != math.Trunc(v) {
				t.Errorf("rotate %v: coefficient %v is not exact", deg, v)
			}
		}
	}
}

func TestAffineTransform_PostOrder(t *testing.T) {
	// mirror X first, then rotate 90: (x,y) -> (-x,y) -> (-y,-x)
	m := IdentityTransform().PostScale(-1, 1).PostRotate(90)
	x, y := m.TransformPoint(2, 3)
	if !approxEqual(x, -3) || !approxEqual(y, -2) {
		t.Errorf("got (%v,%v), want (-3,-2)", x, y)
	}
}

func TestAffineTransform_Invert(t *testing.T) {
	m := IdentityTransform().PostScale(2, 3).PostRotate(30)
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("Invert reported singular matrix")
	}
	x, y := inv.TransformPoint(m.TransformPoint(7, -4))
	if !approxEqual(x, 7) || !approxEqual(y, -4) {
		t.Errorf("round trip: got (%v,%v), want (7,-4)", x, y)
	}

	if _, ok := IdentityTransform().PostScale(0, 1).Invert(); ok {
		t.Error("Invert should fail for a singular matrix")
	}
}

func TestAffineTransform_ApplyDoesNotModifyInput(t *testing.T) {
	src := createGradientImage(4, 2)
	before := append([]uint8(nil), src.Pix...)

	IdentityTransform().PostRotate(90).Apply(src)

	for i := range before {
		if src.Pix[i] != before[i] {
			t.Fatal("Apply modified its input")
		}
	}
}

func TestAffineTransform_ApplyIdentityCopies(t *testing.T) {
	src := createGradientImage(2, 2)
	out := IdentityTransform().Apply(src)
	if out == src {
		t.Error("Apply should return a new image")
	}
	sameImage(t, out, src)
}
