package imaging

import "fmt"

// OrientationCode is an EXIF orientation tag value describing how the stored
// pixel grid must be rotated or mirrored for display.
type OrientationCode int

// EXIF orientation values.
const (
	OrientationUndefined      OrientationCode = 0
	OrientationNormal         OrientationCode = 1
	OrientationFlipHorizontal OrientationCode = 2
	OrientationRotate180      OrientationCode = 3
	OrientationFlipVertical   OrientationCode = 4
	OrientationTranspose      OrientationCode = 5 // mirror X, then rotate 270
	OrientationRotate90       OrientationCode = 6
	OrientationTransverse     OrientationCode = 7 // mirror X, then rotate 90
	OrientationRotate270      OrientationCode = 8
)

// DefaultOrientation is assumed when a file carries no orientation tag.
// Note that this is Rotate90, not Normal.
const DefaultOrientation = OrientationRotate90

var orientationNames = map[OrientationCode]string{
	OrientationUndefined:      "undefined",
	OrientationNormal:         "normal",
	OrientationFlipHorizontal: "flip-horizontal",
	OrientationRotate180:      "rotate-180",
	OrientationFlipVertical:   "flip-vertical",
	OrientationTranspose:      "transpose",
	OrientationRotate90:       "rotate-90",
	OrientationTransverse:     "transverse",
	OrientationRotate270:      "rotate-270",
}

// String returns the orientation name, or "invalid(N)" for unknown codes.
func (o OrientationCode) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", int(o))
}

// Valid reports whether o is one of the EXIF-defined codes.
func (o OrientationCode) Valid() bool {
	_, ok := orientationNames[o]
	return ok
}

// TransformForOrientation returns the transform that turns a stored pixel
// grid with orientation o into its display orientation.
//
// Rotations are clockwise. For codes outside the EXIF range the identity
// transform is returned together with an error wrapping
// ErrInvalidOrientation; the transform is always usable.
func TransformForOrientation(o OrientationCode) (AffineTransform, error) {
	m := IdentityTransform()

	switch o {
	case OrientationNormal, OrientationUndefined:
	case OrientationRotate90:
		m = m.PostRotate(90)
	case OrientationRotate180:
		m = m.PostRotate(180)
	case OrientationRotate270:
		m = m.PostRotate(270)
	case OrientationFlipHorizontal:
		m = m.PostScale(-1, 1)
	case OrientationFlipVertical:
		m = m.PostScale(1, -1)
	case OrientationTranspose:
		m = m.PostScale(-1, 1).PostRotate(270)
	case OrientationTransverse:
		m = m.PostScale(-1, 1).PostRotate(90)
	default:
		return m, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return m, nil
}

// OrientationFromDegrees returns the orientation code for a capture rotated
// clockwise by degrees and optionally mirrored.
//
// degrees must be one of 0, 90, 180 or 270; anything else wraps
// ErrInvalidArgument.
func OrientationFromDegrees(degrees int, mirrored bool) (OrientationCode, error) {
	switch {
	case degrees == 0 && !mirrored:
		return OrientationNormal, nil
	case degrees == 0 && mirrored:
		return OrientationFlipHorizontal, nil
	case degrees == 180 && !mirrored:
		return OrientationRotate180, nil
	case degrees == 180 && mirrored:
		return OrientationFlipVertical, nil
	case degrees == 90 && !mirrored:
		return OrientationRotate90, nil
	case degrees == 90 && mirrored:
		return OrientationTranspose, nil
	case degrees == 270 && !mirrored:
		return OrientationRotate270, nil
	case degrees == 270 && mirrored:
		return OrientationTransverse, nil
	}
	return OrientationUndefined, fmt.Errorf("%w: rotation must be 0, 90, 180 or 270, got %d", ErrInvalidArgument, degrees)
}
