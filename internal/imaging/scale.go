package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ScaleToExact stretches img to exactly width x height.
//
// If img already has those dimensions it is returned as is. Otherwise the
// full source rectangle is mapped onto the full target rectangle with
// bilinear resampling; the aspect ratio is not preserved and nothing is
// letterboxed. The result of a resize is always an *image.NRGBA.
func ScaleToExact(img image.Image, width, height int) image.Image {
	bounds := img.Bounds()
	if bounds.Dx() == width && bounds.Dy() == height {
		return img
	}
	return imaging.Resize(img, width, height, imaging.Linear)
}
