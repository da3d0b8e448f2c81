// Package imaging converts camera and file images into model input tensors and
// model output back into images.
//
// The package covers the full path an image takes around an on-device model:
// decoding with EXIF orientation correction, stretching to the model's input
// size, normalizing into a float tensor, rebuilding an image from the model's
// output, and writing orientation metadata or album copies back to disk.
// All operations work with standard Go image types and use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Orientation
//
// EXIF orientation codes map to affine transforms with TransformForOrientation.
// Rotations are clockwise as seen on screen. Files without an orientation tag
// are treated as DefaultOrientation (Rotate90). An out-of-range code is the one
// error this package recovers from: the identity transform is used and the
// error is logged.
//
// # Tensors
//
// ToTensor emits width*height*3 float32 values in reading order, R, G, B per
// pixel, each computed as (v - mean) / std. FromTensor reads a
// [1][rows][cols][3] output and writes position [0][x][y] to image column y,
// row x.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Every other function is
// stateless, allocates its own buffers, and never modifies its inputs.
//
// # Error Handling
//
// Errors wrap one of ErrDecode, ErrIO, ErrInvalidOrientation,
// ErrInvalidArgument or ErrDomain together with the underlying cause; match
// them with errors.Is. Nothing is retried.
package imaging
