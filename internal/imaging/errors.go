package imaging

import "errors"

// Error categories returned by this package. Callers match them with errors.Is;
// the underlying cause is always wrapped alongside.
var (
	// ErrDecode means the bytes are not a supported raster format or the
	// metadata container could not be parsed.
	ErrDecode = errors.New("decode error")

	// ErrIO means a file could not be opened, read or written.
	ErrIO = errors.New("io error")

	// ErrInvalidOrientation means an orientation code outside the EXIF range.
	// It is the only error recovered locally: the identity transform is used.
	ErrInvalidOrientation = errors.New("invalid orientation")

	// ErrInvalidArgument means the caller passed an out-of-contract value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain means a normalization divisor of zero.
	ErrDomain = errors.New("domain error")
)
