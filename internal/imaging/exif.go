package imaging

import (
	"bytes"
	"fmt"
	"io"
	"os"

	exifw "github.com/dsoprea/go-exif/v3"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
	"github.com/rwcarlsen/goexif/exif"
)

// ReadOrientation extracts the EXIF orientation tag from an image stream.
//
// The boolean is false when the stream has no EXIF block or no orientation
// tag, in which case the returned code is DefaultOrientation. Non-critical
// EXIF parse errors (a damaged maker note, for example) do not hide a valid
// orientation tag.
func ReadOrientation(r io.Reader) (OrientationCode, bool) {
	x, err := exif.Decode(r)
	if x == nil || (err != nil && exif.IsCriticalError(err)) {
		return DefaultOrientation, false
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return DefaultOrientation, false
	}

	v, err := tag.Int(0)
	if err != nil {
		return DefaultOrientation, false
	}
	return OrientationCode(v), true
}

// WriteOrientation sets the EXIF orientation tag of the JPEG file at path.
//
// An EXIF block is created if the file has none. The file is rewritten in a
// single attempt; failures to read or write it wrap ErrIO and an unparseable
// JPEG structure wraps ErrDecode. Codes outside the EXIF range are refused
// with ErrInvalidArgument before the file is touched.
func WriteOrientation(path string, o OrientationCode) error {
	if !o.Valid() {
		return fmt.Errorf("%w: cannot write orientation %s", ErrInvalidArgument, o)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: failed to stat %s: %w", ErrIO, path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrIO, path, err)
	}

	out, err := setOrientation(data, o)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, path, err)
	}
	return nil
}

// setOrientation returns a copy of the JPEG data with the orientation tag set.
func setOrientation(data []byte, o OrientationCode) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	mc, err := jmp.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse jpeg structure: %w", ErrDecode, err)
	}

	sl, ok := mc.(*jpegstructure.SegmentList)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected jpeg media context %T", ErrDecode, mc)
	}

	rootIb, err := sl.ConstructExifBuilder()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load exif: %w", ErrDecode, err)
	}

	ifdIb, err := exifw.GetOrCreateIbFromRootIb(rootIb, "IFD0")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open IFD0: %w", ErrDecode, err)
	}

	if err := ifdIb.SetStandardWithName("Orientation", []uint16{uint16(o)}); err != nil {
		return nil, fmt.Errorf("failed to set orientation tag: %w", err)
	}

	if err := sl.SetExif(rootIb); err != nil {
		return nil, fmt.Errorf("failed to store exif: %w", err)
	}

	var buf bytes.Buffer
	if err := sl.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
