package imaging

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestReadOrientation_NoEXIF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"png", encodePNG(t, createInMemoryImage(4, 4, color.White))},
		{"jpeg", encodeJPEG(t, createInMemoryImage(4, 4, color.White))},
		{"garbage", []byte("definitely not exif")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := ReadOrientation(bytes.NewReader(tt.data))
			if ok {
				t.Error("expected no orientation tag")
			}
			if o != DefaultOrientation {
				t.Errorf("got %s, want %s", o, DefaultOrientation)
			}
		})
	}
}

func TestWriteOrientation_RoundTrip(t *testing.T) {
	for _, code := range []OrientationCode{
		OrientationNormal,
		OrientationRotate180,
		OrientationTranspose,
		OrientationRotate270,
	} {
		t.Run(code.String(), func(t *testing.T) {
			path := writeTempFile(t, "exif-*.jpg", encodeJPEG(t, createInMemoryImage(16, 8, color.RGBA{90, 90, 90, 255})))

			if err := WriteOrientation(path, code); err != nil {
				t.Fatalf("WriteOrientation failed: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read back: %v", err)
			}
			got, ok := ReadOrientation(bytes.NewReader(data))
			if !ok {
				t.Fatal("orientation tag not found after writing")
			}
			if got != code {
				t.Errorf("got %s, want %s", got, code)
			}
		})
	}
}

func TestWriteOrientation_ChangesDecodedShape(t *testing.T) {
	path := writeTempFile(t, "shape-*.jpg", encodeJPEG(t, createInMemoryImage(16, 8, color.RGBA{10, 20, 30, 255})))

	// untagged: default rotate-90 swaps the dimensions
	before, err := DecodeOrientedFile(path)
	if err != nil {
		t.Fatalf("DecodeOrientedFile failed: %v", err)
	}
	if b := before.Image.Bounds(); b.Dx() != 8 || b.Dy() != 16 {
		t.Fatalf("untagged dimensions: got %dx%d, want 8x16", b.Dx(), b.Dy())
	}

	if err := WriteOrientation(path, OrientationNormal); err != nil {
		t.Fatalf("WriteOrientation failed: %v", err)
	}

	after, err := DecodeOrientedFile(path)
	if err != nil {
		t.Fatalf("DecodeOrientedFile failed: %v", err)
	}
	if !after.Tagged || after.Orientation != OrientationNormal {
		t.Errorf("orientation: got %s tagged=%v", after.Orientation, after.Tagged)
	}
	if b := after.Image.Bounds(); b.Dx() != 16 || b.Dy() != 8 {
		t.Errorf("tagged dimensions: got %dx%d, want 16x8", b.Dx(), b.Dy())
	}
}

func TestWriteOrientation_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		err := WriteOrientation(filepath.Join(t.TempDir(), "missing.jpg"), OrientationNormal)
		if !errors.Is(err, ErrIO) {
			t.Errorf("got error %v, want ErrIO", err)
		}
	})

	t.Run("invalid code", func(t *testing.T) {
		path := writeTempFile(t, "code-*.jpg", encodeJPEG(t, createInMemoryImage(4, 4, color.White)))
		err := WriteOrientation(path, 99)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("got error %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("not a jpeg", func(t *testing.T) {
		path := writeTempFile(t, "text-*.jpg", []byte("plain text"))
		if err := WriteOrientation(path, OrientationNormal); err == nil {
			t.Error("WriteOrientation should fail for a non-JPEG file")
		}
	})
}
