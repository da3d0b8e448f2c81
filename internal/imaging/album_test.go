package imaging

import (
	"errors"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAlbum_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "album")
	album := NewAlbum(dir)

	path, err := album.Save(createInMemoryImage(12, 7, color.RGBA{20, 40, 60, 255}))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("saved outside album: %s", path)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Errorf("expected .jpg suffix: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open saved image: %v", err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		t.Fatalf("saved file is not a JPEG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 7 {
		t.Errorf("dimensions: got %dx%d, want 12x7", b.Dx(), b.Dy())
	}
}

func TestAlbum_SaveUniqueNames(t *testing.T) {
	album := NewAlbum(t.TempDir())
	img := createInMemoryImage(2, 2, color.White)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		path, err := album.Save(img)
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if seen[path] {
			t.Fatalf("duplicate album path %s", path)
		}
		seen[path] = true
	}
}

func TestAlbum_SaveUnwritable(t *testing.T) {
	// a regular file where the album directory should be
	blocker := writeTempFile(t, "blocker-*", []byte("x"))
	album := NewAlbum(filepath.Join(blocker, "album"))

	if _, err := album.Save(createInMemoryImage(2, 2, color.White)); !errors.Is(err, ErrIO) {
		t.Errorf("got error %v, want ErrIO", err)
	}
}
