package imaging

import (
	"fmt"
	"image"
	"log"
	"os"

	"github.com/anthonynsimon/bild/imgio"
)

// FullQuality is the JPEG quality used for album copies.
const FullQuality = 100

// Album is a directory that receives finished images as JPEG files.
type Album struct {
	Dir string
}

// NewAlbum returns an album rooted at dir. The directory is created on the
// first Save.
func NewAlbum(dir string) *Album {
	return &Album{Dir: dir}
}

// Save writes img into the album as a full-quality JPEG under a fresh name
// and returns the file path. Failures wrap ErrIO.
func (a *Album) Save(img image.Image) (string, error) {
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", fmt.Errorf("%w: failed to create album directory: %w", ErrIO, err)
	}

	// Reserve a unique name, then let the encoder replace the empty file.
	f, err := os.CreateTemp(a.Dir, "IMG_*.jpg")
	if err != nil {
		return "", fmt.Errorf("%w: failed to create album file: %w", ErrIO, err)
	}
	path := f.Name()
	f.Close()

	if err := imgio.Save(path, img, imgio.JPEGEncoder(FullQuality)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: failed to save album image: %w", ErrIO, err)
	}

	log.Printf("Saved album image %s", path)
	return path, nil
}
