package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"log"
	"os"
	"sync"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// OrientedImage is a decoded image already rotated or mirrored into its
// display orientation, together with what was learned while decoding it.
type OrientedImage struct {
	// Image is the display-correct pixel grid.
	Image *image.NRGBA

	// Format is the name the decoder registered under ("jpeg", "png", ...).
	Format string

	// Orientation is the code that was applied.
	Orientation OrientationCode

	// Tagged is false when the file carried no orientation tag and
	// DefaultOrientation was applied instead.
	Tagged bool
}

// DecodeOriented decodes raster bytes and applies their EXIF orientation.
//
// Data that is not a supported raster format wraps ErrDecode; no partially
// decoded image is ever returned. An orientation tag outside the EXIF range is
// logged and the pixels are returned unrotated.
func DecodeOriented(data []byte) (*OrientedImage, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode image: %w", ErrDecode, err)
	}

	o, tagged := ReadOrientation(bytes.NewReader(data))

	m, err := TransformForOrientation(o)
	if err != nil {
		log.Printf("Ignoring orientation tag: %v", err)
	}

	return &OrientedImage{
		Image:       m.Apply(img),
		Format:      format,
		Orientation: o,
		Tagged:      tagged,
	}, nil
}

// DecodeOrientedFile reads the file at path and decodes it with DecodeOriented.
// A file that cannot be read wraps ErrIO.
func DecodeOrientedFile(path string) (*OrientedImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open image: %w", ErrIO, err)
	}
	return DecodeOriented(data)
}

// LoadAsset decodes an image bundled with the application. Assets are stored
// upright, so no orientation is applied.
func LoadAsset(fsys fs.FS, name string) (*image.NRGBA, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open asset: %w", ErrIO, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode asset %s: %w", ErrDecode, name, err)
	}
	return IdentityTransform().Apply(img), nil
}

// ImageCache provides thread-safe caching of orientation-corrected images so
// that repeated tool calls on the same file skip disk reads and decoding.
//
// Cached images remain in memory until explicitly removed via Evict() or
// Clear(). Callers must treat cached images as read-only; every transform in
// this package returns a new image.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*OrientedImage
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*OrientedImage),
	}
}

// Load retrieves an image from the cache or decodes it from disk with
// DecodeOrientedFile if not cached.
//
// The image is cached using the exact path string provided. Different paths
// to the same file (e.g., relative vs absolute) result in separate entries.
func (c *ImageCache) Load(path string) (*OrientedImage, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := DecodeOrientedFile(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*OrientedImage)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path. It must be
// called after the file's orientation tag is rewritten.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the display width in pixels, after orientation.
	Width int `json:"width"`

	// Height is the display height in pixels, after orientation.
	Height int `json:"height"`

	// Format is the decoder name: "jpeg", "png", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// Orientation is the EXIF orientation code that was applied.
	Orientation OrientationCode `json:"orientation"`

	// OrientationName is the readable form of Orientation.
	OrientationName string `json:"orientation_name"`

	// OrientationTagged is false when the default orientation was assumed.
	OrientationTagged bool `json:"orientation_tagged"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image through the cache and describes it.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to stat file: %w", ErrIO, err)
	}

	bounds := img.Image.Bounds()
	return &ImageInfo{
		Width:             bounds.Dx(),
		Height:            bounds.Dy(),
		Format:            img.Format,
		Orientation:       img.Orientation,
		OrientationName:   img.Orientation.String(),
		OrientationTagged: img.Tagged,
		FileSizeBytes:     stat.Size(),
	}, nil
}
