// Package texture decodes image files into pixel buffers ready for GPU upload.
package texture

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "golang.org/x/image/webp" // WebP decoder registration
	"golang.org/x/image/draw"
)

// Image is a tightly packed, row-major pixel buffer.
// The first row is the top of the image unless it was loaded with FlipY.
type Image struct {
	Width    int
	Height   int
	Channels int // 3 (RGB) or 4 (RGBA)
	Pixels   []byte
}

// Options controls decoding.
type Options struct {
	// FlipY stores rows bottom-up, matching OpenGL's texture origin.
	FlipY bool
}

// LoadError reports an image that could not be loaded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("texture %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ErrEmpty is returned for images with no pixels.
var ErrEmpty = errors.New("image has no pixels")

// Load reads and decodes the image file at path.
// Any failure is returned as a *LoadError.
func Load(path string, opts Options) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return decode(f, path, opts)
}

// LoadFS is Load reading from fsys.
func LoadFS(fsys fs.FS, path string, opts Options) (*Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return decode(f, path, opts)
}

func decode(r io.Reader, path string, opts Options) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("decoding: %w", err)}
	}
	out, err := FromImage(img, opts)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return out, nil
}

// FromImage converts a decoded image into a packed buffer. Opaque images
// become RGB, everything else RGBA.
func FromImage(img image.Image, opts Options) (*Image, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}

	rgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)

	channels := 4
	if rgba.Opaque() {
		channels = 3
	}

	out := &Image{
		Width:    b.Dx(),
		Height:   b.Dy(),
		Channels: channels,
		Pixels:   make([]byte, 0, b.Dx()*b.Dy()*channels),
	}

	for row := 0; row < out.Height; row++ {
		y := row
		if opts.FlipY {
			y = out.Height - 1 - row
		}
		line := rgba.Pix[y*rgba.Stride : y*rgba.Stride+out.Width*4]
		if channels == 4 {
			out.Pixels = append(out.Pixels, line...)
			continue
		}
		for x := 0; x < len(line); x += 4 {
			out.Pixels = append(out.Pixels, line[x], line[x+1], line[x+2])
		}
	}
	return out, nil
}

// Stride returns the number of bytes per row.
func (i *Image) Stride() int {
	return i.Width * i.Channels
}
