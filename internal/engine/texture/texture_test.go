package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"golang.org/x/image/bmp"
)

// gradient returns a w x h image whose pixel (x, y) has R=x, G=y.
func gradient(w, h int, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 7, A: alpha})
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("writing png: %v", err)
	}
}

func TestLoadOpaquePNGIsRGB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opaque.png")
	writePNG(t, path, gradient(4, 3, 255))

	img, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Width != 4 || img.Height != 3 {
		t.Errorf("size = %dx%d, want 4x3", img.Width, img.Height)
	}
	if img.Channels != 3 {
		t.Errorf("channels = %d, want 3", img.Channels)
	}
	if len(img.Pixels) != 4*3*3 {
		t.Errorf("pixel bytes = %d, want %d", len(img.Pixels), 4*3*3)
	}
	// Pixel (2, 1) in row-major order.
	i := 1*img.Stride() + 2*3
	if img.Pixels[i] != 2 || img.Pixels[i+1] != 1 || img.Pixels[i+2] != 7 {
		t.Errorf("pixel (2, 1) = %v, want [2 1 7]", img.Pixels[i:i+3])
	}
}

func TestLoadTranslucentPNGIsRGBA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alpha.png")
	writePNG(t, path, gradient(2, 2, 128))

	img, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Channels != 4 {
		t.Errorf("channels = %d, want 4", img.Channels)
	}
	if img.Pixels[3] != 128 {
		t.Errorf("alpha = %d, want 128 (non-premultiplied)", img.Pixels[3])
	}
	if img.Pixels[4] != 1 {
		t.Errorf("red of pixel (1, 0) = %d, want 1", img.Pixels[4])
	}
}

func TestFlipY(t *testing.T) {
	img, err := FromImage(gradient(3, 5, 255), Options{FlipY: true})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	// First stored row is the bottom source row (G = 4).
	if g := img.Pixels[1]; g != 4 {
		t.Errorf("first row green = %d, want 4", g)
	}
	last := (img.Height - 1) * img.Stride()
	if g := img.Pixels[last+1]; g != 0 {
		t.Errorf("last row green = %d, want 0", g)
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	src := gradient(8, 8, 255).SubImage(image.Rect(2, 3, 5, 6))
	img, err := FromImage(src, Options{})
	if err != nil {
		t.Fatalf("FromImage failed: %v", err)
	}
	if img.Width != 3 || img.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", img.Width, img.Height)
	}
	if img.Pixels[0] != 2 || img.Pixels[1] != 3 {
		t.Errorf("origin pixel = %v, want R=2 G=3", img.Pixels[:3])
	}
}

func TestFromImageEmpty(t *testing.T) {
	_, err := FromImage(image.NewNRGBA(image.Rect(0, 0, 0, 0)), Options{})
	if !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestLoadBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, gradient(5, 2, 255)); err != nil {
		t.Fatalf("encoding bmp: %v", err)
	}
	fsys := fstest.MapFS{"tex/grad.bmp": {Data: buf.Bytes()}}

	img, err := LoadFS(fsys, "tex/grad.bmp", Options{})
	if err != nil {
		t.Fatalf("LoadFS failed: %v", err)
	}
	if img.Width != 5 || img.Height != 2 || img.Channels != 3 {
		t.Errorf("got %dx%dx%d, want 5x2x3", img.Width, img.Height, img.Channels)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.jpg"), Options{})

	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LoadError", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("err = %v, want to wrap fs.ErrNotExist", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	fsys := fstest.MapFS{"bad.png": {Data: []byte("definitely not a png")}}

	_, err := LoadFS(fsys, "bad.png", Options{})
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("err = %v, want *LoadError", err)
	}
	if le.Path != "bad.png" {
		t.Errorf("LoadError.Path = %q, want bad.png", le.Path)
	}
}
