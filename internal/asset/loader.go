// Package asset loads the cube sprites from disk or from the built-in set.
//
// PNG, GIF and JPEG decoding come from the standard library; BMP and WEBP
// decoders are registered from golang.org/x/image.
package asset

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF sprites
	_ "image/jpeg" // JPEG sprites
	_ "image/png"  // PNG sprites
	"io"
	"io/fs"
	"os"

	_ "golang.org/x/image/bmp"  // BMP sprites
	_ "golang.org/x/image/webp" // WEBP sprites

	"github.com/vovakirdan/thecubes/internal/core"
)

// LoadError reports a sprite that could not be opened or decoded.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("asset: cannot load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load decodes the image at path and returns it with its bounding
// rectangle placed at the origin.
func Load(path string) (image.Image, core.Rect, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.Rect{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return decode(path, f)
}

// LoadFS is Load for a file inside fsys.
func LoadFS(fsys fs.FS, path string) (image.Image, core.Rect, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, core.Rect{}, &LoadError{Path: path, Err: err}
	}
	defer f.Close()
	return decode(path, f)
}

func decode(path string, r io.Reader) (image.Image, core.Rect, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, core.Rect{}, &LoadError{Path: path, Err: err}
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, core.Rect{}, &LoadError{Path: path, Err: fmt.Errorf("empty image")}
	}
	return img, core.NewRect(0, 0, b.Dx(), b.Dy()), nil
}
