package capture

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/soocke/snapnote/domain/geometry"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// FileSurface renders a still image from disk. It is re-read on every
// Render so edits to the file show up in the next capture.
type FileSurface struct {
	path string
}

func NewFileSurface(path string) *FileSurface { return &FileSurface{path: path} }

func (f *FileSurface) Render(ctx context.Context) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.decode()
}

func (f *FileSurface) Viewport() (geometry.Viewport, error) {
	img, err := f.decode()
	if err != nil {
		return geometry.Viewport{}, err
	}
	b := img.Bounds()
	return geometry.Viewport{Width: b.Dx(), Height: b.Dy()}, nil
}

func (f *FileSurface) decode() (image.Image, error) {
	fh, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("open surface image: %w", err)
	}
	defer fh.Close()
	img, _, err := image.Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("decode surface image %s: %w", f.path, err)
	}
	return img, nil
}
