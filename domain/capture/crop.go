package capture

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// ErrEmptyRegion is returned when a crop rectangle has no area.
var ErrEmptyRegion = errors.New("capture: empty crop region")

// Crop copies the block of src at r into a new image of exactly r's size
// whose origin is (0,0). Parts of r outside src.Bounds() stay fully
// transparent; a region entirely outside the source yields a blank image.
func Crop(src image.Image, r image.Rectangle) (*image.RGBA, error) {
	if r.Empty() {
		return nil, fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	cropInto(dst, src, r)
	return dst, nil
}

// cropInto draws the visible part of r from src into dst, which must be
// r.Size() anchored at the origin and already cleared.
func cropInto(dst *image.RGBA, src image.Image, r image.Rectangle) {
	if src == nil {
		return
	}
	visible := r.Intersect(src.Bounds())
	if visible.Empty() {
		return
	}
	target := visible.Sub(r.Min)
	draw.Draw(dst, target, src, visible.Min, draw.Src)
}

// Cropper crops raster captures and encodes them for hand-off.
type Cropper struct {
	Format  Format
	Quality int
}

// CropEncode crops r out of src and returns the encoded result. The crop
// destination is pooled and released once encoded.
func (c Cropper) CropEncode(src image.Image, r image.Rectangle) (EncodedImage, error) {
	if r.Empty() {
		return "", fmt.Errorf("%w: %v", ErrEmptyRegion, r)
	}
	dst := acquireFrame(image.Rect(0, 0, r.Dx(), r.Dy()))
	defer recycleFrame(dst)
	cropInto(dst, src, r)
	return Encode(dst, c.Format, c.Quality)
}
