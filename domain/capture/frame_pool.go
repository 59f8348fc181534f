package capture

import (
	"image"
	"sync"
)

// Crop destinations are short-lived: they are filled, encoded and dropped.
// Pooling their backing slices keeps repeated captures of similar regions
// from allocating a fresh buffer every time.

var framePool sync.Pool // stores *image.RGBA

// acquireFrame returns a zeroed RGBA image sized to rect with Stride width*4.
func acquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		return &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	}
	img.Stride = w * 4
	img.Rect = rect
	img.Pix = img.Pix[:needed]
	// reused buffers carry the previous crop; uncovered pixels must be transparent
	clear(img.Pix)
	return img
}

// recycleFrame returns img to the pool. The caller must not touch img afterwards.
func recycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
