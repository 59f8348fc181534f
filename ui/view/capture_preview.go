package view

import (
	"image"

	"github.com/soocke/snapnote/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CapturePreview shows a scaled copy of the last capture.
type CapturePreview interface {
	UpdateCapture(img image.Image)
	Reset()
}

type capturePreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

// Internal state tracks the current preview photo so we can dispose the old
// image before replacing it, preventing accumulation of off-screen image data.

// NewCapturePreview creates the preview label, grids it and returns the view.
func NewCapturePreview(row int) CapturePreview {
	photo := NewPhoto(Data(images.EncodePNG(placeholder())))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &capturePreview{label: label, prevPhoto: photo}
}

const (
	// Max preview dimensions; scaling is proportional.
	maxPreviewW = 400
	maxPreviewH = 225
)

func placeholder() image.Image { return image.NewRGBA(image.Rect(0, 0, 200, 120)) }

func (v *capturePreview) UpdateCapture(img image.Image) {
	if v.label == nil || img == nil {
		return
	}
	v.show(images.ScaleToFit(img, maxPreviewW, maxPreviewH))
}

func (v *capturePreview) Reset() {
	if v.label == nil {
		return
	}
	v.show(placeholder())
}

func (v *capturePreview) show(img image.Image) {
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.label.Configure(Image(v.prevPhoto))
}
