package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/png"
)

// CameraPNG contains the raw PNG bytes of the capture button icon.
//
//go:embed camera.png
var CameraPNG []byte

// CameraImage decodes the embedded PNG into an image.Image.
func CameraImage() (image.Image, error) {
	if len(CameraPNG) == 0 {
		return nil, fmt.Errorf("embedded camera.png is empty")
	}
	img, err := png.Decode(bytes.NewReader(CameraPNG))
	if err != nil {
		return nil, err
	}
	return img, nil
}
