package assets

import "testing"

func TestCameraImage(t *testing.T) {
	img, err := CameraImage()
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("unexpected icon size %v", b)
	}
}
