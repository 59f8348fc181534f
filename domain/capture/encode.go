package capture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"strings"
)

// ErrUnsupportedFormat is returned for encodings other than PNG and JPEG.
var ErrUnsupportedFormat = errors.New("capture: unsupported image format")

// Format names an output encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

const defaultJPEGQuality = 85

// ParseFormat accepts "png", "jpeg" or "jpg" in any case. Empty means PNG.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// MediaType returns the MIME type of f.
func (f Format) MediaType() string {
	if f == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// EncodedImage is a self-contained data URL: "data:<mime>;base64,<payload>".
type EncodedImage string

const dataURLPrefix = "data:"

// Encode renders img as a base64 data URL. quality applies to JPEG only;
// values <= 0 use the default.
func Encode(img image.Image, f Format, quality int) (EncodedImage, error) {
	if img == nil {
		return "", errors.New("capture: nil image")
	}
	if f == "" {
		f = FormatPNG
	}
	var buf bytes.Buffer
	switch f {
	case FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return "", fmt.Errorf("encode png: %w", err)
		}
	case FormatJPEG:
		if quality <= 0 || quality > 100 {
			quality = defaultJPEGQuality
		}
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return "", fmt.Errorf("encode jpeg: %w", err)
		}
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	var sb strings.Builder
	sb.Grow(len(dataURLPrefix) + len(f.MediaType()) + 8 + base64.StdEncoding.EncodedLen(buf.Len()))
	sb.WriteString(dataURLPrefix)
	sb.WriteString(f.MediaType())
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(buf.Bytes()))
	return EncodedImage(sb.String()), nil
}

func (e EncodedImage) split() (mediaType, payload string, err error) {
	s := string(e)
	if !strings.HasPrefix(s, dataURLPrefix) {
		return "", "", errors.New("capture: not a data URL")
	}
	meta, payload, ok := strings.Cut(s[len(dataURLPrefix):], ",")
	if !ok {
		return "", "", errors.New("capture: data URL has no payload")
	}
	mediaType, enc, _ := strings.Cut(meta, ";")
	if enc != "base64" {
		return "", "", fmt.Errorf("capture: unsupported data URL encoding %q", enc)
	}
	return mediaType, payload, nil
}

// MediaType returns the MIME type recorded in the data URL, or "" if malformed.
func (e EncodedImage) MediaType() string {
	mt, _, err := e.split()
	if err != nil {
		return ""
	}
	return mt
}

// Bytes returns the decoded image file bytes.
func (e EncodedImage) Bytes() ([]byte, error) {
	_, payload, err := e.split()
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.DecodeString(payload)
}

// Decode parses the embedded image.
func (e EncodedImage) Decode() (image.Image, error) {
	b, err := e.Bytes()
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	return img, err
}
