package capture

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/soocke/snapnote/domain/capture"
	"github.com/soocke/snapnote/domain/geometry"
)

// ErrUnknownSurface is returned by Open for an unrecognised kind.
var ErrUnknownSurface = errors.New("capture: unknown surface kind")

// Kind selects a surface provider.
type Kind string

const (
	KindScreen   Kind = "screen"
	KindDisplays Kind = "displays"
	KindFile     Kind = "file"
)

// Provider is a render surface that can also report its extent.
type Provider interface {
	domain.Surface
	Viewport() (geometry.Viewport, error)
}

// Open returns the provider for kind. path is used only by KindFile.
func Open(kind string, path string) (Provider, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(kind))) {
	case "", KindScreen:
		return NewScreenSurface(), nil
	case KindDisplays:
		return NewDisplaySurface(), nil
	case KindFile:
		if path == "" {
			return nil, fmt.Errorf("%w: file surface needs a path", ErrUnknownSurface)
		}
		return NewFileSurface(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSurface, kind)
	}
}
