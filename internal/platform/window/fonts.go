package window

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts are the bundled typefaces selectable by name in the configuration.
var fonts = map[string][]byte{
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
	"gobold":    gobold.TTF,
}

// FontNames returns the bundled font names, sorted.
func FontNames() []string {
	names := make([]string, 0, len(fonts))
	for name := range fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFace returns a face of the named bundled font at size points.
func LoadFace(name string, size float64) (*text.GoTextFace, error) {
	ttf, ok := fonts[name]
	if !ok {
		return nil, fmt.Errorf("window: unknown font %q (available: %v)", name, FontNames())
	}
	if size <= 0 {
		return nil, fmt.Errorf("window: font size %v must be positive", size)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load font %q: %w", name, err)
	}
	return &text.GoTextFace{Source: src, Size: size}, nil
}
