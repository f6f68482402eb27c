package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed chars
var assetsFS embed.FS

// ManifestPath returns the assets-relative manifest path for a character id.
func ManifestPath(id string) string {
	return fmt.Sprintf("chars/%s/manifest.yaml", id)
}

// SheetPath returns the assets-relative path of one of a character's sprite
// sheets.
func SheetPath(id, sheet string) string {
	return fmt.Sprintf("chars/%s/%s", id, sheet)
}

// Characters lists the embedded character ids.
func Characters() ([]string, error) {
	entries, err := assetsFS.ReadDir("chars")
	if err != nil {
		return nil, fmt.Errorf("assets: list chars: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			ids = append(ids, e.Name())
		}
	}
	return ids, nil
}

// LoadFile loads an embedded asset by assets-relative path.
func LoadFile(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

// LoadImage loads an embedded asset by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// ImageConfig decodes just the dimensions of an embedded image, which is
// enough for manifest validation without a graphics context.
func ImageConfig(path string) (image.Config, error) {
	b, err := LoadFile(path)
	if err != nil {
		return image.Config{}, err
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(b))
	return cfg, err
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
