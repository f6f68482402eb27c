package render

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gridpets/assets"
)

// Manifest describes one character's animation set as stored in
// assets/chars/<id>/manifest.yaml.
type Manifest struct {
	Name       string              `yaml:"name"`
	Animations []AnimationManifest `yaml:"animations"`
}

// AnimationManifest is one named animation: frame size, per-frame tick
// durations (one entry per column of the sheet), and the sheet image file.
type AnimationManifest struct {
	Name        string `yaml:"name"`
	FrameWidth  int    `yaml:"frame_width"`
	FrameHeight int    `yaml:"frame_height"`
	Durations   []int  `yaml:"durations"`
	Sheet       string `yaml:"sheet"`
}

// LoadManifest reads and validates a character manifest.
func LoadManifest(id string) (Manifest, error) {
	b, err := assets.LoadFile(assets.ManifestPath(id))
	if err != nil {
		return Manifest{}, fmt.Errorf("render: manifest for %s: %w", id, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return Manifest{}, fmt.Errorf("render: unmarshal manifest for %s: %w", id, err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, fmt.Errorf("render: manifest for %s: %w", id, err)
	}
	return m, nil
}

// Validate checks the manifest fields that don't need the sheet images.
func (m Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("missing name")
	}
	if len(m.Animations) == 0 {
		return fmt.Errorf("no animations")
	}
	seen := make(map[string]bool, len(m.Animations))
	for _, a := range m.Animations {
		if a.Name == "" {
			return fmt.Errorf("animation with no name")
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate animation %q", a.Name)
		}
		seen[a.Name] = true
		if a.FrameWidth <= 0 || a.FrameHeight <= 0 {
			return fmt.Errorf("animation %q: frame size %dx%d", a.Name, a.FrameWidth, a.FrameHeight)
		}
		if len(a.Durations) == 0 {
			return fmt.Errorf("animation %q: no durations", a.Name)
		}
		for i, d := range a.Durations {
			if d <= 0 {
				return fmt.Errorf("animation %q: duration[%d] = %d", a.Name, i, d)
			}
		}
		if a.Sheet == "" {
			return fmt.Errorf("animation %q: no sheet", a.Name)
		}
	}
	return nil
}

// SheetGrid computes how an animation slices a sheet of the given pixel size:
// rows of facing directions by columns of frames. The duration list must
// cover exactly one row.
func (a AnimationManifest) SheetGrid(imgW, imgH int) (rows, cols int, err error) {
	rows = imgH / a.FrameHeight
	cols = imgW / a.FrameWidth
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("animation %q: sheet %dx%d smaller than frame %dx%d",
			a.Name, imgW, imgH, a.FrameWidth, a.FrameHeight)
	}
	if len(a.Durations) != cols {
		return 0, 0, fmt.Errorf("animation %q: %d durations for %d frame columns",
			a.Name, len(a.Durations), cols)
	}
	return rows, cols, nil
}
