package render

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/gridpets/assets"
	"github.com/milk9111/gridpets/component"
)

// LoadCharacter loads a character's manifest and sheets and slices them into
// a ready-to-play animation set. Sheet images are cached by path, so loading
// the same character twice shares the frames.
func LoadCharacter(id string) (map[string]*component.Animation, error) {
	m, err := LoadManifest(id)
	if err != nil {
		return nil, err
	}

	set := make(map[string]*component.Animation, len(m.Animations))
	for _, am := range m.Animations {
		sheet, err := loadSheet(assets.SheetPath(id, am.Sheet))
		if err != nil {
			return nil, fmt.Errorf("render: character %s: %w", id, err)
		}
		bounds := sheet.Bounds()
		rows, cols, err := am.SheetGrid(bounds.Dx(), bounds.Dy())
		if err != nil {
			return nil, fmt.Errorf("render: character %s: %w", id, err)
		}
		set[am.Name] = &component.Animation{
			Name:      am.Name,
			FrameW:    am.FrameWidth,
			FrameH:    am.FrameHeight,
			Durations: append([]int(nil), am.Durations...),
			Frames:    sliceSheet(sheet, am.FrameWidth, am.FrameHeight, rows, cols),
		}
	}
	return set, nil
}

// sliceSheet cuts a sheet into a row-major frame grid.
func sliceSheet(sheet *ebiten.Image, frameW, frameH, rows, cols int) [][]*ebiten.Image {
	frames := make([][]*ebiten.Image, rows)
	for r := 0; r < rows; r++ {
		frames[r] = make([]*ebiten.Image, cols)
		for c := 0; c < cols; c++ {
			rect := image.Rect(c*frameW, r*frameH, (c+1)*frameW, (r+1)*frameH)
			frames[r][c] = sheet.SubImage(rect).(*ebiten.Image)
		}
	}
	return frames
}

func loadSheet(path string) (*ebiten.Image, error) {
	if img := GetImage(path); img != nil {
		return img, nil
	}
	img, err := assets.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load sheet %s: %w", path, err)
	}
	RegisterImage(path, img)
	return img, nil
}
