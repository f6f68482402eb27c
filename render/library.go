package render

import (
	"github.com/milk9111/gridpets/component"
)

// CharacterLibrary caches loaded animation sets by character id. Every pet of
// the same character shares one immutable set; each pet gets its own sprite.
type CharacterLibrary struct {
	sets map[string]map[string]*component.Animation
}

// NewCharacterLibrary creates an empty library.
func NewCharacterLibrary() *CharacterLibrary {
	return &CharacterLibrary{sets: make(map[string]map[string]*component.Animation)}
}

// Load returns the animation set for a character, loading and slicing its
// sheets on first use.
func (l *CharacterLibrary) Load(id string) (map[string]*component.Animation, error) {
	if set, ok := l.sets[id]; ok {
		return set, nil
	}
	set, err := LoadCharacter(id)
	if err != nil {
		return nil, err
	}
	l.sets[id] = set
	return set, nil
}

// Sprite builds a fresh sprite over the character's shared animation set.
func (l *CharacterLibrary) Sprite(id string) (*component.AnimatedSprite, error) {
	set, err := l.Load(id)
	if err != nil {
		return nil, err
	}
	return component.NewAnimatedSprite(set), nil
}
