package dat

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/reader"
	"github.com/geniekit/geniekit/pkg/types"
)

// Archive is the assembled, immutable in-memory model of one dat file. All
// accessors are read-only; pointers returned by the indexed lookups share
// the Archive's storage and must not be modified. Indices into the six
// top-level collections are stable for the lifetime of the Archive and are
// the only addressing mechanism besides the explicit id fields some records
// carry.
type Archive struct {
	gameVersion types.GameVersion
	res         *reader.Result
}

// FormatVersion returns the resolved file revision.
func (a *Archive) FormatVersion() types.FileVersion { return a.res.FileVersion }

// GameVersion returns the game family the caller declared at load time.
func (a *Archive) GameVersion() types.GameVersion { return a.gameVersion }

func outOfRange(what string, i, n int) error {
	return &types.Error{
		Kind: types.ErrKindNotFound,
		Msg:  fmt.Sprintf("%s index %d out of range [0,%d)", what, i, n),
	}
}

// CivilizationCount returns the number of civilizations.
func (a *Archive) CivilizationCount() int { return len(a.res.Civilizations) }

// Civilization returns the civilization at index i.
func (a *Archive) Civilization(i int) (*types.Civilization, error) {
	if i < 0 || i >= len(a.res.Civilizations) {
		return nil, outOfRange("civilization", i, len(a.res.Civilizations))
	}
	return &a.res.Civilizations[i], nil
}

// TechnologyCount returns the number of technology slots, reserved ones
// included.
func (a *Archive) TechnologyCount() int { return len(a.res.Technologies) }

// Technology returns the technology at index i.
func (a *Archive) Technology(i int) (*types.Technology, error) {
	if i < 0 || i >= len(a.res.Technologies) {
		return nil, outOfRange("technology", i, len(a.res.Technologies))
	}
	return &a.res.Technologies[i], nil
}

// GraphicCount returns the number of graphics.
func (a *Archive) GraphicCount() int { return len(a.res.Graphics) }

// Graphic returns the graphic at index i.
func (a *Archive) Graphic(i int) (*types.Graphic, error) {
	if i < 0 || i >= len(a.res.Graphics) {
		return nil, outOfRange("graphic", i, len(a.res.Graphics))
	}
	return &a.res.Graphics[i], nil
}

// SoundCount returns the number of sounds.
func (a *Archive) SoundCount() int { return len(a.res.Sounds) }

// Sound returns the sound at index i.
func (a *Archive) Sound(i int) (*types.Sound, error) {
	if i < 0 || i >= len(a.res.Sounds) {
		return nil, outOfRange("sound", i, len(a.res.Sounds))
	}
	return &a.res.Sounds[i], nil
}

// EffectCount returns the number of effects.
func (a *Archive) EffectCount() int { return len(a.res.Effects) }

// Effect returns the effect at index i.
func (a *Archive) Effect(i int) (*types.Effect, error) {
	if i < 0 || i >= len(a.res.Effects) {
		return nil, outOfRange("effect", i, len(a.res.Effects))
	}
	return &a.res.Effects[i], nil
}

// UnitTemplateCount returns the size of the global unit template pool.
func (a *Archive) UnitTemplateCount() int { return len(a.res.UnitTemplates) }

// UnitTemplate returns the base unit template at index i.
func (a *Archive) UnitTemplate(i int) (*types.Unit, error) {
	if i < 0 || i >= len(a.res.UnitTemplates) {
		return nil, outOfRange("unit template", i, len(a.res.UnitTemplates))
	}
	return &a.res.UnitTemplates[i], nil
}
