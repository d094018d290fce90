package types

// Records decoded from a dat archive. All of them are built once during Load
// and are read-only afterwards; callers receiving pointers from the query
// facade must treat the pointed-to data as immutable.

// Graphic is a sprite table entry.
type Graphic struct {
	ID            int16
	Name          string
	FileName      string
	SlpID         int32
	FrameCount    uint16
	AngleCount    uint16
	FrameDuration float32
	// ReplayDelay only exists in definitive-edition archives.
	ReplayDelay float32
	Sound       Ref // -> Archive sounds
}

// SoundItem is one weighted file choice inside a sound.
type SoundItem struct {
	FileName    string
	ResourceID  int32
	Probability int16
	// Civilization only exists in definitive-edition archives.
	Civilization int16
}

// Sound groups alternative audio files played for one event.
type Sound struct {
	ID    int16
	Items []SoundItem
}

// EffectCommand is a single mutation applied when an effect triggers.
type EffectCommand struct {
	Type    uint8
	A, B, C int16
	D       float32
}

// Effect is a named list of commands referenced by technologies and units.
type Effect struct {
	Name     string
	Commands []EffectCommand
}

// RequiredTechCount is the fixed number of prerequisite slots every
// technology record carries; unused slots hold the absent sentinel.
const RequiredTechCount = 6

// Technology is a researchable entry. An empty Name marks a reserved slot
// that still occupies its positional index.
type Technology struct {
	Name          string
	RequiredTechs [RequiredTechCount]int16
	ResearchTime  int16
	Effect        Ref // -> Archive effects
	IconID        int16
	ButtonID      uint8
	// Repeatable only exists in definitive-edition archives.
	Repeatable bool
}

// Unit is one unit-kind record. The same ID denotes the same unit kind in
// every civilization's list; an empty Name marks an unused slot kept for id
// stability.
type Unit struct {
	Type             uint8
	ID               int16
	Class            int16
	Name             string
	HitPoints        int16
	LineOfSight      float32
	GarrisonCapacity uint8

	StandingGraphic Ref // -> Archive graphics
	DyingGraphic    Ref // -> Archive graphics
	TrainSound      Ref // -> Archive sounds
	AttackEffect    Ref // -> Archive effects

	// Definitive-edition only fields.
	Recyclable       bool
	RegenerationRate float32
}

// Civilization owns a full per-civilization copy of the unit table. The file
// stores each civilization's units as an override table layered on the base
// templates, so the copies are independent rather than shared references
// into the template pool.
type Civilization struct {
	PlayerType uint8
	Name       string
	TechTree   Ref // -> Archive technologies
	TeamBonus  Ref // -> Archive effects
	Units      []Unit
}

// UnitCount returns the number of unit slots, empty ones included.
func (c *Civilization) UnitCount() int { return len(c.Units) }

// Unit returns the unit at slot index i.
func (c *Civilization) Unit(i int) (*Unit, error) {
	if i < 0 || i >= len(c.Units) {
		return nil, &Error{Kind: ErrKindNotFound, Msg: "unit slot out of range", Err: ErrNotFound}
	}
	return &c.Units[i], nil
}

// UnitByID returns the unit whose ID field equals id.
func (c *Civilization) UnitByID(id int16) (*Unit, error) {
	for i := range c.Units {
		if c.Units[i].ID == id {
			return &c.Units[i], nil
		}
	}
	return nil, &Error{Kind: ErrKindNotFound, Msg: "no unit with that id", Err: ErrNotFound}
}
