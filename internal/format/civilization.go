package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

func civMinSize(l Layout) int {
	// player type + tech tree ref + slot count; slot table checked per civ
	n := 1 + 2
	if l.PrefixedStrings {
		n += prefixedStringMin
	} else {
		n += CivNameLen
	}
	if l.CivTeamBonus {
		n += 2
	}
	if l.Count32 {
		n += 4
	} else {
		n += 2
	}
	return n
}

// ReadCivilizations consumes the count-prefixed civilization table. Each
// civilization carries its own full unit override table: a slot pointer per
// unit id, with a stored record only where the pointer is nonzero. Zero
// pointers still occupy their slot, as a placeholder with the slot index as
// id, so id-based lookups stay position-stable.
func ReadCivilizations(c *buf.Cursor, l Layout) ([]types.Civilization, error) {
	count, err := readCount(c, l, civMinSize(l))
	if err != nil {
		return nil, fmt.Errorf("civilizations: %w", err)
	}
	civs := make([]types.Civilization, count)
	for i := range civs {
		if err := readCivilization(c, l, &civs[i]); err != nil {
			return nil, fmt.Errorf("civilization %d: %w", i, err)
		}
	}
	return civs, nil
}

func readCivilization(c *buf.Cursor, l Layout, civ *types.Civilization) error {
	var err error
	if civ.PlayerType, err = c.U8(); err != nil {
		return err
	}
	if civ.Name, err = readString(c, l, CivNameLen); err != nil {
		return err
	}
	techTree, err := c.I16()
	if err != nil {
		return err
	}
	civ.TechTree = types.RawRef(techTree)
	if l.CivTeamBonus {
		teamBonus, err := c.I16()
		if err != nil {
			return err
		}
		civ.TeamBonus = types.RawRef(teamBonus)
	} else {
		civ.TeamBonus = types.Ref{State: types.RefAbsent}
	}

	slots, err := readCount(c, l, unitPointerSize)
	if err != nil {
		return fmt.Errorf("unit slots: %w", err)
	}
	pointers := make([]uint32, slots)
	for i := range pointers {
		if pointers[i], err = c.U32(); err != nil {
			return err
		}
	}

	civ.Units = make([]types.Unit, slots)
	for i := range civ.Units {
		if pointers[i] == 0 {
			civ.Units[i] = emptySlot(i)
			continue
		}
		if err := ReadUnit(c, l, &civ.Units[i]); err != nil {
			return fmt.Errorf("unit slot %d: %w", i, err)
		}
	}
	return nil
}

// emptySlot is the placeholder occupying a zero-pointer slot: no name, no
// stats, all references absent, id equal to the slot position.
func emptySlot(i int) types.Unit {
	return types.Unit{
		ID:              int16(i),
		StandingGraphic: types.Ref{State: types.RefAbsent},
		DyingGraphic:    types.Ref{State: types.RefAbsent},
		TrainSound:      types.Ref{State: types.RefAbsent},
		AttackEffect:    types.Ref{State: types.RefAbsent},
	}
}
