package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

func unitMinSize(l Layout) int {
	// type + id + class + hit points + line of sight + garrison + 4 refs
	n := 1 + 2 + 2 + 2 + 4 + 1 + 4*2
	if l.PrefixedStrings {
		n += prefixedStringMin
	} else {
		n += UnitNameLen
	}
	if l.UnitDefinitive {
		n += 1 + 4
	}
	return n
}

// ReadUnitTemplates consumes the count-prefixed global unit template pool.
func ReadUnitTemplates(c *buf.Cursor, l Layout) ([]types.Unit, error) {
	count, err := readCount(c, l, unitMinSize(l))
	if err != nil {
		return nil, fmt.Errorf("unit templates: %w", err)
	}
	units := make([]types.Unit, count)
	for i := range units {
		if err := ReadUnit(c, l, &units[i]); err != nil {
			return nil, fmt.Errorf("unit template %d: %w", i, err)
		}
	}
	return units, nil
}

// ReadUnit consumes one full unit record. Empty-name records are reserved
// slots and are decoded like any other so the cursor stays aligned.
func ReadUnit(c *buf.Cursor, l Layout, u *types.Unit) error {
	var err error
	if u.Type, err = c.U8(); err != nil {
		return err
	}
	if u.ID, err = c.I16(); err != nil {
		return err
	}
	if u.Class, err = c.I16(); err != nil {
		return err
	}
	if u.HitPoints, err = c.I16(); err != nil {
		return err
	}
	if u.LineOfSight, err = c.F32(); err != nil {
		return err
	}
	if u.GarrisonCapacity, err = c.U8(); err != nil {
		return err
	}
	standing, err := c.I16()
	if err != nil {
		return err
	}
	dying, err := c.I16()
	if err != nil {
		return err
	}
	trainSound, err := c.I16()
	if err != nil {
		return err
	}
	attackEffect, err := c.I16()
	if err != nil {
		return err
	}
	u.StandingGraphic = types.RawRef(standing)
	u.DyingGraphic = types.RawRef(dying)
	u.TrainSound = types.RawRef(trainSound)
	u.AttackEffect = types.RawRef(attackEffect)
	if l.UnitDefinitive {
		rec, err := c.U8()
		if err != nil {
			return err
		}
		u.Recyclable = rec != 0
		if u.RegenerationRate, err = c.F32(); err != nil {
			return err
		}
	}
	if u.Name, err = readString(c, l, UnitNameLen); err != nil {
		return err
	}
	return nil
}
