package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

func techMinSize(l Layout) int {
	// required techs + research time + effect ref + icon + button
	n := types.RequiredTechCount*2 + 2 + 2 + 2 + 1
	if l.PrefixedStrings {
		n += prefixedStringMin
	} else {
		n += TechNameLen
	}
	if l.TechRepeatable {
		n++
	}
	return n
}

// ReadTechnologies consumes the count-prefixed technology table. Reserved
// slots (empty names) are decoded in full so the table keeps its declared
// length and positional ids stay valid.
func ReadTechnologies(c *buf.Cursor, l Layout) ([]types.Technology, error) {
	count, err := readCount(c, l, techMinSize(l))
	if err != nil {
		return nil, fmt.Errorf("technologies: %w", err)
	}
	techs := make([]types.Technology, count)
	for i := range techs {
		if err := readTechnology(c, l, &techs[i]); err != nil {
			return nil, fmt.Errorf("technology %d: %w", i, err)
		}
	}
	return techs, nil
}

func readTechnology(c *buf.Cursor, l Layout, t *types.Technology) error {
	var err error
	if t.Name, err = readString(c, l, TechNameLen); err != nil {
		return err
	}
	for i := range t.RequiredTechs {
		if t.RequiredTechs[i], err = c.I16(); err != nil {
			return err
		}
	}
	if t.ResearchTime, err = c.I16(); err != nil {
		return err
	}
	effect, err := c.I16()
	if err != nil {
		return err
	}
	t.Effect = types.RawRef(effect)
	if t.IconID, err = c.I16(); err != nil {
		return err
	}
	if t.ButtonID, err = c.U8(); err != nil {
		return err
	}
	if l.TechRepeatable {
		rep, err := c.U8()
		if err != nil {
			return err
		}
		t.Repeatable = rep != 0
	}
	return nil
}
