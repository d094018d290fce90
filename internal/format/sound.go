package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

// soundMinSize is id + item count; items are bounds-checked separately.
const soundMinSize = 2 + 2

func soundItemMinSize(l Layout) int {
	// resource id + probability
	n := 4 + 2
	if l.PrefixedStrings {
		n += prefixedStringMin
	} else {
		n += SoundFileNameLen
	}
	if l.SoundItemCiv {
		n += 2
	}
	return n
}

// ReadSounds consumes the count-prefixed sound table.
func ReadSounds(c *buf.Cursor, l Layout) ([]types.Sound, error) {
	count, err := readCount(c, l, soundMinSize)
	if err != nil {
		return nil, fmt.Errorf("sounds: %w", err)
	}
	sounds := make([]types.Sound, count)
	for i := range sounds {
		if err := readSound(c, l, &sounds[i]); err != nil {
			return nil, fmt.Errorf("sound %d: %w", i, err)
		}
	}
	return sounds, nil
}

func readSound(c *buf.Cursor, l Layout, s *types.Sound) error {
	var err error
	if s.ID, err = c.I16(); err != nil {
		return err
	}
	itemCount, err := c.U16()
	if err != nil {
		return err
	}
	if err := buf.CheckArrayBounds(c.Remaining(), int(itemCount), soundItemMinSize(l)); err != nil {
		return fmt.Errorf("declared %d items: %v: %w", itemCount, err, types.ErrCorrupt)
	}
	s.Items = make([]types.SoundItem, itemCount)
	for i := range s.Items {
		item := &s.Items[i]
		if item.FileName, err = readString(c, l, SoundFileNameLen); err != nil {
			return err
		}
		if item.ResourceID, err = c.I32(); err != nil {
			return err
		}
		if item.Probability, err = c.I16(); err != nil {
			return err
		}
		if l.SoundItemCiv {
			if item.Civilization, err = c.I16(); err != nil {
				return err
			}
		}
	}
	return nil
}
