package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

func graphicMinSize(l Layout) int {
	// id + slp + frame count + angle count + frame duration + sound ref
	n := 2 + 4 + 2 + 2 + 4 + 2
	if l.PrefixedStrings {
		n += 2 * prefixedStringMin
	} else {
		n += GraphicNameLen + GraphicFileNameLen
	}
	if l.GraphicReplayDelay {
		n += 4
	}
	return n
}

// ReadGraphics consumes the count-prefixed graphic table.
func ReadGraphics(c *buf.Cursor, l Layout) ([]types.Graphic, error) {
	count, err := readCount(c, l, graphicMinSize(l))
	if err != nil {
		return nil, fmt.Errorf("graphics: %w", err)
	}
	graphics := make([]types.Graphic, count)
	for i := range graphics {
		if err := readGraphic(c, l, &graphics[i]); err != nil {
			return nil, fmt.Errorf("graphic %d: %w", i, err)
		}
	}
	return graphics, nil
}

func readGraphic(c *buf.Cursor, l Layout, g *types.Graphic) error {
	var err error
	if g.ID, err = c.I16(); err != nil {
		return err
	}
	if g.Name, err = readString(c, l, GraphicNameLen); err != nil {
		return err
	}
	if g.FileName, err = readString(c, l, GraphicFileNameLen); err != nil {
		return err
	}
	if g.SlpID, err = c.I32(); err != nil {
		return err
	}
	if g.FrameCount, err = c.U16(); err != nil {
		return err
	}
	if g.AngleCount, err = c.U16(); err != nil {
		return err
	}
	if g.FrameDuration, err = c.F32(); err != nil {
		return err
	}
	if l.GraphicReplayDelay {
		if g.ReplayDelay, err = c.F32(); err != nil {
			return err
		}
	}
	sound, err := c.I16()
	if err != nil {
		return err
	}
	g.Sound = types.RawRef(sound)
	return nil
}
