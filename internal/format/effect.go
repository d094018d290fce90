package format

import (
	"fmt"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

// effectCmdSize is the fixed encoding of one effect command.
const effectCmdSize = 1 + 2 + 2 + 2 + 4

func effectMinSize(l Layout) int {
	// name + command count
	if l.PrefixedStrings {
		return prefixedStringMin + 2
	}
	return EffectNameLen + 2
}

// ReadEffects consumes the count-prefixed effect table.
func ReadEffects(c *buf.Cursor, l Layout) ([]types.Effect, error) {
	count, err := readCount(c, l, effectMinSize(l))
	if err != nil {
		return nil, fmt.Errorf("effects: %w", err)
	}
	effects := make([]types.Effect, count)
	for i := range effects {
		if err := readEffect(c, l, &effects[i]); err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
	}
	return effects, nil
}

func readEffect(c *buf.Cursor, l Layout, e *types.Effect) error {
	var err error
	if e.Name, err = readString(c, l, EffectNameLen); err != nil {
		return err
	}
	cmdCount, err := c.U16()
	if err != nil {
		return err
	}
	if err := buf.CheckArrayBounds(c.Remaining(), int(cmdCount), effectCmdSize); err != nil {
		return fmt.Errorf("declared %d commands: %v: %w", cmdCount, err, types.ErrCorrupt)
	}
	e.Commands = make([]types.EffectCommand, cmdCount)
	for i := range e.Commands {
		cmd := &e.Commands[i]
		if cmd.Type, err = c.U8(); err != nil {
			return err
		}
		if cmd.A, err = c.I16(); err != nil {
			return err
		}
		if cmd.B, err = c.I16(); err != nil {
			return err
		}
		if cmd.C, err = c.I16(); err != nil {
			return err
		}
		if cmd.D, err = c.F32(); err != nil {
			return err
		}
	}
	return nil
}
