package format

import (
	"bytes"
	"fmt"

	"golang.org/x/text/encoding/charmap"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

// decodeName converts Windows-1252 file bytes to UTF-8. Falls back to the
// raw bytes if the decoder rejects the input.
func decodeName(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

// readString reads one string field. Classic layouts store a fixed-width
// NUL-padded field of fixedLen bytes; definitive layouts store a 2-byte
// marker, a 2-byte length, and the bytes. Readers never scan for a
// terminator beyond the bounded field.
func readString(c *buf.Cursor, l Layout, fixedLen int) (string, error) {
	if !l.PrefixedStrings {
		raw, err := c.Bytes(fixedLen)
		if err != nil {
			return "", err
		}
		if i := bytes.IndexByte(raw, 0); i >= 0 {
			raw = raw[:i]
		}
		return decodeName(raw), nil
	}

	marker, err := c.U16()
	if err != nil {
		return "", err
	}
	if marker != StringMarker {
		return "", fmt.Errorf("string marker 0x%04x at offset %d, want 0x%04x: %w",
			marker, c.Offset()-2, StringMarker, types.ErrCorrupt)
	}
	n, err := c.U16()
	if err != nil {
		return "", err
	}
	raw, err := c.Bytes(int(n))
	if err != nil {
		return "", err
	}
	return decodeName(raw), nil
}

// readCount reads a count-prefixed array length and rejects counts that
// cannot possibly fit in the remaining buffer given the smallest legal
// element encoding. A zero count is valid and yields an empty collection.
func readCount(c *buf.Cursor, l Layout, minElemSize int) (int, error) {
	var count int
	if l.Count32 {
		v, err := c.U32()
		if err != nil {
			return 0, err
		}
		count = int(v)
	} else {
		v, err := c.U16()
		if err != nil {
			return 0, err
		}
		count = int(v)
	}
	if err := buf.CheckArrayBounds(c.Remaining(), count, minElemSize); err != nil {
		return 0, fmt.Errorf("declared count %d: %v: %w", count, err, types.ErrCorrupt)
	}
	return count, nil
}
