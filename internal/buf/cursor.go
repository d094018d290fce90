// Package buf provides the bounds-checked forward cursor the record readers
// consume. Reads are little-endian, always advance, and never move backward;
// a read past the end of the buffer fails with types.ErrTruncated before any
// out-of-bounds access can happen.
package buf

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/geniekit/geniekit/pkg/types"
)

// Cursor is a single-owner, single-threaded read position over a byte
// buffer. It must not be shared between goroutines.
type Cursor struct {
	data []byte
	off  int
}

// New returns a cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current read position.
func (c *Cursor) Offset() int { return c.off }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.off }

func (c *Cursor) need(n int) error {
	if n < 0 {
		return fmt.Errorf("negative read of %d bytes at offset %d: %w", n, c.off, types.ErrCorrupt)
	}
	if c.Remaining() < n {
		return fmt.Errorf("need %d bytes at offset %d, %d remain: %w", n, c.off, c.Remaining(), types.ErrTruncated)
	}
	return nil
}

// Bytes returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer and must not be modified.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip advances past n bytes without materializing them.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.off += n
	return nil
}

// U8 reads one unsigned byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (c *Cursor) U16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// I16 reads a little-endian int16.
func (c *Cursor) I16() (int16, error) {
	v, err := c.U16()
	return int16(v), err
}

// U32 reads a little-endian uint32.
func (c *Cursor) U32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian int32.
func (c *Cursor) I32() (int32, error) {
	v, err := c.U32()
	return int32(v), err
}

// F32 reads a little-endian IEEE 754 float32.
func (c *Cursor) F32() (float32, error) {
	v, err := c.U32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}
