package buf

import (
	"errors"
	"testing"

	"github.com/geniekit/geniekit/pkg/types"
)

func TestCursorTypedReads(t *testing.T) {
	data := []byte{
		0x2A,                   // u8
		0x34, 0x12,             // u16
		0xFF, 0xFF,             // i16 = -1
		0x78, 0x56, 0x34, 0x12, // u32
		0x00, 0x00, 0xF0, 0x41, // f32 = 30.0
	}
	c := New(data)

	if v, err := c.U8(); err != nil || v != 0x2A {
		t.Fatalf("U8 = %d, %v", v, err)
	}
	if v, err := c.U16(); err != nil || v != 0x1234 {
		t.Fatalf("U16 = 0x%x, %v", v, err)
	}
	if v, err := c.I16(); err != nil || v != -1 {
		t.Fatalf("I16 = %d, %v", v, err)
	}
	if v, err := c.U32(); err != nil || v != 0x12345678 {
		t.Fatalf("U32 = 0x%x, %v", v, err)
	}
	if v, err := c.F32(); err != nil || v != 30.0 {
		t.Fatalf("F32 = %f, %v", v, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", c.Remaining())
	}
	if c.Offset() != len(data) {
		t.Fatalf("Offset = %d, want %d", c.Offset(), len(data))
	}
}

func TestCursorTruncated(t *testing.T) {
	c := New([]byte{0x01, 0x02})
	if _, err := c.U32(); !errors.Is(err, types.ErrTruncated) {
		t.Fatalf("U32 on short buffer: %v, want ErrTruncated", err)
	}
	// A failed read must not advance.
	if c.Offset() != 0 {
		t.Fatalf("Offset moved to %d after failed read", c.Offset())
	}
	if v, err := c.U16(); err != nil || v != 0x0201 {
		t.Fatalf("U16 after failed read = 0x%x, %v", v, err)
	}
}

func TestCursorSkip(t *testing.T) {
	c := New(make([]byte, 8))
	if err := c.Skip(5); err != nil {
		t.Fatalf("Skip(5): %v", err)
	}
	if c.Offset() != 5 {
		t.Fatalf("Offset = %d, want 5", c.Offset())
	}
	if err := c.Skip(4); !errors.Is(err, types.ErrTruncated) {
		t.Fatalf("Skip past end: %v, want ErrTruncated", err)
	}
}

func TestCursorNegativeRead(t *testing.T) {
	c := New(make([]byte, 8))
	if _, err := c.Bytes(-1); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("Bytes(-1): %v, want ErrCorrupt", err)
	}
}

func TestCursorBytesAliases(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := New(data)
	b, err := c.Bytes(4)
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	if &b[0] != &data[0] {
		t.Fatalf("Bytes should alias the underlying buffer")
	}
}
