// Package compress implements the decompression stage: it strips the small
// archive envelope and, when the payload is stored compressed, inflates it
// into a single contiguous buffer ready for version resolution.
//
// Unpack is a pure function of its input; independent archives can be
// unpacked in parallel freely.
package compress

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/geniekit/geniekit/pkg/types"
)

// Envelope header layout (little-endian):
//
//	Offset  Size  Description
//	------  ----  -------------------------------------
//	 0x00    4    Signature 'd' 'a' 't' 0x1A
//	 0x04    1    Storage mode (0 = raw, 1 = zlib)
//	 0x05    3    Reserved
//	 0x08    4    Unpacked payload size
const (
	HeaderSize = 12

	storageOffset  = 0x04
	unpackedOffset = 0x08
)

// Storage modes.
const (
	StorageRaw  = 0
	StorageZlib = 1
)

// Signature is the four-byte magic at the start of every dat envelope.
var Signature = []byte{'d', 'a', 't', 0x1A}

// Unpack validates the envelope of raw and returns the contiguous payload.
func Unpack(raw []byte) ([]byte, error) {
	if len(raw) < HeaderSize {
		return nil, fmt.Errorf("envelope header needs %d bytes, have %d: %w", HeaderSize, len(raw), types.ErrTruncated)
	}
	if !bytes.Equal(raw[:len(Signature)], Signature) {
		return nil, fmt.Errorf("bad envelope signature %q: %w", raw[:len(Signature)], types.ErrCorrupt)
	}
	storage := raw[storageOffset]
	unpacked := int(binary.LittleEndian.Uint32(raw[unpackedOffset:]))
	body := raw[HeaderSize:]

	switch storage {
	case StorageRaw:
		if len(body) < unpacked {
			return nil, fmt.Errorf("raw payload declares %d bytes, %d remain: %w", unpacked, len(body), types.ErrTruncated)
		}
		return body[:unpacked], nil

	case StorageZlib:
		zr, err := zlib.NewReader(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("zlib header: %v: %w", err, types.ErrCorrupt)
		}
		defer zr.Close()
		payload, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("inflate: %v: %w", err, types.ErrCorrupt)
		}
		if len(payload) != unpacked {
			return nil, fmt.Errorf("inflated %d bytes, envelope declares %d: %w", len(payload), unpacked, types.ErrCorrupt)
		}
		return payload, nil

	default:
		return nil, fmt.Errorf("unknown storage mode 0x%02x: %w", storage, types.ErrCorrupt)
	}
}
