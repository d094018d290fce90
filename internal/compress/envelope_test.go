package compress

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/geniekit/geniekit/pkg/types"
)

func envelope(t *testing.T, storage byte, unpacked int, body []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	out.Write(Signature)
	out.WriteByte(storage)
	out.Write([]byte{0, 0, 0})
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(unpacked))
	out.Write(size[:])
	out.Write(body)
	return out.Bytes()
}

func deflate(t *testing.T, payload []byte) []byte {
	t.Helper()
	var out bytes.Buffer
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(payload); err != nil {
		t.Fatalf("zlib write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zlib close: %v", err)
	}
	return out.Bytes()
}

func TestUnpackRaw(t *testing.T) {
	payload := []byte("VER 5.7\x00hello")
	got, err := Unpack(envelope(t, StorageRaw, len(payload), payload))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch: %q", got)
	}
}

func TestUnpackZlib(t *testing.T) {
	payload := bytes.Repeat([]byte("record"), 100)
	got, err := Unpack(envelope(t, StorageZlib, len(payload), deflate(t, payload)))
	if err != nil {
		t.Fatalf("Unpack: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload mismatch after inflate")
	}
}

func TestUnpackShortHeader(t *testing.T) {
	if _, err := Unpack([]byte{'d', 'a', 't'}); !errors.Is(err, types.ErrTruncated) {
		t.Fatalf("short header: %v, want ErrTruncated", err)
	}
}

func TestUnpackBadSignature(t *testing.T) {
	raw := envelope(t, StorageRaw, 0, nil)
	raw[0] = 'X'
	if _, err := Unpack(raw); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("bad signature: %v, want ErrCorrupt", err)
	}
}

func TestUnpackUnknownStorage(t *testing.T) {
	raw := envelope(t, 0x7F, 0, nil)
	if _, err := Unpack(raw); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("unknown storage: %v, want ErrCorrupt", err)
	}
}

func TestUnpackTruncatedRawBody(t *testing.T) {
	payload := []byte("0123456789")
	raw := envelope(t, StorageRaw, len(payload), payload[:4])
	if _, err := Unpack(raw); !errors.Is(err, types.ErrTruncated) {
		t.Fatalf("short raw body: %v, want ErrTruncated", err)
	}
}

// Corrupting the compressed block's header must read as corruption, never as
// truncation.
func TestUnpackCorruptZlibHeader(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, 64)
	body := deflate(t, payload)
	body[0] ^= 0xFF
	if _, err := Unpack(envelope(t, StorageZlib, len(payload), body)); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("corrupt zlib header: %v, want ErrCorrupt", err)
	}
}

func TestUnpackTruncatedZlibStream(t *testing.T) {
	payload := bytes.Repeat([]byte{0xCD}, 256)
	body := deflate(t, payload)
	if _, err := Unpack(envelope(t, StorageZlib, len(payload), body[:len(body)/2])); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("truncated zlib stream: %v, want ErrCorrupt", err)
	}
}

func TestUnpackSizeMismatch(t *testing.T) {
	payload := []byte("abcdef")
	raw := envelope(t, StorageZlib, len(payload)+1, deflate(t, payload))
	if _, err := Unpack(raw); !errors.Is(err, types.ErrCorrupt) {
		t.Fatalf("size mismatch: %v, want ErrCorrupt", err)
	}
}
