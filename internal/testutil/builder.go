// Package testutil builds synthetic dat archives so tests can exercise the
// decoder without shipping binary fixtures. The builder mirrors the record
// encodings byte for byte; it exists for tests only and is not a general
// writer (the decoder is read-only with respect to its input).
package testutil

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"math"

	"golang.org/x/text/encoding/charmap"

	"github.com/geniekit/geniekit/internal/compress"
	"github.com/geniekit/geniekit/internal/format"
	"github.com/geniekit/geniekit/pkg/types"
)

// UnitSlot is one entry of a civilization's unit override table. An Empty
// slot is written as a zero pointer with no stored record.
type UnitSlot struct {
	Empty bool
	Unit  types.Unit
}

// CivSpec describes one civilization to encode.
type CivSpec struct {
	PlayerType uint8
	Name       string
	TechTree   int16
	TeamBonus  int16
	Slots      []UnitSlot
}

// ArchiveBuilder accumulates records and emits a complete enveloped archive.
type ArchiveBuilder struct {
	version   types.FileVersion
	zlibPack  bool
	graphics  []types.Graphic
	sounds    []types.Sound
	effects   []types.Effect
	techs     []types.Technology
	templates []types.Unit
	civs      []CivSpec
}

// NewArchive starts a builder targeting the given file version.
func NewArchive(v types.FileVersion) *ArchiveBuilder {
	return &ArchiveBuilder{version: v}
}

// Zlib switches the envelope to compressed storage.
func (b *ArchiveBuilder) Zlib() *ArchiveBuilder { b.zlibPack = true; return b }

func (b *ArchiveBuilder) AddGraphic(g types.Graphic) *ArchiveBuilder {
	b.graphics = append(b.graphics, g)
	return b
}

func (b *ArchiveBuilder) AddSound(s types.Sound) *ArchiveBuilder {
	b.sounds = append(b.sounds, s)
	return b
}

func (b *ArchiveBuilder) AddEffect(e types.Effect) *ArchiveBuilder {
	b.effects = append(b.effects, e)
	return b
}

func (b *ArchiveBuilder) AddTechnology(t types.Technology) *ArchiveBuilder {
	b.techs = append(b.techs, t)
	return b
}

func (b *ArchiveBuilder) AddUnitTemplate(u types.Unit) *ArchiveBuilder {
	b.templates = append(b.templates, u)
	return b
}

func (b *ArchiveBuilder) AddCivilization(c CivSpec) *ArchiveBuilder {
	b.civs = append(b.civs, c)
	return b
}

// BuildPayload emits the decompressed payload: version tag plus the six
// tables in their fixed on-disk order.
func (b *ArchiveBuilder) BuildPayload() []byte {
	l := format.LayoutFor(b.version)
	w := &writer{}

	tag := make([]byte, format.VersionTagSize)
	copy(tag, b.version.String())
	w.raw(tag)

	w.count(l, len(b.graphics))
	for _, g := range b.graphics {
		w.i16(g.ID)
		w.str(l, g.Name, format.GraphicNameLen)
		w.str(l, g.FileName, format.GraphicFileNameLen)
		w.i32(g.SlpID)
		w.u16(g.FrameCount)
		w.u16(g.AngleCount)
		w.f32(g.FrameDuration)
		if l.GraphicReplayDelay {
			w.f32(g.ReplayDelay)
		}
		w.i16(refID(g.Sound))
	}

	w.count(l, len(b.sounds))
	for _, s := range b.sounds {
		w.i16(s.ID)
		w.u16(uint16(len(s.Items)))
		for _, item := range s.Items {
			w.str(l, item.FileName, format.SoundFileNameLen)
			w.i32(item.ResourceID)
			w.i16(item.Probability)
			if l.SoundItemCiv {
				w.i16(item.Civilization)
			}
		}
	}

	w.count(l, len(b.effects))
	for _, e := range b.effects {
		w.str(l, e.Name, format.EffectNameLen)
		w.u16(uint16(len(e.Commands)))
		for _, cmd := range e.Commands {
			w.u8(cmd.Type)
			w.i16(cmd.A)
			w.i16(cmd.B)
			w.i16(cmd.C)
			w.f32(cmd.D)
		}
	}

	w.count(l, len(b.techs))
	for _, t := range b.techs {
		w.str(l, t.Name, format.TechNameLen)
		for _, req := range t.RequiredTechs {
			w.i16(req)
		}
		w.i16(t.ResearchTime)
		w.i16(refID(t.Effect))
		w.i16(t.IconID)
		w.u8(t.ButtonID)
		if l.TechRepeatable {
			w.bool8(t.Repeatable)
		}
	}

	w.count(l, len(b.templates))
	for _, u := range b.templates {
		w.unit(l, u)
	}

	w.count(l, len(b.civs))
	for _, c := range b.civs {
		w.u8(c.PlayerType)
		w.str(l, c.Name, format.CivNameLen)
		w.i16(c.TechTree)
		if l.CivTeamBonus {
			w.i16(c.TeamBonus)
		}
		w.count(l, len(c.Slots))
		for _, slot := range c.Slots {
			if slot.Empty {
				w.u32(0)
			} else {
				w.u32(1)
			}
		}
		for _, slot := range c.Slots {
			if !slot.Empty {
				w.unit(l, slot.Unit)
			}
		}
	}

	return w.buf.Bytes()
}

// Build emits the complete archive: envelope header plus raw or zlib payload.
func (b *ArchiveBuilder) Build() []byte {
	payload := b.BuildPayload()
	return Envelope(payload, b.zlibPack)
}

// Envelope wraps an already-built payload in the archive envelope.
func Envelope(payload []byte, pack bool) []byte {
	var out bytes.Buffer
	out.Write(compress.Signature)
	if pack {
		out.WriteByte(compress.StorageZlib)
	} else {
		out.WriteByte(compress.StorageRaw)
	}
	out.Write([]byte{0, 0, 0}) // reserved
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], uint32(len(payload)))
	out.Write(size[:])

	if !pack {
		out.Write(payload)
		return out.Bytes()
	}
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(payload); err != nil {
		panic(err) // bytes.Buffer writes cannot fail
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return out.Bytes()
}

// Ref helpers for wiring cross-references in fixtures.

// RefTo is a raw reference id targeting index i.
func RefTo(i int) types.Ref { return types.Ref{Index: i, State: types.RefUnresolved} }

// NoRef is the absent-sentinel reference.
func NoRef() types.Ref { return types.Ref{State: types.RefAbsent} }

func refID(r types.Ref) int16 {
	if r.State == types.RefAbsent {
		return -1
	}
	return int16(r.Index)
}

// writer provides little-endian primitives over a bytes.Buffer.
type writer struct {
	buf bytes.Buffer
}

func (w *writer) raw(b []byte) { w.buf.Write(b) }

func (w *writer) u8(v uint8) { w.buf.WriteByte(v) }

func (w *writer) bool8(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) i16(v int16) { w.u16(uint16(v)) }

func (w *writer) u32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

func (w *writer) i32(v int32) { w.u32(uint32(v)) }

func (w *writer) f32(v float32) { w.u32(math.Float32bits(v)) }

func (w *writer) count(l format.Layout, n int) {
	if l.Count32 {
		w.u32(uint32(n))
	} else {
		w.u16(uint16(n))
	}
}

func (w *writer) str(l format.Layout, s string, fixedLen int) {
	raw := encodeName(s)
	if l.PrefixedStrings {
		w.u16(format.StringMarker)
		w.u16(uint16(len(raw)))
		w.raw(raw)
		return
	}
	field := make([]byte, fixedLen)
	copy(field, raw) // truncates names longer than the field
	w.raw(field)
}

func (w *writer) unit(l format.Layout, u types.Unit) {
	w.u8(u.Type)
	w.i16(u.ID)
	w.i16(u.Class)
	w.i16(u.HitPoints)
	w.f32(u.LineOfSight)
	w.u8(u.GarrisonCapacity)
	w.i16(refID(u.StandingGraphic))
	w.i16(refID(u.DyingGraphic))
	w.i16(refID(u.TrainSound))
	w.i16(refID(u.AttackEffect))
	if l.UnitDefinitive {
		w.bool8(u.Recyclable)
		w.f32(u.RegenerationRate)
	}
	w.str(l, u.Name, format.UnitNameLen)
}

func encodeName(s string) []byte {
	if s == "" {
		return nil
	}
	encoded, err := charmap.Windows1252.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return []byte(s)
	}
	return encoded
}
