// Package format houses the low-level decoders for the dat archive format:
// the version tag resolver, the per-version layout table, and one reader per
// record kind. Readers branch only on the resolved version, never on
// heuristics over the data itself, and always consume the full record even
// for reserved slots so positional ids stay stable.
package format

const (
	// VersionTagSize is the width of the ASCII version tag at the start of
	// the decompressed payload, e.g. "VER 7.8\x00".
	VersionTagSize = 8

	// StringMarker precedes every length-prefixed string in
	// definitive-edition archives.
	StringMarker = 0x0A60

	// prefixedStringMin is the smallest prefixed-string encoding: a 2-byte
	// marker plus a 2-byte zero length.
	prefixedStringMin = 4

	// unitPointerSize is the width of one per-civilization unit slot pointer.
	unitPointerSize = 4
)

// Fixed name-field widths used by classic archives. Shorter names are padded
// with NULs; readers trim at the first NUL.
const (
	GraphicNameLen     = 21
	GraphicFileNameLen = 13
	SoundFileNameLen   = 13
	EffectNameLen      = 31
	TechNameLen        = 31
	UnitNameLen        = 31
	CivNameLen         = 20
)
