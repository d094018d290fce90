package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindTruncated   ErrKind = iota // buffer exhausted mid-field/mid-record
	ErrKindCorrupt                    // structurally implausible values or a broken compressed block
	ErrKindUnsupported                // version tag outside the supported set
	ErrKindNotFound                   // out-of-range index/id on a post-load query
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match any Error of the same kind, so wrapped internal
// errors still compare equal to the package sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels surfaced by Load and the query facade.
var (
	// ErrTruncated indicates the buffer ended before a declared field or record.
	ErrTruncated = &Error{Kind: ErrKindTruncated, Msg: "truncated archive data"}
	// ErrCorrupt indicates non-recoverable structural inconsistency.
	ErrCorrupt = &Error{Kind: ErrKindCorrupt, Msg: "corrupt archive"}
	// ErrUnsupportedVersion indicates a version tag outside the known set.
	ErrUnsupportedVersion = &Error{Kind: ErrKindUnsupported, Msg: "unsupported archive version"}
	// ErrNotFound indicates an out-of-range index or id on a query.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
)

// -----------------------------------------------------------------------------
// Versions
// -----------------------------------------------------------------------------

// GameVersion is the caller-declared game family a dat file belongs to. The
// decoder never sniffs the game identity from the bytes; the caller picks an
// era before Load and the file's own version tag is validated against it.
type GameVersion uint8

const (
	GVUnknown GameVersion = iota
	// GVClassic covers the original releases (file versions 5.x).
	GVClassic
	// GVDefinitive covers the definitive-edition releases (file versions 7.x).
	GVDefinitive

	// GVLatestDefinitive is an alias callers can use to mean "the newest
	// supported definitive-edition data".
	GVLatestDefinitive = GVDefinitive
)

func (g GameVersion) String() string {
	switch g {
	case GVClassic:
		return "classic"
	case GVDefinitive:
		return "definitive"
	default:
		return "unknown"
	}
}

// FileVersion enumerates the closed set of supported archive revisions. The
// resolved value is threaded explicitly into every record reader; field
// widths and field presence depend on it and on nothing else.
type FileVersion uint8

const (
	FVUnknown FileVersion = iota
	FV57                  // "VER 5.7"
	FV59                  // "VER 5.9"
	FV71                  // "VER 7.1"
	FV77                  // "VER 7.7"
	FV78                  // "VER 7.8"
)

// String returns the on-disk tag form of the version.
func (v FileVersion) String() string {
	switch v {
	case FV57:
		return "VER 5.7"
	case FV59:
		return "VER 5.9"
	case FV71:
		return "VER 7.1"
	case FV77:
		return "VER 7.7"
	case FV78:
		return "VER 7.8"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Cross-references
// -----------------------------------------------------------------------------

// RefState describes the outcome of resolving a raw cross-reference id.
type RefState uint8

const (
	// RefUnresolved is the state of a raw id fresh out of a record reader,
	// before the assembler's resolution pass. No ref reachable from a loaded
	// Archive is ever in this state.
	RefUnresolved RefState = iota
	// RefResolved means Index is a valid position in the target collection.
	RefResolved
	// RefAbsent means the file carried the absent sentinel (a negative id):
	// the record deliberately has no such reference.
	RefAbsent
	// RefInvalid means the file carried a non-negative id past the end of the
	// target collection. Kept non-fatal: one bad reference does not condemn
	// the archive.
	RefInvalid
)

func (s RefState) String() string {
	switch s {
	case RefResolved:
		return "resolved"
	case RefAbsent:
		return "absent"
	case RefInvalid:
		return "invalid"
	default:
		return "unresolved"
	}
}

// Ref is a non-owning relation into one of the Archive's shared collections.
// The same graphic, sound, or effect is referenced by many records, so
// references stay indices rather than embedded copies.
type Ref struct {
	Index int
	State RefState
}

// Valid reports whether Index addresses a real record.
func (r Ref) Valid() bool { return r.State == RefResolved }

// RawRef wraps an id as read from the file, ahead of resolution.
func RawRef(id int16) Ref { return Ref{Index: int(id), State: RefUnresolved} }
