// Package dat decodes versioned game-data archives ("dat files") into an
// immutable, queryable in-memory model.
//
// A dat file describes civilizations, technologies, units, graphics, sounds,
// and effects. Load takes the complete file bytes plus the caller-declared
// game version, strips an optional compression envelope, resolves the format
// revision from the embedded version tag, walks the version-dependent record
// stream in a single pass, and rewrites raw cross-reference ids into
// validated relations. The returned Archive never changes after Load and is
// safe for concurrent readers without locking; a new load produces an
// entirely new Archive.
//
// Failures are typed (see pkg/types): truncated data, structural corruption,
// and unsupported versions abort the load with no partial archive; an
// out-of-range query on a loaded Archive returns types.ErrNotFound.
package dat
