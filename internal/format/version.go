package format

import (
	"fmt"
	"strings"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/pkg/types"
)

// ReadVersionTag consumes the fixed-width tag at the head of the payload and
// maps it onto the closed set of supported revisions. The raw tag text is
// returned alongside so callers can log it verbatim on failure or fallback.
func ReadVersionTag(c *buf.Cursor) (types.FileVersion, string, error) {
	raw, err := c.Bytes(VersionTagSize)
	if err != nil {
		return types.FVUnknown, "", fmt.Errorf("version tag: %w", err)
	}
	tag := strings.TrimRight(string(raw), "\x00")
	switch tag {
	case "VER 5.7":
		return types.FV57, tag, nil
	case "VER 5.9":
		return types.FV59, tag, nil
	case "VER 7.1":
		return types.FV71, tag, nil
	case "VER 7.7":
		return types.FV77, tag, nil
	case "VER 7.8":
		return types.FV78, tag, nil
	default:
		return types.FVUnknown, tag, fmt.Errorf("version tag %q: %w", tag, types.ErrUnsupportedVersion)
	}
}

// eraVersions lists the file versions each declared game version accepts, in
// ascending revision order.
func eraVersions(gv types.GameVersion) []types.FileVersion {
	switch gv {
	case types.GVClassic:
		return []types.FileVersion{types.FV57, types.FV59}
	case types.GVDefinitive:
		return []types.FileVersion{types.FV71, types.FV77, types.FV78}
	default:
		return nil
	}
}

// revision assigns each file version a comparable number for nearest-version
// selection (5.7 -> 57, 7.8 -> 78).
func revision(v types.FileVersion) int {
	switch v {
	case types.FV57:
		return 57
	case types.FV59:
		return 59
	case types.FV71:
		return 71
	case types.FV77:
		return 77
	case types.FV78:
		return 78
	default:
		return 0
	}
}

// Resolve validates the parsed file version against the caller-declared game
// version. When the tag lies outside the declared era and fallback is
// enabled it returns the era's nearest revision and fellBack = true; the
// caller must log that substitution, never apply it silently.
func Resolve(gv types.GameVersion, fv types.FileVersion, fallback bool) (resolved types.FileVersion, fellBack bool, err error) {
	allowed := eraVersions(gv)
	if len(allowed) == 0 {
		return types.FVUnknown, false, fmt.Errorf("game version %v declared: %w", gv, types.ErrUnsupportedVersion)
	}
	for _, v := range allowed {
		if v == fv {
			return fv, false, nil
		}
	}
	if !fallback {
		return types.FVUnknown, false, fmt.Errorf("file version %v not valid for %v data: %w", fv, gv, types.ErrUnsupportedVersion)
	}
	best := allowed[0]
	for _, v := range allowed[1:] {
		if abs(revision(v)-revision(fv)) < abs(revision(best)-revision(fv)) {
			best = v
		}
	}
	return best, true, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Layout is the reified per-version variant table: every width and
// optional-field decision a reader needs, resolved once from the file
// version instead of re-derived branch by branch.
type Layout struct {
	// Count32 selects 32-bit array counts; classic archives use 16-bit.
	Count32 bool
	// PrefixedStrings selects marker+length strings; classic archives use
	// fixed-width NUL-padded fields.
	PrefixedStrings bool

	// Optional-field presence, all definitive-edition additions.
	GraphicReplayDelay bool
	SoundItemCiv       bool
	TechRepeatable     bool
	UnitDefinitive     bool
	CivTeamBonus       bool
}

// LayoutFor returns the layout for a resolved file version.
func LayoutFor(v types.FileVersion) Layout {
	switch v {
	case types.FV71, types.FV77, types.FV78:
		return Layout{
			Count32:            true,
			PrefixedStrings:    true,
			GraphicReplayDelay: true,
			SoundItemCiv:       true,
			TechRepeatable:     true,
			UnitDefinitive:     true,
			CivTeamBonus:       true,
		}
	default:
		return Layout{}
	}
}
