// Package reader assembles a decoded archive: it unpacks the envelope,
// resolves the file version, drives the record readers in the archive's
// fixed on-disk order, and runs the cross-reference resolution pass. The
// public wrapper (the dat package) exposes the result behind a read-only
// facade.
package reader

import (
	"github.com/rs/zerolog"

	"github.com/geniekit/geniekit/internal/buf"
	"github.com/geniekit/geniekit/internal/compress"
	"github.com/geniekit/geniekit/internal/format"
	"github.com/geniekit/geniekit/pkg/types"
)

// Options configure a single decode run.
type Options struct {
	// GameVersion is the caller-declared game family; required.
	GameVersion types.GameVersion
	// VersionFallback permits substituting the nearest revision inside the
	// declared era when the file's tag belongs to another era. Off by
	// default; when it engages, both tags are logged at warn level.
	VersionFallback bool
	// Logger receives fallback warnings and per-reference resolution debug
	// lines. Defaults to a no-op logger.
	Logger zerolog.Logger
}

// Result is the fully decoded archive prior to facade wrapping. Collection
// sizes and element order are exactly as stored in the source bytes.
type Result struct {
	FileVersion   types.FileVersion
	Graphics      []types.Graphic
	Sounds        []types.Sound
	Effects       []types.Effect
	Technologies  []types.Technology
	UnitTemplates []types.Unit
	Civilizations []types.Civilization
}

// Decode runs the full single-pass pipeline over raw file bytes. It either
// returns a complete Result or an error; no partial archive escapes.
func Decode(raw []byte, opts Options) (*Result, error) {
	payload, err := compress.Unpack(raw)
	if err != nil {
		return nil, err
	}

	c := buf.New(payload)
	parsed, tag, err := format.ReadVersionTag(c)
	if err != nil {
		return nil, err
	}
	fv, fellBack, err := format.Resolve(opts.GameVersion, parsed, opts.VersionFallback)
	if err != nil {
		return nil, err
	}
	if fellBack {
		opts.Logger.Warn().
			Str("file_tag", tag).
			Stringer("resolved", fv).
			Stringer("game", opts.GameVersion).
			Msg("version tag outside declared era, using nearest known revision")
	}

	l := format.LayoutFor(fv)
	res := &Result{FileVersion: fv}

	// Fixed top-level order: shared resource tables first, then the tables
	// that reference them.
	if res.Graphics, err = format.ReadGraphics(c, l); err != nil {
		return nil, err
	}
	if res.Sounds, err = format.ReadSounds(c, l); err != nil {
		return nil, err
	}
	if res.Effects, err = format.ReadEffects(c, l); err != nil {
		return nil, err
	}
	if res.Technologies, err = format.ReadTechnologies(c, l); err != nil {
		return nil, err
	}
	if res.UnitTemplates, err = format.ReadUnitTemplates(c, l); err != nil {
		return nil, err
	}
	if res.Civilizations, err = format.ReadCivilizations(c, l); err != nil {
		return nil, err
	}

	res.resolve(opts.Logger)
	return res, nil
}

// resolve rewrites every raw cross-reference id into a validated relation
// against the now-fully-populated shared collections. Policy: a negative id
// is the format's absent sentinel; a non-negative id past the end of the
// target collection is recorded as invalid on that record only, never
// escalated to a load failure.
func (r *Result) resolve(log zerolog.Logger) {
	nGraphics := len(r.Graphics)
	nSounds := len(r.Sounds)
	nEffects := len(r.Effects)
	nTechs := len(r.Technologies)

	for i := range r.Graphics {
		r.Graphics[i].Sound = resolveRef(r.Graphics[i].Sound, nSounds, log, "graphic", i, "sound")
	}
	for i := range r.Technologies {
		r.Technologies[i].Effect = resolveRef(r.Technologies[i].Effect, nEffects, log, "technology", i, "effect")
	}
	resolveUnits(r.UnitTemplates, nGraphics, nSounds, nEffects, log, "templates")
	for i := range r.Civilizations {
		civ := &r.Civilizations[i]
		civ.TechTree = resolveRef(civ.TechTree, nTechs, log, "civilization", i, "tech tree")
		civ.TeamBonus = resolveRef(civ.TeamBonus, nEffects, log, "civilization", i, "team bonus")
		resolveUnits(civ.Units, nGraphics, nSounds, nEffects, log, civ.Name)
	}
}

func resolveUnits(units []types.Unit, nGraphics, nSounds, nEffects int, log zerolog.Logger, owner string) {
	for i := range units {
		u := &units[i]
		u.StandingGraphic = resolveRef(u.StandingGraphic, nGraphics, log, owner, i, "standing graphic")
		u.DyingGraphic = resolveRef(u.DyingGraphic, nGraphics, log, owner, i, "dying graphic")
		u.TrainSound = resolveRef(u.TrainSound, nSounds, log, owner, i, "train sound")
		u.AttackEffect = resolveRef(u.AttackEffect, nEffects, log, owner, i, "attack effect")
	}
}

func resolveRef(ref types.Ref, n int, log zerolog.Logger, owner string, idx int, field string) types.Ref {
	if ref.State != types.RefUnresolved {
		return ref
	}
	switch {
	case ref.Index < 0:
		ref.State = types.RefAbsent
	case ref.Index < n:
		ref.State = types.RefResolved
	default:
		ref.State = types.RefInvalid
		log.Debug().
			Str("owner", owner).
			Int("record", idx).
			Str("field", field).
			Int("id", ref.Index).
			Int("collection_size", n).
			Msg("reference id out of range, keeping record with invalid reference")
	}
	return ref
}
