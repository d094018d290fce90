package dat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geniekit/geniekit/dat"
	"github.com/geniekit/geniekit/internal/testutil"
	"github.com/geniekit/geniekit/pkg/types"
)

// gaiaArchive is the minimal scenario fixture: one civilization named Gaia
// with two unit slots, the second a reserved (empty-name) record.
func gaiaArchive(v types.FileVersion) *testutil.ArchiveBuilder {
	return testutil.NewArchive(v).
		AddCivilization(testutil.CivSpec{
			Name:     "Gaia",
			TechTree: -1,
			Slots: []testutil.UnitSlot{
				{Unit: types.Unit{
					ID: 4, Name: "Scout", HitPoints: 30,
					StandingGraphic: testutil.NoRef(),
					DyingGraphic:    testutil.NoRef(),
					TrainSound:      testutil.NoRef(),
					AttackEffect:    testutil.NoRef(),
				}},
				{Unit: types.Unit{
					ID: 5, Name: "", HitPoints: 0,
					StandingGraphic: testutil.NoRef(),
					DyingGraphic:    testutil.NoRef(),
					TrainSound:      testutil.NoRef(),
					AttackEffect:    testutil.NoRef(),
				}},
			},
		})
}

func TestLoadGaiaScenario(t *testing.T) {
	a, err := dat.Load(gaiaArchive(types.FV57).Build(), types.GVClassic)
	require.NoError(t, err)

	require.Equal(t, 1, a.CivilizationCount())
	civ, err := a.Civilization(0)
	require.NoError(t, err)
	assert.Equal(t, "Gaia", civ.Name)
	assert.Equal(t, 2, civ.UnitCount())

	scout, err := civ.Unit(0)
	require.NoError(t, err)
	assert.Equal(t, int16(4), scout.ID)
	assert.Equal(t, "Scout", scout.Name)
	assert.Equal(t, int16(30), scout.HitPoints)

	// The unused slot keeps its positional index and empty name.
	reserved, err := civ.Unit(1)
	require.NoError(t, err)
	assert.Equal(t, int16(5), reserved.ID)
	assert.Equal(t, "", reserved.Name)
	assert.Equal(t, int16(0), reserved.HitPoints)
}

func TestLoadDeterministic(t *testing.T) {
	raw := gaiaArchive(types.FV57).
		AddGraphic(types.Graphic{ID: 0, Name: "walk", Sound: testutil.NoRef()}).
		AddTechnology(types.Technology{Name: "Loom", Effect: testutil.NoRef()}).
		Build()
	a1, err := dat.Load(raw, types.GVClassic)
	require.NoError(t, err)
	a2, err := dat.Load(raw, types.GVClassic)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

func TestLoadReservedTechnologySlots(t *testing.T) {
	b := testutil.NewArchive(types.FV57)
	named := []string{"Loom", "Wheelbarrow", "Ballistics"}
	for i := 0; i < 10; i++ {
		tech := types.Technology{Effect: testutil.NoRef()}
		if i < len(named) {
			tech.Name = named[i]
		}
		b.AddTechnology(tech)
	}
	a, err := dat.Load(b.Build(), types.GVClassic)
	require.NoError(t, err)

	// Reserved slots still occupy their indices.
	assert.Equal(t, 10, a.TechnologyCount())
	tech, err := a.Technology(7)
	require.NoError(t, err)
	assert.Equal(t, "", tech.Name)
	tech, err = a.Technology(2)
	require.NoError(t, err)
	assert.Equal(t, "Ballistics", tech.Name)
}

// Every strict prefix of a valid archive must fail with TruncatedData, never
// parse "successfully" with wrong content.
func TestLoadTruncationProperty(t *testing.T) {
	raw := gaiaArchive(types.FV57).
		AddGraphic(types.Graphic{ID: 0, Name: "walk", Sound: testutil.NoRef()}).
		Build()
	for n := 0; n < len(raw); n++ {
		_, err := dat.Load(raw[:n], types.GVClassic)
		require.ErrorIs(t, err, types.ErrTruncated, "prefix of %d bytes", n)
	}
}

func TestLoadSentinelReference(t *testing.T) {
	raw := testutil.NewArchive(types.FV57).
		AddGraphic(types.Graphic{ID: 0, Name: "walk", Sound: testutil.NoRef()}).
		AddCivilization(testutil.CivSpec{
			Name:     "Gaia",
			TechTree: -1,
			Slots: []testutil.UnitSlot{{Unit: types.Unit{
				ID: 0, Name: "Scout",
				StandingGraphic: testutil.NoRef(), // sentinel, not index 0
				DyingGraphic:    testutil.RefTo(0),
				TrainSound:      testutil.NoRef(),
				AttackEffect:    testutil.NoRef(),
			}}},
		}).
		Build()
	a, err := dat.Load(raw, types.GVClassic)
	require.NoError(t, err)
	civ, err := a.Civilization(0)
	require.NoError(t, err)
	u, err := civ.Unit(0)
	require.NoError(t, err)

	assert.Equal(t, types.RefAbsent, u.StandingGraphic.State)
	assert.False(t, u.StandingGraphic.Valid())
	assert.Equal(t, types.RefResolved, u.DyingGraphic.State)
	assert.Equal(t, 0, u.DyingGraphic.Index)
}

func TestLoadVersionGating(t *testing.T) {
	raw := gaiaArchive(types.FV57).Build()
	_, err := dat.Load(raw, types.GVDefinitive)
	require.ErrorIs(t, err, types.ErrUnsupportedVersion)
}

func TestLoadUnknownTagRejected(t *testing.T) {
	payload := append([]byte("VER 9.9\x00"), 0, 0)
	raw := testutil.Envelope(payload, false)
	_, err := dat.Load(raw, types.GVClassic)
	require.ErrorIs(t, err, types.ErrUnsupportedVersion)
}

func TestLoadRawAndZlibEqual(t *testing.T) {
	build := func(pack bool) []byte {
		b := gaiaArchive(types.FV57)
		if pack {
			b.Zlib()
		}
		return b.Build()
	}
	a1, err := dat.Load(build(false), types.GVClassic)
	require.NoError(t, err)
	a2, err := dat.Load(build(true), types.GVClassic)
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

func TestLoadCorruptEnvelope(t *testing.T) {
	raw := gaiaArchive(types.FV57).Zlib().Build()
	raw[12] ^= 0xFF // first byte of the zlib stream
	_, err := dat.Load(raw, types.GVClassic)
	require.ErrorIs(t, err, types.ErrCorrupt)
	require.NotErrorIs(t, err, types.ErrTruncated)
}

func TestLoadFile(t *testing.T) {
	raw := gaiaArchive(types.FV57).Build()
	path := filepath.Join(t.TempDir(), "empires.dat")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	a, err := dat.LoadFile(path, types.GVClassic)
	require.NoError(t, err)
	assert.Equal(t, 1, a.CivilizationCount())

	_, err = dat.LoadFile(filepath.Join(t.TempDir(), "missing.dat"), types.GVClassic)
	require.Error(t, err)
}

func TestLoadWithVersionFallback(t *testing.T) {
	// A definitive-era tag declared classic is rejected unless the caller
	// explicitly opts into nearest-version fallback.
	raw := testutil.NewArchive(types.FV71).Build()
	_, err := dat.Load(raw, types.GVClassic)
	require.ErrorIs(t, err, types.ErrUnsupportedVersion)

	a, err := dat.Load(raw, types.GVClassic, dat.WithVersionFallback())
	require.NoError(t, err)
	assert.Equal(t, types.FV59, a.FormatVersion())
}
