package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/geniekit/geniekit/internal/testutil"
	"github.com/geniekit/geniekit/pkg/types"
)

// writeFixture builds a small classic archive on disk and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	raw := testutil.NewArchive(types.FV57).
		AddGraphic(types.Graphic{ID: 0, Name: "walk", Sound: testutil.NoRef()}).
		AddSound(types.Sound{ID: 0}).
		AddEffect(types.Effect{Name: "bonus"}).
		AddTechnology(types.Technology{Name: "Loom", Effect: testutil.NoRef()}).
		AddTechnology(types.Technology{Effect: testutil.NoRef()}).
		AddCivilization(testutil.CivSpec{
			Name:     "Gaia",
			TechTree: -1,
			Slots: []testutil.UnitSlot{
				{Unit: types.Unit{
					ID: 4, Name: "Scout", HitPoints: 30,
					StandingGraphic: testutil.RefTo(0),
					DyingGraphic:    testutil.NoRef(),
					TrainSound:      testutil.NoRef(),
					AttackEffect:    testutil.NoRef(),
				}},
				{Empty: true},
			},
		}).
		Build()
	path := filepath.Join(t.TempDir(), "fixture.dat")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

// setupConfig pins the configuration the command helpers read from viper.
func setupConfig(t *testing.T) {
	t.Helper()
	viper.Set("game", "classic")
	viper.Set("version-fallback", false)
	t.Cleanup(viper.Reset)
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	_ = w.Close()
	os.Stdout = origStdout

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return string(out), fnErr
}
