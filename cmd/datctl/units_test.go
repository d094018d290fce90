package main

import (
	"strings"
	"testing"
)

func TestUnitsCommand(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)

	out, err := captureOutput(t, func() error {
		return runUnits([]string{path}, 0, 10)
	})
	if err != nil {
		t.Fatalf("runUnits: %v", err)
	}
	if !strings.Contains(out, "Units in Gaia (2 slots)") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "[4] Scout (HP: 30)") {
		t.Errorf("missing unit row:\n%s", out)
	}
	// The empty slot counts toward the total but is not listed.
	if strings.Contains(out, "[1] ") {
		t.Errorf("empty slot listed:\n%s", out)
	}
}

func TestUnitsCommandBadCivIndex(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)
	if err := runUnits([]string{path}, 7, 10); err == nil {
		t.Fatalf("expected error for out-of-range civilization")
	}
}

func TestCivsCommand(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)

	out, err := captureOutput(t, func() error {
		return runCivs([]string{path})
	})
	if err != nil {
		t.Fatalf("runCivs: %v", err)
	}
	if !strings.Contains(out, "[0] Gaia (2 unit slots)") {
		t.Errorf("missing civ row:\n%s", out)
	}
}

func TestTechsCommandSkipsReserved(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)

	out, err := captureOutput(t, func() error {
		return runTechs([]string{path}, 10)
	})
	if err != nil {
		t.Fatalf("runTechs: %v", err)
	}
	if !strings.Contains(out, "(2 slots, 1 named)") {
		t.Errorf("missing slot summary:\n%s", out)
	}
	if !strings.Contains(out, "[0] Loom") {
		t.Errorf("missing named tech:\n%s", out)
	}
}
