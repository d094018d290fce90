package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)

	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	for _, want := range []string{
		"VER 5.7",
		"Civilizations:  1",
		"Technologies:   2",
		"Graphics:       1",
		"Sounds:         1",
		"Effects:        1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInfoCommandJSON(t *testing.T) {
	setupConfig(t)
	path := writeFixture(t)

	jsonOut = true
	defer func() { jsonOut = false }()

	out, err := captureOutput(t, func() error {
		return runInfo([]string{path})
	})
	if err != nil {
		t.Fatalf("runInfo: %v", err)
	}
	var info archiveInfo
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, out)
	}
	if info.FileVersion != "VER 5.7" || info.Civilizations != 1 || info.Technologies != 2 {
		t.Fatalf("unexpected info: %+v", info)
	}
}

func TestInfoCommandMissingFile(t *testing.T) {
	setupConfig(t)
	if err := runInfo([]string{"does-not-exist.dat"}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
