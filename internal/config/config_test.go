package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFromRepoRootValidates(t *testing.T) {
	p := FromRepoRoot("/repo")
	if err := p.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if filepath.Base(p.AreaDataNarcPath) != "area_data.narc" {
		t.Errorf("AreaDataNarcPath = %s, want to end in area_data.narc", p.AreaDataNarcPath)
	}
}

func TestValidateIncomplete(t *testing.T) {
	p := NarcPaths{AreaDataNarcPath: "set"}
	if err := p.Validate(); !errors.Is(err, ErrIncompleteNarcPaths) {
		t.Errorf("Validate error = %v, want ErrIncompleteNarcPaths", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/path.yaml"); err == nil {
		t.Fatal("LoadFile: expected error for missing file")
	}
}
