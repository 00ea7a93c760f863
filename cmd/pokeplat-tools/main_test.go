package main

import (
	"testing"
)

func TestResolvePathsMutualExclusion(t *testing.T) {
	if _, err := resolvePaths("/repo", "/cfg.yaml"); err == nil {
		t.Error("resolvePaths: expected error when both --root and --config are set")
	}
}

func TestResolvePathsRequiresOne(t *testing.T) {
	if _, err := resolvePaths("", ""); err == nil {
		t.Error("resolvePaths: expected error when neither --root nor --config is set")
	}
}

func TestResolvePathsFromRoot(t *testing.T) {
	p, err := resolvePaths("/repo", "")
	if err != nil {
		t.Fatalf("resolvePaths: %v", err)
	}
	if p.AreaDataNarcPath == "" {
		t.Error("resolvePaths: AreaDataNarcPath is empty")
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := run([]string{"notsql"}); err == nil {
		t.Error("run: expected error for a non-'sql' command")
	}
}

func TestRunRequiresSubcommand(t *testing.T) {
	if err := run([]string{"sql"}); err == nil {
		t.Error("run: expected error when no subcommand is given")
	}
}

func TestRunRequiresRootOrConfig(t *testing.T) {
	if err := run([]string{"sql", "repl"}); err == nil {
		t.Error("run: expected error when neither --root nor --config is given")
	}
}
