package sysinfo

import (
	"strings"
	"testing"
)

func TestCollect(t *testing.T) {
	t.Parallel()
	info := Collect()

	if info.Platform == "" {
		t.Error("expected non-empty platform identifier")
	}
	if !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("unexpected Go version %q", info.GoVersion)
	}
	if len(info.Args) == 0 {
		t.Error("expected process args to be captured")
	}
	if info.Executable == "" {
		t.Error("expected executable path")
	}
}

func TestCollect_ModulesIncludeMain(t *testing.T) {
	t.Parallel()
	info := Collect()

	// Test binaries carry build info, so the module list should lead with
	// the main module.
	if len(info.Modules) == 0 {
		t.Skip("no build info available")
	}
	if !strings.Contains(info.Modules[0], "crashcatch") {
		t.Errorf("expected main module first, got %q", info.Modules[0])
	}
}
