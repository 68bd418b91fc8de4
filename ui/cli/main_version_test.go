// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/toeirei/keyreport/buildvars"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/keyreport", Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_VCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/toeirei/keyreport", Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "abc123"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	}
	_, c, d := resolveBuildVersion(info)
	if c != "abc123" || d != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected vcs info: %s %s", c, d)
	}
}

func TestResolveBuildVersion_Fallbacks(t *testing.T) {
	origCommit, origVar := gitCommit, buildvars.Version
	defer func() { gitCommit, buildvars.Version = origCommit, origVar }()

	info := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}

	gitCommit = "deadbeef"
	if v, _, _ := resolveBuildVersion(info); v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}

	buildvars.Version = "v9.9.9"
	if v, _, _ := resolveBuildVersion(info); v != "v9.9.9" {
		t.Fatalf("expected buildvars version got %s", v)
	}
}

func TestVersionFlag(t *testing.T) {
	isolate(t)
	out, err := executeCommand(t, "--version")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	if !strings.Contains(out, "keyreport version") {
		t.Fatalf("unexpected version output: %q", out)
	}
}
