// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package logging

import (
	"bytes"
	"strings"
	"testing"
)

// TestLoggingHelpers_WriteToBuffer swaps L for a buffer-backed logger and
// checks that every helper reaches it.
func TestLoggingHelpers_WriteToBuffer(t *testing.T) {
	var buf bytes.Buffer
	prev := L
	L = New(&buf, true)
	defer func() { L = prev }()

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	for _, want := range []string{"hello dbg", "info 1", "warn", "err E"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output; got: %s", want, out)
		}
	}
}

func TestNew_DebugHiddenUnlessVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug("quiet")
	l.Info("loud")
	if strings.Contains(buf.String(), "quiet") {
		t.Fatalf("debug output leaked without verbose: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "loud") {
		t.Fatalf("info output missing: %s", buf.String())
	}

	buf.Reset()
	SetVerbose(l, true)
	l.Debug("quiet")
	if !strings.Contains(buf.String(), "quiet") {
		t.Fatalf("debug output missing after SetVerbose: %s", buf.String())
	}
}
