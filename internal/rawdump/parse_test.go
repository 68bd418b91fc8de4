// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package rawdump

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/toeirei/keyreport/internal/model"
	"golang.org/x/text/encoding"
)

const server1Dump = `---HOST:server1---
---USER:root---
ssh-rsa AAAAB3NzaC1yc2EA... root@laptop
---USER:deploy---
ssh-ed25519 AAAAC3Nz...
`

func mustParse(t *testing.T, input string) model.HostUsers {
	t.Helper()
	got, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	return got
}

func TestParse_Server1Example(t *testing.T) {
	got := mustParse(t, server1Dump)
	want := model.HostUsers{
		"root":   model.UserKeys{{Type: "ssh-rsa", Data: "AAAAB3NzaC1yc2EA...", Comment: "root@laptop"}},
		"deploy": model.UserKeys{{Type: "ssh-ed25519", Data: "AAAAC3Nz...", Comment: "N/A"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Parse = %#v\nwant %#v", got, want)
	}
}

func TestParse_NoUserSectionIsEmpty(t *testing.T) {
	inputs := []string{
		"",
		"---HOST:lonely---\n",
		"ssh-rsa AAAA orphan@nowhere\nssh-ed25519 BBBB\n",
	}
	for _, in := range inputs {
		got := mustParse(t, in)
		if got == nil || len(got) != 0 {
			t.Fatalf("Parse(%q) = %#v, want empty non-nil map", in, got)
		}
	}
}

func TestParse_LinesBeforeFirstUserAreDropped(t *testing.T) {
	got := mustParse(t, "ssh-rsa EARLY early\n---USER:alice---\nssh-rsa LATE late\n")
	if len(got) != 1 || len(got["alice"]) != 1 || got["alice"][0].Data != "LATE" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestParse_CommentKeepsEmbeddedSpaces(t *testing.T) {
	got := mustParse(t, "---USER:ci---\nssh-ed25519 AAAA   build bot for  project x  \n")
	if c := got["ci"][0].Comment; c != "build bot for  project x" {
		t.Fatalf("comment = %q", c)
	}
}

func TestParse_ErrorSentinelExcluded(t *testing.T) {
	input := strings.Join([]string{
		"Error reading /home/early/.ssh/authorized_keys",
		"---USER:bob---",
		"Error reading /home/bob/.ssh/authorized_keys: Permission denied",
		"ssh-rsa AAAA bob@desk",
		"cat: Error reading file",
	}, "\n")
	got := mustParse(t, input)
	if len(got["bob"]) != 1 || got["bob"][0].Comment != "bob@desk" {
		t.Fatalf("sentinel lines leaked into keys: %#v", got)
	}
}

func TestParse_RepeatedUserReplacesSection(t *testing.T) {
	input := "---USER:alice---\nssh-rsa FIRST one\nssh-rsa SECOND two\n---USER:alice---\nssh-ed25519 THIRD three\n"
	got := mustParse(t, input)
	want := model.UserKeys{{Type: "ssh-ed25519", Data: "THIRD", Comment: "three"}}
	if !reflect.DeepEqual(got["alice"], want) {
		t.Fatalf("alice = %#v, want %#v", got["alice"], want)
	}
}

func TestParse_UserWithoutKeysIsKept(t *testing.T) {
	got := mustParse(t, "---USER:nobody---\n\n   \n---USER:root---\nssh-rsa AAAA\n")
	keys, ok := got["nobody"]
	if !ok {
		t.Fatalf("expected section for nobody, got %#v", got)
	}
	if keys == nil || len(keys) != 0 {
		t.Fatalf("expected empty non-nil key list, got %#v", keys)
	}
}

func TestParse_DelimiterLinesAndWhitespace(t *testing.T) {
	input := "   ---USER:carol---   \n\t---END---\n  ssh-rsa   AAAA   carol@home  \n---\n"
	got := mustParse(t, input)
	want := model.UserKeys{{Type: "ssh-rsa", Data: "AAAA", Comment: "carol@home"}}
	if !reflect.DeepEqual(got["carol"], want) {
		t.Fatalf("carol = %#v, want %#v", got["carol"], want)
	}
}

func TestParse_UsernameTrailingDashesStripped(t *testing.T) {
	got := mustParse(t, "---USER:svc-app---\nssh-rsa A\n---USER:plain\nssh-rsa B\n")
	if _, ok := got["svc-app"]; !ok {
		t.Fatalf("expected svc-app, got %v", got.Users())
	}
	if _, ok := got["plain"]; !ok {
		t.Fatalf("expected plain, got %v", got.Users())
	}
}

func TestParse_EmptyUsernameCollectsNothing(t *testing.T) {
	got := mustParse(t, "---USER:---\nssh-rsa AAAA stray\n")
	keys, ok := got[""]
	if !ok || len(keys) != 0 {
		t.Fatalf("expected empty section for blank user, got %#v", got)
	}
}

func TestParse_MalformedLinesDefault(t *testing.T) {
	got := mustParse(t, "---USER:x---\ngarbage\n")
	want := model.KeyRecord{Type: "garbage", Data: "N/A", Comment: "N/A"}
	if got["x"][0] != want {
		t.Fatalf("got %#v, want %#v", got["x"][0], want)
	}
}

func TestParse_InvalidUTF8(t *testing.T) {
	got, err := Parse(strings.NewReader("---USER:root---\nssh-rsa AAAA \xff\xfe\n"))
	if !errors.Is(err, encoding.ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty result on decode error, got %#v", got)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghost_raw_auth_keys.txt")
	got, err := ParseFile(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	var fe *FileError
	if !errors.As(err, &fe) || fe.Path != path {
		t.Fatalf("expected FileError for %s, got %#v", path, err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %#v", got)
	}
}

func TestParseFile_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server1_raw_auth_keys.txt")
	if err := os.WriteFile(path, []byte(server1Dump), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if !reflect.DeepEqual(got.Users(), []string{"deploy", "root"}) {
		t.Fatalf("unexpected users: %v", got.Users())
	}
}
