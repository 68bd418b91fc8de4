// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package rawdump

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/toeirei/keyreport/internal/model"
	"github.com/toeirei/keyreport/internal/sshkey"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	hostPrefix      = "---HOST:"
	userPrefix      = "---USER:"
	delimiterPrefix = "---"
	// errorSentinel marks lines the collector emits when it cannot read a
	// user's authorized_keys file.
	errorSentinel = "Error reading"

	// RSA keys with long option prefixes can exceed bufio's 64K default.
	maxLineSize = 1 << 20
)

// ParseFile parses one host file. Failures are returned as *FileError and
// come with an empty, non-nil result; a missing file satisfies
// errors.Is(err, fs.ErrNotExist).
func ParseFile(path string) (model.HostUsers, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.HostUsers{}, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	users, err := Parse(f)
	if err != nil {
		return users, &FileError{Path: path, Err: err}
	}
	return users, nil
}

// Parse reads a host dump from r. Input must be valid UTF-8; any read or
// decoding error discards the partial result.
func Parse(r io.Reader) (model.HostUsers, error) {
	scanner := bufio.NewScanner(transform.NewReader(r, encoding.UTF8Validator))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	users := model.HostUsers{}
	current := ""
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, hostPrefix):
			continue
		case strings.HasPrefix(line, userPrefix):
			current = strings.TrimRight(line[len(userPrefix):], "-")
			users[current] = model.UserKeys{}
		case current == "" || line == "" || strings.HasPrefix(line, delimiterPrefix):
			continue
		case strings.Contains(line, errorSentinel):
			continue
		default:
			users[current] = append(users[current], sshkey.ParseLine(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return model.HostUsers{}, err
	}
	return users, nil
}
