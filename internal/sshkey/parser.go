// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package sshkey // import "github.com/toeirei/keyreport/internal/sshkey"

import (
	"strings"
	"unicode"

	"github.com/toeirei/keyreport/internal/model"
)

// maxFields is the number of columns in a key line: type, data, comment.
const maxFields = 3

// Split breaks a raw authorized_keys line into at most three fields on runs
// of whitespace. The last field keeps any embedded whitespace verbatim, so a
// comment such as "build bot (ci)" survives intact.
func Split(line string) []string {
	line = strings.TrimSpace(line)
	fields := make([]string, 0, maxFields)
	for line != "" && len(fields) < maxFields-1 {
		end := strings.IndexFunc(line, unicode.IsSpace)
		if end < 0 {
			break
		}
		fields = append(fields, line[:end])
		line = strings.TrimLeftFunc(line[end:], unicode.IsSpace)
	}
	if line != "" {
		fields = append(fields, line)
	}
	return fields
}

// ParseLine splits a key line and fills in placeholders for missing fields.
// It never fails; malformed lines simply yield more placeholders.
func ParseLine(line string) model.KeyRecord {
	return model.NewKeyRecord(Split(line)...)
}
