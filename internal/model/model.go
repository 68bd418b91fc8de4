// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Package model defines the in-memory shapes produced by the raw dump parser
// and consumed by the report renderer. Nothing here outlives a single run.
package model // import "github.com/toeirei/keyreport/internal/model"

import (
	"fmt"
	"sort"
)

// Placeholder values used when a key line is missing fields.
const (
	UnknownType  = "Unknown"
	NotAvailable = "N/A"
)

// KeyRecord is one parsed line of an authorized_keys file.
type KeyRecord struct {
	Type    string `yaml:"type"`
	Data    string `yaml:"data"`
	Comment string `yaml:"comment"`
}

// NewKeyRecord builds a record from up to three split fields (type, data,
// comment). Absent or empty fields fall back to the placeholder values.
func NewKeyRecord(fields ...string) KeyRecord {
	return KeyRecord{
		Type:    fieldOr(fields, 0, UnknownType),
		Data:    fieldOr(fields, 1, NotAvailable),
		Comment: fieldOr(fields, 2, NotAvailable),
	}
}

func fieldOr(fields []string, i int, def string) string {
	if i < len(fields) && fields[i] != "" {
		return fields[i]
	}
	return def
}

// String returns the record in authorized_keys line form.
func (k KeyRecord) String() string {
	return fmt.Sprintf("%s %s %s", k.Type, k.Data, k.Comment)
}

// UserKeys holds one user's records in file order.
type UserKeys []KeyRecord

// HostUsers maps a username to its keys for a single host file.
type HostUsers map[string]UserKeys

// Users returns the usernames in ascending order.
func (h HostUsers) Users() []string {
	return sortedKeys(h)
}

// KeyCount returns the number of records across all users.
func (h HostUsers) KeyCount() int {
	n := 0
	for _, keys := range h {
		n += len(keys)
	}
	return n
}

// Corpus maps a hostname to the users parsed from that host's file.
type Corpus map[string]HostUsers

// Hosts returns the hostnames in ascending order.
func (c Corpus) Hosts() []string {
	return sortedKeys(c)
}

// Stats summarises a corpus.
type Stats struct {
	Hosts int
	Users int
	Keys  int
}

// Stats counts hosts, user sections and key records.
func (c Corpus) Stats() Stats {
	var s Stats
	for _, users := range c {
		s.Hosts++
		s.Users += len(users)
		s.Keys += users.KeyCount()
	}
	return s
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
