// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Package rawdump reads the per-host text dumps produced by the collection
// step and turns them into a model.Corpus.
//
// A host file looks like this:
//
//	---HOST:server1---
//	---USER:root---
//	ssh-rsa AAAAB3NzaC1yc2EA... root@laptop
//	---USER:deploy---
//	ssh-ed25519 AAAAC3Nz...
//
// Files are named <host>_raw_auth_keys.txt; the host name comes from the file
// name, not from the ---HOST: line.
package rawdump // import "github.com/toeirei/keyreport/internal/rawdump"
