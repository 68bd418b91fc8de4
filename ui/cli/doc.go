// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the keyreport command line using Cobra. It loads
// configuration, initialises localisation and logging, and delegates the
// actual work to the rawdump and report packages.
package cli
