// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for keyreport.
//
// Usage:
//
//	go run . [flags]
//	./keyreport [flags]
//
// Without a subcommand this renders ./fetched_data/*_raw_auth_keys.txt into
// authorized_keys_report_raw_mode.html. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/keyreport/ui/cli"
)

func main() {
	// Cobra already printed the error.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
