// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/model"
	"github.com/toeirei/keyreport/internal/rawdump"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <host-file> [user]",
		Short: "Print what keyreport parses from one host dump",
		Long: `Parses a single <host>_raw_auth_keys.txt file and prints the users and keys
found in it as YAML. Useful for checking a dump before generating the report.
If a user is given, only that user's keys are printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			users, err := rawdump.ParseFile(path)
			if err != nil {
				return err
			}

			var out any = users
			if len(args) == 2 {
				keys, ok := users[args[1]]
				if !ok {
					return errors.New(i18n.T("inspect.user_not_found", args[1], path))
				}
				out = model.HostUsers{args[1]: keys}
			}

			data, err := yaml.Marshal(out)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
