// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"
	"github.com/toeirei/keyreport/internal/config"
	"github.com/toeirei/keyreport/internal/i18n"
)

func newConfigCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration to a YAML file",
		Long: `Writes the configuration keyreport would use right now (defaults, config
file, environment and flags combined) to the user config file, or to --path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := path
			if target == "" {
				p, err := config.GetConfigPath()
				if err != nil {
					return err
				}
				target = p
			}
			if err := config.WriteConfigFile(&a.cfg, target); err != nil {
				return err
			}
			a.log.Info(i18n.T("config.written", target))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "Write to this file instead of the user config path")
	return cmd
}
