// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/toeirei/keyreport/buildvars"
	"github.com/toeirei/keyreport/internal/config"
	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/logging"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// flagBindings maps config keys to the persistent flags that override them.
var flagBindings = map[string]string{
	"input.dir":           "input-dir",
	"input.suffix":        "suffix",
	"output.path":         "output",
	"language":            "language",
	"report.fingerprints": "fingerprints",
	"verbose":             "verbose",
}

// app is the state shared by the commands of one root command instance.
type app struct {
	cfgFile string
	cfg     config.Config
	log     *clog.Logger
	out     io.Writer
}

// Execute runs the CLI entrypoint. The main package handles process exit.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd creates and configures a new root cobra command. Every call
// returns an independent tree, which keeps tests isolated.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "keyreport",
		Short: "Render collected authorized_keys dumps into an HTML report.",
		Long: `keyreport reads the per-host authorized_keys dumps left by the collection
step (one <host>_raw_auth_keys.txt file per host) and renders them into a
single static HTML page, grouped by host and then by user.

Running without a subcommand generates the report.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		Run: func(cmd *cobra.Command, args []string) {
			a.generate()
		},
	}

	v, c, d := resolveBuildVersion(nil)
	compositeVersion := v
	if c != "" && c != "dev" {
		compositeVersion = compositeVersion + " (" + c + ")"
	}
	if d != "" {
		compositeVersion = compositeVersion + " built: " + d
	}
	cmd.Version = compositeVersion

	defaults := config.Defaults()
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is <user config dir>/keyreport/keyreport.yaml or ./keyreport.yaml)")
	pf.String("input-dir", defaults["input.dir"].(string), "Directory holding the <host>_raw_auth_keys.txt files")
	pf.String("suffix", defaults["input.suffix"].(string), "File name suffix that marks a host dump")
	pf.StringP("output", "o", defaults["output.path"].(string), "Path of the HTML report to write")
	pf.String("language", defaults["language"].(string), `Report and message language ("en", "ko")`)
	pf.Bool("fingerprints", false, "Show SHA256 fingerprints for decodable keys")
	pf.BoolP("verbose", "v", false, "Enable verbose output")

	cmd.AddCommand(newInspectCmd(a))
	cmd.AddCommand(newConfigCmd(a))

	return cmd
}

// setup loads configuration and prepares i18n and logging. It runs before
// every command.
func (a *app) setup(cmd *cobra.Command) error {
	explicit, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	a.cfg, err = config.LoadConfig[config.Config](cmd, config.Defaults(), flagBindings, explicit)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	i18n.Init(a.cfg.Language)
	a.out = cmd.OutOrStdout()
	a.log = logging.New(a.out, a.cfg.Verbose)
	logging.L = a.log
	if _, ok := i18n.GetAvailableLocales()[a.cfg.Language]; !ok {
		logging.Warnf(i18n.T("config.unsupported_language"), a.cfg.Language)
	}
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, found := debug.ReadBuildInfo(); found {
			info = local
		}
	}

	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// Show the commit if nothing better was found, to aid support.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
