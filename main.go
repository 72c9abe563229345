// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
 █████╗ ██████╗ ██████╗  ██████╗ ██████╗
██╔══██╗██╔══██╗██╔══██╗██╔═══██╗██╔══██╗
███████║██████╔╝██████╔╝██║   ██║██████╔╝
██╔══██║██╔══██╗██╔══██╗██║   ██║██╔══██╗
██║  ██║██║  ██║██████╔╝╚██████╔╝██║  ██║
╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝  ╚═════╝ ╚═╝  ╚═╝
Fast queries over the NYC street tree census [Version: %s%s%s]

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var (
		logLevel   string
		noProgress bool
		plain      bool
	)

	// newApp resolves config and logger for subcommands touching the census.
	newApp := func(cmd *cobra.Command) (*app, error) {
		config, err := LoadConfig()
		logger, lerr := newLogger(os.Stderr, pick(logLevel, config.Log.Level))
		if lerr != nil {
			return nil, lerr
		}
		if err != nil {
			logger.Warn().Err(err).Msg("using default settings")
		}
		if noProgress {
			config.Ingest.ShowProgress = false
		}
		return &app{config: config, log: logger, out: cmd.OutOrStdout(), plain: plain}, nil
	}

	var cmdRun = &cobra.Command{
		Use:   "run <datafile> <commandfile>",
		Short: "Load the census and execute a command file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run loads the census CSV and applies every command of the command file`),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.runCommandFile(args[0], args[1])
		},
	}

	var cmdSpecies = &cobra.Command{
		Use:   "species <datafile> [partial name]",
		Short: "List species, or the popularity of species matching a partial name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.listSpecies(args[0], strings.Join(args[1:], " "))
		},
	}

	var cmdNear = &cobra.Command{
		Use:   "near <datafile> <latitude> <longitude> <km>",
		Short: "List species growing within a distance of a point",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.listNear(args[0], args[1], args[2], args[3])
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Arbor usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file when missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Arbor version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "arbor",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// "arbor <datafile> <commandfile>" behaves like run
			if len(args) < 2 {
				return cmd.Help()
			}
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			return a.runCommandFile(args[0], args[1])
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "hide the loading progress bar")
	rootCmd.PersistentFlags().BoolVar(&plain, "plain", false, "disable colored report headers")

	rootCmd.AddCommand(cmdRun, cmdSpecies, cmdNear, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func pick(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}
