// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"os"

	"github.com/urfave/cli/v3"
)

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)

const (
	sourceArg  = "source"
	commandArg = "command"

	destinationFlag = "destination"
	recreateFlag    = "recreate"
	retriesFlag     = "retries"
	shellFlag       = "shell"
	processesFlag   = "processes"
	inputModeFlag   = "input-mode"
	configFlag      = "config"
	quietFlag       = "quiet"
	noTUIFlag       = "no-tui"
)

// RootCmd is the root command for the CLI.
var RootCmd = newRootCmd()

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:      "reach",
		Usage:     "run a shell command once for every file in a directory",
		UsageText: "reach [flags] SOURCE COMMAND",
		Description: `Reach runs COMMAND with the shell once for each regular file directly inside SOURCE,
running several files at once. The output of each run is written to
DESTINATION/<file name>/out and DESTINATION/<file name>/err.

In stdin mode the file is sent to the command's standard input.
In filename mode every {} in COMMAND is replaced by the file's absolute path.
If no mode is given, filename mode is used when COMMAND contains {}.

A job file may supply any of the settings as YAML; values given on the command
line take precedence. Job file URLs use Hashicorp's go-getter syntax, which
allows for fetching files from various sources.
See https://github.com/hashicorp/go-getter.

Press Ctrl+C once to stop starting new files, twice to kill running commands.`,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      sourceArg,
				UsageText: "directory holding the files to process",
			},
			&cli.StringArg{
				Name:      commandArg,
				UsageText: "shell command to run for each file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        destinationFlag,
				Aliases:     []string{"d"},
				Usage:       "Directory receiving one result directory per file",
				DefaultText: "SOURCE-results",
				TakesFile:   true,
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        recreateFlag,
				Usage:       "Recreate existing results (accepted, results are always overwritten)",
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.IntFlag{
				Name:     retriesFlag,
				Usage:    "Number of retries for a failed command (accepted, not acted on)",
				Value:    0,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:        shellFlag,
				Usage:       "Shell used to run COMMAND, invoked as SHELL -c COMMAND",
				DefaultText: "$SHELL, or /bin/sh",
				TakesFile:   true,
				OnlyOnce:    true,
			},
			&cli.IntFlag{
				Name:        processesFlag,
				Aliases:     []string{"j"},
				Usage:       "Maximum number of commands running at once",
				DefaultText: "number of CPUs",
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:        inputModeFlag,
				Aliases:     []string{"m"},
				Usage:       "How each file reaches COMMAND: stdin or filename",
				DefaultText: "filename if COMMAND contains {}, else stdin",
				OnlyOnce:    true,
			},
			&cli.StringFlag{
				Name:    configFlag,
				Aliases: []string{"f"},
				Usage: "URL of a YAML job file. " +
					"Supports Hashicorp's go-getter syntax for fetching files from various sources.",
				OnlyOnce: true,
			},
			&cli.BoolFlag{
				Name:        quietFlag,
				Aliases:     []string{"q"},
				Usage:       "Do not show progress or the summary of successful runs",
				DefaultText: "false",
				OnlyOnce:    true,
			},
			&cli.BoolFlag{
				Name:        noTUIFlag,
				Usage:       "Log progress lines instead of drawing a progress bar",
				DefaultText: "false",
				OnlyOnce:    true,
			},
		},
		Action: actionFunc,
	}
}
