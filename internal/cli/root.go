// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // set with -ldflags "-X"
	commit  string
)

type options struct {
	write   bool
	check   bool
	diff    bool
	stdin   bool
	verbose bool
	width   int
	indent  int
	jobs    int
	config  string
}

// Execute runs gleamfmt with the process arguments.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewRootCommand builds the gleamfmt command. Input and output go through
// the command's configured streams, so callers may redirect them with
// SetIn, SetOut and SetErr.
func NewRootCommand() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "gleamfmt [flags] [path ...]",
		Short: "gleamfmt formats Gleam source code",
		Long: `gleamfmt rewrites Gleam source files in the canonical layout: two space
indentation, lines of at most 80 columns where possible, and trailing commas
on argument lists that do not fit on one line.

With no paths, the current directory is formatted.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.stdin {
				if len(args) > 0 {
					return fmt.Errorf("--stdin does not take paths, got %d", len(args))
				}
				return runStdin(cmd, &opts)
			}
			return runFormat(cmd, &opts, args)
		},
	}

	if commit != "" {
		root.SetVersionTemplate(fmt.Sprintf("gleamfmt %s\ncommit: %s\n", version, commit))
	}

	flags := root.Flags()
	flags.BoolVarP(&opts.write, "write", "w", false, "write formatted source back to the files")
	flags.BoolVarP(&opts.check, "check", "c", false, "list files whose formatting differs and fail if there are any")
	flags.BoolVarP(&opts.diff, "diff", "d", false, "print a diff for files whose formatting differs")
	flags.BoolVar(&opts.stdin, "stdin", false, "format source read from stdin and write it to stdout")
	flags.IntVar(&opts.width, "width", 0, "maximum line width; negative disables wrapping (default from gleam.toml, else 80)")
	flags.IntVar(&opts.indent, "indent", 0, "indentation step (default from gleam.toml, else 2)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of files to format in parallel (default: number of CPUs)")
	flags.StringVar(&opts.config, "config", "", "path to gleam.toml (default: nearest one above the working directory)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.MarkFlagsMutuallyExclusive("write", "check")
	root.MarkFlagsMutuallyExclusive("stdin", "write")
	root.MarkFlagsMutuallyExclusive("stdin", "check")
	root.MarkFlagsMutuallyExclusive("stdin", "diff")

	return root
}
