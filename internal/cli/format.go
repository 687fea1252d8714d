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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Ian-GL/gleam"
	"github.com/Ian-GL/gleam/internal/config"
	"github.com/Ian-GL/gleam/parser"
	"github.com/Ian-GL/gleam/printer"
	"github.com/Ian-GL/gleam/reporter"
)

// ErrUnformatted is returned by --check when some files are not formatted.
var ErrUnformatted = errors.New("files are not formatted")

// stdinName is the file name used in diagnostics for source read from stdin.
const stdinName = "<stdin>"

func runStdin(cmd *cobra.Command, opts *options) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	printOpts, err := loadOptions(cmd, opts, logger)
	if err != nil {
		return err
	}
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	module, err := parser.Parse(stdinName, bytes.NewReader(src), reporter.NewHandler(newReporter(logger)))
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), printer.PrintModule(printOpts, module))
	return err
}

func runFormat(cmd *cobra.Command, opts *options, args []string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	printOpts, err := loadOptions(cmd, opts, logger)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := expandPaths(args)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		logger.Warn("no gleam files found", "paths", args)
		return nil
	}

	prog := newProgress(logger)
	formatter := gleam.Formatter{
		Resolver:       &gleam.SourceResolver{},
		MaxParallelism: opts.jobs,
		Reporter:       newReporter(logger),
		Options:        printOpts,
	}
	results, err := formatter.Format(ctx, paths...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styles := newDiffStyles(out)
	var (
		failed      int
		unformatted []string
		toWrite     []*gleam.Result
	)
	for res := range results.All() {
		if res.Err != nil {
			failed++
			// Syntax errors were already logged by the reporter.
			if !errors.Is(res.Err, reporter.ErrInvalidSource) {
				logger.Error("cannot format file", "path", res.Path, "err", res.Err)
			}
			continue
		}
		if res.Changed() {
			unformatted = append(unformatted, res.Path)
			if opts.write {
				toWrite = append(toWrite, res)
			}
		}
		switch {
		case opts.check:
			if res.Changed() {
				fmt.Fprintln(out, res.Path)
			}
		case opts.diff:
			fmt.Fprint(out, styles.render(res.Diff()))
		case !opts.write:
			if _, err := out.Write(res.Formatted); err != nil {
				return err
			}
		}
	}

	if err := writeFiles(ctx, logger, toWrite, opts.jobs); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Formatted %d files, %d changed", results.Len(), len(unformatted)))

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be formatted", failed, results.Len())
	}
	if opts.check && len(unformatted) > 0 {
		return fmt.Errorf("%w: %d of %d", ErrUnformatted, len(unformatted), results.Len())
	}
	return nil
}

// loadOptions resolves printer options from gleam.toml and the command line
// flags, which take precedence.
func loadOptions(cmd *cobra.Command, opts *options, logger *log.Logger) (printer.Options, error) {
	var (
		cfg  *config.Config
		path = opts.config
		err  error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.Find(".")
	}
	if err != nil {
		return printer.Options{}, err
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}

	printOpts := cfg.Options()
	flags := cmd.Flags()
	if flags.Changed("width") {
		printOpts.MaxWidth = opts.width
	}
	if flags.Changed("indent") {
		if opts.indent <= 0 {
			return printer.Options{}, fmt.Errorf("--indent must be positive, got %d", opts.indent)
		}
		printOpts.Indent = opts.indent
	}
	return printOpts, nil
}

func newReporter(logger *log.Logger) reporter.Reporter {
	return reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			logger.Error(err.Error())
			return nil
		},
		func(err reporter.ErrorWithPos) {
			logger.Warn(err.Error())
		},
	)
}

// expandPaths turns command line arguments into a sorted, de-duplicated list
// of files. Directories are searched for *.gleam files, skipping the build
// directory; arguments containing glob meta characters are expanded as
// doublestar patterns.
func expandPaths(args []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, arg := range args {
		if strings.ContainsAny(arg, "*?[{") {
			matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
			}
			for _, match := range matches {
				add(match)
			}
			continue
		}

		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		matches, err := doublestar.Glob(os.DirFS(arg), "**/*.gleam", doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("search %s: %w", arg, err)
		}
		for _, match := range matches {
			if match == "build" || strings.HasPrefix(match, "build/") {
				continue
			}
			add(filepath.Join(arg, filepath.FromSlash(match)))
		}
	}

	slices.Sort(paths)
	return paths, nil
}

// writeFiles writes formatted source back to disk, keeping each file's
// permissions.
func writeFiles(ctx context.Context, logger *log.Logger, results []*gleam.Result, jobs int) error {
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, res := range results {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := os.Stat(res.Path)
			if err != nil {
				return err
			}
			if err := os.WriteFile(res.Path, res.Formatted, info.Mode().Perm()); err != nil {
				return err
			}
			logger.Debug("wrote file", "path", res.Path)
			return nil
		})
	}
	return g.Wait()
}
