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

package gleam

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"runtime"
	"sync"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tidwall/btree"
	"golang.org/x/sync/semaphore"

	"github.com/Ian-GL/gleam/ast"
	"github.com/Ian-GL/gleam/parser"
	"github.com/Ian-GL/gleam/printer"
	"github.com/Ian-GL/gleam/reporter"
)

// Format parses src and returns it formatted. The given filename is used in
// error messages. The first syntax error aborts formatting.
func Format(filename string, src []byte, options printer.Options) ([]byte, error) {
	module, err := parser.Parse(filename, bytes.NewReader(src), reporter.NewHandler(nil))
	if err != nil {
		return nil, err
	}
	return []byte(printer.PrintModule(options, module)), nil
}

// Formatter formats many files in parallel.
type Formatter struct {
	// Resolves paths into source code or syntax trees. This is how the
	// formatter loads the files to be formatted. This field is the only
	// required field.
	Resolver Resolver
	// The maximum parallelism to use when formatting. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used, which fails a file at its first syntax error and ignores all
	// warnings.
	//
	// Files are parsed concurrently, so the reporter must be safe for
	// concurrent use.
	Reporter reporter.Reporter
	// Options for the printer.
	Options printer.Options
}

// Format formats the files at the given paths. Each path is formatted once,
// even if it is given more than once.
//
// A file that fails to load or parse does not stop the others: its error is
// recorded in its [Result]. The returned error is non-nil only if ctx is
// done before all files are formatted.
func (f *Formatter) Format(ctx context.Context, paths ...string) (*Results, error) {
	results := &Results{}
	if len(paths) == 0 {
		return results, nil
	}

	par := f.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	e := executor{
		f:       f,
		s:       semaphore.NewWeighted(int64(par)),
		results: map[string]*result{},
	}

	pending := make([]*result, len(paths))
	for i, path := range paths {
		pending[i] = e.format(ctx, path)
	}

	for i, r := range pending {
		select {
		case <-r.ready:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		results.tree.Set(paths[i], r.res)
	}
	return results, nil
}

type result struct {
	ready chan struct{}
	res   *Result
}

func (r *result) complete(res *Result) {
	r.res = res
	close(r.ready)
}

type executor struct {
	f *Formatter
	s *semaphore.Weighted

	mu      sync.Mutex
	results map[string]*result
}

func (e *executor) format(ctx context.Context, path string) *result {
	e.mu.Lock()
	defer e.mu.Unlock()
	r := e.results[path]
	if r != nil {
		return r
	}

	r = &result{
		ready: make(chan struct{}),
	}
	e.results[path] = r
	go func() {
		res := &Result{Path: path}
		res.Err = e.doFormat(ctx, res)
		r.complete(res)
	}()
	return r
}

func (e *executor) doFormat(ctx context.Context, res *Result) error {
	if err := e.s.Acquire(ctx, 1); err != nil {
		return err
	}
	defer e.s.Release(1)

	sr, err := e.f.Resolver.FindFileByPath(res.Path)
	if err != nil {
		return err
	}
	defer func() {
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	module := sr.AST
	if module == nil {
		if sr.Source == nil {
			return fmt.Errorf("search result for %q has neither source nor syntax tree", res.Path)
		}
		res.Original, err = io.ReadAll(sr.Source)
		if err != nil {
			return err
		}
		module, err = e.parse(res.Path, res.Original)
		if err != nil {
			return err
		}
	}

	res.Formatted = []byte(printer.PrintModule(e.f.Options, module))
	return nil
}

func (e *executor) parse(path string, src []byte) (*ast.Module, error) {
	// Each file gets its own handler, so that one file's errors do not
	// fail the others.
	h := reporter.NewHandler(e.f.Reporter)
	return parser.Parse(path, bytes.NewReader(src), h)
}

// Result is the outcome of formatting one file.
type Result struct {
	// The path the file was resolved from.
	Path string
	// The file's contents before formatting. Nil if the resolver supplied a
	// syntax tree rather than source.
	Original []byte
	// The file's contents after formatting. Nil if formatting failed.
	Formatted []byte
	// Non-nil if the file could not be loaded or parsed.
	Err error
}

// Changed returns whether formatting changed the file.
func (r *Result) Changed() bool {
	return r.Err == nil && !bytes.Equal(r.Original, r.Formatted)
}

// Diff returns a unified diff from the original to the formatted contents,
// or the empty string if formatting changed nothing.
func (r *Result) Diff() string {
	if !r.Changed() {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(r.Original)),
		B:        difflib.SplitLines(string(r.Formatted)),
		FromFile: r.Path,
		FromDate: "original",
		ToFile:   r.Path,
		ToDate:   "formatted",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// Results is a set of formatting results, ordered by path.
type Results struct {
	tree btree.Map[string, *Result]
}

// Len returns the number of results.
func (r *Results) Len() int {
	return r.tree.Len()
}

// Get returns the result for the given path, if there is one.
func (r *Results) Get(path string) (*Result, bool) {
	return r.tree.Get(path)
}

// All returns an iterator over all results, in path order.
func (r *Results) All() iter.Seq[*Result] {
	return func(yield func(*Result) bool) {
		it := r.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Err returns the error of the first failed result, in path order, or nil
// if every file was formatted.
func (r *Results) Err() error {
	for res := range r.All() {
		if res.Err != nil {
			return res.Err
		}
	}
	return nil
}
