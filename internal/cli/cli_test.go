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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ian-GL/gleam/reporter"
)

const (
	messy = "pub fn one() { 1 }\n"
	tidy  = "pub fn two() {\n  2\n}\n"
)

// execute runs gleamfmt with args and returns its stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// project lays out a small Gleam project and returns its root.
func project(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"gleam.toml":           "name = \"app\"\n",
		"src/one.gleam":        messy,
		"src/nested/two.gleam": tidy,
		"build/dep/dep.gleam":  messy,
		"src/notes.txt":        "not gleam",
	}
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

func configFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gleam.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestStdin(t *testing.T) {
	t.Parallel()

	cfg := configFile(t, "")
	out, _, err := execute(t, messy, "--stdin", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "pub fn one() {\n  1\n}\n", out)
}

func TestStdinConfig(t *testing.T) {
	t.Parallel()

	cfg := configFile(t, "[format]\nindent = 4\n")
	out, _, err := execute(t, messy, "--stdin", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "pub fn one() {\n    1\n}\n", out)

	// Flags win over the file.
	out, _, err = execute(t, messy, "--stdin", "--config", cfg, "--indent", "3")
	require.NoError(t, err)
	assert.Equal(t, "pub fn one() {\n   1\n}\n", out)

	_, _, err = execute(t, messy, "--stdin", "--config", cfg, "--indent", "0")
	require.EqualError(t, err, "--indent must be positive, got 0")
}

func TestStdinErrors(t *testing.T) {
	t.Parallel()

	cfg := configFile(t, "")
	_, stderr, err := execute(t, "fn ( {}\ntype { }\n", "--stdin", "--config", cfg)
	require.ErrorIs(t, err, reporter.ErrInvalidSource)
	assert.Contains(t, stderr, "<stdin>:1:")
	assert.Contains(t, stderr, "<stdin>:2:")

	_, _, err = execute(t, messy, "--stdin", "--config", cfg, "a.gleam")
	require.Error(t, err)

	_, _, err = execute(t, messy, "--stdin", "--write", "--config", cfg)
	require.Error(t, err)
}

func TestStdinWarnsAboutComments(t *testing.T) {
	t.Parallel()

	cfg := configFile(t, "")
	out, stderr, err := execute(t, "// hello\nfn a() { 1 }\n", "--stdin", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "fn a() {\n  1\n}\n", out)
	assert.Contains(t, stderr, "comment is not preserved by formatting")
}

func TestFormatToStdout(t *testing.T) {
	t.Parallel()

	root := project(t)
	out, _, err := execute(t, "", "--config", filepath.Join(root, "gleam.toml"), filepath.Join(root, "src"))
	require.NoError(t, err)
	// Files are printed in path order; nested/two.gleam sorts before one.gleam.
	assert.Equal(t, tidy+"pub fn one() {\n  1\n}\n", out)

	// Nothing was written.
	data, err := os.ReadFile(filepath.Join(root, "src", "one.gleam"))
	require.NoError(t, err)
	assert.Equal(t, messy, string(data))
}

func TestWrite(t *testing.T) {
	t.Parallel()

	root := project(t)
	_, _, err := execute(t, "", "--write", "--config", filepath.Join(root, "gleam.toml"), root)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "src", "one.gleam"))
	require.NoError(t, err)
	assert.Equal(t, "pub fn one() {\n  1\n}\n", string(data))

	data, err = os.ReadFile(filepath.Join(root, "src", "nested", "two.gleam"))
	require.NoError(t, err)
	assert.Equal(t, tidy, string(data))

	// The build directory is left alone.
	data, err = os.ReadFile(filepath.Join(root, "build", "dep", "dep.gleam"))
	require.NoError(t, err)
	assert.Equal(t, messy, string(data))

	// A second run has nothing to do.
	_, _, err = execute(t, "", "--check", "--config", filepath.Join(root, "gleam.toml"), root)
	require.NoError(t, err)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	root := project(t)
	out, _, err := execute(t, "", "--check", "--config", filepath.Join(root, "gleam.toml"), root)
	require.ErrorIs(t, err, ErrUnformatted)
	assert.Equal(t, filepath.Join(root, "src", "one.gleam")+"\n", out)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	root := project(t)
	pattern := filepath.Join(root, "src", "**", "*.gleam")
	out, _, err := execute(t, "", "--diff", "--config", filepath.Join(root, "gleam.toml"), pattern)
	require.NoError(t, err)
	one := filepath.Join(root, "src", "one.gleam")
	assert.Contains(t, out, "--- "+one+"\toriginal\n")
	assert.Contains(t, out, "+++ "+one+"\tformatted\n")
	assert.Contains(t, out, "-pub fn one() { 1 }\n")
	assert.Contains(t, out, "+  1\n")
	assert.NotContains(t, out, "two.gleam")
}

func TestWidth(t *testing.T) {
	t.Parallel()

	cfg := configFile(t, "[format]\nline_width = 20\n")
	src := "fn f() { call(alpha, beta, gamma) }\n"
	out, _, err := execute(t, src, "--stdin", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "fn f() {\n  call(\n    alpha,\n    beta,\n    gamma,\n  )\n}\n", out)

	out, _, err = execute(t, src, "--stdin", "--config", cfg, "--width", "-1")
	require.NoError(t, err)
	assert.Equal(t, "fn f() {\n  call(alpha, beta, gamma)\n}\n", out)
}

func TestFailures(t *testing.T) {
	t.Parallel()

	root := project(t)
	bad := filepath.Join(root, "src", "bad.gleam")
	require.NoError(t, os.WriteFile(bad, []byte("fn ( {\n"), 0o644))

	_, stderr, err := execute(t, "", "--write", "--config", filepath.Join(root, "gleam.toml"), filepath.Join(root, "src"))
	require.EqualError(t, err, "1 of 3 files could not be formatted")
	assert.Contains(t, stderr, bad+":1:")

	// The other files are still written.
	data, err := os.ReadFile(filepath.Join(root, "src", "one.gleam"))
	require.NoError(t, err)
	assert.Equal(t, "pub fn one() {\n  1\n}\n", string(data))
}

func TestExpandPaths(t *testing.T) {
	t.Parallel()

	root := project(t)
	one := filepath.Join(root, "src", "one.gleam")
	two := filepath.Join(root, "src", "nested", "two.gleam")

	paths, err := expandPaths([]string{one, filepath.Join(root, "src"), filepath.Join(root, "**", "two.gleam")})
	require.NoError(t, err)
	assert.Equal(t, []string{two, one}, paths)

	// Patterns may reach into build; only directory searches skip it.
	paths, err = expandPaths([]string{filepath.Join(root, "build", "**", "*.gleam")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "build", "dep", "dep.gleam")}, paths)

	_, err = expandPaths([]string{filepath.Join(root, "missing.gleam")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
