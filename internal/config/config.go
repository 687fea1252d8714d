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

// Package config loads formatter settings from a project's gleam.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Ian-GL/gleam/printer"
)

// FileName is the name of the project manifest searched for by [Find].
const FileName = "gleam.toml"

// Config is the subset of gleam.toml that the formatter reads.
type Config struct {
	Name   string `toml:"name"`
	Format Format `toml:"format"`
}

// Format is the [format] table.
type Format struct {
	LineWidth int `toml:"line_width"`
	Indent    int `toml:"indent"`
}

// Options converts the configuration into printer options. Unset values are
// left zero so that the printer's defaults apply.
func (c *Config) Options() printer.Options {
	return printer.Options{
		MaxWidth: c.Format.LineWidth,
		Indent:   c.Format.Indent,
	}
}

// Parse decodes gleam.toml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if cfg.Format.LineWidth < 0 {
		return nil, fmt.Errorf("%s: format.line_width must not be negative, got %d", FileName, cfg.Format.LineWidth)
	}
	if cfg.Format.Indent < 0 {
		return nil, fmt.Errorf("%s: format.indent must not be negative, got %d", FileName, cfg.Format.Indent)
	}
	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Find walks up from dir looking for gleam.toml and loads the first one
// found. If there is none, it returns an empty configuration and an empty
// path.
func Find(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}
	for {
		path := filepath.Join(dir, FileName)
		cfg, err := Load(path)
		switch {
		case err == nil:
			return cfg, path, nil
		case !errors.Is(err, fs.ErrNotExist):
			return nil, "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return &Config{}, "", nil
		}
		dir = parent
	}
}
