/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mitchellh/go-homedir"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	dsfs "bennypowers.dev/dsexport/fs"
	"bennypowers.dev/dsexport/provider/snapshot"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "dsexport"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/dsexport.{yaml,yml,json} from rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem dsfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}

		data, err := filesystem.ReadFile(configPath)
		if err != nil {
			return nil, err
		}

		cfg := Default()
		switch ext {
		case ".yaml", ".yml":
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		case ".json":
			if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", configPath, err)
			}
		}

		return cfg, nil
	}

	return nil, nil
}

// LoadOrDefault returns config or defaults if not found.
func LoadOrDefault(filesystem dsfs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil || cfg == nil {
		return Default()
	}
	return cfg
}

// ResolveOutputDir returns OutputDir with "~" expanded, relative to rootDir.
func (c *Config) ResolveOutputDir(rootDir string) (string, error) {
	dir := c.OutputDir
	if dir == "" {
		dir = "."
	}
	return resolvePath(rootDir, dir)
}

// SnapshotFiles expands the configured source patterns into snapshot files.
// Each collection's matches are sorted by path.
func (c *Config) SnapshotFiles(filesystem dsfs.FileSystem, rootDir string) (snapshot.Files, error) {
	var files snapshot.Files
	var err error

	if files.Tokens, err = ExpandPatterns(filesystem, rootDir, c.Sources.Tokens); err != nil {
		return files, err
	}
	if files.Groups, err = ExpandPatterns(filesystem, rootDir, c.Sources.Groups); err != nil {
		return files, err
	}
	if files.Brands, err = ExpandPatterns(filesystem, rootDir, c.Sources.Brands); err != nil {
		return files, err
	}
	return files, nil
}

// ExpandPatterns expands paths and globs relative to rootDir.
func ExpandPatterns(filesystem dsfs.FileSystem, rootDir string, patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		abs, err := resolvePath(rootDir, pattern)
		if err != nil {
			return nil, err
		}

		if !containsGlob(abs) {
			result = append(result, abs)
			continue
		}

		matches, err := expandGlob(filesystem, abs)
		if err != nil {
			return nil, fmt.Errorf("expanding %s: %w", pattern, err)
		}
		sort.Strings(matches)
		result = append(result, matches...)
	}

	return result, nil
}

func resolvePath(rootDir, p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expanding %s: %w", p, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(rootDir, expanded)
	}
	return expanded, nil
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// expandGlob walks the non-glob prefix of pattern and returns matching files.
func expandGlob(filesystem dsfs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(strings.TrimPrefix(pattern, baseDir), string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(strings.TrimPrefix(path, baseDir), string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, relPath); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
