/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for dsexport.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/structure"
)

// ErrMissingDesignSystem indicates a remote export lacks a design system or version id.
var ErrMissingDesignSystem = errors.New("design system id and version id are required")

// Config represents the exporter configuration.
type Config struct {
	// DesignSystemID identifies the design system to export.
	DesignSystemID string `yaml:"designSystemId" json:"designSystemId"`

	// VersionID identifies the design system version to export.
	VersionID string `yaml:"versionId" json:"versionId"`

	// APIURL overrides the design-system API root.
	APIURL string `yaml:"apiUrl" json:"apiUrl"`

	// OutputDir is where exported files are written. Defaults to ".".
	OutputDir string `yaml:"outputDir" json:"outputDir"`

	// Pretty indents the exported JSON.
	Pretty bool `yaml:"pretty" json:"pretty"`

	// IncludePlatform adds name.platform to each structured token.
	IncludePlatform bool `yaml:"includePlatform" json:"includePlatform"`

	// RetryMax is the number of retries for failed requests.
	RetryMax int `yaml:"retryMax" json:"retryMax"`

	// Timeout bounds each request, as a Go duration string (e.g. "30s").
	Timeout string `yaml:"timeout" json:"timeout"`

	// Sources lists snapshot files used instead of the remote service.
	Sources Sources `yaml:"sources" json:"sources"`
}

// Sources lists snapshot file patterns per collection.
type Sources struct {
	Tokens Patterns `yaml:"tokens" json:"tokens"`
	Groups Patterns `yaml:"groups" json:"groups"`
	Brands Patterns `yaml:"brands" json:"brands"`
}

// IsEmpty reports whether no snapshot sources are configured.
func (s Sources) IsEmpty() bool {
	return len(s.Tokens) == 0 && len(s.Groups) == 0 && len(s.Brands) == 0
}

// Patterns is a list of paths or globs. It can be written as a single
// string or as a list.
type Patterns []string

// UnmarshalYAML handles both string and list forms.
func (p *Patterns) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*p = Patterns{node.Value}
		return nil
	}

	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*p = list
	return nil
}

// UnmarshalJSON handles both string and list forms.
func (p *Patterns) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Patterns{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*p = list
	return nil
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutputDir: ".",
	}
}

// VersionRef returns the configured design system version.
func (c *Config) VersionRef() provider.VersionRef {
	return provider.VersionRef{
		DesignSystemID: c.DesignSystemID,
		VersionID:      c.VersionID,
	}
}

// RequireVersionRef returns the version reference, or an error when incomplete.
func (c *Config) RequireVersionRef() (provider.VersionRef, error) {
	ref := c.VersionRef()
	if ref.DesignSystemID == "" || ref.VersionID == "" {
		return ref, ErrMissingDesignSystem
	}
	return ref, nil
}

// FetchTimeout parses Timeout. An empty Timeout yields zero.
func (c *Config) FetchTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// ExportOptions returns the export options this config describes.
func (c *Config) ExportOptions() export.Options {
	return export.Options{
		Structure: structure.Options{
			IncludePlatform: c.IncludePlatform,
		},
		Serialize: export.SerializeOptions{
			Pretty: c.Pretty,
		},
	}
}
