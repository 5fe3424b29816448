/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package settings merges command-line flags, environment variables, and the
// config file into the effective settings for a command.
package settings

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/dsexport/config"
	"bennypowers.dev/dsexport/fs"
	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/provider/remote"
	"bennypowers.dev/dsexport/provider/snapshot"
)

// EnvPrefix prefixes every environment variable read by dsexport.
const EnvPrefix = "DSEXPORT"

// Keys shared by flags, environment variables, and viper.
const (
	KeyRoot            = "root"
	KeyLogLevel        = "log-level"
	KeyDesignSystem    = "design-system"
	KeyVersionID       = "version-id"
	KeyAPIURL          = "api-url"
	KeyAPIToken        = "api-token"
	KeyOutputDir       = "output-dir"
	KeyPretty          = "pretty"
	KeyIncludePlatform = "include-platform"
	KeyRetryMax        = "retry-max"
	KeyTimeout         = "timeout"
)

// Settings are the effective settings for one invocation.
type Settings struct {
	// Root is the project directory that config and relative paths resolve against.
	Root string

	Config *config.Config

	// APIToken authenticates remote requests. It is only read from the environment.
	APIToken string
}

// RegisterFlags adds the shared persistent flags to flags.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyRoot, ".", "Project root containing .config/dsexport.yaml")
	flags.String(KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	flags.String(KeyDesignSystem, "", "Design system id")
	flags.String(KeyVersionID, "", "Design system version id")
	flags.String(KeyAPIURL, "", "Design system API root (default "+remote.DefaultBaseURL+")")
	flags.StringP(KeyOutputDir, "o", "", "Directory to write exported files to")
	flags.Bool(KeyPretty, false, "Indent exported JSON")
	flags.Bool(KeyIncludePlatform, false, "Include name.platform in structured tokens")
	flags.Int(KeyRetryMax, 0, "Retries for failed requests (negative disables)")
	flags.String(KeyTimeout, "", "Per-request timeout, e.g. 30s")
}

// Bind wires flags and DSEXPORT_* environment variables into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyAPIToken); err != nil {
		return err
	}
	return v.BindPFlags(flags)
}

// Load reads the config file under the root and applies overrides from v.
// Precedence is flag, then environment, then config file, then defaults.
func Load(filesystem fs.FileSystem, v *viper.Viper) (*Settings, error) {
	root := v.GetString(KeyRoot)
	if root == "" {
		root = "."
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
	}

	overrideString(v, KeyDesignSystem, &cfg.DesignSystemID)
	overrideString(v, KeyVersionID, &cfg.VersionID)
	overrideString(v, KeyAPIURL, &cfg.APIURL)
	overrideString(v, KeyOutputDir, &cfg.OutputDir)
	overrideString(v, KeyTimeout, &cfg.Timeout)
	if v.IsSet(KeyPretty) {
		cfg.Pretty = v.GetBool(KeyPretty)
	}
	if v.IsSet(KeyIncludePlatform) {
		cfg.IncludePlatform = v.GetBool(KeyIncludePlatform)
	}
	if v.IsSet(KeyRetryMax) {
		cfg.RetryMax = v.GetInt(KeyRetryMax)
	}

	return &Settings{
		Root:     root,
		Config:   cfg,
		APIToken: v.GetString(KeyAPIToken),
	}, nil
}

func overrideString(v *viper.Viper, key string, dst *string) {
	if v.IsSet(key) {
		*dst = v.GetString(key)
	}
}

// Provider returns the snapshot provider when snapshot sources are configured
// and remote is false, otherwise a remote client for the configured version.
func (s *Settings) Provider(filesystem fs.FileSystem, forceRemote bool) (provider.Provider, provider.VersionRef, error) {
	cfg := s.Config

	if !forceRemote && !cfg.Sources.IsEmpty() {
		files, err := cfg.SnapshotFiles(filesystem, s.Root)
		if err != nil {
			return nil, provider.VersionRef{}, err
		}
		return snapshot.New(filesystem, files), cfg.VersionRef(), nil
	}

	ref, err := cfg.RequireVersionRef()
	if err != nil {
		return nil, ref, err
	}
	timeout, err := cfg.FetchTimeout()
	if err != nil {
		return nil, ref, err
	}
	client, err := remote.New(remote.Options{
		BaseURL:  cfg.APIURL,
		Token:    s.APIToken,
		RetryMax: cfg.RetryMax,
		Timeout:  timeout,
	})
	if err != nil {
		return nil, ref, err
	}
	return client, ref, nil
}
