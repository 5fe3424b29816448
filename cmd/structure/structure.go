/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package structure provides the structure command for dsexport.
package structure

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dsexport/cmd/settings"
	"bennypowers.dev/dsexport/config"
	"bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/fs"
	"bennypowers.dev/dsexport/internal/logger"
	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/provider/snapshot"
	"bennypowers.dev/dsexport/token"
)

// Cmd is the structure cobra command.
var Cmd = &cobra.Command{
	Use:   "structure",
	Short: "Structure token snapshot files without contacting the service",
	Long: `Read tokens, token groups, and brands from local JSON or YAML snapshot
files and print the structured tokens to stdout.

Files default to the sources configured in .config/dsexport.yaml.

Examples:
  dsexport structure --tokens tokens.json --groups groups.json --brands brands.json
  dsexport structure --tokens 'snapshots/**/tokens*.json' --groups snapshots/groups.yaml --pretty`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringSlice("tokens", nil, "Token snapshot files or globs")
	Cmd.Flags().StringSlice("groups", nil, "Token group snapshot files or globs")
	Cmd.Flags().StringSlice("brands", nil, "Brand snapshot files or globs")
	Cmd.Flags().Bool("stats", false, "Print structuring statistics to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	tokens, _ := cmd.Flags().GetStringSlice("tokens")
	groups, _ := cmd.Flags().GetStringSlice("groups")
	brands, _ := cmd.Flags().GetStringSlice("brands")
	stats, _ := cmd.Flags().GetBool("stats")

	filesystem := fs.NewOSFileSystem()
	s, err := settings.Load(filesystem, viper.GetViper())
	if err != nil {
		return err
	}

	sources := s.Config.Sources
	if len(tokens) > 0 {
		sources.Tokens = tokens
	}
	if len(groups) > 0 {
		sources.Groups = groups
	}
	if len(brands) > 0 {
		sources.Brands = brands
	}

	var statsOut io.Writer
	if stats {
		statsOut = cmd.ErrOrStderr()
	}
	return runStructure(cmd.Context(), filesystem, s, sources, cmd.OutOrStdout(), statsOut)
}

func runStructure(ctx context.Context, filesystem fs.FileSystem, s *settings.Settings, sources config.Sources, out, statsOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if len(sources.Tokens) == 0 || len(sources.Groups) == 0 {
		return fmt.Errorf("token and group sources are required: %w", snapshot.ErrNoSources)
	}

	cfg := *s.Config
	cfg.Sources = sources
	files, err := cfg.SnapshotFiles(filesystem, s.Root)
	if err != nil {
		return err
	}

	opts := cfg.ExportOptions()
	opts.Structure.OnDrop = func(tok *token.Token) {
		logger.Debug("Dropping token %s (%s): parent group %q not found", tok.ID, tok.Name, tok.ParentGroupID)
	}

	result, err := export.Export(ctx, snapshot.New(filesystem, files), provider.VersionRef{}, opts)
	if err != nil {
		return err
	}

	for _, f := range result.Files {
		if _, err := out.Write(f.Content); err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}

	if statsOut != nil {
		_, err := fmt.Fprintf(statsOut, "tokens: %d\nstructured: %d\ndropped: %d\ngroups: %d\n",
			result.Stats.Total, result.Stats.Structured, result.Stats.Dropped, result.Structured.Len())
		return err
	}
	return nil
}
