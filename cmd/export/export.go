/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export provides the export command for dsexport.
package export

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dsexport/cmd/settings"
	"bennypowers.dev/dsexport/emit"
	exportlib "bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/fs"
	"bennypowers.dev/dsexport/internal/logger"
	"bennypowers.dev/dsexport/token"
)

// Cmd is the export cobra command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export structured tokens for a design system version",
	Long: `Fetch the tokens, token groups, and brands of a design system version,
structure them by root group, and write the result to the output directory.

When snapshot sources are configured in .config/dsexport.yaml, they are read
instead of the remote service unless --remote is given. The API token is read
from DSEXPORT_API_TOKEN.

Examples:
  # Export a version from the remote service
  DSEXPORT_API_TOKEN=... dsexport export --design-system 123 --version-id 456

  # Print the structured tokens instead of writing them
  dsexport export --stdout --pretty`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("remote", false, "Fetch from the remote service even when snapshot sources are configured")
	Cmd.Flags().Bool("stdout", false, "Write the exported content to stdout instead of the output directory")
}

// runOptions are the per-invocation options of the export command.
type runOptions struct {
	Remote bool
	Stdout bool
}

func run(cmd *cobra.Command, args []string) error {
	remote, _ := cmd.Flags().GetBool("remote")
	stdout, _ := cmd.Flags().GetBool("stdout")

	filesystem := fs.NewOSFileSystem()
	s, err := settings.Load(filesystem, viper.GetViper())
	if err != nil {
		return err
	}

	return runExport(cmd.Context(), filesystem, s, runOptions{Remote: remote, Stdout: stdout}, cmd.OutOrStdout())
}

func runExport(ctx context.Context, filesystem fs.FileSystem, s *settings.Settings, opts runOptions, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	p, ref, err := s.Provider(filesystem, opts.Remote)
	if err != nil {
		return err
	}

	exportOpts := s.Config.ExportOptions()
	exportOpts.Structure.OnDrop = func(tok *token.Token) {
		logger.Debug("Dropping token %s (%s): parent group %q not found", tok.ID, tok.Name, tok.ParentGroupID)
	}

	result, err := exportlib.Export(ctx, p, ref, exportOpts)
	if err != nil {
		return err
	}

	logger.Info("Structured %d of %d tokens into %d groups",
		result.Stats.Structured, result.Stats.Total, result.Structured.Len())
	if result.Stats.Dropped > 0 {
		logger.Warn("Dropped %d tokens without a resolvable group", result.Stats.Dropped)
	}

	if opts.Stdout {
		for _, f := range result.Files {
			if _, err := out.Write(f.Content); err != nil {
				return err
			}
			if _, err := io.WriteString(out, "\n"); err != nil {
				return err
			}
		}
		return nil
	}

	outDir, err := s.Config.ResolveOutputDir(s.Root)
	if err != nil {
		return err
	}
	written, err := emit.WriteFiles(filesystem, outDir, result.Files)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	for _, path := range written {
		logger.Info("Wrote %s", path)
	}
	return nil
}
