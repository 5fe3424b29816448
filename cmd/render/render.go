/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for dsexport.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dsexport/cmd/settings"
	"bennypowers.dev/dsexport/export"
	"bennypowers.dev/dsexport/fs"
	renderlib "bennypowers.dev/dsexport/render"
	"bennypowers.dev/dsexport/token"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render exported structured tokens for humans",
	Long: `Render a previously exported file as markdown tables or a terminal table.

Without a file argument, the export in the configured output directory is read.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "markdown", "Output format: markdown, table")
	Cmd.Flags().Bool("toc", false, "Include a table of contents (markdown only)")
	Cmd.Flags().Bool("swatches", false, "Print color swatches (table only)")
	Cmd.Flags().String("group", "", "Only render tokens of this root group")
	Cmd.Flags().String("brand", "", "Only render tokens of this brand")
}

type renderOptions struct {
	Format   string
	TOC      bool
	Swatches bool
	Group    string
	Brand    string
}

func run(cmd *cobra.Command, args []string) error {
	var opts renderOptions
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.TOC, _ = cmd.Flags().GetBool("toc")
	opts.Swatches, _ = cmd.Flags().GetBool("swatches")
	opts.Group, _ = cmd.Flags().GetString("group")
	opts.Brand, _ = cmd.Flags().GetString("brand")

	filesystem := fs.NewOSFileSystem()

	var input string
	if len(args) > 0 {
		input = args[0]
	} else {
		s, err := settings.Load(filesystem, viper.GetViper())
		if err != nil {
			return err
		}
		outDir, err := s.Config.ResolveOutputDir(s.Root)
		if err != nil {
			return err
		}
		input = filepath.Join(outDir, export.OutputRelativePath, export.OutputFileName)
	}

	return renderFile(filesystem, input, opts, cmd.OutOrStdout())
}

func renderFile(filesystem fs.FileSystem, input string, opts renderOptions, out io.Writer) error {
	data, err := filesystem.ReadFile(input)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	st := token.NewStructuredTokens()
	if err := json.Unmarshal(data, st); err != nil {
		return fmt.Errorf("parsing %s: %w", input, err)
	}

	rows := filterRows(renderlib.ComputeRows(st), opts.Group, opts.Brand)

	switch strings.ToLower(opts.Format) {
	case "markdown", "md":
		return renderlib.Markdown(out, rows, renderlib.MarkdownOptions{IncludeTOC: opts.TOC})
	case "table":
		return renderlib.Table(out, rows, renderlib.TableOptions{Swatches: opts.Swatches})
	default:
		return fmt.Errorf("unknown format: %s", opts.Format)
	}
}

// filterRows keeps rows matching group and brand. Empty filters match all.
func filterRows(rows []renderlib.Row, group, brand string) []renderlib.Row {
	if group == "" && brand == "" {
		return rows
	}
	var result []renderlib.Row
	for _, r := range rows {
		if group != "" && !strings.EqualFold(r.Group, group) {
			continue
		}
		if brand != "" && !strings.EqualFold(r.Brand, brand) {
			continue
		}
		result = append(result, r)
	}
	return result
}
