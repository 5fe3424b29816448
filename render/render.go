/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides human-readable previews of structured tokens.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/dsexport/token"
)

// Row holds computed display values for a single structured token.
type Row struct {
	Group    string // Root group name
	Name     string // Raw variable name
	Category string
	Brand    string // "-" when unresolved
	Value    string // The token's "value" property
	Usage    string
	IsColor  bool // Whether Value parses as a CSS color
}

// MarkdownOptions configures markdown output.
type MarkdownOptions struct {
	IncludeTOC bool
}

// TableOptions configures table output.
type TableOptions struct {
	// Swatches prints a 24-bit ANSI color block before color values.
	Swatches bool
}

// ComputeRows flattens structured tokens into rows, in group insertion order.
func ComputeRows(st *token.StructuredTokens) []Row {
	rows := make([]Row, 0, st.Count())
	for _, group := range st.Keys() {
		toks, _ := st.Get(group)
		for _, tok := range toks {
			row := Row{
				Group:    group,
				Name:     tok.Name.RawName,
				Category: tok.Name.Category,
				Brand:    tok.BrandName(),
				Value:    tok.Values.Value("value"),
				Usage:    tok.Usage,
			}
			if row.Brand == "" {
				row.Brand = "-"
			}
			row.IsColor = isColor(row.Value)
			rows = append(rows, row)
		}
	}
	return rows
}

func isColor(value string) bool {
	if value == "" || strings.HasPrefix(value, "{") || strings.HasPrefix(value, "--") || strings.HasPrefix(value, "var(") {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// ColorSwatch returns a 24-bit ANSI block for the given color value, with
// the value printed in black or white, whichever contrasts more.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	bg := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	fg := colorful.Color{R: 1, G: 1, B: 1}
	if l, _, _ := bg.Lab(); l > 0.5 {
		fg = colorful.Color{}
	}
	br, bgG, bb := bg.RGB255()
	fr, fgG, fb := fg.RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm %s \x1b[0m", br, bgG, bb, fr, fgG, fb, value)
}

// Table renders rows as aligned columns.
func Table(w io.Writer, rows []Row, opts TableOptions) error {
	if len(rows) == 0 {
		return nil
	}

	groupW, nameW, catW, brandW := 5, 4, 8, 5
	for _, r := range rows {
		groupW = max(groupW, len(r.Group))
		nameW = max(nameW, len(r.Name))
		catW = max(catW, len(r.Category))
		brandW = max(brandW, len(r.Brand))
	}

	for _, r := range rows {
		value := r.Value
		if opts.Swatches && r.IsColor {
			value = ColorSwatch(r.Value)
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %s\n",
			groupW, r.Group, nameW, r.Name, catW, r.Category, brandW, r.Brand, value); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as one markdown table per root group.
func Markdown(w io.Writer, rows []Row, opts MarkdownOptions) error {
	if len(rows) == 0 {
		return nil
	}

	// Group rows, preserving order of first occurrence
	var order []string
	byGroup := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byGroup[r.Group]; !exists {
			order = append(order, r.Group)
		}
		byGroup[r.Group] = append(byGroup[r.Group], r)
	}

	var sb strings.Builder

	if opts.IncludeTOC {
		sb.WriteString("## Table Of Contents\n\n")
		for _, group := range order {
			fmt.Fprintf(&sb, "- [%s](#%s)\n", toTitleCase(group), slugify(group))
		}
		sb.WriteString("\n")
	}

	for i, group := range order {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "## %s\n\n", toTitleCase(group))
		writeMarkdownTable(&sb, byGroup[group])
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeMarkdownTable(sb *strings.Builder, rows []Row) {
	headers := []string{"Name", "Category", "Brand", "Value", "Usage"}
	cells := make([][]string, 0, len(rows))
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}

	for _, r := range rows {
		row := []string{
			"`" + r.Name + "`",
			escapeCell(r.Category),
			escapeCell(r.Brand),
			escapeCell(r.Value),
			escapeCell(r.Usage),
		}
		for i, c := range row {
			widths[i] = max(widths[i], len(c))
		}
		cells = append(cells, row)
	}

	writeRow := func(row []string) {
		sb.WriteString("|")
		for i, c := range row {
			fmt.Fprintf(sb, " %-*s |", widths[i], c)
		}
		sb.WriteString("\n")
	}

	writeRow(headers)
	sb.WriteString("|")
	for _, width := range widths {
		sb.WriteString(strings.Repeat("-", width+2) + "|")
	}
	sb.WriteString("\n")
	for _, row := range cells {
		writeRow(row)
	}
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Color Brand" -> "color-brand"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	return cases.Title(language.English).String(s)
}
