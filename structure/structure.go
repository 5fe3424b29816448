/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package structure rebuilds each token's group hierarchy and produces
// brand-aware structured tokens keyed by root group name.
package structure

import (
	"strings"

	"bennypowers.dev/dsexport/token"
)

// Separator joins group names in a qualified name.
const Separator = "__"

// Options configures a structuring pass.
type Options struct {
	// IncludePlatform adds name.platform, taken from the "platform" property.
	IncludePlatform bool

	// OnDrop, if set, is called for each token whose parent group is unknown.
	OnDrop func(*token.Token)
}

// Stats summarizes a structuring pass.
// Structured + Dropped always equals Total.
type Stats struct {
	Total      int
	Structured int
	Dropped    int
}

// ResolveRootGroupAndName walks up from start to its root group, prefixing
// leaf with each ancestor's name, outermost first.
//
// The walk stops when a group has no parent reference, the parent is not in
// groups, the parent is the group itself, or the parent was already visited.
// With a nil start, it returns (nil, leaf).
func ResolveRootGroupAndName(groups GroupIndex, start *token.Group, leaf string) (*token.Group, string) {
	if start == nil {
		return nil, leaf
	}

	current := start
	segments := []string{leaf}
	visited := map[string]bool{current.ID: true}

	for !current.IsRoot() {
		parent, ok := groups.FindGroupByID(current.ParentGroupID)
		if !ok || visited[parent.ID] {
			break
		}
		visited[parent.ID] = true
		segments = append(segments, parent.Name)
		current = parent
	}

	// segments were collected innermost first
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return current, strings.Join(segments, Separator)
}

// Category returns the part of a qualified name before the first separator.
func Category(qualified string) string {
	category, _, _ := strings.Cut(qualified, Separator)
	return category
}

// Structure groups tokens under the names of their root groups.
//
// Tokens are processed in the order given; callers wanting group-clustered
// output should sort with token.SortByParentGroup first. Tokens whose parent
// group cannot be found are skipped. Inputs are not modified.
func Structure(groups []*token.Group, tokens []*token.Token, brands []*token.Brand, opts Options) *token.StructuredTokens {
	result, _ := StructureWithStats(groups, tokens, brands, opts)
	return result
}

// StructureWithStats is Structure, also reporting how many tokens were dropped.
func StructureWithStats(groups []*token.Group, tokens []*token.Token, brands []*token.Brand, opts Options) (*token.StructuredTokens, Stats) {
	groupIdx := NewGroupIndex(groups)
	brandIdx := NewBrandIndex(brands)

	result := token.NewStructuredTokens()
	stats := Stats{Total: len(tokens)}

	for _, tok := range tokens {
		if tok == nil {
			stats.Dropped++
			continue
		}

		group, ok := groupIdx.FindGroupByID(tok.ParentGroupID)
		if !ok {
			stats.Dropped++
			if opts.OnDrop != nil {
				opts.OnDrop(tok)
			}
			continue
		}

		root, qualified := ResolveRootGroupAndName(groupIdx, group, tok.Name)

		name := token.StructuredName{
			BrandMode: token.DefaultBrandMode,
			Category:  Category(qualified),
			RawName:   tok.Variable(),
			Type:      root.Name,
		}
		if brand, ok := brandIdx.FindBrandNameByID(tok.BrandID); ok {
			name.Brand = &brand
		}
		if opts.IncludePlatform {
			platform := tok.Platform()
			name.Platform = &platform
		}

		result.Append(root.Name, token.StructuredToken{
			Name:   name,
			Values: tok.PropertyValues.Clone(),
			Usage:  tok.Description,
		})
		stats.Structured++
	}

	return result, stats
}
