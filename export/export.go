/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package export is the export entrypoint: it gathers the input collections
// from a provider, structures them, and produces the output file.
package export

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/structure"
	"bennypowers.dev/dsexport/token"
)

const (
	// OutputFileName is the name of the exported file.
	OutputFileName = "test.md"

	// OutputRelativePath is the exported file's directory, relative to the output root.
	OutputRelativePath = "./"
)

// OutputFile is a text file produced by an export.
type OutputFile struct {
	RelativePath string
	FileName     string
	Content      []byte
}

// Options configures an export.
type Options struct {
	Structure structure.Options
	Serialize SerializeOptions
}

// Result holds everything an export produced.
type Result struct {
	Files      []OutputFile
	Structured *token.StructuredTokens
	Stats      structure.Stats
}

// Inputs are the three collections an export structures.
type Inputs struct {
	Tokens []*token.Token
	Groups []*token.Group
	Brands []*token.Brand
}

// Fetch retrieves tokens, groups, and brands concurrently.
// The first failure cancels the remaining fetches.
func Fetch(ctx context.Context, p provider.Provider, ref provider.VersionRef) (*Inputs, error) {
	var in Inputs

	fetches := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	fetches.Go(func(ctx context.Context) error {
		tokens, err := p.Tokens(ctx, ref)
		if err != nil {
			return fmt.Errorf("fetching tokens: %w", err)
		}
		in.Tokens = tokens
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		groups, err := p.TokenGroups(ctx, ref)
		if err != nil {
			return fmt.Errorf("fetching token groups: %w", err)
		}
		in.Groups = groups
		return nil
	})
	fetches.Go(func(ctx context.Context) error {
		brands, err := p.Brands(ctx, ref)
		if err != nil {
			return fmt.Errorf("fetching brands: %w", err)
		}
		in.Brands = brands
		return nil
	})

	if err := fetches.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

// Build structures already-fetched inputs and serializes the result.
// Tokens are sorted by parent group id before structuring.
func Build(in *Inputs, opts Options) (*Result, error) {
	tokens := token.SortByParentGroup(in.Tokens)
	structured, stats := structure.StructureWithStats(in.Groups, tokens, in.Brands, opts.Structure)

	content, err := Serialize(structured, opts.Serialize)
	if err != nil {
		return nil, err
	}

	return &Result{
		Files: []OutputFile{{
			RelativePath: OutputRelativePath,
			FileName:     OutputFileName,
			Content:      content,
		}},
		Structured: structured,
		Stats:      stats,
	}, nil
}

// Export fetches the inputs for ref from p and builds the export.
func Export(ctx context.Context, p provider.Provider, ref provider.VersionRef, opts Options) (*Result, error) {
	in, err := Fetch(ctx, p, ref)
	if err != nil {
		return nil, err
	}
	return Build(in, opts)
}
