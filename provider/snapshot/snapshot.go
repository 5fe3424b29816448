/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snapshot reads tokens, token groups, and brands from local files,
// e.g. payloads previously saved from the design-system service.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/dsexport/fs"
	"bennypowers.dev/dsexport/provider"
	"bennypowers.dev/dsexport/token"
)

// ErrNoSources indicates no snapshot file was given for a collection.
var ErrNoSources = errors.New("no snapshot files")

// Files lists the snapshot files for each collection. Files of one
// collection are concatenated in order.
type Files struct {
	Tokens []string
	Groups []string
	Brands []string
}

// Provider implements provider.Provider over snapshot files.
// The version reference is ignored.
type Provider struct {
	fs    fs.FileSystem
	files Files
}

var _ provider.Provider = (*Provider)(nil)

// New creates a snapshot Provider.
func New(filesystem fs.FileSystem, files Files) *Provider {
	return &Provider{fs: filesystem, files: files}
}

// Tokens reads tokens from the token snapshot files.
func (p *Provider) Tokens(ctx context.Context, _ provider.VersionRef) ([]*token.Token, error) {
	return readAll(ctx, p.fs, provider.KeyTokens, p.files.Tokens, provider.DecodeTokens)
}

// TokenGroups reads groups from the group snapshot files.
func (p *Provider) TokenGroups(ctx context.Context, _ provider.VersionRef) ([]*token.Group, error) {
	return readAll(ctx, p.fs, provider.KeyGroups, p.files.Groups, provider.DecodeGroups)
}

// Brands reads brands from the brand snapshot files.
// Brands are optional: with no brand files, there are no brands.
func (p *Provider) Brands(ctx context.Context, _ provider.VersionRef) ([]*token.Brand, error) {
	if len(p.files.Brands) == 0 {
		return nil, nil
	}
	return readAll(ctx, p.fs, provider.KeyBrands, p.files.Brands, provider.DecodeBrands)
}

func readAll[T any](ctx context.Context, filesystem fs.FileSystem, kind string, paths []string, decode func([]byte) ([]T, error)) ([]T, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoSources, kind)
	}

	var all []T
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := filesystem.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s snapshot: %w", kind, err)
		}

		normalized, err := ToJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		items, err := decode(normalized)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		all = append(all, items...)
	}
	return all, nil
}

// ToJSON returns data as plain JSON. JSON input may contain comments and
// trailing commas; anything that does not look like JSON is parsed as YAML.
func ToJSON(data []byte) ([]byte, error) {
	if isLikelyJSON(data) {
		return jsonc.ToJSON(data), nil
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	var buf bytes.Buffer
	if err := writeJSON(&buf, &doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isLikelyJSON(data []byte) bool {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	if len(trimmed) == 0 {
		return false
	}
	switch trimmed[0] {
	case '{', '[':
		return true
	case '/':
		// leading comment
		return len(trimmed) > 1 && (trimmed[1] == '/' || trimmed[1] == '*')
	}
	return false
}

// writeJSON encodes a YAML node as JSON, keeping mapping keys in document order.
func writeJSON(buf *bytes.Buffer, node *yaml.Node) error {
	switch node.Kind {
	case 0:
		buf.WriteString("null")
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			buf.WriteString("null")
			return nil
		}
		return writeJSON(buf, node.Content[0])
	case yaml.AliasNode:
		return writeJSON(buf, node.Alias)
	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, item := range node.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(node.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(node.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, node.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		buf.Write(data)
	default:
		return fmt.Errorf("line %d: unsupported YAML node", node.Line)
	}
	return nil
}
