/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// DefaultBrandMode is the only brand mode currently emitted.
const DefaultBrandMode = "default"

// StructuredName describes where a token sits in the naming hierarchy.
type StructuredName struct {
	// Brand is the resolved brand name, nil when the brand is absent or unknown.
	Brand *string `json:"brand,omitempty"`

	BrandMode string `json:"brandMode"`

	// Category is the first segment of the token's qualified name.
	Category string `json:"category"`

	// Platform is only populated when platform output is enabled.
	Platform *string `json:"platform,omitempty"`

	// RawName is the token's "variable" property.
	RawName string `json:"rawName"`

	// Type is the name of the token's root group.
	Type string `json:"type"`
}

// StructuredToken is the flattened output record for a single token.
type StructuredToken struct {
	Name   StructuredName `json:"name"`
	Values Properties     `json:"values"`
	Usage  string         `json:"usage"`
}

// BrandName returns the resolved brand name, or "" when unresolved.
func (s *StructuredToken) BrandName() string {
	if s.Name.Brand == nil {
		return ""
	}
	return *s.Name.Brand
}

// StructuredTokens maps root group names to their structured tokens.
// Keys keep first-insertion order, including when encoded as JSON.
type StructuredTokens struct {
	keys    []string
	entries map[string][]StructuredToken
}

// NewStructuredTokens creates an empty mapping.
func NewStructuredTokens() *StructuredTokens {
	return &StructuredTokens{
		entries: make(map[string][]StructuredToken),
	}
}

// Append adds tok to the sequence stored under key, creating it on first use.
func (s *StructuredTokens) Append(key string, tok StructuredToken) {
	if s.entries == nil {
		s.entries = make(map[string][]StructuredToken)
	}
	if _, ok := s.entries[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.entries[key] = append(s.entries[key], tok)
}

// Keys returns the root group names in insertion order.
func (s *StructuredTokens) Keys() []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	return keys
}

// Get returns the tokens stored under key.
func (s *StructuredTokens) Get(key string) ([]StructuredToken, bool) {
	toks, ok := s.entries[key]
	return toks, ok
}

// Len returns the number of root groups.
func (s *StructuredTokens) Len() int {
	return len(s.keys)
}

// Count returns the total number of structured tokens across all groups.
func (s *StructuredTokens) Count() int {
	n := 0
	for _, toks := range s.entries {
		n += len(toks)
	}
	return n
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
func (s *StructuredTokens) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalUnescaped(key)
		if err != nil {
			return nil, err
		}
		v, err := marshalUnescaped(s.entries[key])
		if err != nil {
			return nil, fmt.Errorf("encoding group %q: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalUnescaped encodes v without escaping <, >, and &.
func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
func (s *StructuredTokens) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("structured tokens must be a JSON object")
	}

	s.keys = nil
	s.entries = make(map[string][]StructuredToken)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}
		var toks []StructuredToken
		if err := dec.Decode(&toks); err != nil {
			return fmt.Errorf("decoding group %q: %w", key, err)
		}
		for _, t := range toks {
			s.Append(key, t)
		}
	}

	_, err = dec.Token()
	return err
}
