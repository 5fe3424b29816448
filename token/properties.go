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

	"gopkg.in/yaml.v3"
)

// Properties maps property names to string values, keeping the order in
// which names were first set. The zero value is an empty mapping.
type Properties struct {
	names  []string
	values map[string]string
}

// NewProperties builds Properties from alternating name, value pairs.
// It panics on an odd number of arguments.
func NewProperties(pairs ...string) Properties {
	if len(pairs)%2 != 0 {
		panic("token.NewProperties: odd number of arguments")
	}
	var p Properties
	for i := 0; i < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}

// Set stores value under name. Setting an existing name keeps its position.
func (p *Properties) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.names = append(p.names, name)
	}
	p.values[name] = value
}

// Get returns the value stored under name.
func (p Properties) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Value returns the value stored under name, or "" if absent.
func (p Properties) Value(name string) string {
	return p.values[name]
}

// Names returns the property names in order.
func (p Properties) Names() []string {
	names := make([]string, len(p.names))
	copy(names, p.names)
	return names
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.names)
}

// Clone returns an independent copy.
func (p Properties) Clone() Properties {
	var out Properties
	for _, name := range p.names {
		out.Set(name, p.values[name])
	}
	return out
}

// MarshalJSON encodes the properties as a JSON object in order.
func (p Properties) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range p.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshalUnescaped(name)
		if err != nil {
			return nil, err
		}
		v, err := marshalUnescaped(p.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of strings, keeping the document's key order.
// null decodes to an empty mapping.
func (p *Properties) UnmarshalJSON(data []byte) error {
	*p = Properties{}
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("properties must be a JSON object")
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", keyTok)
		}
		var value string
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding property %q: %w", name, err)
		}
		p.Set(name, value)
	}

	_, err = dec.Token()
	return err
}

// MarshalYAML encodes the properties as a YAML mapping in order.
func (p Properties) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range p.names {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: p.values[name]},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping of scalars, keeping the document's key order.
func (p *Properties) UnmarshalYAML(node *yaml.Node) error {
	*p = Properties{}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("properties must be a YAML mapping")
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var value string
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decoding property %q: %w", node.Content[i].Value, err)
		}
		p.Set(node.Content[i].Value, value)
	}
	return nil
}
