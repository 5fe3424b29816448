/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides design-system token, group, and brand types,
// and the structured output records derived from them.
package token

import (
	"cmp"
	"slices"
)

// Property names with special meaning in Token.PropertyValues.
const (
	// PropertyVariable holds the token's variable name (e.g., "--blue-500").
	PropertyVariable = "variable"

	// PropertyPlatform optionally names the platform the token targets.
	PropertyPlatform = "platform"
)

// Token represents a single design value as delivered by the design-system service.
type Token struct {
	// ID uniquely identifies the token.
	ID string `json:"id" yaml:"id"`

	// ParentGroupID references the group that directly contains this token.
	ParentGroupID string `json:"parentGroupId" yaml:"parentGroupId"`

	// BrandID optionally references the brand this token belongs to.
	BrandID string `json:"brandId,omitempty" yaml:"brandId,omitempty"`

	// Name is the token's local (leaf) name within its group.
	Name string `json:"name" yaml:"name"`

	// Description is free-text usage documentation.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// PropertyValues maps arbitrary property names to string values, in
	// delivery order. It should include "variable" and may include "platform".
	PropertyValues Properties `json:"propertyValues" yaml:"propertyValues"`
}

// Variable returns the token's "variable" property.
func (t *Token) Variable() string {
	return t.PropertyValues.Value(PropertyVariable)
}

// Platform returns the token's "platform" property, or "" if absent.
func (t *Token) Platform() string {
	return t.PropertyValues.Value(PropertyPlatform)
}

// SortByParentGroup returns a copy of tokens stably sorted by ParentGroupID.
// Tokens sharing a parent group keep their relative order.
func SortByParentGroup(tokens []*Token) []*Token {
	sorted := slices.Clone(tokens)
	slices.SortStableFunc(sorted, func(a, b *Token) int {
		return cmp.Compare(a.ParentGroupID, b.ParentGroupID)
	})
	return sorted
}
