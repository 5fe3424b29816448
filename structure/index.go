/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package structure

import "bennypowers.dev/dsexport/token"

// GroupIndex looks up token groups by id.
type GroupIndex map[string]*token.Group

// NewGroupIndex indexes groups by id. When ids repeat, the first group wins.
func NewGroupIndex(groups []*token.Group) GroupIndex {
	idx := make(GroupIndex, len(groups))
	for _, g := range groups {
		if g == nil {
			continue
		}
		if _, exists := idx[g.ID]; !exists {
			idx[g.ID] = g
		}
	}
	return idx
}

// FindGroupByID returns the group with the given id.
func (idx GroupIndex) FindGroupByID(id string) (*token.Group, bool) {
	g, ok := idx[id]
	return g, ok
}

// BrandIndex maps brand ids to brand names.
type BrandIndex map[string]string

// NewBrandIndex indexes brand names by id. When ids repeat, the first brand wins.
func NewBrandIndex(brands []*token.Brand) BrandIndex {
	idx := make(BrandIndex, len(brands))
	for _, b := range brands {
		if b == nil {
			continue
		}
		if _, exists := idx[b.ID]; !exists {
			idx[b.ID] = b.Name
		}
	}
	return idx
}

// FindBrandNameByID returns the name of the brand with the given id.
// An empty id never matches.
func (idx BrandIndex) FindBrandNameByID(id string) (string, bool) {
	if id == "" {
		return "", false
	}
	name, ok := idx[id]
	return name, ok
}
