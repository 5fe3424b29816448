/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Group is a node in the token group tree.
type Group struct {
	// ID uniquely identifies the group.
	ID string `json:"id" yaml:"id"`

	// Name is the group's display name, used as a qualified-name segment.
	Name string `json:"name" yaml:"name"`

	// ParentGroupID references the parent group. Empty for root groups.
	// A group whose ParentGroupID equals its own ID is also a root.
	ParentGroupID string `json:"parentGroupId,omitempty" yaml:"parentGroupId,omitempty"`
}

// IsRoot reports whether the group declares no ancestor.
func (g *Group) IsRoot() bool {
	return g.ParentGroupID == "" || g.ParentGroupID == g.ID
}

// Brand is a named entity tokens may be associated with.
type Brand struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}
