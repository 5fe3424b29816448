/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package provider defines the source of tokens, token groups, and brands
// for an export, and decodes the design-system service's JSON payloads.
package provider

import (
	"context"
	"errors"

	"bennypowers.dev/dsexport/token"
)

// ErrMissingCollection indicates a payload did not contain the expected collection.
var ErrMissingCollection = errors.New("collection not found in payload")

// VersionRef identifies a design system version.
type VersionRef struct {
	DesignSystemID string
	VersionID      string
}

// Provider supplies the three input collections for one design system version.
type Provider interface {
	Tokens(ctx context.Context, ref VersionRef) ([]*token.Token, error)
	TokenGroups(ctx context.Context, ref VersionRef) ([]*token.Group, error)
	Brands(ctx context.Context, ref VersionRef) ([]*token.Brand, error)
}
