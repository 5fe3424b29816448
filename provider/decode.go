/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package provider

import (
	"fmt"

	"github.com/tidwall/gjson"

	"bennypowers.dev/dsexport/token"
)

// Collection keys, as they appear in service payloads.
const (
	KeyTokens = "tokens"
	KeyGroups = "groups"
	KeyBrands = "brands"
)

// collection locates the array of records for key. The array may be the
// payload itself, or sit under "result.<key>" or "<key>".
func collection(data []byte, key string) ([]gjson.Result, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON payload for %s", key)
	}

	root := gjson.ParseBytes(data)
	if root.IsArray() {
		return root.Array(), nil
	}

	for _, path := range []string{"result." + key, key} {
		if r := root.Get(path); r.IsArray() {
			return r.Array(), nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrMissingCollection, key)
}

// parentID reads the parent group reference, accepting the legacy "parentId" key.
func parentID(rec gjson.Result) string {
	if v := rec.Get("parentGroupId"); v.Exists() {
		return v.String()
	}
	return rec.Get("parentId").String()
}

// stringValues flattens an object of scalars into strings, in document order.
// Null members are skipped; nested objects and arrays keep their raw JSON.
func stringValues(obj gjson.Result) token.Properties {
	var values token.Properties
	obj.ForEach(func(key, value gjson.Result) bool {
		switch value.Type {
		case gjson.Null:
		case gjson.String:
			values.Set(key.String(), value.Str)
		case gjson.True, gjson.False:
			values.Set(key.String(), value.String())
		default:
			values.Set(key.String(), value.Raw)
		}
		return true
	})
	return values
}

// DecodeTokens decodes tokens from a JSON payload.
func DecodeTokens(data []byte) ([]*token.Token, error) {
	records, err := collection(data, KeyTokens)
	if err != nil {
		return nil, err
	}

	tokens := make([]*token.Token, 0, len(records))
	for _, rec := range records {
		tokens = append(tokens, &token.Token{
			ID:             rec.Get("id").String(),
			ParentGroupID:  parentID(rec),
			BrandID:        rec.Get("brandId").String(),
			Name:           rec.Get("name").String(),
			Description:    rec.Get("description").String(),
			PropertyValues: stringValues(rec.Get("propertyValues")),
		})
	}
	return tokens, nil
}

// DecodeGroups decodes token groups from a JSON payload.
func DecodeGroups(data []byte) ([]*token.Group, error) {
	records, err := collection(data, KeyGroups)
	if err != nil {
		return nil, err
	}

	groups := make([]*token.Group, 0, len(records))
	for _, rec := range records {
		groups = append(groups, &token.Group{
			ID:            rec.Get("id").String(),
			Name:          rec.Get("name").String(),
			ParentGroupID: parentID(rec),
		})
	}
	return groups, nil
}

// DecodeBrands decodes brands from a JSON payload.
func DecodeBrands(data []byte) ([]*token.Brand, error) {
	records, err := collection(data, KeyBrands)
	if err != nil {
		return nil, err
	}

	brands := make([]*token.Brand, 0, len(records))
	for _, rec := range records {
		brands = append(brands, &token.Brand{
			ID:   rec.Get("id").String(),
			Name: rec.Get("name").String(),
		})
	}
	return brands, nil
}
