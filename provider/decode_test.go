/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/dsexport/provider"
)

func TestDecodeTokens(t *testing.T) {
	payload := `{"result":{"tokens":[
		{"id":"t1","parentGroupId":"g2","brandId":"b1","name":"blue500","description":"primary accent",
		 "propertyValues":{"variable":"--blue-500","value":"#0000FF","size":16,"enabled":true,"missing":null,"nested":{"a":1}}},
		{"id":"t2","parentId":"g1","name":"legacy"}
	]}}`

	tokens, err := provider.DecodeTokens([]byte(payload))
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	t1 := tokens[0]
	assert.Equal(t, "t1", t1.ID)
	assert.Equal(t, "g2", t1.ParentGroupID)
	assert.Equal(t, "b1", t1.BrandID)
	assert.Equal(t, "blue500", t1.Name)
	assert.Equal(t, "primary accent", t1.Description)
	assert.Equal(t, []string{"variable", "value", "size", "enabled", "nested"}, t1.PropertyValues.Names())
	assert.Equal(t, "#0000FF", t1.PropertyValues.Value("value"))
	assert.Equal(t, "16", t1.PropertyValues.Value("size"))
	assert.Equal(t, "true", t1.PropertyValues.Value("enabled"))
	assert.Equal(t, `{"a":1}`, t1.PropertyValues.Value("nested"))
	_, ok := t1.PropertyValues.Get("missing")
	assert.False(t, ok)

	t2 := tokens[1]
	assert.Equal(t, "g1", t2.ParentGroupID)
	assert.Empty(t, t2.BrandID)
	assert.Equal(t, 0, t2.PropertyValues.Len())
}

func TestDecodeGroups_Envelopes(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"bare array", `[{"id":"g1","name":"Color"},{"id":"g2","name":"Primary","parentGroupId":"g1"}]`},
		{"keyed", `{"groups":[{"id":"g1","name":"Color"},{"id":"g2","name":"Primary","parentGroupId":"g1"}]}`},
		{"result envelope", `{"result":{"groups":[{"id":"g1","name":"Color"},{"id":"g2","name":"Primary","parentGroupId":"g1"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := provider.DecodeGroups([]byte(tt.payload))
			require.NoError(t, err)
			require.Len(t, groups, 2)
			assert.Equal(t, "Color", groups[0].Name)
			assert.Empty(t, groups[0].ParentGroupID)
			assert.Equal(t, "g1", groups[1].ParentGroupID)
		})
	}
}

func TestDecodeBrands(t *testing.T) {
	brands, err := provider.DecodeBrands([]byte(`{"brands":[{"id":"b1","name":"Acme"}]}`))
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Acme", brands[0].Name)
}

func TestDecode_Errors(t *testing.T) {
	_, err := provider.DecodeBrands([]byte(`{"tokens":[]}`))
	assert.ErrorIs(t, err, provider.ErrMissingCollection)

	_, err = provider.DecodeTokens([]byte(`{not json`))
	assert.Error(t, err)
}
