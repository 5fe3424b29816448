/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package export

import (
	"fmt"

	"github.com/tidwall/pretty"

	"bennypowers.dev/dsexport/token"
)

// SerializeOptions configures the encoding of structured tokens.
type SerializeOptions struct {
	// Pretty indents the output. Key order is unchanged.
	Pretty bool
}

// Serialize encodes structured tokens as JSON, root groups in insertion order.
func Serialize(st *token.StructuredTokens, opts SerializeOptions) ([]byte, error) {
	if st == nil {
		st = token.NewStructuredTokens()
	}

	// MarshalJSON is called directly; json.Marshal would re-escape HTML characters.
	data, err := st.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("serializing structured tokens: %w", err)
	}

	if opts.Pretty {
		return pretty.Pretty(data), nil
	}
	return data, nil
}
