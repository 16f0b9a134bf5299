package ctyconv

import (
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// ToJSON renders a document as JSON through its cty representation.
// Object keys come out in lexical order; interpolation-wrapped strings
// pass through as ordinary JSON strings.
func ToJSON(doc map[string]any) ([]byte, error) {
	v, err := ToCty(doc)
	if err != nil {
		return nil, err
	}
	return ctyjson.Marshal(v, v.Type())
}
