// Package ctyconv bridges transformed documents and the cty type system.
//
// The transform package emits plain Go values (nil, bool, int64,
// float64, string, []any, map[string]any). Much of the tooling that
// consumes HCL2-shaped configuration speaks cty.Value instead; ToCty and
// FromCty map between the two without requiring a schema, and ToJSON
// renders a document as JSON through its cty representation.
//
// Documents stay heterogeneous, so maps convert to cty object values and
// slices to cty tuple values rather than to the unifying map/list kinds.
package ctyconv
