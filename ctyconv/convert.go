package ctyconv

import (
	"fmt"
	"math/big"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ToCty converts a document value into its cty equivalent. Maps become
// object values and slices become tuple values, so mixed-type documents
// convert without needing a unifying element type. Values outside the
// document model fall back to gocty's implied-type conversion.
func ToCty(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case bool:
		return cty.BoolVal(tv), nil
	case int64:
		return cty.NumberIntVal(tv), nil
	case int:
		return cty.NumberIntVal(int64(tv)), nil
	case float64:
		return cty.NumberFloatVal(tv), nil
	case string:
		return cty.StringVal(tv), nil

	case []any:
		if len(tv) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, len(tv))
		for i, elem := range tv {
			ev, err := ToCty(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in element %d: %w", i, err)
			}
			elems[i] = ev
		}
		return cty.TupleVal(elems), nil

	case map[string]any:
		if len(tv) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(tv))
		for key, elem := range tv {
			ev, err := ToCty(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute %q: %w", key, err)
			}
			attrs[key] = ev
		}
		return cty.ObjectVal(attrs), nil

	default:
		ty, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, fmt.Errorf("unsupported document value of type %T: %w", v, err)
		}
		return gocty.ToCtyValue(v, ty)
	}
}

// FromCty converts a cty value back into the document model. Objects and
// maps become map[string]any, lists, sets and tuples become []any, and
// numbers come back as int64 when exactly representable, float64
// otherwise. Null and unknown values become nil.
func FromCty(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			native, err := FromCty(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			key, ev := it.Element()
			native, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			out[key.AsString()] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}
