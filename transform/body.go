package transform

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclmap/cst"
)

// start unwraps the single top-level body.
func (t *Transformer) start(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "start has no body")}
	}
	return vals[0], nil
}

// attribute produces the ephemeral key/value pair consumed by body. The
// key de-quotes when it was written as a quoted string; the value goes
// through the interpolation-wrap convention here, not in body.
func (t *Transformer) attribute(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) < 2 {
		return nil, hcl.Diagnostics{contractError(n, "attribute requires a key and a value")}
	}
	return attribute{
		key:   unquotedText(vals[0]),
		value: wrapValue(vals[1]),
		rng:   n.Range,
	}, nil
}

// body aggregates attribute and block children, in encounter order, into
// one map.
//
// Attribute keys bind on first definition; later attribute definitions
// of the same key are dropped with a warning. Every block becomes an
// element of a list stored under its block type's key, even when only
// one block of that type exists. A block whose type collides with an
// existing attribute key is dropped with a warning: whichever kind
// claimed the key first wins.
func (t *Transformer) body(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	attrKeys := make(map[string]struct{})
	result := make(map[string]any)

	for _, v := range vals {
		switch child := v.(type) {
		case attribute:
			if _, defined := result[child.key]; defined {
				diags = append(diags, t.duplicateKey(child.key, "attribute", child.rng, n.Range))
				continue
			}
			result[child.key] = child.value
			attrKeys[child.key] = struct{}{}

		case map[string]any:
			// A transformed block: its single top-level key is the block
			// type, already wrapped in any label layers.
			for key, value := range child {
				existing, defined := result[key]
				if !defined {
					result[key] = []any{value}
					continue
				}
				if _, isAttr := attrKeys[key]; isAttr {
					diags = append(diags, t.duplicateKey(key, "block", nil, n.Range))
					continue
				}
				result[key] = append(existing.([]any), value)
			}

		default:
			return nil, append(diags, contractError(n, fmt.Sprintf("body child is %T, not an attribute or block", v)))
		}
	}
	return result, diags
}

// duplicateKey logs and records one dropped body entry. kind names what
// was dropped ("attribute" or "block"); the earlier definition stays in
// place untouched.
func (t *Transformer) duplicateKey(key, kind string, subject, fallback *hcl.Range) *hcl.Diagnostic {
	t.logger.Warn("Key already defined in body, ignoring duplicate.", "key", key, "kind", kind)

	if subject == nil {
		subject = fallback
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  fmt.Sprintf("Duplicate %s %q", kind, key),
		Detail:   fmt.Sprintf("The key %q is already defined in this body; the later %s is dropped.", key, kind),
		Subject:  subject,
	}
}

// block nests its body under the preceding label chain. The first child
// is the block type, then zero or more labels, with the transformed body
// last; labels written as quoted strings de-quote. With line metadata
// enabled the body map is stamped with the block node's 1-based start
// and end lines before the label wrapping, so the keys land at the
// block's own level rather than on a label layer.
func (t *Transformer) block(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "block has no body")}
	}

	result, ok := vals[len(vals)-1].(map[string]any)
	if !ok {
		return nil, hcl.Diagnostics{contractError(n, fmt.Sprintf("block body is %T, not a map", vals[len(vals)-1]))}
	}
	labels := vals[:len(vals)-1]

	if t.lineMeta && n.Range != nil {
		result[StartLineKey] = int64(n.Range.Start.Line)
		result[EndLineKey] = int64(n.Range.End.Line)
	}

	for i := len(labels) - 1; i >= 0; i-- {
		result = map[string]any{unquotedText(labels[i]): result}
	}
	return result, nil
}

// tuple renders each element through the interpolation-wrap convention.
func (t *Transformer) tuple(vals []any) (any, hcl.Diagnostics) {
	out := make([]any, len(vals))
	for i, v := range vals {
		out[i] = wrapValue(v)
	}
	return out, nil
}

// objectElem produces a single-pair map so object can fold pairs
// together.
func (t *Transformer) objectElem(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) < 2 {
		return nil, hcl.Diagnostics{contractError(n, "object_elem requires a key and a value")}
	}
	return map[string]any{unquotedText(vals[0]): wrapValue(vals[1])}, nil
}

// object folds its element pairs into one map. Later pairs overwrite
// earlier ones, unlike body where the first definition wins.
func (t *Transformer) object(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	result := make(map[string]any)
	for _, v := range vals {
		pair, ok := v.(map[string]any)
		if !ok {
			return nil, hcl.Diagnostics{contractError(n, fmt.Sprintf("object element is %T, not a key/value pair", v))}
		}
		for key, value := range pair {
			result[key] = value
		}
	}
	return result, nil
}
