package transform

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// tokenText renders an already-transformed child back into source-like
// text for inclusion in a reconstructed expression. Strings are already
// source text (quoted literals keep their quotes here), scalars render
// in their canonical source spelling, and containers render as tuple and
// object literal text so the reconstruction stays parseable downstream.
func tokenText(v any) string {
	switch tv := v.(type) {
	case string:
		return tv
	case bool:
		if tv {
			return "true"
		}
		return "false"
	case int64:
		return strconv.FormatInt(tv, 10)
	case float64:
		return strconv.FormatFloat(tv, 'g', -1, 64)
	case nil:
		return "null"
	case []any:
		parts := make([]string, len(tv))
		for i, elem := range tv {
			parts[i] = tokenText(elem)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(tv))
		for key := range tv {
			keys = append(keys, key)
		}
		sort.Strings(keys) // Sort keys for deterministic output

		parts := make([]string, len(keys))
		for i, key := range keys {
			parts[i] = key + " = " + tokenText(tv[key])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprintf("%v", tv)
	}
}

// concatText renders vals with no separator.
func concatText(vals []any) string {
	var b strings.Builder
	for _, v := range vals {
		b.WriteString(tokenText(v))
	}
	return b.String()
}

// spaceJoin renders vals separated by single spaces.
func spaceJoin(vals []any) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = tokenText(v)
	}
	return strings.Join(parts, " ")
}

// isQuoted reports whether s is a double-quoted string literal token.
func isQuoted(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

// unquotedText renders v as text with one enclosing quote layer removed.
// Identifiers, block labels and object keys all de-quote this way;
// escape sequences inside the text are left untouched.
func unquotedText(v any) string {
	s := tokenText(v)
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return s
}

// wrapValue applies the interpolation convention at a value site
// (attribute value, tuple element, object value): a quoted string
// literal loses its quotes and stays a literal, any other string is an
// unevaluated expression fragment and gains the ${...} wrapper, and
// non-strings pass through unchanged.
func wrapValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if isQuoted(s) {
		return s[1 : len(s)-1]
	}
	return "${" + s + "}"
}

// innerVals drops the enclosing delimiter tokens from a for-expression
// child list.
func innerVals(vals []any) []any {
	if len(vals) < 2 {
		return nil
	}
	return vals[1 : len(vals)-1]
}

// IsInterpolation reports whether s carries the ${...} wrapper that
// marks an unevaluated expression in a finished document. Literal
// strings come out of the transformation unwrapped, so this check is
// how downstream consumers tell the two apart.
func IsInterpolation(s string) bool {
	return len(s) >= 3 && strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}")
}

// InterpolationText returns the expression text inside a ${...} wrapper
// and true. When s is not interpolation-wrapped it is returned unchanged
// with false.
func InterpolationText(s string) (string, bool) {
	if !IsInterpolation(s) {
		return s, false
	}
	return s[2 : len(s)-1], true
}
