package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/hclmap/cst"
)

// Tree-building shorthand. Tests assemble the same node shapes the
// grammar produces; these helpers keep that assembly readable.

func tok(s string) cst.Token { return cst.Token(s) }

func node(rule cst.Rule, children ...cst.Child) *cst.Node {
	return cst.NewNode(rule, children...)
}

func ident(name string) *cst.Node {
	return cst.NewNode(cst.Identifier, cst.Token(name))
}

// term wraps a child in expr_term the way the grammar does for simple
// terms.
func term(child cst.Child) *cst.Node {
	return cst.NewNode(cst.ExprTerm, child)
}

func intLit(fragments ...string) *cst.Node {
	return litNode(cst.IntLit, fragments)
}

func floatLit(fragments ...string) *cst.Node {
	return litNode(cst.FloatLit, fragments)
}

func litNode(rule cst.Rule, fragments []string) *cst.Node {
	children := make([]cst.Child, len(fragments))
	for i, f := range fragments {
		children[i] = cst.Token(f)
	}
	return cst.NewNode(rule, children...)
}

func attrNode(key string, value cst.Child) *cst.Node {
	return cst.NewNode(cst.Attribute, ident(key), value)
}

func bodyNode(children ...cst.Child) *cst.Node {
	return cst.NewNode(cst.Body, children...)
}

func startNode(children ...cst.Child) *cst.Node {
	return cst.NewNode(cst.Start, children...)
}

// newline builds the separator node bodies carry between entries.
func newline() *cst.Node {
	return cst.NewNode(cst.NewLineOrComment, cst.Token("\n"))
}

// transformDoc runs a default Transformer over a start/body tree built
// from the given body children and requires that nothing fatal happened.
// Warnings are allowed through.
func transformDoc(t *testing.T, children ...cst.Child) map[string]any {
	t.Helper()
	doc, diags := New().Transform(startNode(bodyNode(children...)))
	require.False(t, diags.HasErrors(), "unexpected fatal diagnostics: %s", diags.Error())
	require.NotNil(t, doc)
	return doc
}

// attrValue transforms a document holding a single attribute "x" with
// the given value child and returns the transformed attribute value.
func attrValue(t *testing.T, value cst.Child) any {
	t.Helper()
	doc := transformDoc(t, attrNode("x", value))
	require.Contains(t, doc, "x")
	return doc["x"]
}
