package transform

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclmap/cst"
)

// Keys added to every block body when line metadata is enabled. The
// spelling is shared with other implementations of this transformation,
// so downstream tooling can consume either.
const (
	StartLineKey = "__start_line__"
	EndLineKey   = "__end_line__"
)

// discardType is the sentinel produced by separator rules. The child
// filter removes it before any rule's own logic runs.
type discardType struct{}

var discard = discardType{}

// attribute is the ephemeral key/value pair produced by the attribute
// rule and consumed by the enclosing body rule. It never appears in a
// finished document.
type attribute struct {
	key   string
	value any
	rng   *hcl.Range
}

// Transformer maps syntax trees onto nested maps and slices. The zero
// configuration matches the source language defaults: no line metadata,
// warnings to slog.Default().
//
// A Transformer is immutable after New. Transform keeps all per-run
// state on the stack, so one instance may be used from multiple
// goroutines at once.
type Transformer struct {
	lineMeta bool
	logger   *slog.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithLineMeta makes every block body carry its 1-based start and end
// source lines under StartLineKey and EndLineKey. Blocks whose nodes
// have no range are left unstamped.
func WithLineMeta() Option {
	return func(t *Transformer) { t.lineMeta = true }
}

// WithLogger routes duplicate-key warnings to logger instead of the
// process default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transformer) { t.logger = logger }
}

// New builds a Transformer.
func New(opts ...Option) *Transformer {
	t := &Transformer{logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform walks root bottom-up and returns the document it describes,
// normally a map produced by the grammar's start rule.
//
// The diagnostics carry one warning per duplicate key dropped during
// body assembly and one error per fatal condition. When
// diags.HasErrors() reports true the document is nil: fatal conditions
// leave no partial result. Warnings alone accompany a complete
// document.
func (t *Transformer) Transform(root *cst.Node) (map[string]any, hcl.Diagnostics) {
	if root == nil {
		return nil, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing syntax tree",
			Detail:   "Transform was called with a nil root node.",
		}}
	}

	val, diags := t.node(root)
	if diags.HasErrors() {
		return nil, diags
	}

	doc, ok := val.(map[string]any)
	if !ok {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Root rule did not produce a document",
			Detail:   fmt.Sprintf("The root rule %q produced %T where a body map was required.", root.Rule, val),
			Subject:  root.Range,
		})
	}
	return doc, diags
}

// node transforms a single node: children first, then the node's own
// rule applied to the filtered results.
func (t *Transformer) node(n *cst.Node) (any, hcl.Diagnostics) {
	vals, diags := t.children(n)
	if diags.HasErrors() {
		return nil, diags
	}

	val, applyDiags := t.apply(n, vals)
	diags = append(diags, applyDiags...)
	if diags.HasErrors() {
		return nil, diags
	}
	return val, diags
}

// children transforms every child of n and filters out the two
// structurally insignificant shapes before any rule logic sees the list:
// the discard sentinel produced by separator rules, and bare newline
// tokens the grammar occasionally passes through directly.
func (t *Transformer) children(n *cst.Node) ([]any, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	vals := make([]any, 0, len(n.Children))

	for _, child := range n.Children {
		switch c := child.(type) {
		case cst.Token:
			if c == "\n" {
				continue
			}
			vals = append(vals, string(c))
		case *cst.Node:
			if c == nil {
				return nil, append(diags, contractError(n, "a child node is nil"))
			}
			val, childDiags := t.node(c)
			diags = append(diags, childDiags...)
			if diags.HasErrors() {
				return nil, diags
			}
			if _, isDiscard := val.(discardType); isDiscard {
				continue
			}
			if s, isStr := val.(string); isStr && s == "\n" {
				continue
			}
			vals = append(vals, val)
		default:
			return nil, append(diags, contractError(n, fmt.Sprintf("unknown child kind %T", child)))
		}
	}
	return vals, diags
}

// apply dispatches on the node's rule. The set of rules is closed;
// anything else means the grammar and the engine disagree, which is a
// defect in the producing parser rather than in the configuration being
// transformed.
func (t *Transformer) apply(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	switch n.Rule {
	case cst.Start:
		return t.start(n, vals)
	case cst.Body:
		return t.body(n, vals)
	case cst.Attribute:
		return t.attribute(n, vals)
	case cst.Block:
		return t.block(n, vals)

	case cst.Identifier:
		return t.identifier(n, vals)
	case cst.IntLit:
		return t.intLit(n, vals)
	case cst.FloatLit:
		return t.floatLit(n, vals)
	case cst.ExprTerm:
		return t.exprTerm(n, vals)

	case cst.IndexExprTerm, cst.GetAttrExprTerm, cst.AttrSplatExprTerm, cst.FullSplatExprTerm:
		return t.postfixTerm(n, vals)
	case cst.Index:
		return t.index(n, vals)
	case cst.GetAttr:
		return t.getAttr(n, vals)
	case cst.AttrSplat:
		return ".*" + concatText(vals), nil
	case cst.FullSplat:
		return "[*]" + concatText(vals), nil

	case cst.Tuple:
		return t.tuple(vals)
	case cst.Object:
		return t.object(n, vals)
	case cst.ObjectElem:
		return t.objectElem(n, vals)

	case cst.FunctionCall:
		return t.functionCall(n, vals)
	case cst.Arguments:
		return vals, nil
	case cst.Conditional:
		return t.conditional(n, vals)
	case cst.BinaryOp, cst.BinaryTerm:
		return spaceJoin(vals), nil
	case cst.UnaryOp:
		return concatText(vals), nil
	case cst.BinaryOperator:
		return t.binaryOperator(n, vals)

	case cst.HeredocTemplate:
		return t.heredocTemplate(n, vals)
	case cst.HeredocTemplateTrim:
		return t.heredocTemplateTrim(n, vals)

	case cst.ForTupleExpr:
		return "[" + spaceJoin(innerVals(vals)) + "]", nil
	case cst.ForObjectExpr:
		// The single brace pair combines with the ${...} wrapper applied
		// at the enclosing value site, giving the ${{...}} rendering.
		return "{" + spaceJoin(innerVals(vals)) + "}", nil
	case cst.ForIntro, cst.ForCond:
		return spaceJoin(vals), nil

	case cst.NewLineOrComment, cst.NewLineAndOrComma:
		return discard, nil

	default:
		return nil, hcl.Diagnostics{&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported grammar rule",
			Detail:   fmt.Sprintf("No transformation exists for rule %q.", n.Rule),
			Subject:  n.Range,
		}}
	}
}

// contractError reports a node whose children do not match the shape the
// grammar promises for its rule.
func contractError(n *cst.Node, detail string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Grammar contract violation",
		Detail:   fmt.Sprintf("In rule %q: %s.", n.Rule, detail),
		Subject:  n.Range,
	}
}
