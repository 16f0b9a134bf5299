package transform

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclmap/cst"
)

// Postfix, operator, call and conditional rules never evaluate anything.
// They rebuild expression text from their operands, echoing whatever
// operator and bracket tokens the grammar supplies; the result is a
// plain string that a value site later wraps as ${...}.

// postfixTerm glues an operand to its postfix accessor text. Indexing,
// attribute access and both splat forms all share this shape.
func (t *Transformer) postfixTerm(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) < 2 {
		return nil, hcl.Diagnostics{contractError(n, "postfix term requires an operand and an accessor")}
	}
	return tokenText(vals[0]) + tokenText(vals[1]), nil
}

// index brackets the already-rendered index expression.
func (t *Transformer) index(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "index has no inner expression")}
	}
	return "[" + tokenText(vals[0]) + "]", nil
}

// getAttr renders a dotted attribute access.
func (t *Transformer) getAttr(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "get_attr has no attribute name")}
	}
	return "." + tokenText(vals[0]), nil
}

// functionCall renders name(arg, arg, ...). The argument list arrives
// pre-assembled by the arguments rule, already free of separators.
func (t *Transformer) functionCall(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "function_call has no name")}
	}

	var args string
	if len(vals) > 1 {
		list, ok := vals[1].([]any)
		if !ok {
			return nil, hcl.Diagnostics{contractError(n, "function_call arguments are not a list")}
		}
		parts := make([]string, len(list))
		for i, arg := range list {
			parts[i] = tokenText(arg)
		}
		args = strings.Join(parts, ", ")
	}
	return tokenText(vals[0]) + "(" + args + ")", nil
}

// conditional renders cond ? a : b with single-space padding around the
// hard-coded separators.
func (t *Transformer) conditional(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) < 3 {
		return nil, hcl.Diagnostics{contractError(n, "conditional requires condition and both results")}
	}
	return tokenText(vals[0]) + " ? " + tokenText(vals[1]) + " : " + tokenText(vals[2]), nil
}

// binaryOperator reduces to the operator token's own spelling. Operator
// text always comes from the grammar; the engine never re-derives it.
func (t *Transformer) binaryOperator(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "binary_operator has no token")}
	}
	return tokenText(vals[0]), nil
}
