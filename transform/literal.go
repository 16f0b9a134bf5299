package transform

import (
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclmap/cst"
)

// identifier reduces the rule to the raw text of its single token.
func (t *Transformer) identifier(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "identifier has no token")}
	}
	return tokenText(vals[0]), nil
}

// intLit concatenates the numeral's textual fragments (sign, digits) and
// parses them as one decimal integer. The grammar guarantees well-formed
// numerals, so a parse failure is fatal rather than recoverable.
func (t *Transformer) intLit(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	text := concatText(vals)
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, hcl.Diagnostics{malformedNumber(n, "integer", text)}
	}
	return i, nil
}

// floatLit concatenates the numeral's textual fragments (digits, point,
// exponent marker) and parses them as one floating point number.
func (t *Transformer) floatLit(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	text := concatText(vals)
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, hcl.Diagnostics{malformedNumber(n, "float", text)}
	}
	return f, nil
}

func malformedNumber(n *cst.Node, kind, text string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  fmt.Sprintf("Malformed %s literal", kind),
		Detail:   fmt.Sprintf("The grammar delivered %q where a %s numeral was required.", text, kind),
		Subject:  n.Range,
	}
}

// exprTerm resolves the keyword literals true/false/null, unwraps
// parenthesized expressions, and otherwise passes its single remaining
// child through unchanged.
func (t *Transformer) exprTerm(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	if len(vals) == 0 {
		return nil, hcl.Diagnostics{contractError(n, "expr_term has no children")}
	}

	if s, ok := vals[0].(string); ok {
		switch s {
		case "true":
			return true, nil
		case "false":
			return false, nil
		case "null":
			return nil, nil
		case "(":
			if len(vals) < 2 {
				return nil, hcl.Diagnostics{contractError(n, "parenthesized expr_term has no inner expression")}
			}
			return vals[1], nil
		}
	}
	return vals[0], nil
}
