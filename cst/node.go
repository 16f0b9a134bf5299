package cst

import "github.com/hashicorp/hcl/v2"

// Rule identifies the grammar production that created a Node. The rule
// set understood by the transform engine is closed: a node tagged with
// anything outside the constants below is rejected as a grammar-contract
// violation rather than silently skipped.
type Rule string

// The grammar productions emitted by the parser for HCL2-style
// configuration sources.
const (
	// Document structure.
	Start     Rule = "start"
	Body      Rule = "body"
	Attribute Rule = "attribute"
	Block     Rule = "block"

	// Terminals promoted to rules by the grammar.
	Identifier Rule = "identifier"
	IntLit     Rule = "int_lit"
	FloatLit   Rule = "float_lit"

	// Expression terms and postfix forms.
	ExprTerm          Rule = "expr_term"
	IndexExprTerm     Rule = "index_expr_term"
	Index             Rule = "index"
	GetAttrExprTerm   Rule = "get_attr_expr_term"
	GetAttr           Rule = "get_attr"
	AttrSplatExprTerm Rule = "attr_splat_expr_term"
	AttrSplat         Rule = "attr_splat"
	FullSplatExprTerm Rule = "full_splat_expr_term"
	FullSplat         Rule = "full_splat"

	// Collections.
	Tuple      Rule = "tuple"
	Object     Rule = "object"
	ObjectElem Rule = "object_elem"

	// Calls and operators.
	FunctionCall   Rule = "function_call"
	Arguments      Rule = "arguments"
	Conditional    Rule = "conditional"
	BinaryOp       Rule = "binary_op"
	BinaryTerm     Rule = "binary_term"
	UnaryOp        Rule = "unary_op"
	BinaryOperator Rule = "binary_operator"

	// Template expressions.
	HeredocTemplate     Rule = "heredoc_template"
	HeredocTemplateTrim Rule = "heredoc_template_trim"

	// For-comprehensions.
	ForTupleExpr  Rule = "for_tuple_expr"
	ForObjectExpr Rule = "for_object_expr"
	ForIntro      Rule = "for_intro"
	ForCond       Rule = "for_cond"

	// Structurally insignificant separators. These transform to nothing;
	// they exist so the grammar has somewhere to park newline and comma
	// tokens.
	NewLineOrComment  Rule = "new_line_or_comment"
	NewLineAndOrComma Rule = "new_line_and_or_comma"
)

// Child is one entry in a Node's ordered child list: either a nested
// *Node or a terminal Token.
type Child interface {
	isChild()
}

// Token is the raw text of a terminal symbol, exactly as it appeared in
// the source: string literals keep their enclosing quotes, heredoc
// tokens keep their markers and body, operators are their own spelling.
type Token string

func (Token) isChild() {}

// Node is a single syntax-tree node produced by the external parser.
type Node struct {
	// Rule names the grammar production this node was built from.
	Rule Rule

	// Children holds the node's sub-trees and terminal tokens in source
	// order.
	Children []Child

	// Range optionally locates the node in the original source. Only the
	// start and end lines are consumed by line metadata; a full range
	// improves diagnostic subjects.
	Range *hcl.Range
}

func (*Node) isChild() {}

// NewNode builds a node for rule with the given children.
func NewNode(rule Rule, children ...Child) *Node {
	return &Node{Rule: rule, Children: children}
}

// WithRange attaches a source range to the node and returns the node, so
// producers can build and place a node in a single expression.
func (n *Node) WithRange(rng hcl.Range) *Node {
	n.Range = &rng
	return n
}

// LineSpan builds a range carrying only 1-based line information, for
// producers that track lines but not columns or byte offsets.
func LineSpan(start, end int) hcl.Range {
	return hcl.Range{
		Start: hcl.Pos{Line: start},
		End:   hcl.Pos{Line: end},
	}
}
