// Package cst models the concrete syntax tree that an external
// grammar-driven parser hands to this module.
//
// A tree is built from Nodes, each tagged with the grammar Rule that
// produced it and holding an ordered list of children. A child is either
// another *Node or a Token carrying the raw source text of a terminal
// symbol. Nodes may carry an optional hcl.Range locating them in the
// original source; when present, ranges flow into diagnostics and into
// the line metadata emitted by the transform package.
//
// The package performs no validation of its own. The shape of each node
// (arity and child kinds per rule) is a contract owned by the grammar
// that produced the tree; the transform package treats violations of
// that contract as fatal.
package cst
