// Package transform converts a concrete syntax tree for an HCL2-style
// configuration language into plain nested Go values.
//
// The engine performs one bottom-up walk over the tree: leaf tokens
// become scalars or text fragments, and every parent rule combines its
// already-transformed children into a new value. Literal values come out
// as native Go types (nil, bool, int64, float64, string, []any,
// map[string]any). Everything else (variable references, operators,
// function calls, index and splat forms, conditionals,
// for-comprehensions) is never evaluated: the engine reconstructs its
// source text and embeds it in the document wrapped as "${...}", leaving
// evaluation to a later stage. Downstream code tells the two string
// flavors apart purely by the presence of that wrapper; see
// IsInterpolation.
//
// Bodies merge their children under HCL2's rules: an attribute key binds
// on first definition (later duplicates are dropped with a warning), and
// repeated blocks of one type collapse into a list under that type's
// key. Object literals use the opposite, last-wins rule.
//
// Warnings and fatal conditions are reported as hcl.Diagnostics. A fatal
// condition (malformed heredoc or numeric token, a tree that violates
// the grammar's shape contract) aborts the transformation with no
// partial document; warnings are additionally written to the configured
// slog logger and do not stop the walk.
package transform
