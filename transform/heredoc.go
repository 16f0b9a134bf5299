package transform

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclmap/cst"
)

// Heredoc opener patterns. Go's regexp engine has no backreferences, so
// the closing delimiter cannot be part of the pattern; extractHeredoc
// matches the opener and then scans for the delimiter's last occurrence
// by hand. Note the +: a single-character delimiter is not a valid
// heredoc marker.
var (
	heredocOpen     = regexp.MustCompile(`^<<([a-zA-Z][a-zA-Z0-9._-]+)\n`)
	heredocTrimOpen = regexp.MustCompile(`^<<-([a-zA-Z][a-zA-Z0-9._-]+)\n`)
)

// heredocTemplate normalizes a plain <<DELIM heredoc token into a quoted
// string literal.
func (t *Transformer) heredocTemplate(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	raw, diags := rawHeredocToken(n, vals)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := extractHeredoc(raw, heredocOpen)
	if !ok {
		return nil, hcl.Diagnostics{invalidHeredoc(n, raw)}
	}
	return quote(strings.TrimRight(body, "\n\t ")), nil
}

// heredocTemplateTrim normalizes a dedenting <<-DELIM heredoc token:
// after the trailing strip, the minimum leading-space count across all
// lines is removed from every line.
func (t *Transformer) heredocTemplateTrim(n *cst.Node, vals []any) (any, hcl.Diagnostics) {
	raw, diags := rawHeredocToken(n, vals)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := extractHeredoc(raw, heredocTrimOpen)
	if !ok {
		return nil, hcl.Diagnostics{invalidHeredoc(n, raw)}
	}
	return quote(dedent(strings.TrimRight(body, "\n\t "))), nil
}

// rawHeredocToken pulls the raw token text out of the rule's single
// child.
func rawHeredocToken(n *cst.Node, vals []any) (string, hcl.Diagnostics) {
	if len(vals) == 0 {
		return "", hcl.Diagnostics{contractError(n, "heredoc rule has no token")}
	}
	raw, ok := vals[0].(string)
	if !ok {
		return "", hcl.Diagnostics{contractError(n, fmt.Sprintf("heredoc token is %T, not text", vals[0]))}
	}
	return raw, nil
}

// extractHeredoc splits a raw heredoc token into its body text: the text
// between the opener line and the last occurrence of the delimiter.
func extractHeredoc(token string, open *regexp.Regexp) (string, bool) {
	m := open.FindStringSubmatch(token)
	if m == nil {
		return "", false
	}
	rest := token[len(m[0]):]
	end := strings.LastIndex(rest, m[1])
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// dedent removes the common leading-space width from every line. The
// width is the minimum across ALL lines, so one unindented, tab-indented
// or empty line pins it to zero; tabs never count as indentation, and
// only space characters are ever removed.
func dedent(text string) string {
	lines := strings.Split(text, "\n")

	minSpaces := math.MaxInt
	for _, line := range lines {
		leading := len(line) - len(strings.TrimLeft(line, " "))
		if leading < minSpaces {
			minSpaces = leading
		}
	}

	for i, line := range lines {
		lines[i] = line[minSpaces:]
	}
	return strings.Join(lines, "\n")
}

// quote re-emits normalized heredoc text as a quoted string literal so
// the interpolation-wrap helper treats it as a resolved literal. No
// escaping happens in either direction.
func quote(s string) string {
	return `"` + s + `"`
}

func invalidHeredoc(n *cst.Node, raw string) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Invalid heredoc token",
		Detail:   fmt.Sprintf("Token %q does not have the <<DELIM ... DELIM shape; the lexer and grammar disagree about heredoc boundaries.", raw),
		Subject:  n.Range,
	}
}
