package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(123), attrValue(t, term(intLit("1", "2", "3"))))
}

func TestNegativeIntegerLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(-42), attrValue(t, term(intLit("-", "4", "2"))))
}

func TestFloatLiteral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.5, attrValue(t, term(floatLit("1", ".", "5"))))
}

func TestFloatLiteralExponent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1000.0, attrValue(t, term(floatLit("1e3"))))
}

func TestMalformedIntegerIsFatal(t *testing.T) {
	t.Parallel()

	doc, diags := New().Transform(startNode(bodyNode(
		attrNode("x", term(intLit("not-a-number"))),
	)))

	require.True(t, diags.HasErrors())
	assert.Nil(t, doc, "fatal transforms must not leave a partial document")
	assert.Contains(t, diags.Error(), "Malformed integer literal")
}

func TestMalformedFloatIsFatal(t *testing.T) {
	t.Parallel()

	doc, diags := New().Transform(startNode(bodyNode(
		attrNode("x", term(floatLit("1..2"))),
	)))

	require.True(t, diags.HasErrors())
	assert.Nil(t, doc)
	assert.Contains(t, diags.Error(), "Malformed float literal")
}

func TestIntegerOverflowIsFatal(t *testing.T) {
	t.Parallel()

	doc, diags := New().Transform(startNode(bodyNode(
		attrNode("x", term(intLit("9223372036854775808"))),
	)))

	require.True(t, diags.HasErrors())
	assert.Nil(t, doc)
}

func TestKeywordLiterals(t *testing.T) {
	t.Parallel()

	assert.Equal(t, true, attrValue(t, term(tok("true"))))
	assert.Equal(t, false, attrValue(t, term(tok("false"))))
	assert.Nil(t, attrValue(t, term(tok("null"))))
}

func TestQuotedStringLosesQuotes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", attrValue(t, term(tok(`"abc"`))))
}

func TestBareIdentifierBecomesInterpolation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "${foo}", attrValue(t, term(ident("foo"))))
}

func TestEmptyQuotedString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", attrValue(t, term(tok(`""`))))
}

func TestTokenText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "abc", tokenText("abc"))
	assert.Equal(t, "true", tokenText(true))
	assert.Equal(t, "false", tokenText(false))
	assert.Equal(t, "-7", tokenText(int64(-7)))
	assert.Equal(t, "1.5", tokenText(1.5))
	assert.Equal(t, "null", tokenText(nil))
	assert.Equal(t, "[1, [2]]", tokenText([]any{int64(1), []any{int64(2)}}))
	assert.Equal(t, "{a = 1, b = true}", tokenText(map[string]any{"b": true, "a": int64(1)}))
}
