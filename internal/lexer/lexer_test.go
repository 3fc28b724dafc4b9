package lexer_test

import (
	"bytes"
	"testing"

	"github.com/loxscript/lox/internal/errors"
	"github.com/loxscript/lox/internal/lexer"
	"github.com/loxscript/lox/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scan(t *testing.T, source string) ([]token.Token, *errors.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := errors.New(&buf)
	tokens := lexer.New(source, reporter).ScanTokens()
	return tokens, reporter
}

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	tokens, reporter := scan(t, "(){},.-+;*!!====<=>=<>/")
	require.False(t, reporter.HadError)
	assert.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG, token.BANG_EQUAL, token.EQUAL_EQUAL, token.EQUAL, token.LESS_EQUAL,
		token.GREATER_EQUAL, token.LESS, token.GREATER, token.SLASH, token.EOF,
	}, kinds(tokens))
}

func TestScanCommentIsIgnored(t *testing.T) {
	tokens, reporter := scan(t, "var a = 1; // trailing comment\nvar b = 2;")
	require.False(t, reporter.HadError)
	assert.NotContains(t, kinds(tokens), token.SLASH)
}

func TestScanString(t *testing.T) {
	tokens, reporter := scan(t, `"hello world"`)
	require.False(t, reporter.HadError)
	require.Len(t, tokens, 2)
	assert.Equal(t, token.STRING, tokens[0].Kind)
	assert.Equal(t, "hello world", tokens[0].Literal)
}

func TestScanMultilineString(t *testing.T) {
	tokens, reporter := scan(t, "\"line one\nline two\"\nprint 1;")
	require.False(t, reporter.HadError)
	// the `print` keyword starts on line 3.
	var printLine int
	for _, tok := range tokens {
		if tok.Kind == token.PRINT {
			printLine = tok.Line
		}
	}
	assert.Equal(t, 3, printLine)
}

func TestScanUnterminatedStringReportsAtOpeningLine(t *testing.T) {
	var buf bytes.Buffer
	reporter := errors.New(&buf)
	lexer.New("var a = \"never\nclosed", reporter).ScanTokens()
	assert.True(t, reporter.HadError)
	assert.Contains(t, buf.String(), "[line 1] Error: Unterminated string.")
}

func TestScanNumber(t *testing.T) {
	tokens, reporter := scan(t, "123 1.5 0.0")
	require.False(t, reporter.HadError)
	require.Len(t, tokens, 4)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 1.5, tokens[1].Literal)
	assert.Equal(t, 0.0, tokens[2].Literal)
}

func TestScanTrailingDotIsNotConsumedWithoutFractionalDigits(t *testing.T) {
	tokens, reporter := scan(t, "1.")
	require.False(t, reporter.HadError)
	assert.Equal(t, []token.Kind{token.NUMBER, token.DOT, token.EOF}, kinds(tokens))
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	tokens, reporter := scan(t, "orchid or_else classical class")
	require.False(t, reporter.HadError)
	assert.Equal(t, []token.Kind{
		token.IDENTIFIER, token.IDENTIFIER, token.IDENTIFIER, token.CLASS, token.EOF,
	}, kinds(tokens))
}

func TestScanUnknownCharacterContinues(t *testing.T) {
	tokens, reporter := scan(t, "@ print 1;")
	assert.True(t, reporter.HadError)
	assert.Equal(t, token.PRINT, tokens[0].Kind)
}

func TestScanEOFLineReflectsFinalLine(t *testing.T) {
	tokens, _ := scan(t, "var a = 1;\nvar b = 2;\n")
	assert.Equal(t, 3, tokens[len(tokens)-1].Line)
}
