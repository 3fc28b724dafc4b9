package token_test

import (
	"testing"

	"github.com/loxscript/lox/pkg/token"
	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "LEFT_PAREN", token.LEFT_PAREN.String())
	assert.Equal(t, "EOF", token.EOF.String())
	assert.Contains(t, token.Kind(127).String(), "Kind(")
}

func TestKeywordsTable(t *testing.T) {
	for word, want := range token.Keywords {
		tok := token.New(want, word, nil, 1)
		assert.Equal(t, want, tok.Kind)
	}
	assert.Len(t, token.Keywords, 16)
}

func TestTokenString(t *testing.T) {
	tok := token.New(token.NUMBER, "1.5", 1.5, 3)
	assert.Contains(t, tok.String(), "1.5")

	bare := token.New(token.PLUS, "+", nil, 3)
	assert.Equal(t, `PLUS "+"`, bare.String())
}
