package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	for k := Kind(0); k < maxKind; k++ {
		require.NotEmpty(t, k.String(), "kind %d missing a String representation", int(k))
	}
}

func TestKindStringUnknown(t *testing.T) {
	require.Contains(t, maxKind.String(), "Kind(")
}

func TestKeywords(t *testing.T) {
	cases := []struct {
		text string
		kind Kind
	}{
		{"let", LET},
		{"break", BREAK},
		{"class", CLASS},
		{"fun", FUN},
		{"this", THIS},
		{"super", SUPER},
	}
	for _, c := range cases {
		t.Run(c.text, func(t *testing.T) {
			got, ok := Keywords[c.text]
			require.True(t, ok)
			require.Equal(t, c.kind, got)
		})
	}
}

func TestKeywordsExcludesVar(t *testing.T) {
	// Hoot renames Lox's "var" keyword to "let"; "var" must not resolve.
	_, ok := Keywords["var"]
	require.False(t, ok)
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: STRING, Lexeme: `"hi"`, Literal: "hi", Line: 3}
	require.Contains(t, tok.String(), "hi")

	tok = Token{Kind: SEMICOLON, Lexeme: ";", Line: 1}
	require.Equal(t, `; ";"`, tok.String())
}
