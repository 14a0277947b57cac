package lexer_test

import (
	"testing"

	"github.com/hootlang/hoot/lang/lexer"
	"github.com/hootlang/hoot/lang/token"
	"github.com/stretchr/testify/require"
)

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestScanTokensPunctuation(t *testing.T) {
	var errs []string
	l := lexer.New(`(){};,+-*!===<=>=!=<>/`, func(line int, msg string) {
		errs = append(errs, msg)
	})
	toks := l.ScanTokens()
	require.Empty(t, errs)
	require.Equal(t, []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.SEMICOLON, token.COMMA, token.PLUS, token.MINUS, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.BANG_EQUAL, token.LESS, token.GREATER, token.SLASH, token.EOF,
	}, kinds(toks))
}

func TestScanTokensComment(t *testing.T) {
	l := lexer.New("let x = 1; // trailing comment\nprint x;", nil)
	toks := l.ScanTokens()
	require.Equal(t, []token.Kind{
		token.LET, token.IDENTIFIER, token.EQUAL, token.NUMBER, token.SEMICOLON,
		token.PRINT, token.IDENTIFIER, token.SEMICOLON, token.EOF,
	}, kinds(toks))
	require.Equal(t, 2, toks[len(toks)-1].Line)
}

func TestScanTokensString(t *testing.T) {
	l := lexer.New(`"hello world"`, nil)
	toks := l.ScanTokens()
	require.Equal(t, token.STRING, toks[0].Kind)
	require.Equal(t, "hello world", toks[0].Literal)
}

func TestScanTokensUnterminatedString(t *testing.T) {
	var errs []string
	l := lexer.New(`"unterminated`, func(line int, msg string) {
		errs = append(errs, msg)
	})
	toks := l.ScanTokens()
	require.NotEmpty(t, errs)
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}

func TestScanTokensNumber(t *testing.T) {
	l := lexer.New(`123 45.67`, nil)
	toks := l.ScanTokens()
	require.Equal(t, 123.0, toks[0].Literal)
	require.Equal(t, 45.67, toks[1].Literal)
}

func TestScanTokensKeywordsAndIdentifiers(t *testing.T) {
	l := lexer.New(`let break fun class this super counter1`, nil)
	toks := l.ScanTokens()
	require.Equal(t, []token.Kind{
		token.LET, token.BREAK, token.FUN, token.CLASS, token.THIS, token.SUPER,
		token.IDENTIFIER, token.EOF,
	}, kinds(toks))
}

func TestScanTokensUnexpectedCharacter(t *testing.T) {
	var errs []string
	l := lexer.New("let x = 1 @ 2;", func(line int, msg string) {
		errs = append(errs, msg)
	})
	toks := l.ScanTokens()
	require.Len(t, errs, 1)
	// scanning continues past the bad character
	require.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}
