/*
File    : lox/internal/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/lox/internal/token"
)

// kinds extracts the token kinds from a scan result for comparison,
// dropping the trailing EOF for readability.
func kinds(t *testing.T, src string) []token.Type {
	t.Helper()
	toks, errs := New(src).Scan()
	assert.Empty(t, errs)
	out := make([]token.Type, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		out = append(out, tok.Kind)
	}
	return out
}

func TestScan_Punctuation(t *testing.T) {
	got := kinds(t, `(){},.-+;*/`)
	want := []token.Type{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Slash,
	}
	assert.Equal(t, want, got)
}

func TestScan_TwoCharOperators(t *testing.T) {
	got := kinds(t, `! != = == < <= > >=`)
	want := []token.Type{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
	}
	assert.Equal(t, want, got)
}

func TestScan_KeywordsAndIdentifiers(t *testing.T) {
	got := kinds(t, `and or fun if else nilVar`)
	want := []token.Type{
		token.And, token.Or, token.Fun, token.If, token.Else, token.Identifier,
	}
	assert.Equal(t, want, got)
}

func TestScan_NumberLiteral(t *testing.T) {
	toks, errs := New(`123 3.14 4.`).Scan()
	assert.Empty(t, errs)
	assert.Equal(t, 123.0, toks[0].Literal)
	assert.Equal(t, 3.14, toks[1].Literal)
	// trailing '.' without digits is not consumed as part of the number
	assert.Equal(t, 4.0, toks[2].Literal)
	assert.Equal(t, token.Dot, toks[3].Kind)
}

func TestScan_StringLiteral(t *testing.T) {
	toks, errs := New(`"abc"`).Scan()
	assert.Empty(t, errs)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "abc", toks[0].Literal)
}

func TestScan_StringSpansNewlines(t *testing.T) {
	toks, errs := New("\"line one\nline two\" x").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, "line one\nline two", toks[0].Literal)
	// the identifier after the string is reported on the second line
	assert.Equal(t, 2, toks[1].Line)
}

func TestScan_UnterminatedString(t *testing.T) {
	_, errs := New(`"never closed`).Scan()
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Error(), "unterminated string")
	}
}

func TestScan_UnexpectedCharacterContinuesScanning(t *testing.T) {
	_, errs := New("var x = @ 1;").Scan()
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Error(), "unexpected character")
	}
}

func TestScan_CommentsAndWhitespaceIgnored(t *testing.T) {
	got := kinds(t, "// a comment\n  1 + 2 // trailing\n")
	want := []token.Type{token.Number, token.Plus, token.Number}
	assert.Equal(t, want, got)
}

func TestScan_LineTracking(t *testing.T) {
	toks, errs := New("1\n2\n3").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, 1, toks[0].Line)
	assert.Equal(t, 2, toks[1].Line)
	assert.Equal(t, 3, toks[2].Line)
}

func TestScan_EndsWithEOF(t *testing.T) {
	toks, errs := New("1").Scan()
	assert.Empty(t, errs)
	assert.Equal(t, token.EOF, toks[len(toks)-1].Kind)
}
