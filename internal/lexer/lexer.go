/*
File    : lox/internal/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer performs lexical analysis of Lox source code. It scans
// the source byte-by-byte, producing a token sequence terminated by EOF,
// or a batch of lex errors if any character or string could not be
// scanned.
package lexer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/lox/internal/token"
)

// Lexer holds the scanning state for one source string. Current is the
// byte under the cursor, Position its index, and Line the 1-based line
// counter used for diagnostics.
type Lexer struct {
	Src       string
	Current   byte
	Position  int
	SrcLength int
	Line      int
}

// New creates a Lexer positioned at the start of src.
func New(src string) *Lexer {
	lex := &Lexer{
		Src:       src,
		SrcLength: len(src),
		Line:      1,
	}
	if lex.SrcLength > 0 {
		lex.Current = src[0]
	}
	return lex
}

// Error records a single lex failure at a source line.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Scan tokenizes the entire source. On success it returns a token slice
// ending in EOF and a nil error slice. On failure (any unterminated string
// or unexpected character) it returns a nil token slice and the full list
// of errors encountered, callers should report all of them together.
func (lex *Lexer) Scan() ([]token.Token, []*Error) {
	var tokens []token.Token
	var errs []*Error

	for {
		tok, err := lex.nextToken()
		if err != nil {
			errs = append(errs, err)
			if tok.Kind == token.EOF {
				break
			}
			continue
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}

// Advance moves the cursor forward one byte, updating Current and Position.
func (lex *Lexer) Advance() {
	lex.Position++
	if lex.Position >= lex.SrcLength {
		lex.Current = 0
		lex.Position = lex.SrcLength
	} else {
		lex.Current = lex.Src[lex.Position]
	}
}

// Peek returns the byte after Current without consuming it, or 0 at EOF.
func (lex *Lexer) Peek() byte {
	if lex.Position+1 >= lex.SrcLength {
		return 0
	}
	return lex.Src[lex.Position+1]
}

func (lex *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lex.Current == ' ' || lex.Current == '\t' || lex.Current == '\r':
			lex.Advance()
		case lex.Current == '\n':
			lex.Line++
			lex.Advance()
		case lex.Current == '/' && lex.Peek() == '/':
			for lex.Current != '\n' && lex.Current != 0 {
				lex.Advance()
			}
		default:
			return
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

// nextToken scans and returns the next token, or a lex error if the
// current character could not be classified.
func (lex *Lexer) nextToken() (token.Token, *Error) {
	lex.skipWhitespaceAndComments()

	line := lex.Line
	c := lex.Current

	if c == 0 {
		return token.New(token.EOF, "", line), nil
	}

	switch c {
	case '(':
		lex.Advance()
		return token.New(token.LeftParen, "(", line), nil
	case ')':
		lex.Advance()
		return token.New(token.RightParen, ")", line), nil
	case '{':
		lex.Advance()
		return token.New(token.LeftBrace, "{", line), nil
	case '}':
		lex.Advance()
		return token.New(token.RightBrace, "}", line), nil
	case ',':
		lex.Advance()
		return token.New(token.Comma, ",", line), nil
	case '.':
		lex.Advance()
		return token.New(token.Dot, ".", line), nil
	case '-':
		lex.Advance()
		return token.New(token.Minus, "-", line), nil
	case '+':
		lex.Advance()
		return token.New(token.Plus, "+", line), nil
	case ';':
		lex.Advance()
		return token.New(token.Semicolon, ";", line), nil
	case '*':
		lex.Advance()
		return token.New(token.Star, "*", line), nil
	case '/':
		lex.Advance()
		return token.New(token.Slash, "/", line), nil
	case '!':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.BangEqual, "!=", line), nil
		}
		lex.Advance()
		return token.New(token.Bang, "!", line), nil
	case '=':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.EqualEqual, "==", line), nil
		}
		lex.Advance()
		return token.New(token.Equal, "=", line), nil
	case '<':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.LessEqual, "<=", line), nil
		}
		lex.Advance()
		return token.New(token.Less, "<", line), nil
	case '>':
		if lex.Peek() == '=' {
			lex.Advance()
			lex.Advance()
			return token.New(token.GreaterEqual, ">=", line), nil
		}
		lex.Advance()
		return token.New(token.Greater, ">", line), nil
	case '"':
		return lex.readString()
	}

	if isDigit(c) {
		return lex.readNumber(), nil
	}
	if isAlpha(c) {
		return lex.readIdentifier(), nil
	}

	lex.Advance()
	return token.Token{}, &Error{Line: line, Message: fmt.Sprintf("unexpected character: %c", c)}
}

func (lex *Lexer) readString() (token.Token, *Error) {
	startLine := lex.Line
	lex.Advance() // consume opening quote
	start := lex.Position
	for lex.Current != '"' && lex.Current != 0 {
		if lex.Current == '\n' {
			lex.Line++
		}
		lex.Advance()
	}
	if lex.Current == 0 {
		return token.Token{}, &Error{Line: startLine, Message: "unterminated string"}
	}
	contents := lex.Src[start:lex.Position]
	lex.Advance() // consume closing quote
	return token.NewLiteral(token.String, `"`+contents+`"`, contents, startLine), nil
}

func (lex *Lexer) readNumber() token.Token {
	line := lex.Line
	start := lex.Position
	for isDigit(lex.Current) {
		lex.Advance()
	}
	if lex.Current == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.Current) {
			lex.Advance()
		}
	}
	lexeme := lex.Src[start:lex.Position]
	value, _ := strconv.ParseFloat(lexeme, 64)
	return token.NewLiteral(token.Number, lexeme, value, line)
}

func (lex *Lexer) readIdentifier() token.Token {
	line := lex.Line
	start := lex.Position
	for isAlphaNumeric(lex.Current) {
		lex.Advance()
	}
	lexeme := lex.Src[start:lex.Position]
	if kind, ok := token.Keywords[lexeme]; ok {
		return token.New(kind, lexeme, line)
	}
	return token.NewLiteral(token.Identifier, lexeme, lexeme, line)
}
