/*
File    : lox/internal/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent, single-lookahead parser
// over the tokens produced by package lexer. It keeps go-mix's parser
// idiom, a small struct carrying parser state, an addError/expect-style
// helper shape, a constructor over the token slice, but replaces go-mix's Pratt
// precedence-climbing engine with an explicit grammar of one function per
// precedence level, and replaces go-mix's collect-every-error policy with
// abort-on-first-error: Parse returns as soon as one diagnostic exists.
package parser

import (
	"fmt"

	"github.com/akashmaji946/lox/internal/ast"
	"github.com/akashmaji946/lox/internal/token"
)

// maxArgs bounds both call argument lists and function parameter lists.
const maxArgs = 255

// Error is a single parse diagnostic, tied to the source line of the
// token that triggered it.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// Parser walks a flat token slice (already terminated by token.EOF) with
// one token of lookahead.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New builds a Parser over tokens, which must end in a token.EOF token
// (as package lexer's Scan always produces).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse consumes the whole token stream and returns the resulting
// statement list, or the first parse error encountered. There is no
// panic-mode recovery: one bad declaration stops the whole parse.
func (p *Parser) Parse() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// --- token stream primitives ---

func (p *Parser) peek() token.Token { return p.tokens[p.pos] }

func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }

func (p *Parser) isAtEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) check(kind token.Type) bool {
	if p.isAtEnd() {
		return kind == token.EOF
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

// match advances and returns true if the current token is one of kinds.
func (p *Parser) match(kinds ...token.Type) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past the current token if it is kind, otherwise
// produces a parse error carrying msg.
func (p *Parser) consume(kind token.Type, msg string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, &Error{Line: p.peek().Line, Message: msg}
}

// --- declarations ---

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.match(token.Fun) {
		return p.funDecl()
	}
	if p.match(token.Var) {
		return p.varDecl()
	}
	return p.statement()
}

func (p *Parser) funDecl() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect function name.")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "Expect '(' after function name."); err != nil {
		return nil, err
	}

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArgs {
				return nil, &Error{Line: p.peek().Line, Message: "Can't have more than 255 parameters."}
			}
			param, err := p.consume(token.Identifier, "Expect parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftBrace, "Expect '{' before function body."); err != nil {
		return nil, err
	}
	body, err := p.blockBody()
	if err != nil {
		return nil, err
	}
	return &ast.FunctionStmt{Decl: &ast.FunctionDecl{Name: name, Params: params, Body: body}}, nil
}

func (p *Parser) varDecl() (ast.Stmt, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init ast.Expr
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &ast.VarStmt{Name: name, Initializer: init}, nil
}

// --- statements ---

func (p *Parser) statement() (ast.Stmt, error) {
	switch {
	case p.match(token.Print):
		return p.printStmt()
	case p.match(token.If):
		return p.ifStmt()
	case p.match(token.While):
		return p.whileStmt()
	case p.match(token.For):
		return p.forStmt()
	case p.match(token.Return):
		return p.returnStmt()
	case p.match(token.LeftBrace):
		stmts, err := p.blockBody()
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Statements: stmts}, nil
	default:
		return p.exprStmt()
	}
}

// blockBody parses declaration* up to (and consuming) the closing brace;
// the caller has already consumed the opening brace.
func (p *Parser) blockBody() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.consume(token.RightBrace, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return stmts, nil
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after if condition."); err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return &ast.IfStmt{Condition: cond, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) whileStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'while'."); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after condition."); err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &ast.WhileStmt{Condition: cond, Body: body}, nil
}

// forStmt desugars `for (init; cond; incr) body` into a block holding
// init followed by a While whose body is { body; incr; }. No For node
// ever reaches the evaluator.
func (p *Parser) forStmt() (ast.Stmt, error) {
	if _, err := p.consume(token.LeftParen, "Expect '(' after 'for'."); err != nil {
		return nil, err
	}

	var init ast.Stmt
	var err error
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.check(token.Var):
		p.advance()
		init, err = p.varDecl()
	default:
		init, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expr
	if !p.check(token.Semicolon) {
		cond, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after loop condition."); err != nil {
		return nil, err
	}

	var incr ast.Expr
	if !p.check(token.RightParen) {
		incr, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "Expect ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExprStmt{Expression: incr}}}
	}
	if cond == nil {
		cond = &ast.BoolExpr{Value: true}
	}
	body = &ast.WhileStmt{Condition: cond, Body: body}

	if init != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{init, body}}
	}
	return body, nil
}

func (p *Parser) returnStmt() (ast.Stmt, error) {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		v, err := p.expression()
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after return value."); err != nil {
		return nil, err
	}
	return &ast.ReturnStmt{Keyword: keyword, Value: value}, nil
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &ast.PrintStmt{Expression: value}, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Expression: expr}, nil
}

// --- expressions, lowest to highest precedence ---

func (p *Parser) expression() (ast.Expr, error) { return p.assignment() }

// assignment parses a full logic_or first; if '=' follows, the parsed
// expression must have been a bare Variable, otherwise the '=' token
// marks an invalid assignment target. This single-lookahead trick avoids
// a dedicated l-value grammar.
func (p *Parser) assignment() (ast.Expr, error) {
	expr, err := p.or()
	if err != nil {
		return nil, err
	}

	if p.match(token.Equal) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*ast.VariableExpr); ok {
			return &ast.AssignExpr{Name: v.Name, Value: value}, nil
		}
		return nil, &Error{Line: equals.Line, Message: "Invalid assignment target."}
	}
	return expr, nil
}

func (p *Parser) or() (ast.Expr, error) {
	expr, err := p.and()
	if err != nil {
		return nil, err
	}
	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) and() (ast.Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &ast.LogicalExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.leftAssocBinary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.leftAssocBinary(p.addition, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser) addition() (ast.Expr, error) {
	return p.leftAssocBinary(p.multiplication, token.Minus, token.Plus)
}

func (p *Parser) multiplication() (ast.Expr, error) {
	return p.leftAssocBinary(p.unary, token.Slash, token.Star)
}

// leftAssocBinary flattens a run of same-precedence binary operators
// into a left-leaning tree: next() parses one operand at the next
// higher precedence level.
func (p *Parser) leftAssocBinary(next func() (ast.Expr, error), kinds ...token.Type) (ast.Expr, error) {
	expr, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return nil, err
		}
		expr = &ast.BinaryExpr{Left: expr, Operator: op, Right: right}
	}
	return expr, nil
}

func (p *Parser) unary() (ast.Expr, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Operator: op, Right: right}, nil
	}
	return p.call()
}

func (p *Parser) call() (ast.Expr, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.match(token.LeftParen) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}
	return expr, nil
}

func (p *Parser) finishCall(callee ast.Expr) (ast.Expr, error) {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArgs {
				return nil, &Error{Line: p.peek().Line, Message: "Can't have more than 255 arguments."}
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	paren, err := p.consume(token.RightParen, "Expect ')' after arguments.")
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{Callee: callee, Paren: paren, Arguments: args}, nil
}

func (p *Parser) primary() (ast.Expr, error) {
	switch {
	case p.match(token.False):
		return &ast.BoolExpr{Value: false}, nil
	case p.match(token.True):
		return &ast.BoolExpr{Value: true}, nil
	case p.match(token.Nil):
		return &ast.NilExpr{}, nil
	case p.match(token.Number):
		return &ast.NumberExpr{Value: p.previous().Literal.(float64)}, nil
	case p.match(token.String):
		return &ast.StringExpr{Value: p.previous().Literal.(string)}, nil
	case p.match(token.Identifier):
		return &ast.VariableExpr{Name: p.previous()}, nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &ast.GroupingExpr{Expression: expr}, nil
	default:
		return nil, &Error{Line: p.peek().Line, Message: "Expect expression."}
	}
}
