/*
File    : lox/internal/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the two recursive sum types the parser produces and
// the evaluator walks: Expr (value-producing) and Stmt (effect-producing).
// Both follow go-mix's visitor-pattern node design (parser/node.go),
// narrowed to Lox's closed grammar: no structs, arrays, maps, or enums.
package ast

import "github.com/akashmaji946/lox/internal/token"

// ExprVisitor dispatches over every expression node kind. Each Visit
// method returns the produced value, or an error if evaluation failed
// (a type mismatch, an undefined variable, a bad call). There is no
// separate "did this fail" channel the way StmtVisitor needs one for
// return signals, since an expression has nothing analogous to unwind.
type ExprVisitor interface {
	VisitNumberExpr(e *NumberExpr) (interface{}, error)
	VisitStringExpr(e *StringExpr) (interface{}, error)
	VisitBoolExpr(e *BoolExpr) (interface{}, error)
	VisitNilExpr(e *NilExpr) (interface{}, error)
	VisitGroupingExpr(e *GroupingExpr) (interface{}, error)
	VisitUnaryExpr(e *UnaryExpr) (interface{}, error)
	VisitBinaryExpr(e *BinaryExpr) (interface{}, error)
	VisitLogicalExpr(e *LogicalExpr) (interface{}, error)
	VisitVariableExpr(e *VariableExpr) (interface{}, error)
	VisitAssignExpr(e *AssignExpr) (interface{}, error)
	VisitCallExpr(e *CallExpr) (interface{}, error)
}

// Expr is any value-producing AST node.
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// NumberExpr is a numeric literal.
type NumberExpr struct{ Value float64 }

// StringExpr is a string literal's decoded contents (no surrounding quotes).
type StringExpr struct{ Value string }

// BoolExpr is a `true` or `false` literal.
type BoolExpr struct{ Value bool }

// NilExpr is the `nil` literal.
type NilExpr struct{}

// GroupingExpr is a parenthesized subexpression: `( expr )`.
type GroupingExpr struct{ Expression Expr }

// UnaryExpr is a prefix `!` or `-` applied to an operand.
type UnaryExpr struct {
	Operator token.Token
	Right    Expr
}

// BinaryExpr is an arithmetic, comparison, or equality operation.
type BinaryExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// LogicalExpr is `and`/`or`, evaluated with short-circuiting.
type LogicalExpr struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// VariableExpr reads a named binding. Name is always an Identifier token.
type VariableExpr struct{ Name token.Token }

// AssignExpr writes a value to an existing binding. Name is always an
// Identifier token.
type AssignExpr struct {
	Name  token.Token
	Value Expr
}

// CallExpr invokes Callee with Arguments. Paren carries the line of the
// closing `)` for error reporting on arity mismatches.
type CallExpr struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func (e *NumberExpr) Accept(v ExprVisitor) (interface{}, error)   { return v.VisitNumberExpr(e) }
func (e *StringExpr) Accept(v ExprVisitor) (interface{}, error)   { return v.VisitStringExpr(e) }
func (e *BoolExpr) Accept(v ExprVisitor) (interface{}, error)     { return v.VisitBoolExpr(e) }
func (e *NilExpr) Accept(v ExprVisitor) (interface{}, error)      { return v.VisitNilExpr(e) }
func (e *GroupingExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }
func (e *UnaryExpr) Accept(v ExprVisitor) (interface{}, error)    { return v.VisitUnaryExpr(e) }
func (e *BinaryExpr) Accept(v ExprVisitor) (interface{}, error)   { return v.VisitBinaryExpr(e) }
func (e *LogicalExpr) Accept(v ExprVisitor) (interface{}, error)  { return v.VisitLogicalExpr(e) }
func (e *VariableExpr) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }
func (e *AssignExpr) Accept(v ExprVisitor) (interface{}, error)   { return v.VisitAssignExpr(e) }
func (e *CallExpr) Accept(v ExprVisitor) (interface{}, error)     { return v.VisitCallExpr(e) }

// StmtVisitor dispatches over every statement node kind. Visit methods
// return an error so the evaluator can propagate runtime failures (and,
// via *ControlSignal in package interp, return signals) through arbitrary
// statement nesting without treating them as Go panics.
type StmtVisitor interface {
	VisitExprStmt(s *ExprStmt) error
	VisitPrintStmt(s *PrintStmt) error
	VisitVarStmt(s *VarStmt) error
	VisitBlockStmt(s *BlockStmt) error
	VisitIfStmt(s *IfStmt) error
	VisitWhileStmt(s *WhileStmt) error
	VisitFunctionStmt(s *FunctionStmt) error
	VisitReturnStmt(s *ReturnStmt) error
}

// Stmt is any effect-producing AST node.
type Stmt interface {
	Accept(v StmtVisitor) error
}

// ExprStmt evaluates an expression and discards its value.
type ExprStmt struct{ Expression Expr }

// PrintStmt evaluates an expression and writes its display form.
type PrintStmt struct{ Expression Expr }

// VarStmt introduces a binding in the current scope. Initializer is nil
// when the declaration has no `= expr` part, in which case the binding
// defaults to nil.
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

// BlockStmt is a lexical scope boundary around a statement list.
type BlockStmt struct{ Statements []Stmt }

// IfStmt is a conditional. Else is nil when there is no `else` clause.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

// WhileStmt is a condition/body loop. `for` desugars to this at parse time.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

// FunctionDecl is the shared shape of a function's name, parameters, and
// body, used both by function declaration statements and by the Callable
// produced when one is evaluated.
type FunctionDecl struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

// FunctionStmt declares a named function in the current scope.
type FunctionStmt struct{ Decl *FunctionDecl }

// ReturnStmt evaluates an optional expression and signals a return.
// Value is nil when `return;` has no expression, in which case the
// returned value defaults to nil.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ExprStmt) Accept(v StmtVisitor) error     { return v.VisitExprStmt(s) }
func (s *PrintStmt) Accept(v StmtVisitor) error    { return v.VisitPrintStmt(s) }
func (s *VarStmt) Accept(v StmtVisitor) error      { return v.VisitVarStmt(s) }
func (s *BlockStmt) Accept(v StmtVisitor) error    { return v.VisitBlockStmt(s) }
func (s *IfStmt) Accept(v StmtVisitor) error       { return v.VisitIfStmt(s) }
func (s *WhileStmt) Accept(v StmtVisitor) error    { return v.VisitWhileStmt(s) }
func (s *FunctionStmt) Accept(v StmtVisitor) error { return v.VisitFunctionStmt(s) }
func (s *ReturnStmt) Accept(v StmtVisitor) error   { return v.VisitReturnStmt(s) }
