/*
File    : lox/internal/interp/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/lox/internal/ast"
	"github.com/akashmaji946/lox/internal/function"
	"github.com/akashmaji946/lox/internal/loxenv"
	"github.com/akashmaji946/lox/internal/value"
)

func (it *Interp) VisitExprStmt(s *ast.ExprStmt) error {
	_, err := it.eval(s.Expression)
	return err
}

func (it *Interp) VisitPrintStmt(s *ast.PrintStmt) error {
	v, err := it.eval(s.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.Writer, v.String())
	return nil
}

func (it *Interp) VisitVarStmt(s *ast.VarStmt) error {
	v := value.NilValue
	if s.Initializer != nil {
		var err error
		v, err = it.eval(s.Initializer)
		if err != nil {
			return err
		}
	}
	it.env.Define(s.Name.Lexeme, v)
	return nil
}

func (it *Interp) VisitBlockStmt(s *ast.BlockStmt) error {
	return it.runBlock(s.Statements, loxenv.New(it.env))
}

func (it *Interp) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := it.eval(s.Condition)
	if err != nil {
		return err
	}
	if value.IsTruthy(cond) {
		return it.Execute(s.Then)
	}
	if s.Else != nil {
		return it.Execute(s.Else)
	}
	return nil
}

func (it *Interp) VisitWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := it.eval(s.Condition)
		if err != nil {
			return err
		}
		if !value.IsTruthy(cond) {
			return nil
		}
		if err := it.Execute(s.Body); err != nil {
			return err
		}
	}
}

func (it *Interp) VisitFunctionStmt(s *ast.FunctionStmt) error {
	it.env.Define(s.Decl.Name.Lexeme, function.New(s.Decl, it.env))
	return nil
}

func (it *Interp) VisitReturnStmt(s *ast.ReturnStmt) error {
	v := value.NilValue
	if s.Value != nil {
		var err error
		v, err = it.eval(s.Value)
		if err != nil {
			return err
		}
	}
	return &ControlSignal{Value: v}
}
