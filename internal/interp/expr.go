/*
File    : lox/internal/interp/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/lox/internal/ast"
	"github.com/akashmaji946/lox/internal/function"
	"github.com/akashmaji946/lox/internal/value"
)

// eval walks e and type-asserts the visitor's result back to a
// value.Value, saving every call site from repeating the assertion.
func (it *Interp) eval(e ast.Expr) (value.Value, error) {
	v, err := e.Accept(it)
	if err != nil {
		return nil, err
	}
	return v.(value.Value), nil
}

func (it *Interp) VisitNumberExpr(e *ast.NumberExpr) (interface{}, error) {
	return value.Number{Value: e.Value}, nil
}

func (it *Interp) VisitStringExpr(e *ast.StringExpr) (interface{}, error) {
	return value.String_{Value: e.Value}, nil
}

func (it *Interp) VisitBoolExpr(e *ast.BoolExpr) (interface{}, error) {
	return value.Bool{Value: e.Value}, nil
}

func (it *Interp) VisitNilExpr(e *ast.NilExpr) (interface{}, error) {
	return value.NilValue, nil
}

func (it *Interp) VisitGroupingExpr(e *ast.GroupingExpr) (interface{}, error) {
	return it.eval(e.Expression)
}

func (it *Interp) VisitUnaryExpr(e *ast.UnaryExpr) (interface{}, error) {
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case "!":
		return value.Bool{Value: !value.IsTruthy(right)}, nil
	case "-":
		n, ok := right.(value.Number)
		if !ok {
			return nil, runtimeErr(e.Operator.Line, "Operand must be a number.")
		}
		return value.Number{Value: -n.Value}, nil
	default:
		return nil, runtimeErr(e.Operator.Line, "Unknown unary operator %q.", e.Operator.Kind)
	}
}

func (it *Interp) VisitBinaryExpr(e *ast.BinaryExpr) (interface{}, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case "==":
		return value.Bool{Value: value.Equal(left, right)}, nil
	case "!=":
		return value.Bool{Value: !value.Equal(left, right)}, nil
	case "+":
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return value.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, ok := left.(value.String_); ok {
			if rs, ok := right.(value.String_); ok {
				return value.String_{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, runtimeErr(e.Operator.Line, "Operands must be two numbers or two strings.")
	case "-", "*", "/", "<", "<=", ">", ">=":
		ln, lok := left.(value.Number)
		rn, rok := right.(value.Number)
		if !lok || !rok {
			return nil, runtimeErr(e.Operator.Line, "Operands must be numbers.")
		}
		switch e.Operator.Kind {
		case "-":
			return value.Number{Value: ln.Value - rn.Value}, nil
		case "*":
			return value.Number{Value: ln.Value * rn.Value}, nil
		case "/":
			return value.Number{Value: ln.Value / rn.Value}, nil
		case "<":
			return value.Bool{Value: ln.Value < rn.Value}, nil
		case "<=":
			return value.Bool{Value: ln.Value <= rn.Value}, nil
		case ">":
			return value.Bool{Value: ln.Value > rn.Value}, nil
		default: // ">="
			return value.Bool{Value: ln.Value >= rn.Value}, nil
		}
	default:
		return nil, runtimeErr(e.Operator.Line, "Unknown binary operator %q.", e.Operator.Kind)
	}
}

// VisitLogicalExpr implements short-circuiting: the right operand is
// never evaluated when the left operand already determines the result.
func (it *Interp) VisitLogicalExpr(e *ast.LogicalExpr) (interface{}, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == "or" {
		if value.IsTruthy(left) {
			return left, nil
		}
	} else { // "and"
		if !value.IsTruthy(left) {
			return left, nil
		}
	}
	return it.eval(e.Right)
}

func (it *Interp) VisitVariableExpr(e *ast.VariableExpr) (interface{}, error) {
	v, err := it.env.Get(e.Name.Lexeme)
	if err != nil {
		return nil, runtimeErr(e.Name.Line, "Undefined variable: %s.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interp) VisitAssignExpr(e *ast.AssignExpr) (interface{}, error) {
	v, err := it.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if err := it.env.Assign(e.Name.Lexeme, v); err != nil {
		return nil, runtimeErr(e.Name.Line, "Undefined variable '%s'.", e.Name.Lexeme)
	}
	return v, nil
}

func (it *Interp) VisitCallExpr(e *ast.CallExpr) (interface{}, error) {
	callee, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		args[i], err = it.eval(a)
		if err != nil {
			return nil, err
		}
	}

	switch fn := callee.(type) {
	case *value.Native:
		if fn.Arity() != len(args) {
			return nil, runtimeErr(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		result, err := fn.Call(args)
		if err != nil {
			return nil, runtimeErr(e.Paren.Line, "%s", err.Error())
		}
		return result, nil
	case *function.UserFunction:
		if fn.Arity() != len(args) {
			return nil, runtimeErr(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return fn.Call(it, args)
	default:
		return nil, runtimeErr(e.Paren.Line, "Can only call functions and classes.")
	}
}
