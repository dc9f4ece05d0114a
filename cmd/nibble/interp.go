package main

import (
	"fmt"

	"github.com/nibble-lang/nibble/pkg/env"
	"github.com/nibble-lang/nibble/pkg/hir"
)

// interp is a small, REPL-only expression evaluator over this module's
// HIR. It is not part of the module's specified surface — spec.md §1
// explicitly places the value evaluator out of scope, as an external
// collaborator depending only on pkg/env and pkg/hir's shapes. This is
// just enough of one to make the CLI demonstrable end-to-end; a real
// evaluator would live in its own package.
type interp struct {
	env *env.Env
}

func newInterp() *interp {
	return &interp{env: env.New()}
}

// run executes every statement in order, returning the last statement's
// value (Unit if there were none, or if the last one was a definition or
// an assignment).
func (in *interp) run(arena *hir.Arena, stmts []hir.Stmt) (env.Value, error) {
	var last env.Value = env.Unit{}

	for _, s := range stmts {
		v, err := in.runStmt(arena, in.env, s)
		if err != nil {
			return nil, err
		}
		last = v
	}

	return last, nil
}

func (in *interp) runStmt(arena *hir.Arena, scope *env.Env, s hir.Stmt) (env.Value, error) {
	switch v := s.(type) {
	case hir.VariableDef:
		val, err := in.evalExpr(arena, scope, v.Value)
		if err != nil {
			return nil, err
		}
		scope.Set(v.Name, val)

		return env.Unit{}, nil

	case hir.ExprStmt:
		return in.evalExpr(arena, scope, v.Value)

	case hir.Assign:
		target, ok := arena.Get(v.Target).(hir.VariableRef)
		if !ok {
			return nil, fmt.Errorf("assignment target is not a variable")
		}

		val, err := in.evalExpr(arena, scope, v.Value)
		if err != nil {
			return nil, err
		}
		scope.Set(target.Name, val)

		return env.Unit{}, nil

	case hir.Return:
		return in.evalExpr(arena, scope, v.Value)

	case hir.Block:
		inner := scope.Extend()

		var last env.Value = env.Unit{}
		for _, bs := range v.Stmts {
			val, err := in.runStmt(arena, inner, bs)
			if err != nil {
				return nil, err
			}
			last = val
		}

		return last, nil

	case hir.ProcDef:
		// Procedure values and calls are not modeled by this minimal
		// evaluator; defining one just binds the name to Unit. Later
		// code referencing the name gets Unit back, and using it as an
		// arithmetic operand fails with a not-a-number error.
		scope.Set(v.Name, env.Unit{})

		return env.Unit{}, nil

	default:
		return nil, fmt.Errorf("interp: unhandled statement %T", s)
	}
}

func (in *interp) evalExpr(arena *hir.Arena, scope *env.Env, idx hir.ExprIdx) (env.Value, error) {
	switch v := arena.Get(idx).(type) {
	case hir.Missing:
		return nil, fmt.Errorf("missing expression")

	case hir.Literal:
		if v.N == nil {
			return nil, fmt.Errorf("malformed numeric literal")
		}

		return env.Number(*v.N), nil

	case hir.VariableRef:
		return scope.MustGet(v.Name)

	case hir.Unary:
		operand, err := in.evalExpr(arena, scope, v.Operand)
		if err != nil {
			return nil, err
		}

		n, ok := operand.(env.Number)
		if !ok {
			return nil, fmt.Errorf("operand of unary - is not a number")
		}

		switch v.Op {
		case hir.Neg:
			return -n, nil
		default:
			return nil, fmt.Errorf("interp: unhandled unary op %v", v.Op)
		}

	case hir.Binary:
		lhs, err := in.evalExpr(arena, scope, v.Lhs)
		if err != nil {
			return nil, err
		}
		rhs, err := in.evalExpr(arena, scope, v.Rhs)
		if err != nil {
			return nil, err
		}

		l, lok := lhs.(env.Number)
		r, rok := rhs.(env.Number)
		if !lok || !rok {
			return nil, fmt.Errorf("operands of binary operator are not numbers")
		}

		switch v.Op {
		case hir.Add:
			return l + r, nil
		case hir.Sub:
			return l - r, nil
		case hir.Mul:
			return l * r, nil
		case hir.Div:
			if r == 0 {
				return nil, fmt.Errorf("division by zero")
			}

			return l / r, nil
		default:
			return nil, fmt.Errorf("interp: unhandled binary op %v", v.Op)
		}

	default:
		return nil, fmt.Errorf("interp: unhandled expression %T", v)
	}
}
