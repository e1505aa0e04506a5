package interpreter

import (
	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

func functionDefinition(node ast.FuncDefNode, env *environment.Environment) (value.Value, *errors.Error) {
	fn := NewUserFunction(node.Ident.Ident(), node.ParamNames(), node.Body)
	if err := env.SetFunc(node.Ident.Ident(), fn, node.Ident.Span()); err != nil {
		return value.Value{}, err
	}
	return value.Empty(), nil
}

// call resolves the callee before any argument is evaluated.
func call(node ast.CallNode, env *environment.Environment) (value.Value, *errors.Error) {
	fn, found := env.GetFunc(node.Ident.Ident())
	if !found {
		return value.Value{}, env.UndefinedFuncError(node.Ident.Ident(), node.Ident.Span())
	}

	args := make([]value.Value, len(node.Args))
	for idx, arg := range node.Args {
		val, err := Evaluate(arg, env)
		if err != nil {
			return value.Value{}, err
		}
		args[idx] = val
	}

	return fn.Invoke(node.Range, args, env)
}

// ifStatement does not introduce a scope: bindings made in the body remain
// visible afterwards.
func ifStatement(node ast.IfNode, env *environment.Environment) (value.Value, *errors.Error) {
	condition, err := Evaluate(node.Condition, env)
	if err != nil {
		return value.Value{}, err
	}

	if !condition.Truthy() {
		return value.Empty(), nil
	}

	return block(node.Body, env)
}

// forInStatement binds every element of the iterable in turn, as a value of
// length one. The whole loop shares a single scope layer, so bindings made by
// one iteration are visible to the next.
func forInStatement(node ast.ForInNode, env *environment.Environment) (value.Value, *errors.Error) {
	iterable, err := Evaluate(node.Iterable, env)
	if err != nil {
		return value.Value{}, err
	}

	return env.Scoped(func() (value.Value, *errors.Error) {
		for idx, elem := range iterable.Elements() {
			if idx == 0 {
				env.SetVarLast(node.Ident.Ident(), value.New(elem))
			} else {
				env.SetVar(node.Ident.Ident(), value.New(elem))
			}

			if _, err := block(node.Body, env); err != nil {
				return value.Value{}, err
			}
		}

		return value.Empty(), nil
	})
}
