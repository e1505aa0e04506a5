package interpreter

import (
	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

func variable(node ast.VarNode, env *environment.Environment) (value.Value, *errors.Error) {
	val, found := env.GetVar(node.Ident.Ident())
	if !found {
		return value.Value{}, env.UndefinedVarError(node.Ident.Ident(), node.Ident.Span())
	}
	return val, nil
}

func index(node ast.IndexNode, env *environment.Environment) (value.Value, *errors.Error) {
	indices, err := Evaluate(node.Index, env)
	if err != nil {
		return value.Value{}, err
	}

	base, found := env.GetVar(node.Ident.Ident())
	if !found {
		return value.Value{}, env.UndefinedVarError(node.Ident.Ident(), node.Ident.Span())
	}

	return base.Gather(indices, node.Range)
}

// operands evaluates lhs and then rhs.
func operands(lhs ast.Node, rhs ast.Node, env *environment.Environment) (value.Value, value.Value, *errors.Error) {
	left, err := Evaluate(lhs, env)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}

	right, err := Evaluate(rhs, env)
	if err != nil {
		return value.Value{}, value.Value{}, err
	}

	return left, right, nil
}

func concat(node ast.ConcatNode, env *environment.Environment) (value.Value, *errors.Error) {
	left, right, err := operands(node.Lhs, node.Rhs, env)
	if err != nil {
		return value.Value{}, err
	}
	return left.Concat(right), nil
}

func arithmetic(node ast.ArithmeticNode, env *environment.Environment) (value.Value, *errors.Error) {
	left, right, err := operands(node.Lhs, node.Rhs, env)
	if err != nil {
		return value.Value{}, err
	}
	return left.Arithmetic(right, node.Operator, node.Range)
}

func comparison(node ast.ComparisonNode, env *environment.Environment) (value.Value, *errors.Error) {
	left, right, err := operands(node.Lhs, node.Rhs, env)
	if err != nil {
		return value.Value{}, err
	}
	return left.CompareWith(right, node.Operator), nil
}

func assign(node ast.AssignNode, env *environment.Environment) (value.Value, *errors.Error) {
	val, err := Evaluate(node.Rhs, env)
	if err != nil {
		return value.Value{}, err
	}

	env.SetVar(node.Ident.Ident(), val)
	return val, nil
}

// indexAssign reads the current value first, then the indices, then the new
// elements. The target is only rebound when the write succeeds.
func indexAssign(node ast.IndexAssignNode, env *environment.Environment) (value.Value, *errors.Error) {
	base, found := env.GetVar(node.Ident.Ident())
	if !found {
		return value.Value{}, env.UndefinedVarError(node.Ident.Ident(), node.Ident.Span())
	}

	indices, src, err := operands(node.Index, node.Rhs, env)
	if err != nil {
		return value.Value{}, err
	}

	updated, err := base.Scatter(indices, src, node.Range)
	if err != nil {
		return value.Value{}, err
	}

	env.SetVar(node.Ident.Ident(), updated)
	return updated, nil
}
