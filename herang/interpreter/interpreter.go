package interpreter

import (
	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

// Evaluate runs node against env and returns its value. The first error
// aborts evaluation; bindings made before it stay in env.
func Evaluate(node ast.Node, env *environment.Environment) (value.Value, *errors.Error) {
	switch node := node.(type) {
	case ast.Block:
		return block(node, env)
	case ast.LiteralNode:
		return node.Value, nil
	case ast.VarNode:
		return variable(node, env)
	case ast.IndexNode:
		return index(node, env)
	case ast.GroupedNode:
		return Evaluate(node.Inner, env)
	case ast.ConcatNode:
		return concat(node, env)
	case ast.ArithmeticNode:
		return arithmetic(node, env)
	case ast.ComparisonNode:
		return comparison(node, env)
	case ast.DeclNode:
		env.SetVarLast(node.Ident.Ident(), value.Empty())
		return value.Empty(), nil
	case ast.AssignNode:
		return assign(node, env)
	case ast.IndexAssignNode:
		return indexAssign(node, env)
	case ast.FuncDefNode:
		return functionDefinition(node, env)
	case ast.CallNode:
		return call(node, env)
	case ast.IfNode:
		return ifStatement(node, env)
	case ast.ForInNode:
		return forInStatement(node, env)
	default:
		panic("A new node kind was introduced without updating this code")
	}
}

func block(node ast.Block, env *environment.Environment) (value.Value, *errors.Error) {
	result := value.Empty()

	for _, stmt := range node.Statements {
		val, err := Evaluate(stmt, env)
		if err != nil {
			return value.Value{}, err
		}
		result = val
	}

	return result, nil
}
