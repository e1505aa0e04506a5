package codegen

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

func (self *Emitter) expression(node ast.Node) (string, *errors.Error) {
	switch node := node.(type) {
	case ast.LiteralNode:
		return literal(node.Value), nil
	case ast.VarNode:
		if err := self.resolveVar(node.Ident); err != nil {
			return "", err
		}
		return varName(node.Ident.Ident()), nil
	case ast.IndexNode:
		return self.index(node)
	case ast.GroupedNode:
		return self.expression(node.Inner)
	case ast.ConcatNode:
		return self.binary(node.Lhs, node.Rhs, "|")
	case ast.ArithmeticNode:
		return self.binary(node.Lhs, node.Rhs, node.Operator.String())
	case ast.ComparisonNode:
		return self.binary(node.Lhs, node.Rhs, node.Operator.String())
	case ast.AssignNode:
		rhs, err := self.expression(node.Rhs)
		if err != nil {
			return "", err
		}
		self.env.SetVar(node.Ident.Ident(), value.Empty())
		return fmt.Sprintf("(%s = %s)", varName(node.Ident.Ident()), rhs), nil
	case ast.IndexAssignNode:
		return self.indexAssign(node)
	case ast.CallNode:
		return self.call(node)
	case ast.IfNode:
		return self.ifStatement(node)
	case ast.ForInNode:
		return self.forInStatement(node)
	default:
		panic(fmt.Sprintf("A %s node cannot be emitted as an expression", node.Kind()))
	}
}

// isPure reports whether evaluating node can neither bind names nor call
// functions, so that it may be freely reordered with its siblings.
func isPure(node ast.Node) bool {
	switch node := node.(type) {
	case ast.LiteralNode, ast.VarNode:
		return true
	case ast.IndexNode:
		return isPure(node.Index)
	case ast.GroupedNode:
		return isPure(node.Inner)
	case ast.ConcatNode:
		return isPure(node.Lhs) && isPure(node.Rhs)
	case ast.ArithmeticNode:
		return isPure(node.Lhs) && isPure(node.Rhs)
	case ast.ComparisonNode:
		return isPure(node.Lhs) && isPure(node.Rhs)
	default:
		return false
	}
}

// Name resolution follows evaluation. Inside function bodies, names which are
// declared in an enclosing C++ scope are accepted as well, since a function
// may run after they have been bound.
func (self *Emitter) resolveVar(ident ast.SpannedIdent) *errors.Error {
	if _, found := self.env.GetVar(ident.Ident()); found {
		return nil
	}
	if self.inFunction() && self.declaredVar(ident.Ident()) {
		return nil
	}
	return self.env.UndefinedVarError(ident.Ident(), ident.Span())
}

func (self *Emitter) resolveFunc(ident ast.SpannedIdent, args int, span errors.Span) *errors.Error {
	if fn, found := self.env.GetFunc(ident.Ident()); found {
		if stub, isStub := fn.(declaredFunction); isStub && stub.arity != args {
			return errors.NewArityError(span, ident.Ident(), stub.arity, args)
		}
		return nil
	}

	if self.inFunction() {
		if arity, found := self.declaredFunc(ident.Ident()); found {
			if arity != args {
				return errors.NewArityError(span, ident.Ident(), arity, args)
			}
			return nil
		}
	}

	return self.env.UndefinedFuncError(ident.Ident(), ident.Span())
}

// binary evaluates lhs before rhs. C++ leaves the operand order of overloaded
// operators unspecified, so impure operands are sequenced through temporaries.
func (self *Emitter) binary(lhs ast.Node, rhs ast.Node, operator string) (string, *errors.Error) {
	if isPure(lhs) && isPure(rhs) {
		left, err := self.expression(lhs)
		if err != nil {
			return "", err
		}
		right, err := self.expression(rhs)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("(%s %s %s)", left, operator, right), nil
	}

	return self.closure(func() *errors.Error {
		left, err := self.bindTemp(lhs)
		if err != nil {
			return err
		}
		right, err := self.bindTemp(rhs)
		if err != nil {
			return err
		}
		self.buf.Line(fmt.Sprintf("return (%s %s %s);", left, operator, right))
		return nil
	})
}

// bindTemp emits node into a fresh temporary and returns its name.
func (self *Emitter) bindTemp(node ast.Node) (string, *errors.Error) {
	code, err := self.expression(node)
	if err != nil {
		return "", err
	}
	tmp := self.temp()
	self.buf.Line(fmt.Sprintf("u8 %s = %s;", tmp, code))
	return tmp, nil
}

func (self *Emitter) index(node ast.IndexNode) (string, *errors.Error) {
	name := varName(node.Ident.Ident())

	if isPure(node.Index) {
		indices, err := self.expression(node.Index)
		if err != nil {
			return "", err
		}
		if err := self.resolveVar(node.Ident); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s[%s]", name, indices), nil
	}

	return self.closure(func() *errors.Error {
		indices, err := self.bindTemp(node.Index)
		if err != nil {
			return err
		}
		if err := self.resolveVar(node.Ident); err != nil {
			return err
		}
		self.buf.Line(fmt.Sprintf("return %s[%s];", name, indices))
		return nil
	})
}

// indexAssign reads the target, then the indices, then the new elements.
func (self *Emitter) indexAssign(node ast.IndexAssignNode) (string, *errors.Error) {
	name := varName(node.Ident.Ident())

	return self.closure(func() *errors.Error {
		if err := self.resolveVar(node.Ident); err != nil {
			return err
		}
		base := self.temp()
		self.buf.Line(fmt.Sprintf("u8 %s = %s;", base, name))

		indices, err := self.bindTemp(node.Index)
		if err != nil {
			return err
		}
		src, err := self.bindTemp(node.Rhs)
		if err != nil {
			return err
		}

		self.env.SetVar(node.Ident.Ident(), value.Empty())
		self.buf.Line(fmt.Sprintf("return %s = %s.set(%s, %s);", name, base, indices, src))
		return nil
	})
}

func (self *Emitter) call(node ast.CallNode) (string, *errors.Error) {
	if err := self.resolveFunc(node.Ident, len(node.Args), node.Range); err != nil {
		return "", err
	}

	name := funcName(node.Ident.Ident())

	sequenced := false
	if len(node.Args) > 1 {
		for _, arg := range node.Args {
			if !isPure(arg) {
				sequenced = true
				break
			}
		}
	}

	if !sequenced {
		args := make([]string, len(node.Args))
		for idx, arg := range node.Args {
			code, err := self.expression(arg)
			if err != nil {
				return "", err
			}
			args[idx] = code
		}
		return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", ")), nil
	}

	return self.closure(func() *errors.Error {
		args := make([]string, len(node.Args))
		for idx, arg := range node.Args {
			tmp, err := self.bindTemp(arg)
			if err != nil {
				return err
			}
			args[idx] = tmp
		}
		self.buf.Line(fmt.Sprintf("return %s(%s);", name, strings.Join(args, ", ")))
		return nil
	})
}
