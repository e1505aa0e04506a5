package codegen

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

func (self *Emitter) fragment(root ast.Block) *errors.Error {
	self.pushScope(false)
	defer self.popScope()

	pending := self.prologue(root.Statements, false)
	return self.statements(root.Statements, pending, true)
}

// statements writes one line (or construct) per statement. When returnLast is
// set, the value of the last statement is returned from the enclosing lambda.
func (self *Emitter) statements(statements []ast.Node, pending pendingDeclarations, returnLast bool) *errors.Error {
	if len(statements) == 0 && returnLast {
		self.buf.Line("return u8();")
		return nil
	}

	for idx, stmt := range statements {
		if intros, found := pending[idx]; found {
			self.writePending(intros)
		}

		isLast := idx == len(statements)-1 && returnLast

		switch node := stmt.(type) {
		case ast.FuncDefNode:
			if err := self.functionDefinition(node); err != nil {
				return err
			}
			if isLast {
				self.buf.Line("return u8();")
			}
		case ast.DeclNode:
			self.declaration(node)
			if isLast {
				self.buf.Line("return u8();")
			}
		default:
			code, err := self.expression(stmt)
			if err != nil {
				return err
			}
			if isLast {
				self.buf.Line(fmt.Sprintf("return %s;", code))
			} else {
				self.buf.Line(code + ";")
			}
		}
	}

	return nil
}

func (self *Emitter) declaration(node ast.DeclNode) {
	name := node.Ident.Ident()
	self.env.SetVarLast(name, value.Empty())

	if _, found := self.currentScope().vars[name]; found {
		self.buf.Line(fmt.Sprintf("%s = u8();", varName(name)))
		return
	}
	self.declareVar(name)
}

func (self *Emitter) functionDefinition(node ast.FuncDefNode) *errors.Error {
	name := node.Ident.Ident()
	params := node.ParamNames()

	stub := declaredFunction{name: name, arity: len(params)}
	if err := self.env.SetFunc(name, stub, node.Ident.Span()); err != nil {
		return err
	}

	paramList := make([]string, len(params))
	for idx, param := range params {
		paramList[idx] = "u8 " + varName(param)
	}
	lambda := fmt.Sprintf("[&](%s) -> u8 {", strings.Join(paramList, ", "))

	current := self.currentScope()
	if _, found := current.funcs[name]; found {
		self.buf.Line(fmt.Sprintf("%s = %s", funcName(name), lambda))
	} else {
		current.funcs[name] = len(params)
		self.buf.Line(fmt.Sprintf("%s %s = %s", funcType(len(params)), funcName(name), lambda))
	}

	self.buf.Enter()
	err := self.functionBody(params, node.Body)
	self.buf.Leave()
	if err != nil {
		return err
	}

	self.buf.Line("};")
	return nil
}

func (self *Emitter) functionBody(params []string, body ast.Block) *errors.Error {
	self.env.Enter()
	defer self.env.Leave()

	self.pushScope(true)
	defer self.popScope()

	for _, param := range params {
		self.env.SetVarLast(param, value.Empty())
		self.currentScope().vars[param] = struct{}{}
	}

	pending := self.prologue(body.Statements, false)
	return self.statements(body.Statements, pending, true)
}

func (self *Emitter) ifStatement(node ast.IfNode) (string, *errors.Error) {
	return self.closure(func() *errors.Error {
		condition, err := self.expression(node.Condition)
		if err != nil {
			return err
		}

		self.buf.Line(fmt.Sprintf("if (bool(%s)) {", condition))
		self.buf.Enter()
		if err := self.statements(node.Body.Statements, nil, true); err != nil {
			return err
		}
		self.buf.Leave()
		self.buf.Line("}")
		self.buf.Line("return u8();")
		return nil
	})
}

func (self *Emitter) forInStatement(node ast.ForInNode) (string, *errors.Error) {
	return self.closure(func() *errors.Error {
		iterable, err := self.expression(node.Iterable)
		if err != nil {
			return err
		}
		source := self.temp()
		self.buf.Line(fmt.Sprintf("u8 %s = %s;", source, iterable))

		self.env.Enter()
		defer self.env.Leave()

		self.pushScope(false)
		defer self.popScope()

		ident := node.Ident.Ident()
		self.env.SetVarLast(ident, value.Empty())
		self.declareVar(ident)
		self.prologue(node.Body.Statements, true)

		elem := self.temp()
		self.buf.Line(fmt.Sprintf("for (Int %s : %s) {", elem, source))
		self.buf.Enter()
		self.buf.Line(fmt.Sprintf("%s = u8({%s});", varName(ident), elem))
		if err := self.statements(node.Body.Statements, nil, false); err != nil {
			return err
		}
		self.buf.Leave()
		self.buf.Line("}")
		self.buf.Line("return u8();")
		return nil
	})
}
