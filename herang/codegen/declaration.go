package codegen

import (
	"github.com/herang-lang/herang/herang/parser/ast"
)

type introductionKind uint8

const (
	assignIntroduction introductionKind = iota
	declIntroduction
	funcIntroduction
)

// introduction is a place where a statement may bind a new name in the
// current scope layer.
type introduction struct {
	name  string
	kind  introductionKind
	arity int
	// index of the top-level statement which contains the introduction
	stmt int
	// whether the introduction sits inside a conditional body
	nested bool
}

// collectIntroductions finds all introductions of one scope layer. Function
// and loop bodies open their own layer and are not entered; conditional bodies
// share the layer of their surroundings.
func collectIntroductions(statements []ast.Node) []introduction {
	out := make([]introduction, 0)
	for idx, stmt := range statements {
		collect(stmt, idx, false, &out)
	}
	return out
}

func collect(node ast.Node, stmt int, nested bool, out *[]introduction) {
	switch node := node.(type) {
	case ast.AssignNode:
		collect(node.Rhs, stmt, nested, out)
		*out = append(*out, introduction{name: node.Ident.Ident(), kind: assignIntroduction, stmt: stmt, nested: nested})
	case ast.IndexAssignNode:
		collect(node.Index, stmt, nested, out)
		collect(node.Rhs, stmt, nested, out)
	case ast.DeclNode:
		*out = append(*out, introduction{name: node.Ident.Ident(), kind: declIntroduction, stmt: stmt, nested: nested})
	case ast.FuncDefNode:
		*out = append(*out, introduction{name: node.Ident.Ident(), kind: funcIntroduction, arity: len(node.Params), stmt: stmt, nested: nested})
	case ast.IfNode:
		collect(node.Condition, stmt, nested, out)
		for _, inner := range node.Body.Statements {
			collect(inner, stmt, true, out)
		}
	case ast.ForInNode:
		collect(node.Iterable, stmt, nested, out)
	case ast.CallNode:
		for _, arg := range node.Args {
			collect(arg, stmt, nested, out)
		}
	case ast.IndexNode:
		collect(node.Index, stmt, nested, out)
	case ast.GroupedNode:
		collect(node.Inner, stmt, nested, out)
	case ast.ConcatNode:
		collect(node.Lhs, stmt, nested, out)
		collect(node.Rhs, stmt, nested, out)
	case ast.ArithmeticNode:
		collect(node.Lhs, stmt, nested, out)
		collect(node.Rhs, stmt, nested, out)
	case ast.ComparisonNode:
		collect(node.Lhs, stmt, nested, out)
		collect(node.Rhs, stmt, nested, out)
	case ast.LiteralNode, ast.VarNode, ast.Block:
	default:
		panic("A new node kind was introduced without updating this code")
	}
}

// pendingDeclarations are declarations which must be written directly
// before the top-level statement with the given index.
type pendingDeclarations map[int][]introduction

// prologue declares the names a scope layer introduces.
//
// Names which are not visible yet are declared at the start of the layer, so
// that conditional bodies and closures can bind them. A `def` or function
// definition which shadows a visible name is declared where it happens,
// or before its statement when it sits inside a conditional body. In loop
// layers every declaration precedes the loop so that bindings survive
// from one iteration to the next.
func (self *Emitter) prologue(statements []ast.Node, isLoop bool) pendingDeclarations {
	pending := make(pendingDeclarations)
	current := self.currentScope()

	for _, intro := range collectIntroductions(statements) {
		switch intro.kind {
		case assignIntroduction:
			if !self.declaredVar(intro.name) {
				self.declareVar(intro.name)
			}
		case declIntroduction:
			if _, found := current.vars[intro.name]; found {
				continue
			}
			if !self.declaredVar(intro.name) || isLoop {
				self.declareVar(intro.name)
			} else if intro.nested {
				pending[intro.stmt] = append(pending[intro.stmt], intro)
			}
		case funcIntroduction:
			if _, found := current.funcs[intro.name]; found {
				continue
			}
			if !self.visibleFunc(intro.name) || isLoop {
				self.declareFunc(intro.name, intro.arity)
			} else if intro.nested {
				pending[intro.stmt] = append(pending[intro.stmt], intro)
			}
		}
	}

	return pending
}

func (self *Emitter) writePending(intros []introduction) {
	current := self.currentScope()

	for _, intro := range intros {
		switch intro.kind {
		case declIntroduction:
			if _, found := current.vars[intro.name]; !found {
				self.declareVar(intro.name)
			}
		case funcIntroduction:
			if _, found := current.funcs[intro.name]; !found {
				self.declareFunc(intro.name, intro.arity)
			}
		}
	}
}
