package codegen

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

// Emit generates C++ statements equivalent to root. The result is the body of
// a function returning the value of the last statement; Standalone wraps it
// into a complete translation unit.
//
// env is used for name resolution only. Undefined variables and functions as
// well as duplicate function definitions are reported like during evaluation.
func Emit(root ast.Block, env *environment.Environment) (string, *errors.Error) {
	emitter := NewEmitter(env)
	if err := emitter.fragment(root); err != nil {
		return "", err
	}
	return emitter.buf.String(), nil
}

type Emitter struct {
	buf    *Buffer
	env    *environment.Environment
	scopes []*scope
	temps  uint
}

// scope mirrors a C++ block in which declarations have been written.
type scope struct {
	vars       map[string]struct{}
	funcs      map[string]int
	isFunction bool
}

func newScope(isFunction bool) *scope {
	return &scope{
		vars:       make(map[string]struct{}),
		funcs:      make(map[string]int),
		isFunction: isFunction,
	}
}

func NewEmitter(env *environment.Environment) *Emitter {
	return &Emitter{
		buf:    NewBuffer(),
		env:    env,
		scopes: make([]*scope, 0),
		temps:  0,
	}
}

func (self *Emitter) pushScope(isFunction bool) {
	self.scopes = append(self.scopes, newScope(isFunction))
}

func (self *Emitter) popScope() {
	self.scopes = self.scopes[:len(self.scopes)-1]
}

func (self *Emitter) currentScope() *scope {
	return self.scopes[len(self.scopes)-1]
}

func (self *Emitter) inFunction() bool {
	for _, s := range self.scopes {
		if s.isFunction {
			return true
		}
	}
	return false
}

func (self *Emitter) declaredVar(name string) bool {
	for _, s := range self.scopes {
		if _, found := s.vars[name]; found {
			return true
		}
	}
	return false
}

func (self *Emitter) declaredFunc(name string) (int, bool) {
	for i := len(self.scopes) - 1; i >= 0; i-- {
		if arity, found := self.scopes[i].funcs[name]; found {
			return arity, true
		}
	}
	return 0, false
}

func (self *Emitter) visibleFunc(name string) bool {
	if _, found := self.env.GetFunc(name); found {
		return true
	}
	_, found := self.declaredFunc(name)
	return found
}

func (self *Emitter) declareVar(name string) {
	self.currentScope().vars[name] = struct{}{}
	self.buf.VarDef(varName(name))
}

func (self *Emitter) declareFunc(name string, arity int) {
	self.currentScope().funcs[name] = arity
	self.buf.Line(fmt.Sprintf("%s %s;", funcType(arity), funcName(name)))
}

func (self *Emitter) temp() string {
	self.temps++
	return fmt.Sprintf("tmp_%d", self.temps)
}

// closure runs body against a fresh buffer and returns the result wrapped
// into an immediately invoked lambda.
func (self *Emitter) closure(body func() *errors.Error) (string, *errors.Error) {
	outer := self.buf
	self.buf = &Buffer{depth: outer.depth + 1}
	err := body()
	inner := self.buf
	self.buf = outer

	if err != nil {
		return "", err
	}

	return fmt.Sprintf("[&]() {\n%s%s}()", inner.String(), outer.indentation()), nil
}

func varName(name string) string  { return "v_" + name }
func funcName(name string) string { return "f_" + name }

func funcType(arity int) string {
	params := make([]string, arity)
	for idx := range params {
		params[idx] = "u8"
	}
	return fmt.Sprintf("std::function<u8(%s)>", strings.Join(params, ", "))
}

func literal(val value.Value) string {
	if val.IsEmpty() {
		return "u8()"
	}

	elems := val.Elements()
	parts := make([]string, len(elems))
	for idx, elem := range elems {
		parts[idx] = fmt.Sprint(elem)
	}
	return fmt.Sprintf("u8({%s})", strings.Join(parts, ", "))
}

// declaredFunction stands in for user functions while their definitions are
// being emitted, so that calls can be resolved and checked for arity.
type declaredFunction struct {
	name  string
	arity int
}

func (self declaredFunction) Invoke(span errors.Span, _ []value.Value, _ *environment.Environment) (value.Value, *errors.Error) {
	return value.Value{}, errors.NewError(
		span,
		fmt.Sprintf("Function '%s' only exists in generated code and cannot be invoked", self.name),
		errors.HostError,
	)
}
