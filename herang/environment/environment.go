package environment

import (
	"fmt"
	"slices"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
)

// Function is anything which can be invoked by a call expression.
type Function interface {
	Invoke(span errors.Span, args []value.Value, env *Environment) (value.Value, *errors.Error)
}

type layer struct {
	vars  map[string]value.Value
	funcs map[string]Function
}

func newLayer() layer {
	return layer{
		vars:  make(map[string]value.Value),
		funcs: make(map[string]Function),
	}
}

// Environment is a stack of scope layers. The root layer is created by New and
// can never be left.
type Environment struct {
	layers []layer
}

func New() *Environment {
	return &Environment{
		layers: []layer{newLayer()},
	}
}

func (self *Environment) Enter() {
	self.layers = append(self.layers, newLayer())
}

func (self *Environment) Leave() {
	if len(self.layers) == 1 {
		panic("Cannot leave the root scope of an environment")
	}
	self.layers = self.layers[:len(self.layers)-1]
}

// Scoped runs fn inside a fresh layer which is released on every exit path.
func (self *Environment) Scoped(fn func() (value.Value, *errors.Error)) (value.Value, *errors.Error) {
	self.Enter()
	defer self.Leave()
	return fn()
}

func (self *Environment) Depth() int { return len(self.layers) }

func (self *Environment) innermost() *layer {
	return &self.layers[len(self.layers)-1]
}

func (self *Environment) GetVar(name string) (value.Value, bool) {
	for i := len(self.layers) - 1; i >= 0; i-- {
		if val, found := self.layers[i].vars[name]; found {
			return val, true
		}
	}
	return value.Value{}, false
}

// SetVar rebinds name in the innermost layer which already contains it. When
// no layer does, the binding is created in the innermost layer.
func (self *Environment) SetVar(name string, val value.Value) {
	for i := len(self.layers) - 1; i >= 0; i-- {
		if _, found := self.layers[i].vars[name]; found {
			self.layers[i].vars[name] = val
			return
		}
	}
	self.innermost().vars[name] = val
}

// SetVarLast always binds into the innermost layer, shadowing outer bindings.
func (self *Environment) SetVarLast(name string, val value.Value) {
	self.innermost().vars[name] = val
}

func (self *Environment) HasLocalVar(name string) bool {
	_, found := self.innermost().vars[name]
	return found
}

func (self *Environment) GetFunc(name string) (Function, bool) {
	for i := len(self.layers) - 1; i >= 0; i-- {
		if fn, found := self.layers[i].funcs[name]; found {
			return fn, true
		}
	}
	return nil, false
}

func (self *Environment) SetFunc(name string, fn Function, span errors.Span) *errors.Error {
	if _, found := self.innermost().funcs[name]; found {
		return errors.NewError(
			span,
			fmt.Sprintf("Function '%s' is already defined in this scope", name),
			errors.DuplicateFunctionDefinition,
		)
	}
	self.innermost().funcs[name] = fn
	return nil
}

// VarNames lists every visible variable name, sorted and without duplicates.
func (self *Environment) VarNames() []string {
	names := make([]string, 0)
	for _, l := range self.layers {
		for name := range l.vars {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}

func (self *Environment) FuncNames() []string {
	names := make([]string, 0)
	for _, l := range self.layers {
		for name := range l.funcs {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
