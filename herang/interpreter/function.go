package interpreter

import (
	"fmt"

	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

// UserFunction is a function defined in source code. Its body is shared with
// the defining node and never modified, so a function may be invoked any
// number of times, including recursively.
type UserFunction struct {
	Name   string
	Params []string
	Body   ast.Block
}

func NewUserFunction(name string, params []string, body ast.Block) UserFunction {
	return UserFunction{
		Name:   name,
		Params: params,
		Body:   body,
	}
}

func (self UserFunction) Invoke(span errors.Span, args []value.Value, env *environment.Environment) (value.Value, *errors.Error) {
	if len(args) != len(self.Params) {
		return value.Value{}, errors.NewArityError(span, self.Name, len(self.Params), len(args))
	}

	return env.Scoped(func() (value.Value, *errors.Error) {
		for idx, param := range self.Params {
			env.SetVarLast(param, args[idx])
		}
		return block(self.Body, env)
	})
}

func (self UserFunction) String() string {
	return fmt.Sprintf("<function %s/%d>", self.Name, len(self.Params))
}
