package environment

import (
	goErrors "errors"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
)

type BuiltinCallback func(args []value.Value, env *Environment) (value.Value, error)

// Builtin adapts a host callback to the Function interface.
type Builtin struct {
	Name     string
	Callback BuiltinCallback
}

func NewBuiltin(name string, callback BuiltinCallback) Builtin {
	return Builtin{Name: name, Callback: callback}
}

func (self Builtin) Invoke(span errors.Span, args []value.Value, env *Environment) (value.Value, *errors.Error) {
	res, err := self.Callback(args, env)
	if err == nil {
		return res, nil
	}

	var herangErr *errors.Error
	if goErrors.As(err, &herangErr) {
		if herangErr.Span == (errors.Span{}) {
			herangErr.Span = span
		}
		return value.Value{}, herangErr
	}

	return value.Value{}, errors.NewError(span, err.Error(), errors.HostError)
}
