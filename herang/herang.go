package herang

import (
	"github.com/herang-lang/herang/herang/builtin"
	"github.com/herang-lang/herang/herang/codegen"
	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/interpreter"
	"github.com/herang-lang/herang/herang/parser"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

const DefaultFilename = "main"

type Options struct {
	// Used in error spans
	Filename string
	// Receives the I/O of the builtin library, defaults to stdin / stdout
	Host builtin.Host
}

func (self Options) filename() string {
	if self.Filename == "" {
		return DefaultFilename
	}
	return self.Filename
}

func (self Options) host() builtin.Host {
	if self.Host == nil {
		return builtin.NewStdHost()
	}
	return self.Host
}

// NewEnvironment creates an environment whose root layer holds the builtin
// library bound to host.
func NewEnvironment(host builtin.Host) *environment.Environment {
	env := environment.New()
	if err := builtin.Register(env, host); err != nil {
		panic(err.Error())
	}
	return env
}

func Parse(program string, options Options) (ast.Block, *errors.Error) {
	return parser.Parse(program, options.filename())
}

// Eval parses and evaluates program in env and returns the value of its last
// statement. Bindings made by the program persist in env, which allows
// evaluating multiple fragments in succession.
func Eval(program string, env *environment.Environment, options Options) (value.Value, *errors.Error) {
	tree, err := Parse(program, options)
	if err != nil {
		return value.Value{}, err
	}
	return interpreter.Evaluate(tree, env)
}

// Run evaluates program in a fresh environment.
func Run(program string, options Options) (value.Value, *errors.Error) {
	return Eval(program, NewEnvironment(options.host()), options)
}

// GenCode translates program into the body of a C++ function. Names are
// resolved against a fresh environment holding only the builtins.
func GenCode(program string, options Options) (string, *errors.Error) {
	tree, err := Parse(program, options)
	if err != nil {
		return "", err
	}
	return codegen.Emit(tree, NewEnvironment(options.host()))
}

// Standalone translates program into a complete C++ translation unit.
func Standalone(program string, options Options) (string, *errors.Error) {
	fragment, err := GenCode(program, options)
	if err != nil {
		return "", err
	}
	return codegen.Standalone(fragment), nil
}
