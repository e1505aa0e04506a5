package builtin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
)

// MaxAllocation bounds the length of values created by builtins such as cyber.
const MaxAllocation = 1 << 24

// Register installs every builtin into the root layer of env.
func Register(env *environment.Environment, host Host) *errors.Error {
	for _, fn := range Builtins(host) {
		if err := env.SetFunc(fn.Name, fn, errors.Span{}); err != nil {
			return err
		}
	}
	return nil
}

// Builtins returns the builtin library bound to host.
func Builtins(host Host) []environment.Builtin {
	return []environment.Builtin{
		environment.NewBuiltin("readline", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return ReadLine(host, args)
		}),
		environment.NewBuiltin("print", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Print(host, args)
		}),
		environment.NewBuiltin("sprint", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return SPrint(host, args)
		}),
		environment.NewBuiltin("cyber", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Cyber(args)
		}),
		environment.NewBuiltin("trim", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Trim(args)
		}),
		environment.NewBuiltin("len", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Len(args)
		}),
		environment.NewBuiltin("slice", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Slice(args)
		}),
		environment.NewBuiltin("time", func(args []value.Value, _ *environment.Environment) (value.Value, error) {
			return Time(host, args)
		}),
	}
}

// Helper function which checks the number of args provided to a builtin function
func checkArgs(name string, args []value.Value, expected int) *errors.Error {
	if len(args) != expected {
		return errors.NewArityError(errors.Span{}, name, expected, len(args))
	}
	return nil
}

func checkAtLeastOne(name string, args []value.Value) *errors.Error {
	if len(args) == 0 {
		return errors.NewError(
			errors.Span{},
			fmt.Sprintf("Function '%s' requires at least one argument", name),
			errors.ArityMismatch,
		)
	}
	return nil
}

// Print writes all arguments separated by spaces and returns the last one.
func Print(host Host, args []value.Value) (value.Value, error) {
	if err := checkAtLeastOne("print", args); err != nil {
		return value.Value{}, err
	}

	output := make([]string, len(args))
	for idx, arg := range args {
		output[idx] = arg.String()
	}

	if err := host.WriteString(strings.Join(output, " ") + "\n"); err != nil {
		return value.Value{}, err
	}

	return args[len(args)-1], nil
}

// SPrint interprets every argument as UTF-8 encoded text, writes it and
// returns the last argument.
func SPrint(host Host, args []value.Value) (value.Value, error) {
	if err := checkAtLeastOne("sprint", args); err != nil {
		return value.Value{}, err
	}

	output := make([]string, len(args))
	for idx, arg := range args {
		text, err := ToText(arg)
		if err != nil {
			return value.Value{}, err
		}
		output[idx] = text
	}

	if err := host.WriteString(strings.Join(output, " ") + "\n"); err != nil {
		return value.Value{}, err
	}

	return args[len(args)-1], nil
}

// ToText converts a value whose elements are bytes of valid UTF-8 into a string.
func ToText(val value.Value) (string, *errors.Error) {
	elems := val.Elements()
	raw := make([]byte, len(elems))

	for idx, elem := range elems {
		if elem > 0xFF {
			return "", errors.NewError(
				errors.Span{},
				fmt.Sprintf("Element %d at position %d is not a byte", elem, idx),
				errors.TypeConversionFailure,
			)
		}
		raw[idx] = byte(elem)
	}

	if !utf8.Valid(raw) {
		return "", errors.NewError(
			errors.Span{},
			fmt.Sprintf("Value %s is not valid UTF-8", val),
			errors.TypeConversionFailure,
		)
	}

	return string(raw), nil
}

// FromText converts a string into a value holding its UTF-8 bytes.
func FromText(text string) value.Value {
	elems := make([]uint32, len(text))
	for idx := 0; idx < len(text); idx++ {
		elems[idx] = uint32(text[idx])
	}
	return value.New(elems...)
}

// Cyber allocates a zeroed value whose length is the sum of the argument.
func Cyber(args []value.Value) (value.Value, error) {
	if err := checkArgs("cyber", args, 1); err != nil {
		return value.Value{}, err
	}

	length := args[0].Sum()
	if length > MaxAllocation {
		return value.Value{}, errors.NewError(
			errors.Span{},
			fmt.Sprintf("Cannot allocate %d elements, the limit is %d", length, MaxAllocation),
			errors.HostError,
		)
	}

	return value.Zeroed(int(length)), nil
}

func ReadLine(host Host, args []value.Value) (value.Value, error) {
	if err := checkArgs("readline", args, 0); err != nil {
		return value.Value{}, err
	}

	line, ok, err := host.ReadLine()
	if err != nil {
		return value.Value{}, err
	}
	if !ok {
		return value.Empty(), nil
	}

	return FromText(line), nil
}

func isSpace(elem uint32) bool {
	switch elem {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// Trim removes leading and trailing ASCII whitespace elements.
func Trim(args []value.Value) (value.Value, error) {
	if err := checkArgs("trim", args, 1); err != nil {
		return value.Value{}, err
	}

	elems := args[0].Elements()
	start, end := 0, len(elems)
	for start < end && isSpace(elems[start]) {
		start++
	}
	for end > start && isSpace(elems[end-1]) {
		end--
	}

	return value.New(elems[start:end]...), nil
}

func Len(args []value.Value) (value.Value, error) {
	if err := checkArgs("len", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.New(uint32(args[0].Len())), nil
}

// Slice returns the elements of its first argument in the half-open range
// [sum(start), sum(end)).
func Slice(args []value.Value) (value.Value, error) {
	if err := checkArgs("slice", args, 3); err != nil {
		return value.Value{}, err
	}

	elems := args[0].Elements()
	start, end := args[1].Sum(), args[2].Sum()

	if start > end || int64(end) > int64(len(elems)) {
		return value.Value{}, errors.NewError(
			errors.Span{},
			fmt.Sprintf("Range %d..%d is out of range for a value of length %d", start, end, len(elems)),
			errors.IndexOutOfRange,
		)
	}

	return value.New(elems[start:end]...), nil
}

// Time returns the current Unix time in seconds.
func Time(host Host, args []value.Value) (value.Value, error) {
	if err := checkArgs("time", args, 0); err != nil {
		return value.Value{}, err
	}
	return value.New(uint32(host.Now().Unix())), nil
}
