package value

import (
	"fmt"

	"github.com/herang-lang/herang/herang/errors"
)

type ArithmeticOperator uint8

const (
	AddOperator ArithmeticOperator = iota
	SubOperator
	MulOperator
	DivOperator
)

func (self ArithmeticOperator) String() string {
	switch self {
	case AddOperator:
		return "+"
	case SubOperator:
		return "-"
	case MulOperator:
		return "*"
	case DivOperator:
		return "/"
	default:
		panic("A new arithmetic operator was added without updating this code")
	}
}

type ComparisonOperator uint8

const (
	EqualOperator ComparisonOperator = iota
	NotEqualOperator
	LessThanOperator
	GreaterThanOperator
	LessThanEqualOperator
	GreaterThanEqualOperator
)

func (self ComparisonOperator) String() string {
	switch self {
	case EqualOperator:
		return "=="
	case NotEqualOperator:
		return "!="
	case LessThanOperator:
		return "<"
	case GreaterThanOperator:
		return ">"
	case LessThanEqualOperator:
		return "<="
	case GreaterThanEqualOperator:
		return ">="
	default:
		panic("A new comparison operator was added without updating this code")
	}
}

func (self Value) Add(other Value, span errors.Span) (Value, *errors.Error) {
	return self.elementWise(other, AddOperator, span)
}

func (self Value) Sub(other Value, span errors.Span) (Value, *errors.Error) {
	return self.elementWise(other, SubOperator, span)
}

func (self Value) Mul(other Value, span errors.Span) (Value, *errors.Error) {
	return self.elementWise(other, MulOperator, span)
}

func (self Value) Div(other Value, span errors.Span) (Value, *errors.Error) {
	return self.elementWise(other, DivOperator, span)
}

// Arithmetic applies an element-wise operator. Operands must have equal length;
// results wrap around at 32 bits.
func (self Value) Arithmetic(other Value, operator ArithmeticOperator, span errors.Span) (Value, *errors.Error) {
	return self.elementWise(other, operator, span)
}

func (self Value) elementWise(other Value, operator ArithmeticOperator, span errors.Span) (Value, *errors.Error) {
	if len(self.elems) != len(other.elems) {
		return Value{}, errors.NewError(
			span,
			fmt.Sprintf("Operator '%s' requires operands of equal length, got %d and %d", operator, len(self.elems), len(other.elems)),
			errors.DomainError,
		)
	}

	out := make([]uint32, len(self.elems))
	for idx, lhs := range self.elems {
		rhs := other.elems[idx]
		switch operator {
		case AddOperator:
			out[idx] = lhs + rhs
		case SubOperator:
			out[idx] = lhs - rhs
		case MulOperator:
			out[idx] = lhs * rhs
		case DivOperator:
			if rhs == 0 {
				return Value{}, errors.NewError(
					span,
					fmt.Sprintf("Division by zero at position %d", idx),
					errors.DomainError,
				)
			}
			out[idx] = lhs / rhs
		default:
			panic("A new arithmetic operator was added without updating this code")
		}
	}

	return Value{elems: out}, nil
}

// CompareWith applies a comparison operator and converts the result into a
// boolean value.
func (self Value) CompareWith(other Value, operator ComparisonOperator) Value {
	cmp := self.Compare(other)

	switch operator {
	case EqualOperator:
		return FromBool(cmp == 0)
	case NotEqualOperator:
		return FromBool(cmp != 0)
	case LessThanOperator:
		return FromBool(cmp < 0)
	case GreaterThanOperator:
		return FromBool(cmp > 0)
	case LessThanEqualOperator:
		return FromBool(cmp <= 0)
	case GreaterThanEqualOperator:
		return FromBool(cmp >= 0)
	default:
		panic("A new comparison operator was added without updating this code")
	}
}
