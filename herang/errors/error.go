package errors

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All ranges inclusive
type Span struct {
	Start    Location
	End      Location
	Filename string
}

type Location struct {
	Line   uint
	Column uint
	Index  uint
}

func (self *Location) Advance(newline bool) {
	self.Index += 1
	if newline {
		self.Column = 1
		self.Line += 1
	} else {
		self.Column += 1
	}
}

func NewLocation() Location {
	return Location{
		Line:   1,
		Column: 1,
		Index:  0,
	}
}

func (self Location) Until(end Location, filename string) Span {
	return Span{
		Start:    self,
		End:      end,
		Filename: filename,
	}
}

type ErrorKind uint8

const (
	SyntaxError ErrorKind = iota
	UndefinedVariable
	UndefinedFunction
	ArityMismatch
	IndexOutOfRange
	EmptyAssignmentValue
	BroadcastLengthMismatch
	DuplicateFunctionDefinition
	TypeConversionFailure
	DomainError
	HostError
)

func (self ErrorKind) String() string {
	switch self {
	case SyntaxError:
		return "syntax error"
	case UndefinedVariable:
		return "undefined variable"
	case UndefinedFunction:
		return "undefined function"
	case ArityMismatch:
		return "arity mismatch"
	case IndexOutOfRange:
		return "index out of range"
	case EmptyAssignmentValue:
		return "empty assignment value"
	case BroadcastLengthMismatch:
		return "broadcast length mismatch"
	case DuplicateFunctionDefinition:
		return "duplicate function definition"
	case TypeConversionFailure:
		return "type conversion failure"
	case DomainError:
		return "domain error"
	case HostError:
		return "host error"
	default:
		panic("A new ErrorKind was added without updating this code")
	}
}

type Error struct {
	Kind    ErrorKind
	Message string
	Span    Span
	Notes   []string
}

func (self *Error) Error() string {
	caser := cases.Title(language.AmericanEnglish)
	return fmt.Sprintf("%s: %s", caser.String(self.Kind.String()), self.Message)
}

// WithNote attaches an additional hint which is shown alongside the message.
func (self *Error) WithNote(note string) *Error {
	self.Notes = append(self.Notes, note)
	return self
}

func NewError(span Span, message string, kind ErrorKind) *Error {
	return &Error{
		Span:    span,
		Message: message,
		Kind:    kind,
		Notes:   make([]string, 0),
	}
}

func NewSyntaxError(span Span, message string) *Error {
	return NewError(span, message, SyntaxError)
}

func NewArityError(span Span, function string, expected int, got int) *Error {
	return NewError(
		span,
		fmt.Sprintf("Function '%s' expects %d argument(s), got %d", function, expected, got),
		ArityMismatch,
	)
}
