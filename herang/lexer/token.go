package lexer

import (
	"github.com/herang-lang/herang/herang/errors"
)

type Token struct {
	Kind  TokenKind
	Value string
	Span  errors.Span
}

type TokenKind uint8

const (
	Unknown TokenKind = iota
	EOF

	QuestionMark // ?
	AtSymbol     // @
	DollarSymbol // $
	Semicolon    // ;
	Comma        // ,
	Colon        // :

	LParen   // (
	RParen   // )
	LCurly   // {
	RCurly   // }
	LBracket // [
	RBracket // ]

	Equal            // ==
	NotEqual         // !=
	LessThan         // <
	LessThanEqual    // <=
	GreaterThan      // >
	GreaterThanEqual // >=

	Plus     // +
	Minus    // -
	Multiply // *
	Divide   // /
	BitOr    // |

	Assign // =

	Def // def

	Int        // 42
	Identifier // foobar
)

func newToken(kind TokenKind, value string, span errors.Span) Token {
	return Token{
		Kind:  kind,
		Value: value,
		Span:  span,
	}
}

func unknownToken(location errors.Location) Token {
	return newToken(Unknown, "", errors.Span{Start: location, End: location})
}

func (self TokenKind) String() string {
	var display string
	switch self {
	case Unknown:
		display = "unknown"
	case EOF:
		display = "EOF"
	case QuestionMark:
		display = "?"
	case AtSymbol:
		display = "@"
	case DollarSymbol:
		display = "$"
	case Semicolon:
		display = ";"
	case Comma:
		display = ","
	case Colon:
		display = ":"
	case LParen:
		display = "("
	case RParen:
		display = ")"
	case LCurly:
		display = "{"
	case RCurly:
		display = "}"
	case LBracket:
		display = "["
	case RBracket:
		display = "]"
	case Equal:
		display = "=="
	case NotEqual:
		display = "!="
	case LessThan:
		display = "<"
	case LessThanEqual:
		display = "<="
	case GreaterThan:
		display = ">"
	case GreaterThanEqual:
		display = ">="
	case Plus:
		display = "+"
	case Minus:
		display = "-"
	case Multiply:
		display = "*"
	case Divide:
		display = "/"
	case BitOr:
		display = "|"
	case Assign:
		display = "="
	case Def:
		display = "def"
	case Int:
		display = "integer"
	case Identifier:
		display = "identifier"
	default:
		panic("A new token was introduced without updating this code")
	}
	return display
}

// Prec returns the left and right binding power of an infix operator token.
// Tokens which are not infix operators yield (0, 0).
func (self TokenKind) Prec() (left uint8, right uint8) {
	switch self {
	case Assign:
		// inverse order for right-associativity
		return 2, 1
	case Equal, NotEqual, LessThan, LessThanEqual, GreaterThan, GreaterThanEqual:
		return 3, 4
	case Plus, Minus:
		return 5, 6
	case Multiply, Divide:
		return 7, 8
	case BitOr:
		return 9, 10
	default:
		return 0, 0
	}
}

func (self TokenKind) IsComparison() bool {
	switch self {
	case Equal, NotEqual, LessThan, LessThanEqual, GreaterThan, GreaterThanEqual:
		return true
	default:
		return false
	}
}
