package ast

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
)

type Node interface {
	Kind() NodeKind
	Span() errors.Span
	String() string
}

type NodeKind uint8

const (
	LiteralNodeKind NodeKind = iota
	VarNodeKind
	IndexNodeKind
	GroupedNodeKind
	ConcatNodeKind
	ArithmeticNodeKind
	ComparisonNodeKind
	DeclNodeKind
	AssignNodeKind
	IndexAssignNodeKind
	FuncDefNodeKind
	CallNodeKind
	IfNodeKind
	ForInNodeKind
	BlockNodeKind
)

func (self NodeKind) String() string {
	switch self {
	case LiteralNodeKind:
		return "literal"
	case VarNodeKind:
		return "var"
	case IndexNodeKind:
		return "index"
	case GroupedNodeKind:
		return "grouped"
	case ConcatNodeKind:
		return "concat"
	case ArithmeticNodeKind:
		return "arithmetic"
	case ComparisonNodeKind:
		return "comparison"
	case DeclNodeKind:
		return "decl"
	case AssignNodeKind:
		return "assign"
	case IndexAssignNodeKind:
		return "index-assign"
	case FuncDefNodeKind:
		return "func-def"
	case CallNodeKind:
		return "call"
	case IfNodeKind:
		return "if"
	case ForInNodeKind:
		return "for-in"
	case BlockNodeKind:
		return "block"
	default:
		panic("A new NodeKind was introduced without updating this code")
	}
}

//
// Spanned ident
//

func NewSpannedIdent(ident string, span errors.Span) SpannedIdent {
	return SpannedIdent{
		ident: ident,
		span:  span,
	}
}

type SpannedIdent struct {
	ident string
	span  errors.Span
}

func (self SpannedIdent) Ident() string     { return self.ident }
func (self SpannedIdent) Span() errors.Span { return self.span }
func (self SpannedIdent) String() string    { return self.ident }

//
// Block
//

// Block is a sequence of statements. The root of every program is a block;
// function, conditional and loop bodies are blocks as well. Blocks are never
// mutated after parsing, which allows function values to share them.
type Block struct {
	Statements []Node
	Range      errors.Span
}

func (self Block) Kind() NodeKind    { return BlockNodeKind }
func (self Block) Span() errors.Span { return self.Range }

// String prints the statements of the block, one per line.
func (self Block) String() string {
	contents := make([]string, len(self.Statements))
	for idx, stmt := range self.Statements {
		contents[idx] = stmt.String() + ";"
	}
	return strings.Join(contents, "\n")
}

// braced prints the block as a nested body.
func (self Block) braced() string {
	if len(self.Statements) == 0 {
		return "{}"
	}
	return fmt.Sprintf("{\n    %s\n}", strings.ReplaceAll(self.String(), "\n", "\n    "))
}
