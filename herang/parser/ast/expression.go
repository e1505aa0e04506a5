package ast

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
)

//
// Literal
//

type LiteralNode struct {
	Value value.Value
	Range errors.Span
}

func (self LiteralNode) Kind() NodeKind    { return LiteralNodeKind }
func (self LiteralNode) Span() errors.Span { return self.Range }
func (self LiteralNode) String() string {
	if self.Value.IsEmpty() {
		return "()"
	}

	elems := self.Value.Elements()
	parts := make([]string, len(elems))
	for idx, elem := range elems {
		parts[idx] = fmt.Sprint(elem)
	}
	return strings.Join(parts, " | ")
}

//
// Variable reference
//

type VarNode struct {
	Ident SpannedIdent
}

func (self VarNode) Kind() NodeKind    { return VarNodeKind }
func (self VarNode) Span() errors.Span { return self.Ident.span }
func (self VarNode) String() string    { return self.Ident.ident }

//
// Indexed read
//

type IndexNode struct {
	Ident SpannedIdent
	Index Node
	Range errors.Span
}

func (self IndexNode) Kind() NodeKind    { return IndexNodeKind }
func (self IndexNode) Span() errors.Span { return self.Range }
func (self IndexNode) String() string    { return fmt.Sprintf("%s[%s]", self.Ident, self.Index) }

//
// Grouped
//

type GroupedNode struct {
	Inner Node
	Range errors.Span
}

func (self GroupedNode) Kind() NodeKind    { return GroupedNodeKind }
func (self GroupedNode) Span() errors.Span { return self.Range }
func (self GroupedNode) String() string    { return fmt.Sprintf("(%s)", self.Inner) }

//
// Concatenation
//

type ConcatNode struct {
	Lhs   Node
	Rhs   Node
	Range errors.Span
}

func (self ConcatNode) Kind() NodeKind    { return ConcatNodeKind }
func (self ConcatNode) Span() errors.Span { return self.Range }
func (self ConcatNode) String() string    { return fmt.Sprintf("%s | %s", self.Lhs, self.Rhs) }

//
// Arithmetic
//

type ArithmeticNode struct {
	Lhs      Node
	Rhs      Node
	Operator value.ArithmeticOperator
	Range    errors.Span
}

func (self ArithmeticNode) Kind() NodeKind    { return ArithmeticNodeKind }
func (self ArithmeticNode) Span() errors.Span { return self.Range }
func (self ArithmeticNode) String() string {
	return fmt.Sprintf("%s %s %s", self.Lhs, self.Operator, self.Rhs)
}

//
// Comparison
//

type ComparisonNode struct {
	Lhs      Node
	Rhs      Node
	Operator value.ComparisonOperator
	Range    errors.Span
}

func (self ComparisonNode) Kind() NodeKind    { return ComparisonNodeKind }
func (self ComparisonNode) Span() errors.Span { return self.Range }
func (self ComparisonNode) String() string {
	return fmt.Sprintf("%s %s %s", self.Lhs, self.Operator, self.Rhs)
}

//
// Call
//

type CallNode struct {
	Ident SpannedIdent
	Args  []Node
	Range errors.Span
}

func (self CallNode) Kind() NodeKind    { return CallNodeKind }
func (self CallNode) Span() errors.Span { return self.Range }
func (self CallNode) String() string {
	args := make([]string, len(self.Args))
	for idx, arg := range self.Args {
		args[idx] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", self.Ident, strings.Join(args, ", "))
}
