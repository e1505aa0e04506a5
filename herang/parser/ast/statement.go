package ast

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
)

//
// Declaration
//

type DeclNode struct {
	Ident SpannedIdent
	Range errors.Span
}

func (self DeclNode) Kind() NodeKind    { return DeclNodeKind }
func (self DeclNode) Span() errors.Span { return self.Range }
func (self DeclNode) String() string    { return fmt.Sprintf("def %s", self.Ident) }

//
// Assignment
//

type AssignNode struct {
	Ident SpannedIdent
	Rhs   Node
	Range errors.Span
}

func (self AssignNode) Kind() NodeKind    { return AssignNodeKind }
func (self AssignNode) Span() errors.Span { return self.Range }
func (self AssignNode) String() string    { return fmt.Sprintf("%s = %s", self.Ident, self.Rhs) }

//
// Indexed assignment
//

type IndexAssignNode struct {
	Ident SpannedIdent
	Index Node
	Rhs   Node
	Range errors.Span
}

func (self IndexAssignNode) Kind() NodeKind    { return IndexAssignNodeKind }
func (self IndexAssignNode) Span() errors.Span { return self.Range }
func (self IndexAssignNode) String() string {
	return fmt.Sprintf("%s[%s] = %s", self.Ident, self.Index, self.Rhs)
}

//
// Function definition
//

type FuncDefNode struct {
	Ident  SpannedIdent
	Params []SpannedIdent
	Body   Block
	Range  errors.Span
}

func (self FuncDefNode) Kind() NodeKind    { return FuncDefNodeKind }
func (self FuncDefNode) Span() errors.Span { return self.Range }
func (self FuncDefNode) String() string {
	return fmt.Sprintf("$%s(%s) %s", self.Ident, strings.Join(self.ParamNames(), ", "), self.Body.braced())
}

// ParamNames returns the plain parameter identifiers in declaration order.
func (self FuncDefNode) ParamNames() []string {
	params := make([]string, len(self.Params))
	for idx, param := range self.Params {
		params[idx] = param.ident
	}
	return params
}

//
// Conditional
//

type IfNode struct {
	Condition Node
	Body      Block
	Range     errors.Span
}

func (self IfNode) Kind() NodeKind    { return IfNodeKind }
func (self IfNode) Span() errors.Span { return self.Range }
func (self IfNode) String() string {
	return fmt.Sprintf("?(%s) %s", self.Condition, self.Body.braced())
}

//
// For-in loop
//

type ForInNode struct {
	Ident    SpannedIdent
	Iterable Node
	Body     Block
	Range    errors.Span
}

func (self ForInNode) Kind() NodeKind    { return ForInNodeKind }
func (self ForInNode) Span() errors.Span { return self.Range }
func (self ForInNode) String() string {
	return fmt.Sprintf("@(%s: %s) %s", self.Ident, self.Iterable, self.Body.braced())
}
