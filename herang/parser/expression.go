package parser

import (
	"fmt"
	"strconv"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/lexer"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
)

func (self *Parser) expression(prec uint8) (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	lhs, err := self.primary()
	if err != nil {
		return nil, err
	}

	for left, right := self.CurrentToken.Kind.Prec(); left > prec; left, right = self.CurrentToken.Kind.Prec() {
		operator := self.CurrentToken.Kind

		switch {
		case operator == lexer.Assign:
			lhs, err = self.assignExpression(startLoc, lhs, right)
		case operator.IsComparison():
			if lhs.Kind() == ast.ComparisonNodeKind {
				return nil, errors.NewSyntaxError(
					self.CurrentToken.Span,
					"Comparison operators cannot be chained, use parentheses to group comparisons",
				)
			}
			lhs, err = self.infixExpression(startLoc, lhs, right)
		default:
			lhs, err = self.infixExpression(startLoc, lhs, right)
		}

		if err != nil {
			return nil, err
		}
	}

	return lhs, nil
}

func (self *Parser) primary() (ast.Node, *errors.Error) {
	switch self.CurrentToken.Kind {
	case lexer.Int:
		return self.intLiteral()
	case lexer.LParen:
		return self.groupedExpression()
	case lexer.Identifier:
		return self.identExpression()
	default:
		return nil, errors.NewSyntaxError(
			self.CurrentToken.Span,
			fmt.Sprintf("Expected an expression, found '%s'", self.CurrentToken.Kind),
		)
	}
}

//
// Integer literal
//

func (self *Parser) intLiteral() (ast.Node, *errors.Error) {
	if err := self.next(); err != nil {
		return nil, err
	}

	intRes, err := strconv.ParseUint(self.PreviousToken.Value, 10, 32)
	if err != nil {
		return nil, errors.NewSyntaxError(
			self.PreviousToken.Span,
			fmt.Sprintf("Integer literal '%s' does not fit into 32 bits", self.PreviousToken.Value),
		)
	}

	return ast.LiteralNode{
		Value: value.New(uint32(intRes)),
		Range: self.PreviousToken.Span,
	}, nil
}

//
// Grouped expression or empty literal
//

func (self *Parser) groupedExpression() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip opening parenthesis
	if err := self.next(); err != nil {
		return nil, err
	}

	if self.CurrentToken.Kind == lexer.RParen {
		if err := self.next(); err != nil {
			return nil, err
		}
		return ast.LiteralNode{
			Value: value.Empty(),
			Range: startLoc.Until(self.PreviousToken.Span.End, self.Filename),
		}, nil
	}

	inner, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.RParen); err != nil {
		return nil, err
	}

	return ast.GroupedNode{
		Inner: inner,
		Range: startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

//
// Variable, indexed read and call
//

func (self *Parser) identExpression() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	ident, err := self.ident()
	if err != nil {
		return nil, err
	}

	switch self.CurrentToken.Kind {
	case lexer.LBracket:
		if err := self.next(); err != nil {
			return nil, err
		}

		index, err := self.expression(0)
		if err != nil {
			return nil, err
		}

		if err := self.expect(lexer.RBracket); err != nil {
			return nil, err
		}

		return ast.IndexNode{
			Ident: ident,
			Index: index,
			Range: startLoc.Until(self.PreviousToken.Span.End, self.Filename),
		}, nil
	case lexer.LParen:
		return self.callExpression(startLoc, ident)
	default:
		return ast.VarNode{Ident: ident}, nil
	}
}

func (self *Parser) callExpression(start errors.Location, ident ast.SpannedIdent) (ast.Node, *errors.Error) {
	// skip opening parenthesis
	if err := self.next(); err != nil {
		return nil, err
	}

	args := make([]ast.Node, 0)
	for self.CurrentToken.Kind != lexer.RParen {
		if len(args) > 0 {
			if self.CurrentToken.Kind != lexer.Comma {
				return nil, self.expectedOneOfErr([]lexer.TokenKind{lexer.Comma, lexer.RParen})
			}
			if err := self.next(); err != nil {
				return nil, err
			}
		}

		arg, err := self.expression(0)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	// skip closing parenthesis
	if err := self.next(); err != nil {
		return nil, err
	}

	return ast.CallNode{
		Ident: ident,
		Args:  args,
		Range: start.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

//
// Infix expression
//

func (self *Parser) infixExpression(start errors.Location, lhs ast.Node, rhsPrec uint8) (ast.Node, *errors.Error) {
	operator := self.CurrentToken.Kind

	if err := self.next(); err != nil {
		return nil, err
	}

	rhs, err := self.expression(rhsPrec)
	if err != nil {
		return nil, err
	}

	span := start.Until(self.PreviousToken.Span.End, self.Filename)

	switch operator {
	case lexer.BitOr:
		return ast.ConcatNode{Lhs: lhs, Rhs: rhs, Range: span}, nil
	case lexer.Plus:
		return ast.ArithmeticNode{Lhs: lhs, Rhs: rhs, Operator: value.AddOperator, Range: span}, nil
	case lexer.Minus:
		return ast.ArithmeticNode{Lhs: lhs, Rhs: rhs, Operator: value.SubOperator, Range: span}, nil
	case lexer.Multiply:
		return ast.ArithmeticNode{Lhs: lhs, Rhs: rhs, Operator: value.MulOperator, Range: span}, nil
	case lexer.Divide:
		return ast.ArithmeticNode{Lhs: lhs, Rhs: rhs, Operator: value.DivOperator, Range: span}, nil
	case lexer.Equal:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.EqualOperator, Range: span}, nil
	case lexer.NotEqual:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.NotEqualOperator, Range: span}, nil
	case lexer.LessThan:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.LessThanOperator, Range: span}, nil
	case lexer.LessThanEqual:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.LessThanEqualOperator, Range: span}, nil
	case lexer.GreaterThan:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.GreaterThanOperator, Range: span}, nil
	case lexer.GreaterThanEqual:
		return ast.ComparisonNode{Lhs: lhs, Rhs: rhs, Operator: value.GreaterThanEqualOperator, Range: span}, nil
	default:
		panic(fmt.Sprintf("Token '%s' is not an infix operator", operator))
	}
}

//
// Assign expression
//

func (self *Parser) assignExpression(start errors.Location, lhs ast.Node, rhsPrec uint8) (ast.Node, *errors.Error) {
	assignSpan := self.CurrentToken.Span

	if err := self.next(); err != nil {
		return nil, err
	}

	rhs, err := self.expression(rhsPrec)
	if err != nil {
		return nil, err
	}

	span := start.Until(self.PreviousToken.Span.End, self.Filename)

	switch target := lhs.(type) {
	case ast.VarNode:
		return ast.AssignNode{Ident: target.Ident, Rhs: rhs, Range: span}, nil
	case ast.IndexNode:
		return ast.IndexAssignNode{Ident: target.Ident, Index: target.Index, Rhs: rhs, Range: span}, nil
	default:
		return nil, errors.NewSyntaxError(
			lhs.Span().Start.Until(assignSpan.End, self.Filename),
			"Invalid left-hand side of assignment, expected a variable or an indexed variable",
		)
	}
}
