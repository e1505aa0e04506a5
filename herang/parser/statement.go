package parser

import (
	"fmt"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/lexer"
	"github.com/herang-lang/herang/herang/parser/ast"
)

// statement parses a single statement including its terminating semicolon.
func (self *Parser) statement() (ast.Node, *errors.Error) {
	var stmt ast.Node
	var err *errors.Error

	switch self.CurrentToken.Kind {
	case lexer.Def:
		stmt, err = self.declaration()
	case lexer.DollarSymbol:
		stmt, err = self.functionDefinition()
	case lexer.QuestionMark:
		stmt, err = self.ifStatement()
	case lexer.AtSymbol:
		stmt, err = self.forInStatement()
	default:
		stmt, err = self.expression(0)
	}

	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Semicolon); err != nil {
		return nil, err
	}

	return stmt, nil
}

func (self *Parser) declaration() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip `def`
	if err := self.next(); err != nil {
		return nil, err
	}

	ident, err := self.ident()
	if err != nil {
		return nil, err
	}

	return ast.DeclNode{
		Ident: ident,
		Range: startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

func (self *Parser) functionDefinition() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip `$`
	if err := self.next(); err != nil {
		return nil, err
	}

	ident, err := self.ident()
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	params := make([]ast.SpannedIdent, 0)
	seen := make(map[string]struct{})

	for self.CurrentToken.Kind != lexer.RParen {
		if len(params) > 0 {
			if self.CurrentToken.Kind != lexer.Comma {
				return nil, self.expectedOneOfErr([]lexer.TokenKind{lexer.Comma, lexer.RParen})
			}
			if err := self.next(); err != nil {
				return nil, err
			}
		}

		param, err := self.ident()
		if err != nil {
			return nil, err
		}

		if _, exists := seen[param.Ident()]; exists {
			return nil, errors.NewSyntaxError(
				param.Span(),
				fmt.Sprintf("Parameter '%s' is declared more than once", param),
			)
		}
		seen[param.Ident()] = struct{}{}
		params = append(params, param)
	}

	// skip `)`
	if err := self.next(); err != nil {
		return nil, err
	}

	body, err := self.braced()
	if err != nil {
		return nil, err
	}

	return ast.FuncDefNode{
		Ident:  ident,
		Params: params,
		Body:   body,
		Range:  startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

func (self *Parser) ifStatement() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip `?`
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	condition, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.RParen); err != nil {
		return nil, err
	}

	body, err := self.braced()
	if err != nil {
		return nil, err
	}

	return ast.IfNode{
		Condition: condition,
		Body:      body,
		Range:     startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

func (self *Parser) forInStatement() (ast.Node, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start

	// skip `@`
	if err := self.next(); err != nil {
		return nil, err
	}

	if err := self.expect(lexer.LParen); err != nil {
		return nil, err
	}

	ident, err := self.ident()
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.Colon); err != nil {
		return nil, err
	}

	iterable, err := self.expression(0)
	if err != nil {
		return nil, err
	}

	if err := self.expect(lexer.RParen); err != nil {
		return nil, err
	}

	body, err := self.braced()
	if err != nil {
		return nil, err
	}

	return ast.ForInNode{
		Ident:    ident,
		Iterable: iterable,
		Body:     body,
		Range:    startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}
