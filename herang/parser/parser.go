package parser

import (
	"fmt"
	"strings"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/lexer"
	"github.com/herang-lang/herang/herang/parser/ast"
)

type Parser struct {
	lexer         lexer.Lexer
	PreviousToken lexer.Token
	CurrentToken  lexer.Token
	Filename      string
}

func NewParser(lex lexer.Lexer, filename string) Parser {
	return Parser{
		lexer:         lex,
		PreviousToken: lexer.Token{Kind: lexer.Unknown},
		CurrentToken:  lexer.Token{Kind: lexer.Unknown},
		Filename:      filename,
	}
}

// Parse lexes and parses a complete program into its root block.
func Parse(program string, filename string) (ast.Block, *errors.Error) {
	parser := NewParser(lexer.NewLexer(program, filename), filename)
	return parser.Parse()
}

func (self *Parser) next() *errors.Error {
	token, err := self.lexer.NextToken()
	if err != nil {
		return err
	}

	self.PreviousToken = self.CurrentToken
	self.CurrentToken = token
	return nil
}

func (self *Parser) Parse() (ast.Block, *errors.Error) {
	if err := self.next(); err != nil {
		return ast.Block{}, err
	}

	startLoc := self.CurrentToken.Span.Start
	statements := make([]ast.Node, 0)

	for self.CurrentToken.Kind != lexer.EOF {
		if !startsStatement(self.CurrentToken.Kind) {
			return ast.Block{}, errors.NewSyntaxError(
				self.CurrentToken.Span.Start.Until(self.lastLocation(), self.Filename),
				fmt.Sprintf("Cannot parse \"%s\"", strings.TrimSpace(self.lexer.Remainder(self.CurrentToken.Span.Start))),
			)
		}

		stmt, err := self.statement()
		if err != nil {
			return ast.Block{}, err
		}
		statements = append(statements, stmt)
	}

	return ast.Block{
		Statements: statements,
		Range:      startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

// lastLocation consumes the remaining input and returns the location of its end.
// Lexer errors in the remainder are irrelevant at this point and ignored.
func (self *Parser) lastLocation() errors.Location {
	end := self.CurrentToken.Span.End
	for {
		token, err := self.lexer.NextToken()
		if err != nil || token.Kind == lexer.EOF {
			return end
		}
		end = token.Span.End
	}
}

func startsStatement(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.Def, lexer.DollarSymbol, lexer.QuestionMark, lexer.AtSymbol,
		lexer.Int, lexer.Identifier, lexer.LParen:
		return true
	default:
		return false
	}
}

// block parses statements until the closing curly brace, which is not consumed.
func (self *Parser) block() (ast.Block, *errors.Error) {
	startLoc := self.CurrentToken.Span.Start
	statements := make([]ast.Node, 0)

	for self.CurrentToken.Kind != lexer.RCurly && self.CurrentToken.Kind != lexer.EOF {
		stmt, err := self.statement()
		if err != nil {
			return ast.Block{}, err
		}
		statements = append(statements, stmt)
	}

	return ast.Block{
		Statements: statements,
		Range:      startLoc.Until(self.PreviousToken.Span.End, self.Filename),
	}, nil
}

// braced parses `{ block }`.
func (self *Parser) braced() (ast.Block, *errors.Error) {
	if err := self.expect(lexer.LCurly); err != nil {
		return ast.Block{}, err
	}

	body, err := self.block()
	if err != nil {
		return ast.Block{}, err
	}

	if err := self.expect(lexer.RCurly); err != nil {
		return ast.Block{}, err
	}

	return body, nil
}

func (self *Parser) ident() (ast.SpannedIdent, *errors.Error) {
	if self.CurrentToken.Kind != lexer.Identifier {
		return ast.SpannedIdent{}, errors.NewSyntaxError(
			self.CurrentToken.Span,
			fmt.Sprintf("Expected identifier, found '%s'", self.CurrentToken.Kind),
		)
	}

	ident := ast.NewSpannedIdent(self.CurrentToken.Value, self.CurrentToken.Span)
	if err := self.next(); err != nil {
		return ast.SpannedIdent{}, err
	}

	return ident, nil
}
