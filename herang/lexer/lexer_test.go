package lexer

import (
	"fmt"
	"testing"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, program string) []Token {
	lexer := NewLexer(program, "test")

	tokens := make([]Token, 0)
	for {
		current, err := lexer.NextToken()
		require.Nil(t, err)
		if current.Kind == EOF {
			break
		}
		require.NotEqual(t, Unknown, current.Kind, "found unknown token at %v", current.Span.Start)
		tokens = append(tokens, current)
	}
	return tokens
}

func kinds(tokens []Token) []TokenKind {
	out := make([]TokenKind, len(tokens))
	for idx, token := range tokens {
		out[idx] = token.Kind
	}
	return out
}

func TestLexer(t *testing.T) {
	tests := []struct {
		Program  string
		Expected []TokenKind
	}{
		{
			Program:  "?@$;,:(){}[]",
			Expected: []TokenKind{QuestionMark, AtSymbol, DollarSymbol, Semicolon, Comma, Colon, LParen, RParen, LCurly, RCurly, LBracket, RBracket},
		},
		{
			Program:  "== != < <= > >= =",
			Expected: []TokenKind{Equal, NotEqual, LessThan, LessThanEqual, GreaterThan, GreaterThanEqual, Assign},
		},
		{
			Program:  "+-*/|",
			Expected: []TokenKind{Plus, Minus, Multiply, Divide, BitOr},
		},
		{
			Program:  "def a_1 = 42;",
			Expected: []TokenKind{Def, Identifier, Assign, Int, Semicolon},
		},
		{
			Program:  "define",
			Expected: []TokenKind{Identifier},
		},
		{
			Program:  "a // comment\n/* block\ncomment */ b",
			Expected: []TokenKind{Identifier, Identifier},
		},
		{
			Program:  "",
			Expected: []TokenKind{},
		},
	}

	for idx, test := range tests {
		t.Run(fmt.Sprint(idx), func(t *testing.T) {
			assert.Equal(t, test.Expected, kinds(lexAll(t, test.Program)))
		})
	}
}

func TestLexerSpans(t *testing.T) {
	tokens := lexAll(t, "ab = 12;\n  c")
	require.Len(t, tokens, 5)

	assert.Equal(t, "ab", tokens[0].Value)
	assert.Equal(t, errors.Location{Line: 1, Column: 1, Index: 0}, tokens[0].Span.Start)
	assert.Equal(t, errors.Location{Line: 1, Column: 2, Index: 1}, tokens[0].Span.End)
	assert.Equal(t, "12", tokens[2].Value)
	assert.Equal(t, errors.Location{Line: 2, Column: 3, Index: 11}, tokens[4].Span.Start)
	assert.Equal(t, "test", tokens[4].Span.Filename)
}

func TestLexerErrors(t *testing.T) {
	for _, program := range []string{"#", "a ! b", "/* open"} {
		t.Run(program, func(t *testing.T) {
			lexer := NewLexer(program, "test")
			var err *errors.Error
			for err == nil {
				var token Token
				token, err = lexer.NextToken()
				if token.Kind == EOF {
					break
				}
			}
			require.NotNil(t, err)
			assert.Equal(t, errors.SyntaxError, err.Kind)
		})
	}
}

func TestRemainder(t *testing.T) {
	lexer := NewLexer("a; }", "test")
	assert.Equal(t, "}", lexer.Remainder(errors.Location{Index: 3}))
	assert.Equal(t, "", lexer.Remainder(errors.Location{Index: 9}))
}

func TestIsIdent(t *testing.T) {
	assert.True(t, IsIdent("powerCon"))
	assert.True(t, IsIdent("_x1"))
	assert.False(t, IsIdent("1x"))
	assert.False(t, IsIdent("def"))
	assert.False(t, IsIdent(""))
}

func TestPrec(t *testing.T) {
	assignL, assignR := Assign.Prec()
	assert.Greater(t, assignL, assignR)

	cmpL, _ := Equal.Prec()
	addL, _ := Plus.Prec()
	mulL, _ := Divide.Prec()
	orL, _ := BitOr.Prec()
	assert.Less(t, assignL, cmpL)
	assert.Less(t, cmpL, addL)
	assert.Less(t, addL, mulL)
	assert.Less(t, mulL, orL)

	l, r := Semicolon.Prec()
	assert.Zero(t, l)
	assert.Zero(t, r)
}
