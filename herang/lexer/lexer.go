package lexer

import (
	"fmt"

	"github.com/herang-lang/herang/herang/errors"
)

type Lexer struct {
	currentIndex int
	currentChar  *rune
	nextChar     *rune
	program      []rune
	location     errors.Location
	filename     string
}

func NewLexer(programSource string, filename string) Lexer {
	program := []rune(programSource)
	programLen := len(program)
	var currentChar *rune
	var nextChar *rune

	if programLen == 0 {
		currentChar = nil
		nextChar = nil
	} else if programLen == 1 {
		currentChar = &program[0]
		nextChar = nil
	} else {
		currentChar = &program[0]
		nextChar = &program[1]
	}

	return Lexer{
		currentIndex: 0,
		currentChar:  currentChar,
		nextChar:     nextChar,
		program:      program,
		location:     errors.NewLocation(),
		filename:     filename,
	}
}

// Remainder returns the source text starting at the given location.
func (self *Lexer) Remainder(from errors.Location) string {
	if int(from.Index) >= len(self.program) {
		return ""
	}
	return string(self.program[from.Index:])
}

func (self *Lexer) advance() {
	self.location.Advance(self.currentChar != nil && *self.currentChar == '\n')

	self.currentIndex++
	programLen := len(self.program)

	if self.currentIndex >= programLen {
		self.currentChar = nil
	} else {
		self.currentChar = &self.program[self.currentIndex]
	}

	if self.currentIndex+1 >= programLen {
		self.nextChar = nil
	} else {
		self.nextChar = &self.program[self.currentIndex+1]
	}
}

func (self *Lexer) span(start errors.Location, end errors.Location) errors.Span {
	return start.Until(end, self.filename)
}

func (self *Lexer) skipLineComment() {
	self.advance()
	self.advance()

	for self.currentChar != nil && *self.currentChar != '\n' {
		self.advance()
	}

	self.advance()
}

func (self *Lexer) skipBlockComment() *errors.Error {
	startLocation := self.location
	self.advance()
	self.advance()

	for {
		if self.currentChar == nil || self.nextChar == nil {
			return errors.NewSyntaxError(self.span(startLocation, self.location), "Block comment never closed")
		}
		if *self.currentChar == '*' && *self.nextChar == '/' {
			self.advance()
			self.advance()
			return nil
		}

		self.advance()
	}
}

func (self *Lexer) NextToken() (Token, *errors.Error) {
outer:
	for self.currentChar != nil {
		switch *self.currentChar {
		case ' ', '\n', '\t', '\r':
			self.advance()
		case '?':
			return self.makeSingleChar(QuestionMark, '?'), nil
		case '@':
			return self.makeSingleChar(AtSymbol, '@'), nil
		case '$':
			return self.makeSingleChar(DollarSymbol, '$'), nil
		case ';':
			return self.makeSingleChar(Semicolon, ';'), nil
		case ',':
			return self.makeSingleChar(Comma, ','), nil
		case ':':
			return self.makeSingleChar(Colon, ':'), nil
		case '(':
			return self.makeSingleChar(LParen, '('), nil
		case ')':
			return self.makeSingleChar(RParen, ')'), nil
		case '{':
			return self.makeSingleChar(LCurly, '{'), nil
		case '}':
			return self.makeSingleChar(RCurly, '}'), nil
		case '[':
			return self.makeSingleChar(LBracket, '['), nil
		case ']':
			return self.makeSingleChar(RBracket, ']'), nil
		case '|':
			return self.makeSingleChar(BitOr, '|'), nil
		case '+':
			return self.makeSingleChar(Plus, '+'), nil
		case '-':
			return self.makeSingleChar(Minus, '-'), nil
		case '*':
			return self.makeSingleChar(Multiply, '*'), nil
		case '=':
			return self.makeWithEquals(Assign, Equal), nil
		case '<':
			return self.makeWithEquals(LessThan, LessThanEqual), nil
		case '>':
			return self.makeWithEquals(GreaterThan, GreaterThanEqual), nil
		case '!':
			return self.makeNotEqual()
		case '/':
			if self.nextChar != nil {
				switch *self.nextChar {
				case '/':
					self.skipLineComment()
					continue outer
				case '*':
					if err := self.skipBlockComment(); err != nil {
						return unknownToken(self.location), err
					}
					continue outer
				}
			}
			return self.makeSingleChar(Divide, '/'), nil
		default:
			if IsDigit(*self.currentChar) {
				return self.makeNumber(), nil
			}
			if IsLetter(*self.currentChar) {
				return self.makeName(), nil
			}
			return unknownToken(self.location), errors.NewSyntaxError(
				self.span(self.location, self.location),
				fmt.Sprintf("Illegal character: %c", *self.currentChar),
			)
		}
	}

	return newToken(EOF, "EOF", self.span(self.location, self.location)), nil
}

func (self *Lexer) makeNumber() Token {
	startLocation := self.location
	value := string(*self.currentChar)
	self.advance()

	lastEnd := startLocation
	for self.currentChar != nil && IsDigit(*self.currentChar) {
		value += string(*self.currentChar)
		lastEnd = self.location
		self.advance()
	}

	return newToken(Int, value, self.span(startLocation, lastEnd))
}

func (self *Lexer) makeSingleChar(kind TokenKind, value rune) Token {
	token := newToken(kind, string(value), self.span(self.location, self.location))
	self.advance()
	return token
}

// makeWithEquals lexes a character which forms a different token when
// followed by `=`, such as `<` and `<=`.
func (self *Lexer) makeWithEquals(single TokenKind, withEquals TokenKind) Token {
	startLocation := self.location

	if self.nextChar != nil && *self.nextChar == '=' {
		self.advance()
		token := newToken(withEquals, withEquals.String(), self.span(startLocation, self.location))
		self.advance()
		return token
	}

	return self.makeSingleChar(single, *self.currentChar)
}

func (self *Lexer) makeNotEqual() (Token, *errors.Error) {
	startLocation := self.location

	if self.nextChar == nil || *self.nextChar != '=' {
		return unknownToken(startLocation), errors.NewSyntaxError(
			self.span(startLocation, startLocation),
			"Illegal character: !, expected `!=`",
		)
	}

	self.advance()
	token := newToken(NotEqual, "!=", self.span(startLocation, self.location))
	self.advance()
	return token, nil
}

func (self *Lexer) makeName() Token {
	startLocation := self.location
	value := string(*self.currentChar)
	self.advance()

	lastEnd := startLocation
	for self.currentChar != nil && (IsDigit(*self.currentChar) || IsLetter(*self.currentChar)) {
		value += string(*self.currentChar)
		lastEnd = self.location
		self.advance()
	}

	tokenKind := Identifier
	if value == "def" {
		tokenKind = Def
	}

	return newToken(tokenKind, value, self.span(startLocation, lastEnd))
}
