package codegen

import (
	"fmt"
	"strings"
)

const indentUnit = "    "

// Buffer accumulates generated source text and tracks the indentation of the
// line currently being written.
type Buffer struct {
	builder strings.Builder
	depth   int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (self *Buffer) Enter() { self.depth++ }

func (self *Buffer) Leave() {
	if self.depth == 0 {
		panic("Buffer indentation cannot become negative")
	}
	self.depth--
}

func (self *Buffer) Depth() int { return self.depth }

func (self *Buffer) indentation() string {
	return strings.Repeat(indentUnit, self.depth)
}

// Write appends code without any indentation or line break.
func (self *Buffer) Write(code string) {
	self.builder.WriteString(code)
}

// Line writes one indented line.
func (self *Buffer) Line(code string) {
	self.builder.WriteString(self.indentation())
	self.builder.WriteString(code)
	self.builder.WriteByte('\n')
}

func (self *Buffer) Newline() {
	self.builder.WriteByte('\n')
}

// VarDef declares an empty value of the given name.
func (self *Buffer) VarDef(name string) {
	self.Line(fmt.Sprintf("u8 %s;", name))
}

func (self *Buffer) String() string {
	return self.builder.String()
}
