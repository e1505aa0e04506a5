package value

import (
	"fmt"
	"slices"
	"strings"
)

// Value is the only data type of the language: an ordered, possibly empty
// sequence of 32-bit unsigned integers. Values are immutable; every operation
// returns a fresh Value and never shares its backing array with an operand.
type Value struct {
	elems []uint32
}

func New(elems ...uint32) Value {
	return Value{elems: slices.Clone(elems)}
}

func Empty() Value { return Value{} }

func Zeroed(length int) Value {
	return Value{elems: make([]uint32, length)}
}

func FromBool(b bool) Value {
	if b {
		return New(1)
	}
	return New(0)
}

func (self Value) Len() int        { return len(self.elems) }
func (self Value) IsEmpty() bool   { return len(self.elems) == 0 }
func (self Value) At(i int) uint32 { return self.elems[i] }

// Elements returns a copy of the underlying sequence.
func (self Value) Elements() []uint32 { return slices.Clone(self.elems) }

func (self Value) Equals(other Value) bool {
	return slices.Equal(self.elems, other.elems)
}

// Compare orders values lexicographically, element by element. A proper prefix
// sorts before the longer value.
func (self Value) Compare(other Value) int {
	return slices.Compare(self.elems, other.elems)
}

func (self Value) Truthy() bool {
	if len(self.elems) == 0 {
		return false
	}
	for _, elem := range self.elems {
		if elem == 0 {
			return false
		}
	}
	return true
}

func (self Value) Sum() uint32 {
	var sum uint32
	for _, elem := range self.elems {
		sum += elem
	}
	return sum
}

// Concat appends other after self. This is the `|` operator of the language.
func (self Value) Concat(other Value) Value {
	out := make([]uint32, 0, len(self.elems)+len(other.elems))
	out = append(out, self.elems...)
	out = append(out, other.elems...)
	return Value{elems: out}
}

func (self Value) String() string {
	parts := make([]string, len(self.elems))
	for idx, elem := range self.elems {
		parts[idx] = fmt.Sprint(elem)
	}
	return fmt.Sprintf("(%s)", strings.Join(parts, " | "))
}
