package value

import (
	"fmt"

	"github.com/herang-lang/herang/herang/errors"
)

// WholeValueIndex is the index which, when it appears alone in an indexed
// assignment, replaces the entire target value.
const WholeValueIndex = 0

// Gather builds a new value from the elements of self at each (0-based)
// position listed in indices.
func (self Value) Gather(indices Value, span errors.Span) (Value, *errors.Error) {
	out := make([]uint32, len(indices.elems))

	for idx, index := range indices.elems {
		if int64(index) >= int64(len(self.elems)) {
			return Value{}, errors.NewError(
				span,
				fmt.Sprintf("Index %d is out of range for a value of length %d", index, len(self.elems)),
				errors.IndexOutOfRange,
			)
		}
		out[idx] = self.elems[index]
	}

	return Value{elems: out}, nil
}

// Scatter writes src into a copy of self at the 1-based positions listed in
// indices. The source is broadcast cyclically: position indices[i] receives
// src[i mod len(src)]. A lone index of 0 replaces the whole value with src.
func (self Value) Scatter(indices Value, src Value, span errors.Span) (Value, *errors.Error) {
	if src.IsEmpty() {
		return Value{}, errors.NewError(span, "Cannot assign an empty value through an index", errors.EmptyAssignmentValue)
	}

	for _, index := range indices.elems {
		if index != WholeValueIndex {
			continue
		}

		if len(indices.elems) != 1 {
			return Value{}, errors.NewError(
				span,
				fmt.Sprintf("Index 0 replaces the whole value and cannot be combined with other indices %s", indices),
				errors.IndexOutOfRange,
			)
		}

		return New(src.elems...), nil
	}

	if len(indices.elems) < len(src.elems) {
		return Value{}, errors.NewError(
			span,
			fmt.Sprintf("Cannot broadcast %d value(s) onto %d index(es)", len(src.elems), len(indices.elems)),
			errors.BroadcastLengthMismatch,
		)
	}

	out := self.Elements()
	for idx, index := range indices.elems {
		position := int64(index) - 1
		if position >= int64(len(out)) {
			return Value{}, errors.NewError(
				span,
				fmt.Sprintf("Position %d is out of range for a value of length %d", index, len(out)),
				errors.IndexOutOfRange,
			)
		}
		out[position] = src.elems[idx%len(src.elems)]
	}

	return Value{elems: out}, nil
}
