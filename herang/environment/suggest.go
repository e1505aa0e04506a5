package environment

import (
	"fmt"

	"github.com/agnivade/levenshtein"
	"github.com/herang-lang/herang/herang/errors"
)

const maxSuggestionDistance = 2

// closest returns the candidate with the smallest edit distance to name, as
// long as it is close enough to be a plausible typo.
func closest(name string, candidates []string) (string, bool) {
	best := ""
	bestDistance := maxSuggestionDistance + 1

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, candidate)
		if distance < bestDistance && distance < len(name) {
			best = candidate
			bestDistance = distance
		}
	}

	return best, best != ""
}

func (self *Environment) UndefinedVarError(name string, span errors.Span) *errors.Error {
	err := errors.NewError(span, fmt.Sprintf("Use of undefined variable '%s'", name), errors.UndefinedVariable)
	if suggestion, found := closest(name, self.VarNames()); found {
		err.WithNote(fmt.Sprintf("A variable with a similar name exists: did you mean '%s'?", suggestion))
	}
	return err
}

func (self *Environment) UndefinedFuncError(name string, span errors.Span) *errors.Error {
	err := errors.NewError(span, fmt.Sprintf("Call to undefined function '%s'", name), errors.UndefinedFunction)
	if suggestion, found := closest(name, self.FuncNames()); found {
		err.WithNote(fmt.Sprintf("A function with a similar name exists: did you mean '%s'?", suggestion))
	}
	return err
}
