package diagnostic

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func span(startLine, startCol, endLine, endCol uint) errors.Span {
	return errors.Span{
		Start:    errors.Location{Line: startLine, Column: startCol},
		End:      errors.Location{Line: endLine, Column: endCol},
		Filename: "test.hr",
	}
}

func TestFromError(t *testing.T) {
	err := errors.NewError(span(1, 1, 1, 3), "Use of undefined variable 'foo'", errors.UndefinedVariable).
		WithNote("A variable with a similar name exists: did you mean 'fo'?")

	diag := FromError(err)
	assert.Equal(t, LevelError, diag.Level)
	assert.Equal(t, "undefined variable", diag.Kind)
	assert.Equal(t, err.Message, diag.Message)
	assert.Equal(t, err.Notes, diag.Notes)
	assert.Equal(t, err.Span, diag.Span)
}

func TestDisplaySingleLine(t *testing.T) {
	program := "a = 1;\nfoo;\nb = 2;"
	diag := FromError(errors.NewError(span(2, 1, 2, 3), "Use of undefined variable 'foo'", errors.UndefinedVariable))

	out := diag.Display(program)
	assert.Contains(t, out, "Error (undefined variable) at test.hr:2:1")
	assert.Contains(t, out, "| a = 1;")
	assert.Contains(t, out, "| foo;")
	assert.Contains(t, out, "| b = 2;")
	assert.Contains(t, out, "\n       ^^^\n")
	assert.Contains(t, out, "Use of undefined variable 'foo'")
}

func TestDisplaySingleColumn(t *testing.T) {
	diag := Diagnostic{Level: LevelWarning, Message: "careful", Span: span(1, 3, 1, 3)}

	out := diag.Display("a =!;")
	assert.True(t, strings.HasPrefix(out, "Warning at test.hr:1:3"))
	assert.Contains(t, out, "\n         ^\n")
}

func TestDisplayMultiLine(t *testing.T) {
	program := "?(1) {\n    1;\n};"
	diag := FromError(errors.NewSyntaxError(span(1, 1, 3, 2), "Something is off"))

	out := diag.Display(program)
	assert.Contains(t, out, "^^^^^^ ...")
	assert.Contains(t, out, "+ 2 more lines")
}

func TestDisplayWithoutSpan(t *testing.T) {
	err := errors.NewError(errors.Span{Filename: "test.hr"}, "Writing output failed", errors.HostError).
		WithNote("check the output stream")

	out := FromError(err).Display("")
	assert.Equal(t, "Error (host error) in test.hr\nWriting output failed\n - note: check the output stream\n", out)
}
