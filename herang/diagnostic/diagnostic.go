package diagnostic

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/herang-lang/herang/herang/errors"
)

type Level uint8

const (
	LevelHint Level = iota
	LevelWarning
	LevelError
)

func (self Level) String() string {
	switch self {
	case LevelHint:
		return "Hint"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

func (self Level) color() *color.Color {
	switch self {
	case LevelHint:
		return color.New(color.FgMagenta, color.Bold)
	case LevelWarning:
		return color.New(color.FgYellow, color.Bold)
	case LevelError:
		return color.New(color.FgRed, color.Bold)
	default:
		panic("A new diagnostic level was added without updating this code")
	}
}

func (self Level) marker() string {
	if self == LevelError {
		return "^"
	}
	return "~"
}

//
// Diagnostic
//

type Diagnostic struct {
	Level   Level       `json:"level"`
	Kind    string      `json:"kind"`
	Message string      `json:"message"`
	Notes   []string    `json:"notes"`
	Span    errors.Span `json:"span"`
}

// FromError converts an error of any stage into an error diagnostic.
func FromError(err *errors.Error) Diagnostic {
	return Diagnostic{
		Level:   LevelError,
		Kind:    err.Kind.String(),
		Message: err.Message,
		Notes:   err.Notes,
		Span:    err.Span,
	}
}

func (self Diagnostic) hasSpan() bool {
	return self.Span.Start.Line != 0 && self.Span.Start.Column != 0
}

// Display renders the diagnostic together with an excerpt of program around
// the start of its span. Colors follow the global setting of the color package.
func (self Diagnostic) Display(program string) string {
	levelColor := self.Level.color()
	gutter := color.New(color.FgHiBlack)
	bold := color.New(color.Bold)
	noteColor := color.New(color.FgCyan, color.Bold)

	title := self.Level.String()
	if self.Kind != "" {
		title = fmt.Sprintf("%s (%s)", title, self.Kind)
	}

	notes := ""
	for _, note := range self.Notes {
		notes += fmt.Sprintf("%s %s\n", noteColor.Sprint(" - note:"), note)
	}

	lines := strings.Split(program, "\n")

	// take special action if there is no useful span
	if !self.hasSpan() || int(self.Span.Start.Line) > len(lines) {
		return fmt.Sprintf(
			"%s%s\n%s\n%s",
			levelColor.Sprint(title),
			bold.Sprintf(" in %s", self.Span.Filename),
			levelColor.Sprint(self.Message),
			notes,
		)
	}

	excerpt := func(line uint) string {
		return fmt.Sprintf(" %s%s", gutter.Sprintf("%- 3d | ", line), lines[line-1])
	}

	before := ""
	if self.Span.Start.Line > 1 {
		before = "\n" + excerpt(self.Span.Start.Line-1)
	}
	after := ""
	if int(self.Span.Start.Line) < len(lines) {
		after = "\n" + excerpt(self.Span.Start.Line+1)
	}

	var markers string
	switch {
	case self.Span.Start.Line != self.Span.End.Line:
		remaining := len(lines[self.Span.Start.Line-1]) - int(self.Span.Start.Column) + 1
		if remaining < 1 {
			remaining = 1
		}
		more := self.Span.End.Line - self.Span.Start.Line
		plural := "s"
		if more == 1 {
			plural = ""
		}
		markers = fmt.Sprintf(
			"%s ...\n%s%s",
			strings.Repeat(self.Level.marker(), remaining),
			strings.Repeat(" ", int(self.Span.Start.Column)+6),
			color.New(color.FgGreen, color.Bold).Sprintf("+ %d more line%s", more, plural),
		)
	case self.Span.End.Column > self.Span.Start.Column:
		// spans are inclusive
		markers = strings.Repeat(self.Level.marker(), int(self.Span.End.Column-self.Span.Start.Column)+1)
	default:
		markers = "^"
	}

	marker := levelColor.Sprint(strings.Repeat(" ", int(self.Span.Start.Column)+6) + markers)

	return fmt.Sprintf(
		"%s%s\n%s\n%s\n%s%s\n\n%s\n%s",
		levelColor.Sprint(title),
		bold.Sprintf(" at %s:%d:%d", self.Span.Filename, self.Span.Start.Line, self.Span.Start.Column),
		before,
		excerpt(self.Span.Start.Line),
		marker,
		after,
		levelColor.Sprint(self.Message),
		notes,
	)
}
