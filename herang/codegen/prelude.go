package codegen

import (
	_ "embed"
	"strings"
)

//go:embed prelude.hpp
var prelude string

// Prelude returns the C++ definitions generated code depends on: the value
// type `u8` together with its operators and the builtin library.
func Prelude() string {
	return prelude
}

// Standalone wraps an emitted fragment into a complete C++ program which
// evaluates the fragment once and exits.
func Standalone(fragment string) string {
	var builder strings.Builder

	builder.WriteString(prelude)
	builder.WriteString("\nu8 herang_main() {\n")
	for _, line := range strings.SplitAfter(fragment, "\n") {
		if line == "" {
			continue
		}
		if line != "\n" {
			builder.WriteString(indentUnit)
		}
		builder.WriteString(line)
	}
	builder.WriteString("}\n\nint main() {\n")
	builder.WriteString(indentUnit + "herang_main();\n")
	builder.WriteString(indentUnit + "return 0;\n}\n")

	return builder.String()
}
