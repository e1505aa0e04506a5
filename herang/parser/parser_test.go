package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/lexer"
	"github.com/herang-lang/herang/herang/parser/ast"
	"github.com/herang-lang/herang/herang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const EXAMPLE_DIR = "../../examples/"

func parseOne(t *testing.T, program string) ast.Node {
	tree, err := Parse(program, "test")
	require.Nil(t, err, "unexpected error: %v", err)
	require.Len(t, tree.Statements, 1)
	return tree.Statements[0]
}

func TestPrecedence(t *testing.T) {
	tests := []struct {
		Program  string
		Expected string
	}{
		// concatenation binds tighter than arithmetic
		{Program: "a + b | c;", Expected: "Arithmetic(a + Concat(b | c))"},
		{Program: "a | b * c | d;", Expected: "Arithmetic(Concat(a | b) * Concat(c | d))"},
		{Program: "a - b - c;", Expected: "Arithmetic(Arithmetic(a - b) - c)"},
		{Program: "a + b * c;", Expected: "Arithmetic(a + Arithmetic(b * c))"},
		{Program: "a / b + c;", Expected: "Arithmetic(Arithmetic(a / b) + c)"},
		{Program: "a + b == c;", Expected: "Comparison(Arithmetic(a + b) == c)"},
		{Program: "x = a < b;", Expected: "Assign(x = Comparison(a < b))"},
		{Program: "x = y = 1 | 2;", Expected: "Assign(x = Assign(y = Concat(1 | 2)))"},
		{Program: "x[i] = a | b;", Expected: "IndexAssign(x[i] = Concat(a | b))"},
		{Program: "a | (b = 1) | c;", Expected: "Concat(Concat(a | Grouped(Assign(b = 1))) | c)"},
		{Program: "f(a, b | c)[0];", Expected: ""},
	}

	for _, test := range tests {
		t.Run(test.Program, func(t *testing.T) {
			tree, err := Parse(test.Program, "test")
			if test.Expected == "" {
				require.NotNil(t, err)
				return
			}
			require.Nil(t, err, "unexpected error: %v", err)
			require.Len(t, tree.Statements, 1)
			assert.Equal(t, test.Expected, describe(tree.Statements[0]))
		})
	}
}

// describe renders the tree structure explicitly so that precedence is visible.
func describe(node ast.Node) string {
	switch node := node.(type) {
	case ast.LiteralNode:
		return node.String()
	case ast.VarNode:
		return node.String()
	case ast.GroupedNode:
		return fmt.Sprintf("Grouped(%s)", describe(node.Inner))
	case ast.ConcatNode:
		return fmt.Sprintf("Concat(%s | %s)", describe(node.Lhs), describe(node.Rhs))
	case ast.ArithmeticNode:
		return fmt.Sprintf("Arithmetic(%s %s %s)", describe(node.Lhs), node.Operator, describe(node.Rhs))
	case ast.ComparisonNode:
		return fmt.Sprintf("Comparison(%s %s %s)", describe(node.Lhs), node.Operator, describe(node.Rhs))
	case ast.AssignNode:
		return fmt.Sprintf("Assign(%s = %s)", node.Ident, describe(node.Rhs))
	case ast.IndexAssignNode:
		return fmt.Sprintf("IndexAssign(%s[%s] = %s)", node.Ident, describe(node.Index), describe(node.Rhs))
	default:
		return node.String()
	}
}

func TestStatements(t *testing.T) {
	decl := parseOne(t, "def x;")
	require.IsType(t, ast.DeclNode{}, decl)
	assert.Equal(t, "x", decl.(ast.DeclNode).Ident.Ident())

	fn := parseOne(t, "$add(a, b) { a + b; };")
	require.IsType(t, ast.FuncDefNode{}, fn)
	assert.Equal(t, []string{"a", "b"}, fn.(ast.FuncDefNode).ParamNames())
	assert.Len(t, fn.(ast.FuncDefNode).Body.Statements, 1)

	noParams := parseOne(t, "$f() {};")
	assert.Empty(t, noParams.(ast.FuncDefNode).Params)
	assert.Empty(t, noParams.(ast.FuncDefNode).Body.Statements)

	cond := parseOne(t, "?(a < b) { x = 1; y = 2; };")
	require.IsType(t, ast.IfNode{}, cond)
	assert.Equal(t, ast.ComparisonNodeKind, cond.(ast.IfNode).Condition.Kind())
	assert.Len(t, cond.(ast.IfNode).Body.Statements, 2)

	loop := parseOne(t, "@(i: 1 | 2) { print(i); };")
	require.IsType(t, ast.ForInNode{}, loop)
	assert.Equal(t, "i", loop.(ast.ForInNode).Ident.Ident())
	assert.Equal(t, ast.ConcatNodeKind, loop.(ast.ForInNode).Iterable.Kind())

	call := parseOne(t, "f(1, g(), x[0]);")
	require.IsType(t, ast.CallNode{}, call)
	assert.Len(t, call.(ast.CallNode).Args, 3)
	assert.Equal(t, ast.IndexNodeKind, call.(ast.CallNode).Args[2].Kind())

	empty := parseOne(t, "();")
	require.IsType(t, ast.LiteralNode{}, empty)
	assert.True(t, empty.(ast.LiteralNode).Value.IsEmpty())

	literal := parseOne(t, "4294967295;")
	assert.Equal(t, value.New(4294967295), literal.(ast.LiteralNode).Value)
}

func TestEmptyProgram(t *testing.T) {
	for _, program := range []string{"", "   \n", "// only a comment"} {
		tree, err := Parse(program, "test")
		require.Nil(t, err)
		assert.Empty(t, tree.Statements)
	}
}

func TestSpans(t *testing.T) {
	tree, err := Parse("a = 1;\nb = a | 2;", "spans.hr")
	require.Nil(t, err)
	require.Len(t, tree.Statements, 2)

	span := tree.Statements[1].Span()
	assert.Equal(t, uint(2), span.Start.Line)
	assert.Equal(t, uint(1), span.Start.Column)
	assert.Equal(t, uint(9), span.End.Column)
	assert.Equal(t, "spans.hr", span.Filename)
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		Program string
		Message string
	}{
		{Program: "a = 1", Message: "Expected ';', found 'EOF'"},
		{Program: "a == b == c;", Message: "Comparison operators cannot be chained, use parentheses to group comparisons"},
		{Program: "1 = 2;", Message: "Invalid left-hand side of assignment, expected a variable or an indexed variable"},
		{Program: "(a) = 2;", Message: "Invalid left-hand side of assignment, expected a variable or an indexed variable"},
		{Program: "a | b = 2;", Message: "Invalid left-hand side of assignment, expected a variable or an indexed variable"},
		{Program: "4294967296;", Message: "Integer literal '4294967296' does not fit into 32 bits"},
		{Program: "$f(a, a) {};", Message: "Parameter 'a' is declared more than once"},
		{Program: "$f(a b) {};", Message: "Expected either ',' or ')', found 'identifier'"},
		{Program: "a = 1; }", Message: "Cannot parse \"}\""},
		{Program: "a = 1;\n) b = 2;\n", Message: "Cannot parse \") b = 2;\""},
		{Program: "?(a) { b = 1; ;", Message: "Expected an expression, found ';'"},
		{Program: "@(1: a) {};", Message: "Expected identifier, found 'integer'"},
		{Program: "def 1;", Message: "Expected identifier, found 'integer'"},
		{Program: "a = #;", Message: "Illegal character: #"},
	}

	for _, test := range tests {
		t.Run(test.Program, func(t *testing.T) {
			_, err := Parse(test.Program, "test")
			require.NotNil(t, err)
			assert.Equal(t, errors.SyntaxError, err.Kind)
			assert.Equal(t, test.Message, err.Message)
		})
	}
}

// Printing a tree and parsing the output again must yield the same text.
func TestPrintRoundTrip(t *testing.T) {
	programs := []string{
		"a = 3 | (b = 1 | 2) | 4 | b;",
		"a[a] = 1 | 2;",
		"$A(a) { $B(b) { b | 3; }; B(a) | 2; }; A(0 | 1);",
		"result = 0; @(i: 1 | 3 | 4) { result = result | i; };",
		"?(null < a) { result = 1; };",
		"def x; x = () | 1; y = x[0] * (2 - 1) / 1 != 0;",
	}

	for _, program := range programs {
		t.Run(program, func(t *testing.T) {
			first, err := Parse(program, "test")
			require.Nil(t, err)

			second, err := Parse(first.String(), "test")
			require.Nil(t, err, "reparse failed for:\n%s", first.String())
			assert.Equal(t, first.String(), second.String())
		})
	}
}

func TestExamplesParse(t *testing.T) {
	files, err := os.ReadDir(EXAMPLE_DIR)
	require.NoError(t, err)

	for _, file := range files {
		t.Run(file.Name(), func(t *testing.T) {
			content, err := os.ReadFile(filepath.Join(EXAMPLE_DIR, file.Name()))
			require.NoError(t, err)

			_, parseErr := Parse(string(content), file.Name())
			assert.Nil(t, parseErr)
		})
	}
}

func FuzzParser(f *testing.F) {
	files, err := os.ReadDir(EXAMPLE_DIR)
	if err != nil {
		panic(err.Error())
	}

	for _, file := range files {
		content, err := os.ReadFile(fmt.Sprintf("%s/%s", EXAMPLE_DIR, file.Name()))
		if err != nil {
			panic(err.Error())
		}
		f.Add(string(content))
	}

	f.Fuzz(func(t *testing.T, input string) {
		l := lexer.NewLexer(input, t.Name())
		p := NewParser(l, t.Name())

		tree, err := p.Parse()
		if err != nil {
			return
		}

		// every accepted program prints back to a program with the same shape
		again, err := Parse(tree.String(), t.Name())
		if err != nil {
			t.Fatalf("printed program failed to parse: %s\n%s", err, tree.String())
		}
		if again.String() != tree.String() {
			t.Fatalf("print is not stable:\n%s\n---\n%s", tree.String(), again.String())
		}
	})
}
