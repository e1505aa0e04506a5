package herang

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/herang-lang/herang/herang/builtin"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const EXAMPLE_DIR = "../examples/"

func testOptions(input string) (Options, *bytes.Buffer) {
	output := new(bytes.Buffer)
	return Options{
		Filename: "test",
		Host:     builtin.NewStreamHost(strings.NewReader(input), output),
	}, output
}

func TestRunKeyboard(t *testing.T) {
	options, output := testOptions("")

	program := `
		a = cyber(20);
		a[1 | 3 | 5 | 7 | 9 | 11 | 13 | 15 | 17 | 19] = 1 | 2;
		print(a);
	`
	res, err := Run(program, options)
	require.Nil(t, err)
	assert.Equal(t, 20, res.Len())
	assert.Equal(t, "(1 | 0 | 2 | 0 | 1 | 0 | 2 | 0 | 1 | 0 | 2 | 0 | 1 | 0 | 2 | 0 | 1 | 0 | 2 | 0)\n", output.String())
}

func TestEvalPersistsBindings(t *testing.T) {
	options, output := testOptions("hello  \n")
	env := NewEnvironment(options.Host)

	_, err := Eval("$shout(x) { sprint(trim(x)); };", env, options)
	require.Nil(t, err)

	res, err := Eval("shout(readline());", env, options)
	require.Nil(t, err)
	assert.Equal(t, builtin.FromText("hello"), res)
	assert.Equal(t, "hello\n", output.String())
}

func TestRunError(t *testing.T) {
	options, _ := testOptions("")

	_, err := Run("a = 1; b = a | c;", options)
	require.NotNil(t, err)
	assert.Equal(t, errors.UndefinedVariable, err.Kind)
	assert.Equal(t, "test", err.Span.Filename)

	_, err = Run("a = ;", options)
	require.NotNil(t, err)
	assert.Equal(t, errors.SyntaxError, err.Kind)
}

func TestDefaultFilename(t *testing.T) {
	_, err := Parse("?", Options{})
	require.NotNil(t, err)
	assert.Equal(t, DefaultFilename, err.Span.Filename)
}

func TestGenCode(t *testing.T) {
	options, _ := testOptions("")

	code, err := GenCode("a = 1 | 2; print(a + a);", options)
	require.Nil(t, err)
	assert.Equal(t, "u8 v_a;\n(v_a = (u8({1}) | u8({2})));\nreturn f_print((v_a + v_a));\n", code)

	// generation never runs the program
	_, err = GenCode("x = readline(); print(x);", options)
	require.Nil(t, err)

	_, err = GenCode("print(y);", options)
	require.NotNil(t, err)
	assert.Equal(t, errors.UndefinedVariable, err.Kind)
}

func TestStandalone(t *testing.T) {
	options, _ := testOptions("")

	program, err := Standalone("print(1);", options)
	require.Nil(t, err)
	assert.Contains(t, program, "class u8")
	assert.Contains(t, program, "u8 herang_main() {\n    return f_print(u8({1}));\n}\n")
	assert.Contains(t, program, "int main() {")
}

func TestExamples(t *testing.T) {
	files, err := os.ReadDir(EXAMPLE_DIR)
	require.NoError(t, err)

	for _, file := range files {
		if filepath.Ext(file.Name()) != ".hr" {
			continue
		}

		t.Run(file.Name(), func(t *testing.T) {
			program, err := os.ReadFile(EXAMPLE_DIR + file.Name())
			require.NoError(t, err)

			options, _ := testOptions("")
			options.Filename = file.Name()

			_, evalErr := Run(string(program), options)
			require.Nil(t, evalErr, fmt.Sprintf("evaluation failed: %v", evalErr))

			_, genErr := GenCode(string(program), options)
			require.Nil(t, genErr, fmt.Sprintf("code generation failed: %v", genErr))
		})
	}
}

func TestRunResult(t *testing.T) {
	options, _ := testOptions("")

	res, err := Run("s = 0; @(i: 1 | 2 | 3) { s = s + i; }; s;", options)
	require.Nil(t, err)
	assert.Equal(t, value.New(6), res)
}
