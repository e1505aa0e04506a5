package builtin

import (
	"bytes"
	goErrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/herang-lang/herang/herang/environment"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/herang-lang/herang/herang/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, goErrors.New("output closed") }

func testHost(input string) (*StreamHost, *bytes.Buffer) {
	output := new(bytes.Buffer)
	host := NewStreamHost(strings.NewReader(input), output).WithClock(func() time.Time {
		return time.Unix(1700000000, 0)
	})
	return host, output
}

func invoke(t *testing.T, env *environment.Environment, name string, args ...value.Value) (value.Value, *errors.Error) {
	fn, found := env.GetFunc(name)
	require.True(t, found, "builtin %s is not registered", name)
	return fn.Invoke(errors.Span{}, args, env)
}

func TestRegister(t *testing.T) {
	host, _ := testHost("")
	env := environment.New()
	require.Nil(t, Register(env, host))
	assert.Equal(t, []string{"cyber", "len", "print", "readline", "slice", "sprint", "time", "trim"}, env.FuncNames())

	// registering twice into the same layer is rejected
	err := Register(env, host)
	require.NotNil(t, err)
	assert.Equal(t, errors.DuplicateFunctionDefinition, err.Kind)
}

func TestPrint(t *testing.T) {
	host, output := testHost("")
	env := environment.New()
	require.Nil(t, Register(env, host))

	res, err := invoke(t, env, "print", value.New(1, 2), value.Empty(), value.New(3))
	require.Nil(t, err)
	assert.Equal(t, value.New(3), res)
	assert.Equal(t, "(1 | 2) () (3)\n", output.String())

	_, err = invoke(t, env, "print")
	require.NotNil(t, err)
	assert.Equal(t, errors.ArityMismatch, err.Kind)
}

func TestPrintHostFailure(t *testing.T) {
	env := environment.New()
	require.Nil(t, Register(env, NewStreamHost(strings.NewReader(""), failingWriter{})))

	_, err := invoke(t, env, "print", value.New(1))
	require.NotNil(t, err)
	assert.Equal(t, errors.HostError, err.Kind)
	assert.Equal(t, "output closed", err.Message)
}

func TestSPrint(t *testing.T) {
	host, output := testHost("")
	env := environment.New()
	require.Nil(t, Register(env, host))

	hi := FromText("hi")
	res, err := invoke(t, env, "sprint", hi, FromText("ü"))
	require.Nil(t, err)
	assert.Equal(t, FromText("ü"), res)
	assert.Equal(t, "hi ü\n", output.String())

	_, err = invoke(t, env, "sprint", value.New(256))
	require.NotNil(t, err)
	assert.Equal(t, errors.TypeConversionFailure, err.Kind)

	_, err = invoke(t, env, "sprint", value.New(0xC3))
	require.NotNil(t, err)
	assert.Equal(t, errors.TypeConversionFailure, err.Kind)
}

func TestCyber(t *testing.T) {
	res, err := Cyber([]value.Value{value.New(5)})
	require.NoError(t, err)
	assert.Equal(t, value.New(0, 0, 0, 0, 0), res)

	res, err = Cyber([]value.Value{value.New(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Len())

	res, err = Cyber([]value.Value{value.Empty()})
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	_, err = Cyber([]value.Value{value.New(MaxAllocation + 1)})
	assert.Error(t, err)

	_, err = Cyber(nil)
	assert.Error(t, err)
}

func TestReadLine(t *testing.T) {
	host, _ := testHost("ab\r\n  c \nlast")
	env := environment.New()
	require.Nil(t, Register(env, host))

	line, err := invoke(t, env, "readline")
	require.Nil(t, err)
	assert.Equal(t, FromText("ab"), line)

	line, err = invoke(t, env, "readline")
	require.Nil(t, err)
	assert.Equal(t, FromText("  c "), line)

	trimmed, err := invoke(t, env, "trim", line)
	require.Nil(t, err)
	assert.Equal(t, FromText("c"), trimmed)

	line, err = invoke(t, env, "readline")
	require.Nil(t, err)
	assert.Equal(t, FromText("last"), line)

	line, err = invoke(t, env, "readline")
	require.Nil(t, err)
	assert.True(t, line.IsEmpty())
}

func TestTrim(t *testing.T) {
	res, err := Trim([]value.Value{value.New(' ', ' ', '\t')})
	require.NoError(t, err)
	assert.True(t, res.IsEmpty())

	res, err = Trim([]value.Value{value.New(0, ' ', 1)})
	require.NoError(t, err)
	assert.Equal(t, value.New(0, ' ', 1), res)
}

func TestLenAndSlice(t *testing.T) {
	val := value.New(10, 20, 30, 40)

	res, err := Len([]value.Value{val})
	require.NoError(t, err)
	assert.Equal(t, value.New(4), res)

	res, err = Slice([]value.Value{val, value.New(1), value.New(3)})
	require.NoError(t, err)
	assert.Equal(t, value.New(20, 30), res)

	// bounds are the sums of their values
	res, err = Slice([]value.Value{val, value.Empty(), value.New(1, 1, 2)})
	require.NoError(t, err)
	assert.Equal(t, val, res)

	_, err = Slice([]value.Value{val, value.New(3), value.New(2)})
	assert.Error(t, err)

	_, err = Slice([]value.Value{val, value.New(0), value.New(5)})
	assert.Error(t, err)

	_, err = Slice([]value.Value{val})
	assert.Error(t, err)
}

func TestTime(t *testing.T) {
	host, _ := testHost("")
	res, err := Time(host, nil)
	require.NoError(t, err)
	assert.Equal(t, value.New(1700000000), res)

	_, err = Time(host, []value.Value{value.New(1)})
	assert.Error(t, err)
}
