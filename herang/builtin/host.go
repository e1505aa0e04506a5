package builtin

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"
)

// Host provides the side effects builtins need. It decouples the language
// from any concrete terminal or process.
type Host interface {
	// Writes the given string (produced by a print function for instance) to any arbitrary sink
	WriteString(output string) error
	// Reads one line of input without its line terminator. ok is false at the end of input.
	ReadLine() (line string, ok bool, err error)
	Now() time.Time
}

// StreamHost is a Host backed by an input and an output stream.
type StreamHost struct {
	reader *bufio.Reader
	writer io.Writer
	clock  func() time.Time
}

func NewStreamHost(input io.Reader, output io.Writer) *StreamHost {
	return &StreamHost{
		reader: bufio.NewReader(input),
		writer: output,
		clock:  time.Now,
	}
}

// NewStdHost returns a host connected to the standard streams of the process.
func NewStdHost() *StreamHost {
	return NewStreamHost(os.Stdin, os.Stdout)
}

// WithClock replaces the time source, which is mostly useful in tests.
func (self *StreamHost) WithClock(clock func() time.Time) *StreamHost {
	self.clock = clock
	return self
}

func (self *StreamHost) WriteString(output string) error {
	_, err := io.WriteString(self.writer, output)
	return err
}

func (self *StreamHost) ReadLine() (string, bool, error) {
	line, err := self.reader.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", false, nil
		}
		err = nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimRight(line, "\r\n"), true, nil
}

func (self *StreamHost) Now() time.Time { return self.clock() }
