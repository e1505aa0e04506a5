package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/herang-lang/herang/herang"
	"github.com/herang-lang/herang/herang/builtin"
	"github.com/herang-lang/herang/herang/diagnostic"
	"github.com/herang-lang/herang/herang/environment"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

const prompt = "herang> "
const continuationPrompt = "   ...> "

type repl struct {
	env         *environment.Environment
	options     herang.Options
	historyPath string
	inputs      uint
	out         io.Writer
	errOut      io.Writer
}

func newRepl(historyPath string) *repl {
	host := builtin.NewStdHost()
	return &repl{
		env:         herang.NewEnvironment(host),
		options:     herang.Options{Host: host},
		historyPath: historyPath,
		out:         os.Stdout,
		errOut:      os.Stderr,
	}
}

func (self *repl) run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return self.runPiped(os.Stdin)
	}
	return self.runInteractive()
}

// runInteractive reads input using line editing and history.
func (self *repl) runInteractive() error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetWordCompleter(self.complete)

	if self.historyPath != "" {
		if file, err := os.Open(self.historyPath); err == nil {
			if _, err := line.ReadHistory(file); err != nil {
				log.Printf("Could not read history: %s", err.Error())
			}
			file.Close()
		}
		defer self.saveHistory(line)
	}

	fmt.Printf("%s %s, exit using Ctrl+D\n", color.New(color.Bold).Sprint(programName), version)

	for {
		input, err := self.readInteractive(line)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(strings.ReplaceAll(input, "\n", " "))
		self.eval(input)
	}
}

// readInteractive keeps prompting while curly braces are unbalanced.
func (self *repl) readInteractive(line *liner.State) (string, error) {
	input, err := line.Prompt(prompt)
	if err != nil {
		return "", err
	}

	for openBlocks(input) > 0 {
		next, err := line.Prompt(continuationPrompt)
		if err != nil {
			return "", err
		}
		input += "\n" + next
	}

	return input, nil
}

func (self *repl) saveHistory(line *liner.State) {
	file, err := os.Create(self.historyPath)
	if err != nil {
		log.Printf("Could not write history: %s", err.Error())
		return
	}
	defer file.Close()

	if _, err := line.WriteHistory(file); err != nil {
		log.Printf("Could not write history: %s", err.Error())
	}
}

// runPiped evaluates each line of input, joining lines while blocks are open.
func (self *repl) runPiped(input io.Reader) error {
	scanner := bufio.NewScanner(input)
	pending := ""

	for scanner.Scan() {
		if pending != "" {
			pending += "\n"
		}
		pending += scanner.Text()

		if openBlocks(pending) > 0 || strings.TrimSpace(pending) == "" {
			continue
		}
		self.eval(pending)
		pending = ""
	}

	if strings.TrimSpace(pending) != "" {
		self.eval(pending)
	}

	return scanner.Err()
}

func (self *repl) eval(input string) {
	self.inputs++
	self.options.Filename = fmt.Sprintf("<input %d>", self.inputs)

	// a missing trailing semicolon is forgiven in interactive use
	if !strings.HasSuffix(strings.TrimSpace(input), ";") {
		input += ";"
	}

	res, err := herang.Eval(input, self.env, self.options)
	if err != nil {
		fmt.Fprintln(self.errOut, diagnostic.FromError(err).Display(input))
		return
	}

	fmt.Fprintln(self.out, color.New(color.FgGreen).Sprint(res))
}

func (self *repl) complete(line string, pos int) (string, []string, string) {
	head := line[:pos]
	start := strings.LastIndexFunc(head, func(r rune) bool {
		return !(r == '_' || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') || ('0' <= r && r <= '9'))
	}) + 1
	word := head[start:]

	candidates := make([]string, 0)
	if word == "" {
		return head, candidates, line[pos:]
	}

	for _, name := range append(self.env.VarNames(), self.env.FuncNames()...) {
		if strings.HasPrefix(name, word) {
			candidates = append(candidates, name)
		}
	}

	return head[:start], candidates, line[pos:]
}

func openBlocks(input string) int {
	return strings.Count(input, "{") - strings.Count(input, "}")
}
