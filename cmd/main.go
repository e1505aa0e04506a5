package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/herang-lang/herang/herang"
	"github.com/urfave/cli/v2"
)

const programName = "herang"
const version = "latest"

func fileValidator(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("Expected exactly one argument <file>")
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("[%s] ", programName))

	// nolint:exhaustruct
	app := &cli.App{
		Name:     programName,
		Usage:    "Interpret herang programs or translate them into C++",
		Version:  version,
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "The herang Authors",
				Email: "",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Log the duration of each stage",
				Aliases: []string{"v"},
				EnvVars: []string{"HERANG_VERBOSE"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "Disable colored output",
				EnvVars: []string{"HERANG_NO_COLOR", "NO_COLOR"},
			},
		},
		Before: func(ctx *cli.Context) error {
			if ctx.Bool("no-color") {
				color.NoColor = true
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "Evaluate a herang file",
				ArgsUsage: "[file]",
				Args:      true,
				Before:    fileValidator,
				Action: func(ctx *cli.Context) error {
					filename := ctx.Args().First()
					program, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					start := time.Now()
					_, runErr := herang.Run(string(program), herang.Options{Filename: filename})
					verbose(ctx, "Evaluation finished: elapsed: %v", time.Since(start))

					if runErr != nil {
						return report(runErr, string(program))
					}
					return nil
				},
			},
			{
				Name:    "repl",
				Aliases: []string{"r"},
				Usage:   "Start an interactive session",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "history",
						Usage:   "File in which the input history is kept",
						EnvVars: []string{"HERANG_HISTORY"},
					},
				},
				Action: func(ctx *cli.Context) error {
					return newRepl(ctx.String("history")).run()
				},
			},
			{
				Name:      "emit",
				Usage:     "Translate a herang file into C++",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "standalone",
						Usage:   "If set, a complete program including the prelude is emitted",
						Aliases: []string{"s"},
					},
					&cli.StringFlag{
						Name:    "output",
						Usage:   "Write the generated code to this file instead of stdout",
						Aliases: []string{"o"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					filename := ctx.Args().First()
					program, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					options := herang.Options{Filename: filename}
					start := time.Now()

					var code string
					var genErr error
					if ctx.Bool("standalone") {
						code, genErr = wrap(herang.Standalone(string(program), options))
					} else {
						code, genErr = wrap(herang.GenCode(string(program), options))
					}
					verbose(ctx, "Code generation finished: elapsed: %v", time.Since(start))

					if genErr != nil {
						return report(genErr, string(program))
					}

					if output := ctx.String("output"); output != "" {
						return os.WriteFile(output, []byte(code), 0o644)
					}
					fmt.Print(code)
					return nil
				},
			},
			{
				Name:      "ast",
				Usage:     "Print the syntax tree of a herang file",
				ArgsUsage: "[file]",
				Args:      true,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "dump",
						Usage:   "If set, the raw node structures are printed",
						Aliases: []string{"d"},
					},
				},
				Before: fileValidator,
				Action: func(ctx *cli.Context) error {
					filename := ctx.Args().First()
					program, err := os.ReadFile(filename)
					if err != nil {
						return err
					}

					start := time.Now()
					tree, parseErr := herang.Parse(string(program), herang.Options{Filename: filename})
					verbose(ctx, "Parsing finished: elapsed: %v", time.Since(start))

					if parseErr != nil {
						return report(parseErr, string(program))
					}

					if ctx.Bool("dump") {
						spew.Config.DisablePointerAddresses = true
						spew.Dump(tree)
					} else {
						fmt.Println(tree)
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
