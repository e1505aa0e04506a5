package main

import (
	"fmt"
	"log"
	"os"

	"github.com/herang-lang/herang/herang/diagnostic"
	"github.com/herang-lang/herang/herang/errors"
	"github.com/urfave/cli/v2"
)

func verbose(ctx *cli.Context, format string, args ...any) {
	if ctx.Bool("verbose") {
		log.Printf(format, args...)
	}
}

// wrap turns a typed error into an error interface value without producing a
// non-nil interface holding a nil pointer.
func wrap(code string, err *errors.Error) (string, error) {
	if err != nil {
		return "", err
	}
	return code, nil
}

// report prints err as a diagnostic and returns an error that makes the
// process exit with a non-zero code.
func report(err error, program string) error {
	langErr, ok := err.(*errors.Error)
	if !ok {
		return err
	}

	fmt.Fprintln(os.Stderr, diagnostic.FromError(langErr).Display(program))
	return cli.Exit("", 1)
}
