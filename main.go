// Package main provides the entry point for cdk2env.
//
// cdk2env converts the outputs file written by `cdk deploy --outputs-file`
// into a shell script of export statements that can be sourced.
//
// Usage:
//
//	cdk2env [input] [output] [flags]
//
// For detailed usage information, run: cdk2env --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"cdk2env/cmd"
	"cdk2env/internal/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprint(os.Stderr, errors.FormatErrorForUser(err))
		cancel()
		os.Exit(1)
	}
}
