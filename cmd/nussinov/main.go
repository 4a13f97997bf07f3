// Package main provides a CLI that folds an RNA sequence with the Nussinov
// algorithm and compares the result with an exact solver.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	nussinovcmd "github.com/katalvlaran/rnafold/internal/cmd/nussinov"
)

func main() {
	cfg, err := nussinovcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := nussinovcmd.Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		stop()
		exitf("Error: %v", err)
	}
}

// exitf prints to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
