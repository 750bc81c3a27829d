// Command horizon solves time-bounded planning puzzles from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/horizon/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx)
	stop()
	os.Exit(code)
}
