package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ppiankov/dcntforecast/internal/cli"
	"github.com/ppiankov/dcntforecast/internal/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		if errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "\naborted")
		} else {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
