package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"go.uber.org/zap"
)

// Result describes how a finished process exited
type Result struct {
	ExitCode int
	Duration time.Duration
}

// Success reports a zero exit status
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes commands one at a time with inherited output streams.
// It never reads collaborator output.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// Echo receives the command line before each run
	Echo   io.Writer
	Logger *zap.Logger
}

// NewRunner creates a runner bound to the process's own streams
func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Echo:   os.Stdout,
		Logger: logger,
	}
}

// Run starts cmd and waits for it. A non-zero exit is reported in Result,
// not as an error; errors mean the process could not be run at all.
func (r *Runner) Run(ctx context.Context, cmd Command) (Result, error) {
	line := cmd.String()
	if r.Echo != nil {
		fmt.Fprintf(r.Echo, "\n[%s] %s\n", cmd.Name, line)
	}
	r.Logger.Info("Starting collaborator", zap.String("name", cmd.Name), zap.String("command", line))

	c := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	c.Stdin = r.Stdin
	c.Stdout = r.Stdout
	c.Stderr = r.Stderr

	start := time.Now()
	err := c.Run()
	res := Result{ExitCode: 0, Duration: time.Since(start)}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r.Logger.Warn("Collaborator did not start", zap.String("name", cmd.Name), zap.Error(err))
			res.ExitCode = -1
			if errors.Is(err, exec.ErrNotFound) {
				return res, fmt.Errorf("%w: %s: %v", ErrNotFound, cmd.Program, err)
			}
			return res, fmt.Errorf("start %s: %w", cmd.Program, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}

	r.Logger.Info("Collaborator finished",
		zap.String("name", cmd.Name),
		zap.Int("exit_code", res.ExitCode),
		zap.Duration("duration", res.Duration))
	return res, nil
}
