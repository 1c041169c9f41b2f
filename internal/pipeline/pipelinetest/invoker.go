// Package pipelinetest provides a scripted stand-in for the collaborator
// runner.
package pipelinetest

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/ppiankov/dcntforecast/internal/invoke"
	"github.com/ppiankov/dcntforecast/internal/model"
)

// flags whose values are files a successful collaborator writes
var outputFlags = map[string]bool{
	"--out":       true,
	"--out-clean": true,
	"--saida":     true,
}

// Invoker answers each Run with the next scripted exit code. Successful
// runs write placeholder files for every output flag. Once the script is
// used up every call succeeds.
type Invoker struct {
	mu       sync.Mutex
	codes    []int
	Commands []invoke.Command
}

// NewInvoker scripts the exit codes of successive runs
func NewInvoker(codes ...int) *Invoker {
	return &Invoker{codes: codes}
}

func (f *Invoker) Run(_ context.Context, cmd invoke.Command) (invoke.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.Commands = append(f.Commands, cmd)
	code := 0
	if len(f.codes) > 0 {
		code = f.codes[0]
		f.codes = f.codes[1:]
	}
	if code == 0 {
		if err := writeOutputs(cmd.Args); err != nil {
			return invoke.Result{ExitCode: -1}, err
		}
	}
	return invoke.Result{ExitCode: code}, nil
}

// Calls returns how many commands ran
func (f *Invoker) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Commands)
}

// Flag returns the value following name in the i-th command
func (f *Invoker) Flag(i int, name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FlagValue(f.Commands[i].Args, name)
}

// FlagValue returns the argument after name, or "" when absent
func FlagValue(args []string, name string) string {
	for i := 0; i < len(args)-1; i++ {
		if args[i] == name {
			return args[i+1]
		}
	}
	return ""
}

func writeOutputs(args []string) error {
	for i := 0; i < len(args)-1; i++ {
		if !outputFlags[args[i]] {
			continue
		}
		path := args[i+1]
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte("ok\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}

// Config returns the default configuration with both collaborators pointed
// at scripts created in dir and run by sh, so checks pass on any POSIX
// host. Output folders go to dir/out.
func Config(dir string) (*model.Config, error) {
	cfg := model.DefaultConfig()
	for _, c := range []struct {
		target *model.CollaboratorConfig
		script string
	}{
		{&cfg.Extractor, "extract.R"},
		{&cfg.Forecaster, "forecast.py"},
	} {
		path := filepath.Join(dir, c.script)
		if err := os.WriteFile(path, []byte("exit 0\n"), 0644); err != nil {
			return nil, err
		}
		*c.target = model.CollaboratorConfig{Interpreter: "sh", Script: path}
	}
	cfg.Output.Dir = filepath.Join(dir, "out")
	return cfg, nil
}
