// Package invoke launches external collaborators with the operator's
// terminal attached and reports how they exited.
package invoke

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound means a script or interpreter cannot be launched
var ErrNotFound = errors.New("collaborator not found")

// Collaborator is an external stage: an interpreter running a script
type Collaborator struct {
	Name            string // shown in the echoed command line, e.g. "R"
	Interpreter     string
	InterpreterArgs []string
	Script          string
}

// Check verifies the script exists and the interpreter is on PATH
func (c Collaborator) Check() error {
	if c.Script == "" {
		return fmt.Errorf("%w: %s script path is empty", ErrNotFound, c.Name)
	}
	info, err := os.Stat(c.Script)
	if err != nil {
		return fmt.Errorf("%w: %s script %s: %v", ErrNotFound, c.Name, c.Script, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s script %s is a directory", ErrNotFound, c.Name, c.Script)
	}
	if _, err := exec.LookPath(c.Interpreter); err != nil {
		return fmt.Errorf("%w: %s interpreter %q: %v", ErrNotFound, c.Name, c.Interpreter, err)
	}
	return nil
}

// Command builds the full argument vector: interpreter args, script, args
func (c Collaborator) Command(args ...string) Command {
	argv := make([]string, 0, len(c.InterpreterArgs)+1+len(args))
	argv = append(argv, c.InterpreterArgs...)
	argv = append(argv, c.Script)
	argv = append(argv, args...)
	return Command{Name: c.Name, Program: c.Interpreter, Args: argv}
}

// Command is one process invocation
type Command struct {
	Name    string
	Program string
	Args    []string
}

// String renders the command line, quoting arguments that contain spaces
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Program)
	for _, a := range c.Args {
		b.WriteByte(' ')
		if strings.Contains(a, " ") {
			b.WriteByte('"')
			b.WriteString(a)
			b.WriteByte('"')
		} else {
			b.WriteString(a)
		}
	}
	return b.String()
}
