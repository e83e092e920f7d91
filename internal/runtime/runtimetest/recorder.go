// Package runtimetest provides a recording Runner for tests.
package runtimetest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/forge-labs/forge/internal/runtime"
)

// Recorder is a runtime.Runner that records every command instead of
// executing it.
type Recorder struct {
	mu       sync.Mutex
	commands []runtime.Command

	// ExitCodes maps a command line prefix (e.g. "npm install") to the exit
	// code Run reports for matching commands. Unmatched commands exit 0.
	ExitCodes map[string]int
	// Outputs maps a command line (e.g. "node --version") to its stdout.
	// Output fails with runtime.ErrNotFound for unmatched commands.
	Outputs map[string]string
	// Hook runs for each command passed to Run, before the exit code is
	// looked up. Tests use it to simulate side effects such as a create
	// starter writing files.
	Hook func(runtime.Command) error
}

var _ runtime.Runner = (*Recorder)(nil)

// Run implements runtime.Runner.
func (r *Recorder) Run(_ context.Context, cmd runtime.Command) (int, error) {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	hook := r.Hook
	r.mu.Unlock()

	if hook != nil {
		if err := hook(cmd); err != nil {
			return -1, err
		}
	}
	return r.exitCode(cmd), nil
}

// Output implements runtime.Runner.
func (r *Recorder) Output(_ context.Context, cmd runtime.Command) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, cmd)
	if out, ok := r.Outputs[cmd.String()]; ok {
		return out, nil
	}
	return "", fmt.Errorf("%s: %w", cmd.Name, runtime.ErrNotFound)
}

// Commands returns a copy of the recorded commands.
func (r *Recorder) Commands() []runtime.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]runtime.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Lines returns the recorded commands rendered as command lines.
func (r *Recorder) Lines() []string {
	cmds := r.Commands()
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}

// Ran reports whether a command line starting with prefix was recorded.
func (r *Recorder) Ran(prefix string) bool {
	for _, l := range r.Lines() {
		if strings.HasPrefix(l, prefix) {
			return true
		}
	}
	return false
}

func (r *Recorder) exitCode(cmd runtime.Command) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	line := cmd.String()
	best, code := -1, 0
	for prefix, c := range r.ExitCodes {
		if strings.HasPrefix(line, prefix) && len(prefix) > best {
			best, code = len(prefix), c
		}
	}
	return code
}
