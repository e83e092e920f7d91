package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNotFound is returned when a command's binary is not on PATH.
var ErrNotFound = errors.New("executable not found")

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env is applied on top of the inherited process environment.
	Env Env
}

// String renders the command line the way a user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes commands.
type Runner interface {
	// Run executes cmd with inherited stdio and returns its exit code. A
	// non-nil error means the process could not be started at all.
	Run(ctx context.Context, cmd Command) (int, error)
	// Output executes cmd and returns its trimmed stdout.
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Command Command
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%q exited with code %d", e.Command.String(), e.Code)
}

// RunChecked runs cmd and turns a non-zero exit into an *ExitError.
func RunChecked(ctx context.Context, r Runner, cmd Command) error {
	code, err := r.Run(ctx, cmd)
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Command: cmd, Code: code}
	}
	return nil
}

// ExecRunner runs commands as real child processes.
type ExecRunner struct {
	// Stdin, Stdout and Stderr can be set for testing; they default to the
	// process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return -1, err
	}
	cmd.Stdin = r.stdin()
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", c.Name, err)
	}
	return 0, nil
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	cmd, err := r.command(ctx, c)
	if err != nil {
		return "", err
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Command: c, Code: exitErr.ExitCode()}
		}
		return "", fmt.Errorf("running %s: %w", c.Name, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) command(ctx context.Context, c Command) (*exec.Cmd, error) {
	bin, err := c.Env.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("could not find %q on PATH: %w", c.Name, ErrNotFound)
	}
	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env.Environ(os.Environ(), "")
	return cmd, nil
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
