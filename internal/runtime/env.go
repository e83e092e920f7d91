package runtime

import (
	"os/exec"
	"slices"
	"strings"

	"github.com/forge-labs/forge/internal/platform"
)

// Env is an explicit patch over the inherited process environment. The
// process's own environment is never mutated; child processes receive the
// patched copy through Environ.
type Env struct {
	prepend []string
}

// PrependPath returns a copy of e with dir placed in front of PATH.
// Adding a directory that is already present is a no-op.
func (e Env) PrependPath(dir string) Env {
	if dir == "" || slices.Contains(e.prepend, dir) {
		return e
	}
	next := make([]string, 0, len(e.prepend)+1)
	next = append(next, dir)
	next = append(next, e.prepend...)
	return Env{prepend: next}
}

// PathDirs returns the directories e adds to PATH, highest priority first.
func (e Env) PathDirs() []string {
	return slices.Clone(e.prepend)
}

// IsZero reports whether e leaves the environment untouched.
func (e Env) IsZero() bool { return len(e.prepend) == 0 }

// Environ applies e to base, which is usually os.Environ(). The PATH key is
// matched case-insensitively on Windows, where it is often spelled "Path".
func (e Env) Environ(base []string, goos string) []string {
	out := slices.Clone(base)
	if e.IsZero() {
		return out
	}
	key := "PATH"
	idx := -1
	for i, kv := range out {
		k, _, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		if k == "PATH" || (platform.IsWindows(goos) && strings.EqualFold(k, "PATH")) {
			key, idx = k, i
			break
		}
	}
	var current []string
	if idx >= 0 {
		_, v, _ := strings.Cut(out[idx], "=")
		current = platform.SplitPath(v, goos)
	}
	dirs := append(e.PathDirs(), current...)
	return setEnv(out, key, platform.JoinPath(dirs, goos))
}

// LookPath searches the directories e prepends before falling back to the
// inherited PATH.
func (e Env) LookPath(name string) (string, error) {
	for _, dir := range e.prepend {
		if p, ok := platform.FindExecutable(dir, name, ""); ok {
			return p, nil
		}
	}
	return exec.LookPath(name)
}

// Has reports whether name resolves under e.
func (e Env) Has(name string) bool {
	_, err := e.LookPath(name)
	return err == nil
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
