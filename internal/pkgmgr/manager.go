package pkgmgr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/forge-labs/forge/internal/runtime"
)

// Supported package managers.
const (
	NPM  = "npm"
	PNPM = "pnpm"
	Yarn = "yarn"
	Bun  = "bun"
)

// Fallback ships with Node.js and is assumed to always be present.
const Fallback = NPM

// Priority is the order used when the requested manager is unavailable.
var Priority = []string{PNPM, NPM, Yarn, Bun}

// Supported reports whether name is one of the known managers.
func Supported(name string) bool { return slices.Contains(Priority, name) }

// Manager describes one package manager on the host.
type Manager struct {
	Name      string
	Available bool
	Version   string
}

// Member is one workspace package.
type Member struct {
	// Dir is the slash-separated path from the workspace root.
	Dir string
	// Package is the member's package.json name.
	Package string
}

func (m Manager) name() string {
	if Supported(m.Name) {
		return m.Name
	}
	return Fallback
}

// InstallCommand installs the dependencies of the project in dir.
func (m Manager) InstallCommand(dir string) runtime.Command {
	c := runtime.Command{Name: m.name(), Dir: dir}
	if m.name() != Yarn {
		c.Args = []string{"install"}
	}
	return c
}

// AddDevCommand adds pkgs as development dependencies of the project in dir.
func (m Manager) AddDevCommand(dir string, pkgs ...string) runtime.Command {
	var args []string
	switch m.name() {
	case NPM:
		args = []string{"i", "-D"}
	case Bun:
		args = []string{"add", "-d"}
	default:
		args = []string{"add", "-D"}
	}
	return runtime.Command{Name: m.name(), Args: append(args, pkgs...), Dir: dir}
}

// CreateCommand runs the create-<starter> scaffolder into target, passing
// flags through to the starter.
func (m Manager) CreateCommand(dir, starter, target string, flags ...string) runtime.Command {
	var c runtime.Command
	switch m.name() {
	case NPM:
		c = runtime.Command{Name: NPM, Args: []string{"create", starter + "@latest", target}}
		if len(flags) > 0 {
			c.Args = append(c.Args, "--")
		}
	case PNPM:
		c = runtime.Command{Name: PNPM, Args: []string{"create", starter + "@latest", target}}
	case Yarn:
		c = runtime.Command{Name: Yarn, Args: []string{"create", starter, target}}
	case Bun:
		c = runtime.Command{Name: "bunx", Args: []string{"create-" + starter + "@latest", target}}
	}
	c.Args = append(c.Args, flags...)
	c.Dir = dir
	return c
}

// RunPrefix is how a package script is invoked from a shell.
func (m Manager) RunPrefix() string {
	switch m.name() {
	case NPM:
		return "npm run"
	case Bun:
		return "bun run"
	default:
		return m.name()
	}
}

// RunScript renders the shell line that runs script.
func (m Manager) RunScript(script string) string {
	return m.RunPrefix() + " " + script
}

// InstallLine renders the shell line that installs dependencies.
func (m Manager) InstallLine() string {
	return m.InstallCommand("").String()
}

// UsesWorkspaceFile reports whether workspace membership lives in a
// separate file (pnpm-workspace.yaml) rather than package.json.
func (m Manager) UsesWorkspaceFile() bool { return m.name() == PNPM }

// WorkspaceDevDependencies are the root dev dependencies the aggregate
// scripts rely on.
func (m Manager) WorkspaceDevDependencies() map[string]string {
	switch m.name() {
	case NPM, Yarn:
		return map[string]string{"npm-run-all": "^4.1.5"}
	default:
		return nil
	}
}

// MemberScript runs script inside one workspace member.
func (m Manager) MemberScript(member Member, script string) string {
	switch m.name() {
	case NPM:
		return fmt.Sprintf("npm run -w %s %s", member.Dir, script)
	case PNPM:
		return fmt.Sprintf("pnpm --filter ./%s %s", member.Dir, script)
	case Yarn:
		return fmt.Sprintf("yarn workspace %s %s", member.Package, script)
	default:
		return fmt.Sprintf("bun run --filter %s %s", member.Package, script)
	}
}

// AggregateScript runs script across all members. Dev servers run in
// parallel; everything else runs one member at a time. For npm and yarn
// the aggregate fans out to the per-member "<script>:<member>" entries.
func (m Manager) AggregateScript(script, pattern string, parallel bool) string {
	switch m.name() {
	case PNPM:
		if parallel {
			return fmt.Sprintf("pnpm -r --parallel --filter %q %s", "./"+pattern, script)
		}
		return fmt.Sprintf("pnpm -r --filter %q %s", "./"+pattern, script)
	case Bun:
		return fmt.Sprintf("bun run --filter %q %s", "./"+pattern, script)
	default:
		mode := "--serial"
		if parallel {
			mode = "--parallel"
		}
		return "npm-run-all " + mode + " " + script + ":*"
	}
}

// Describe renders a short human summary, e.g. "pnpm 9.12.0".
func (m Manager) Describe() string {
	return strings.TrimSpace(m.Name + " " + m.Version)
}
