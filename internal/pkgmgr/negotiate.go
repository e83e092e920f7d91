package pkgmgr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/platform"
	"github.com/forge-labs/forge/internal/runtime"
)

const (
	bunInstallPS1 = "Invoke-WebRequest -UseBasicParsing https://bun.sh/install.ps1 | Invoke-Expression"
	bunInstallSh  = "curl -fsSL https://bun.sh/install | bash"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(title string, def bool) (bool, error)
}

// Result is the outcome of negotiation.
type Result struct {
	Manager Manager
	// Env carries PATH additions made by a self-install. Every later
	// subprocess must run under it.
	Env runtime.Env
	// Installed is set when the manager was installed during this run.
	Installed bool
	// FellBack is set when the requested manager could not be used.
	FellBack bool
}

// Negotiator guarantees a usable package manager.
type Negotiator struct {
	Runner  runtime.Runner
	Confirm Confirmer
	// LookPath reports whether name resolves under env. Defaults to
	// env.Has.
	LookPath func(name string, env runtime.Env) bool
	// HomeDir is where self-installers put per-user binaries. Defaults to
	// the current user's home directory.
	HomeDir string
	// GOOS overrides the target platform for install procedures.
	GOOS   string
	Logger *zap.Logger
}

func (n *Negotiator) logger() *zap.Logger {
	if n.Logger == nil {
		return zap.NewNop()
	}
	return n.Logger
}

func (n *Negotiator) has(name string, env runtime.Env) bool {
	if n.LookPath != nil {
		return n.LookPath(name, env)
	}
	return env.Has(name)
}

// Detect reports the availability of every supported manager, in
// priority order.
func (n *Negotiator) Detect(env runtime.Env) []Manager {
	out := make([]Manager, 0, len(Priority))
	for _, name := range Priority {
		out = append(out, Manager{Name: name, Available: n.has(name, env)})
	}
	return out
}

// Versions fills in the version of each available manager.
func (n *Negotiator) Versions(ctx context.Context, managers []Manager, env runtime.Env) []Manager {
	out := make([]Manager, len(managers))
	for i, m := range managers {
		out[i] = m
		if !m.Available {
			continue
		}
		if v, err := runtime.Version(ctx, n.Runner, m.Name, env); err == nil {
			out[i].Version = v
		}
	}
	return out
}

// Negotiate returns a usable manager, preferring preferred. When it is
// missing and interactive is set, the user is offered a self-install;
// otherwise, or when the install fails, negotiation falls back to npm.
// The only error is a failed or cancelled confirmation prompt.
func (n *Negotiator) Negotiate(ctx context.Context, preferred string, interactive, dryRun bool) (Result, error) {
	log := n.logger()
	var env runtime.Env

	if !Supported(preferred) {
		log.Warn(fmt.Sprintf("Unknown package manager %q; using %s.", preferred, Fallback))
		preferred = Fallback
	}
	if n.has(preferred, env) {
		return Result{Manager: Manager{Name: preferred, Available: true}}, nil
	}

	res := Result{}
	pm := preferred
	switch {
	case preferred == Fallback:
		// Nothing to install; the priority check below picks a substitute.
	case interactive && n.Confirm != nil:
		title := fmt.Sprintf("%s is not installed on this system. Do you want me to install it now?", pm)
		ok, err := n.Confirm.Confirm(title, pm == PNPM || pm == Yarn)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			log.Warn(fmt.Sprintf("Using %s instead of %s (not installed).", Fallback, pm))
			pm = Fallback
			res.FellBack = true
			break
		}
		next, installed := n.install(ctx, pm, env, dryRun)
		if !installed {
			log.Warn(fmt.Sprintf("Could not install %s automatically. Falling back to %s.", pm, Fallback))
			pm = Fallback
			res.FellBack = true
			break
		}
		env = next
		res.Installed = true
	default:
		log.Warn(fmt.Sprintf("Using %s instead of %s (not installed).", Fallback, pm))
		pm = Fallback
		res.FellBack = true
	}

	if !n.has(pm, env) {
		pm = n.firstAvailable(env)
		res.FellBack = pm != preferred
		res.Installed = false
	}

	res.Manager = Manager{Name: pm, Available: n.has(pm, env)}
	res.Env = env
	return res, nil
}

// firstAvailable applies Priority, ending at Fallback.
func (n *Negotiator) firstAvailable(env runtime.Env) string {
	for _, name := range Priority {
		if n.has(name, env) {
			return name
		}
	}
	return Fallback
}

// install runs the manager-specific install procedure. It reports success
// and the environment the manager can be found under.
func (n *Negotiator) install(ctx context.Context, pm string, env runtime.Env, dryRun bool) (runtime.Env, bool) {
	switch pm {
	case PNPM, Yarn:
		tag := "latest"
		if pm == Yarn {
			tag = "stable"
		}
		if n.has("corepack", env) {
			ok := n.run(ctx, runtime.Command{Name: "corepack", Args: []string{"enable"}, Env: env}, dryRun) &&
				n.run(ctx, runtime.Command{Name: "corepack", Args: []string{"prepare", pm + "@" + tag, "--activate"}, Env: env}, dryRun)
			return env, ok
		}
		return env, n.run(ctx, runtime.Command{Name: NPM, Args: []string{"install", "-g", pm}, Env: env}, dryRun)
	case Bun:
		cmd := runtime.Command{Name: "bash", Args: []string{"-c", bunInstallSh}, Env: env}
		if platform.IsWindows(n.GOOS) {
			cmd = runtime.Command{
				Name: "powershell",
				Args: []string{"-NoProfile", "-ExecutionPolicy", "Bypass", "-Command", bunInstallPS1},
				Env:  env,
			}
		}
		if !n.run(ctx, cmd, dryRun) {
			return env, false
		}
		if dryRun {
			return env, true
		}
		bunDir := filepath.Join(n.homeDir(), ".bun", "bin")
		if _, ok := platform.FindExecutable(bunDir, Bun, n.GOOS); ok {
			env = env.PrependPath(bunDir)
		}
		return env, true
	default:
		// npm comes with Node.js.
		return env, true
	}
}

func (n *Negotiator) run(ctx context.Context, cmd runtime.Command, dryRun bool) bool {
	log := n.logger()
	if dryRun {
		log.Info("[dry-run] " + cmd.String())
		return true
	}
	log.Info("Running " + cmd.String())
	code, err := n.Runner.Run(ctx, cmd)
	if err != nil {
		log.Warn("Install step failed", zap.String("command", cmd.String()), zap.Error(err))
		return false
	}
	if code != 0 {
		log.Warn("Install step failed", zap.String("command", cmd.String()), zap.Int("exit", code))
		return false
	}
	return true
}

func (n *Negotiator) homeDir() string {
	if n.HomeDir != "" {
		return n.HomeDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
