package generate

import (
	"context"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/manifest"
	"github.com/forge-labs/forge/internal/pkgmgr"
	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/scaffold"
)

// Context carries everything a generator needs. A Context is scoped to one
// directory; Child derives the context for a workspace member.
type Context struct {
	Config  config.Configuration
	Manager pkgmgr.Manager
	// Env is the environment patch from package manager negotiation.
	Env    runtime.Env
	Runner runtime.Runner
	Files  *scaffold.Materializer
	Logger *zap.Logger

	// Root is the project root. Dir is the directory this context writes
	// to, equal to Root outside of a workspace.
	Root string
	Dir  string
	// Member is the slash-separated path of Dir below Root.
	Member string
}

// NewContext returns a context rooted at the configured project root.
func NewContext(cfg config.Configuration, pm pkgmgr.Manager, env runtime.Env, runner runtime.Runner, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	root := cfg.ProjectRoot()
	return &Context{
		Config:  cfg,
		Manager: pm,
		Env:     env,
		Runner:  runner,
		Files:   &scaffold.Materializer{Logger: logger},
		Logger:  logger,
		Root:    root,
		Dir:     root,
	}
}

// Child returns a copy of gc writing to the workspace member at rel.
func (gc *Context) Child(rel string) *Context {
	child := *gc
	child.Member = path.Join(gc.Member, rel)
	child.Dir = filepath.Join(gc.Root, filepath.FromSlash(child.Member))
	return &child
}

// InWorkspace reports whether gc writes a workspace member.
func (gc *Context) InWorkspace() bool { return gc.Member != "" }

// PackageName returns the project name, suffixed when generating a
// workspace member so member names never collide.
func (gc *Context) PackageName(suffix string) string {
	if gc.InWorkspace() && suffix != "" {
		return gc.Config.Name + "-" + suffix
	}
	return gc.Config.Name
}

func (gc *Context) logger() *zap.Logger {
	if gc.Logger == nil {
		return zap.NewNop()
	}
	return gc.Logger
}

// Run executes cmd in gc.Dir under the negotiated environment and fails on
// a non-zero exit. In dry-run the command is only logged.
func (gc *Context) Run(ctx context.Context, cmd runtime.Command) error {
	if cmd.Dir == "" {
		cmd.Dir = gc.Dir
	}
	if cmd.Env.IsZero() {
		cmd.Env = gc.Env
	}
	if gc.Config.DryRun {
		gc.logger().Info("[dry-run] "+cmd.String(), zap.String("dir", cmd.Dir))
		return nil
	}
	gc.logger().Info("Running "+cmd.String(), zap.String("dir", cmd.Dir))
	return runtime.RunChecked(ctx, gc.Runner, cmd)
}

// Write materializes m into gc.Dir.
func (gc *Context) Write(m *manifest.Manifest) error {
	files := gc.Files
	if files == nil {
		files = &scaffold.Materializer{Logger: gc.logger()}
	}
	_, err := files.Materialize(gc.Dir, m.Entries(), gc.Config.DryRun)
	return err
}

// MkdirAll creates gc.Dir.
func (gc *Context) MkdirAll() error {
	files := gc.Files
	if files == nil {
		files = &scaffold.Materializer{Logger: gc.logger()}
	}
	return files.EnsureDir(gc.Dir, gc.Config.DryRun)
}

// templateData is the value every embedded template renders against.
type templateData struct {
	TypeScript     bool
	Database       string
	PrismaProvider string
	DisplayName    string
}

func (gc *Context) templateData() templateData {
	return templateData{
		TypeScript:     gc.Config.TypeScript(),
		Database:       gc.Config.Database,
		PrismaProvider: prismaProviders[gc.Config.Database],
		DisplayName:    gc.Config.Name,
	}
}

// render adds the rendered template name to m at p.
func (gc *Context) render(m *manifest.Manifest, p, name string) error {
	out, err := scaffold.Render(name, gc.templateData())
	if err != nil {
		return err
	}
	m.Add(p, out)
	return nil
}
