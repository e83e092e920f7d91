package generate

import (
	"context"
	"fmt"

	"github.com/forge-labs/forge/internal/manifest"
	"github.com/forge-labs/forge/internal/pkgmgr"
)

// workspacePattern matches every member directory.
const workspacePattern = "apps/*"

// Composer lays out a workspace root and generates its members in order:
// web, api, then mobile.
type Composer struct {
	Frontend Generator
	Backend  Generator
	Mobile   Generator
}

type pnpmWorkspace struct {
	Packages []string `yaml:"packages"`
}

// member is one app in the workspace.
type member struct {
	pkgmgr.Member
	// Short is the suffix of the root's per-member scripts.
	Short string
	Build bool
	gen   Generator
}

func (c *Composer) members(gc *Context) []member {
	cfg := gc.Config
	var out []member
	if !cfg.MobileFrontend() {
		// The web starter names its package after the directory.
		out = append(out, member{
			Member: pkgmgr.Member{Dir: "apps/web", Package: "web"},
			Short:  "web",
			Build:  true,
			gen:    c.Frontend,
		})
	}
	out = append(out, member{
		Member: pkgmgr.Member{Dir: "apps/api", Package: cfg.Name + "-api"},
		Short:  "api",
		Build:  true,
		gen:    c.Backend,
	})
	if cfg.MobileFrontend() {
		out = append(out, member{
			Member: pkgmgr.Member{Dir: "apps/mobile", Package: cfg.Name + "-mobile"},
			Short:  "mobile",
			gen:    c.Mobile,
		})
	}
	return out
}

// Generate implements Generator.
func (c *Composer) Generate(ctx context.Context, gc *Context) error {
	members := c.members(gc)
	m, err := rootManifest(gc, members)
	if err != nil {
		return fmt.Errorf("building workspace root: %w", err)
	}
	if err := gc.Write(m); err != nil {
		return err
	}

	for _, mem := range members {
		if mem.gen == nil {
			return fmt.Errorf("no generator for %s", mem.Dir)
		}
		if err := mem.gen.Generate(ctx, gc.Child(mem.Dir)); err != nil {
			return fmt.Errorf("%s: %w", mem.Dir, err)
		}
	}
	return nil
}

// rootManifest builds the workspace root files. Only root scripts are
// derived here; member manifests are never read.
func rootManifest(gc *Context, members []member) (*manifest.Manifest, error) {
	pm := gc.Manager
	pkg := manifest.NewPackage(gc.Config.Name)
	pkg.AddScript("dev", pm.AggregateScript("dev", workspacePattern, true))
	pkg.AddScript("build", pm.AggregateScript("build", workspacePattern, false))
	for _, mem := range members {
		pkg.AddScript("dev:"+mem.Short, pm.MemberScript(mem.Member, "dev"))
		if mem.Build {
			pkg.AddScript("build:"+mem.Short, pm.MemberScript(mem.Member, "build"))
		}
	}
	for name, version := range pm.WorkspaceDevDependencies() {
		pkg.AddDevDependency(name, version)
	}

	m := manifest.New()
	if pm.UsesWorkspaceFile() {
		data, err := encodeYAML(pnpmWorkspace{Packages: []string{workspacePattern}})
		if err != nil {
			return nil, fmt.Errorf("encoding pnpm-workspace.yaml: %w", err)
		}
		m.Add("pnpm-workspace.yaml", data)
	} else {
		pkg.Workspaces = []string{workspacePattern}
	}
	if err := m.AddPackage("package.json", pkg); err != nil {
		return nil, err
	}
	return m, nil
}
