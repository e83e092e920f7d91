package generate

import (
	"fmt"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/manifest"
	"github.com/forge-labs/forge/internal/pkgmgr"
	"github.com/forge-labs/forge/internal/scaffold"
)

type readmeData struct {
	Name           string
	Installed      bool
	InstallCommand string
	DevCommand     string
	Fullstack      bool
	Web            bool
	Mobile         bool
	Database       bool
	// EnvDir is the directory holding .env, with a trailing slash, or
	// empty for the project root.
	EnvDir           string
	DatabaseCommands []string
}

func readmeFor(gc *Context) readmeData {
	cfg := gc.Config
	pm := gc.Manager
	fullstack := cfg.Architecture == config.ArchFullstack
	data := readmeData{
		Name:           cfg.Name,
		Installed:      cfg.InstallDeps,
		InstallCommand: pm.InstallLine(),
		DevCommand:     pm.RunScript("dev"),
		Fullstack:      fullstack,
		Web:            !cfg.MobileFrontend(),
		Mobile:         cfg.MobileFrontend(),
	}

	server := fullstack || cfg.Architecture == config.ArchBackend
	if !server || !cfg.HasDatabase() {
		return data
	}
	data.Database = true

	run := pm.RunScript
	if fullstack {
		data.EnvDir = "apps/api/"
		api := pkgmgr.Member{Dir: "apps/api", Package: cfg.Name + "-api"}
		run = func(script string) string { return pm.MemberScript(api, script) }
	}
	switch {
	case cfg.UsesPrisma():
		data.DatabaseCommands = []string{run("prisma:generate"), run("prisma:migrate"), run("prisma:seed")}
	case cfg.UsesMongoose():
		data.DatabaseCommands = []string{run("seed")}
	}
	return data
}

// writeReadme writes the project README with getting-started commands.
func writeReadme(gc *Context) error {
	content, err := scaffold.Render("project/README.md", readmeFor(gc))
	if err != nil {
		return fmt.Errorf("rendering README: %w", err)
	}
	m := manifest.New()
	m.Add("README.md", content)
	return gc.Write(m)
}
