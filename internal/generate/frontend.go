package generate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/manifest"
)

// Frontend generates a web app by delegating to the framework's own
// starter, then layers styling on top.
type Frontend struct{}

// starter returns the create-<starter> package and its flags.
func starter(cfg config.Configuration) (string, []string) {
	if cfg.Frontend == config.FrontendAngular {
		return "analog", nil
	}
	template := cfg.Frontend
	switch template {
	case config.FrontendVue, config.FrontendSvelte:
	default:
		template = config.FrontendReact
	}
	if cfg.TypeScript() {
		template += "-ts"
	}
	return "vite", []string{"--template", template}
}

// Generate implements Generator.
func (f *Frontend) Generate(ctx context.Context, gc *Context) error {
	cfg := gc.Config
	if err := gc.MkdirAll(); err != nil {
		return err
	}

	name, flags := starter(cfg)
	if err := gc.Run(ctx, gc.Manager.CreateCommand(gc.Dir, name, ".", flags...)); err != nil {
		return fmt.Errorf("scaffolding %s app: %w", cfg.Frontend, err)
	}

	switch cfg.CSS {
	case config.CSSTailwind:
		return addTailwind(ctx, gc)
	case config.CSSSCSS, config.CSSSass:
		return gc.Run(ctx, gc.Manager.AddDevCommand(gc.Dir, "sass"))
	case config.CSSLess:
		return gc.Run(ctx, gc.Manager.AddDevCommand(gc.Dir, "less"))
	}
	return nil
}

var viteConfigs = []string{"vite.config.ts", "vite.config.js", "vite.config.mts", "vite.config.mjs"}

var frameworkStylesheets = map[string]string{
	config.FrontendReact:   "src/index.css",
	config.FrontendVue:     "src/style.css",
	config.FrontendSvelte:  "src/app.css",
	config.FrontendAngular: "src/styles.css",
}

var fallbackStylesheets = []string{"src/styles.css", "src/style.css", "src/index.css", "src/app.css"}

// stylesheetCandidates lists where the global stylesheet may live, most
// specific first.
func stylesheetCandidates(framework string) []string {
	var out []string
	if p, ok := frameworkStylesheets[framework]; ok {
		out = append(out, p)
	}
	return append(out, fallbackStylesheets...)
}

// defaultStylesheet is created when no candidate exists.
func defaultStylesheet(framework string) string {
	if framework == config.FrontendReact {
		return "src/index.css"
	}
	return "src/style.css"
}

func addTailwind(ctx context.Context, gc *Context) error {
	if err := gc.Run(ctx, gc.Manager.AddDevCommand(gc.Dir, "tailwindcss", "@tailwindcss/vite")); err != nil {
		return fmt.Errorf("adding tailwind: %w", err)
	}
	if gc.Config.DryRun {
		gc.logger().Info("[dry-run] patch vite config and stylesheet for tailwind", zap.String("dir", gc.Dir))
		return nil
	}

	files, err := readExisting(gc.Dir, slices.Concat(viteConfigs, stylesheetCandidates(gc.Config.Frontend)))
	if err != nil {
		return err
	}
	m, err := tailwindManifest(gc.Config.Frontend, files)
	if err != nil {
		return err
	}
	return gc.Write(m)
}

// readExisting loads the files among paths that exist under dir, keyed by
// path.
func readExisting(dir string, paths []string) (map[string]string, error) {
	out := make(map[string]string)
	for _, p := range paths {
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out[p] = string(data)
	}
	return out, nil
}

// tailwindManifest rewrites the vite config and global stylesheet found in
// files. The result only holds the files it touched.
func tailwindManifest(framework string, files map[string]string) (*manifest.Manifest, error) {
	m := manifest.New()
	var patches []manifest.Patch

	for _, p := range viteConfigs {
		if content, ok := files[p]; ok {
			m.Add(p, content)
			patches = append(patches, vitePatches(p)...)
			break
		}
	}

	css := ""
	for _, p := range stylesheetCandidates(framework) {
		if content, ok := files[p]; ok {
			css = p
			m.Add(p, content)
			break
		}
	}
	if css == "" {
		css = defaultStylesheet(framework)
		m.Add(css, "")
	}
	patches = append(patches, stylesheetPatch(css))

	if err := m.Apply(patches...); err != nil {
		return nil, err
	}
	return m, nil
}
