package generate

import (
	"context"
	"fmt"

	"github.com/forge-labs/forge/internal/manifest"
)

// Mobile generates an Expo app from embedded files; no external starter
// is involved.
type Mobile struct{}

type expoConfig struct {
	Expo expoApp `json:"expo"`
}

type expoApp struct {
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	Scheme     string `json:"scheme"`
	SDKVersion string `json:"sdkVersion"`
}

// Generate implements Generator.
func (g *Mobile) Generate(ctx context.Context, gc *Context) error {
	m, err := mobileManifest(gc)
	if err != nil {
		return fmt.Errorf("building mobile manifest: %w", err)
	}
	return gc.Write(m)
}

func mobileManifest(gc *Context) (*manifest.Manifest, error) {
	cfg := gc.Config
	ts := cfg.TypeScript()
	name := gc.PackageName("mobile")

	pkg := manifest.NewPackage(name)
	pkg.Main = "index." + cfg.Ext()
	pkg.AddScript("dev", "expo start")
	pkg.AddScript("start", "expo start")
	pkg.AddScript("android", "expo run:android")
	pkg.AddScript("ios", "expo run:ios")
	pkg.AddDependency("expo", "^52.0.0")
	pkg.AddDependency("react", "^19.1.1")
	pkg.AddDependency("react-native", "0.76.3")
	if ts {
		pkg.AddDevDependency("typescript", "^5.9.2")
	}

	m := manifest.New()
	if err := m.AddPackage("package.json", pkg); err != nil {
		return nil, err
	}
	app := expoConfig{Expo: expoApp{
		Name:       name,
		Slug:       cfg.Name + "-mobile",
		Scheme:     "forge",
		SDKVersion: "52.0.0",
	}}
	if err := m.AddJSON("app.json", app); err != nil {
		return nil, err
	}
	if err := gc.render(m, pkg.Main, "mobile/index"); err != nil {
		return nil, err
	}

	component := "src/App.js"
	if ts {
		component = "src/App.tsx"
	}
	if err := gc.render(m, component, "mobile/App"); err != nil {
		return nil, err
	}

	if ts {
		err := m.AddJSON("tsconfig.json", tsConfig{CompilerOptions: compilerOptions{
			JSX:          "react-jsx",
			Target:       "ES2020",
			Module:       "ESNext",
			SkipLibCheck: true,
			Strict:       true,
		}})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}
