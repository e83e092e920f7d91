package generate

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/manifest"
	"github.com/forge-labs/forge/internal/pkgmgr"
	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/runtime/runtimetest"
)

// baseConfig is a TypeScript fullstack project named "app" with no
// database, rooted in a fresh temp dir.
func baseConfig(t *testing.T) config.Configuration {
	t.Helper()
	return config.Configuration{
		Name:            "app",
		Architecture:    config.ArchFullstack,
		Frontend:        config.FrontendReact,
		Backend:         config.BackendExpress,
		Database:        config.DBNone,
		ORM:             config.ORMNone,
		CSS:             config.CSSPlain,
		PackageManager:  pkgmgr.PNPM,
		Language:        config.LangTS,
		TargetDirectory: t.TempDir(),
	}
}

func newTestContext(cfg config.Configuration, rec *runtimetest.Recorder) *Context {
	return NewContext(cfg, pkgmgr.Manager{Name: cfg.PackageManager, Available: true}, runtime.Env{}, rec, nil)
}

func readFile(t *testing.T, path ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(path...))
	require.NoError(t, err)
	return string(data)
}

func readPackage(t *testing.T, path ...string) manifest.Package {
	t.Helper()
	var pkg manifest.Package
	require.NoError(t, json.Unmarshal([]byte(readFile(t, path...)), &pkg))
	return pkg
}

func assertMissing(t *testing.T, path ...string) {
	t.Helper()
	_, err := os.Stat(filepath.Join(path...))
	require.ErrorIs(t, err, os.ErrNotExist, "%s should not exist", filepath.Join(path...))
}

func jsonUnmarshal(data string, v any) error {
	return json.Unmarshal([]byte(data), v)
}
