package generate

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/runtime/runtimetest"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		arch     string
		frontend string
		want     Target
	}{
		{config.ArchFullstack, config.FrontendReact, TargetComposer},
		{config.ArchFullstack, config.FrontendExpo, TargetComposer},
		{config.ArchFrontend, config.FrontendVue, TargetFrontend},
		{config.ArchFrontend, config.FrontendAngular, TargetFrontend},
		{config.ArchFrontend, config.FrontendExpo, TargetMobile},
		{config.ArchMobile, config.FrontendReact, TargetMobile},
		{config.ArchBackend, config.FrontendReact, TargetBackend},
	}
	for _, tt := range tests {
		t.Run(tt.arch+"/"+tt.frontend, func(t *testing.T) {
			got, err := Route(config.Configuration{Architecture: tt.arch, Frontend: tt.frontend})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Route(config.Configuration{Architecture: "desktop"})
	assert.ErrorIs(t, err, ErrUnknownArchitecture)
}

// recordingDispatcher wires generators that only record their directory.
func recordingDispatcher(calls *[]string) *Dispatcher {
	record := func(name string) Generator {
		return GeneratorFunc(func(_ context.Context, gc *Context) error {
			*calls = append(*calls, name+":"+gc.Member)
			return nil
		})
	}
	d := &Dispatcher{Frontend: record("frontend"), Backend: record("backend"), Mobile: record("mobile")}
	d.Composer = &Composer{Frontend: d.Frontend, Backend: d.Backend, Mobile: d.Mobile}
	return d
}

func TestDispatchInvokesExactGeneratorSet(t *testing.T) {
	tests := []struct {
		arch     string
		frontend string
		want     []string
	}{
		{config.ArchFullstack, config.FrontendReact, []string{"frontend:apps/web", "backend:apps/api"}},
		{config.ArchFullstack, config.FrontendExpo, []string{"backend:apps/api", "mobile:apps/mobile"}},
		{config.ArchFrontend, config.FrontendSvelte, []string{"frontend:"}},
		{config.ArchFrontend, config.FrontendExpo, []string{"mobile:"}},
		{config.ArchMobile, config.FrontendReact, []string{"mobile:"}},
		{config.ArchBackend, config.FrontendReact, []string{"backend:"}},
	}
	for _, tt := range tests {
		t.Run(tt.arch+"/"+tt.frontend, func(t *testing.T) {
			cfg := baseConfig(t)
			cfg.Architecture = tt.arch
			cfg.Frontend = tt.frontend

			var calls []string
			err := recordingDispatcher(&calls).Dispatch(context.Background(), newTestContext(cfg, &runtimetest.Recorder{}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, calls)
			assert.FileExists(t, filepath.Join(cfg.ProjectRoot(), "README.md"))
		})
	}
}

func TestDispatchUnknownArchitecture(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Architecture = "desktop"

	var calls []string
	err := recordingDispatcher(&calls).Dispatch(context.Background(), newTestContext(cfg, &runtimetest.Recorder{}))
	assert.ErrorIs(t, err, ErrUnknownArchitecture)
	assert.Empty(t, calls)
	assertMissing(t, cfg.ProjectRoot())
}

func TestDispatchComposeOnlyForServersWithDatabase(t *testing.T) {
	tests := []struct {
		arch string
		db   string
		want bool
	}{
		{config.ArchBackend, config.DBPostgres, true},
		{config.ArchFullstack, config.DBMongo, true},
		{config.ArchBackend, config.DBNone, false},
		{config.ArchFrontend, config.DBPostgres, false},
		{config.ArchMobile, config.DBMySQL, false},
	}
	for _, tt := range tests {
		t.Run(tt.arch+"/"+tt.db, func(t *testing.T) {
			cfg := baseConfig(t)
			cfg.Architecture = tt.arch
			cfg.Database = tt.db

			var calls []string
			require.NoError(t, recordingDispatcher(&calls).Dispatch(context.Background(), newTestContext(cfg, &runtimetest.Recorder{})))

			_, err := os.Stat(filepath.Join(cfg.ProjectRoot(), "docker-compose.yml"))
			assert.Equal(t, tt.want, err == nil)
		})
	}
}

func TestDispatchWrapsGeneratorFailure(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Architecture = config.ArchBackend

	boom := assert.AnError
	d := &Dispatcher{Backend: GeneratorFunc(func(context.Context, *Context) error { return boom })}
	err := d.Dispatch(context.Background(), newTestContext(cfg, &runtimetest.Recorder{}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "generating backend project")
	assertMissing(t, cfg.ProjectRoot(), "README.md")
}

func TestComposeFile(t *testing.T) {
	file, ok := composeFor(config.DBMySQL)
	require.True(t, ok)
	out, err := encodeYAML(file)
	require.NoError(t, err)

	assert.Contains(t, out, "services:\n  db:\n    image: mysql:8\n")
	assert.Contains(t, out, "- '3306:3306'")
	assert.Contains(t, out, "--default-authentication-plugin=mysql_native_password")
	assert.Contains(t, out, "- mysqldata:/var/lib/mysql")
	assert.Contains(t, out, "volumes:\n  mysqldata: {}\n")

	_, ok = composeFor(config.DBNone)
	assert.False(t, ok)
}
