package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/runtime/runtimetest"
)

func TestInstallRunsAtRoot(t *testing.T) {
	cfg := baseConfig(t)
	cfg.InstallDeps = true
	rec := &runtimetest.Recorder{}
	gc := newTestContext(cfg, rec)

	require.NoError(t, Install(context.Background(), gc.Child("apps/api")))
	require.Len(t, rec.Commands(), 1)
	assert.Equal(t, "pnpm install", rec.Lines()[0])
	assert.Equal(t, cfg.ProjectRoot(), rec.Commands()[0].Dir)
}

func TestInstallSkipped(t *testing.T) {
	rec := &runtimetest.Recorder{}
	require.NoError(t, Install(context.Background(), newTestContext(baseConfig(t), rec)))
	assert.Empty(t, rec.Commands())
}

func TestInstallFailureCarriesGuidance(t *testing.T) {
	cfg := baseConfig(t)
	cfg.InstallDeps = true
	cfg.PackageManager = "yarn"
	rec := &runtimetest.Recorder{ExitCodes: map[string]int{"yarn": 1}}

	err := Install(context.Background(), newTestContext(cfg, rec))

	var installErr *InstallError
	require.ErrorAs(t, err, &installErr)
	var exitErr *runtime.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)

	guidance := installErr.Guidance()
	assert.Contains(t, guidance, "--install=false")
	assert.Contains(t, guidance, `"yarn"`)
	assert.Contains(t, guidance, cfg.ProjectRoot())
}
