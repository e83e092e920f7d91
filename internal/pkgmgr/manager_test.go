package pkgmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallCommand(t *testing.T) {
	tests := map[string]string{
		NPM:  "npm install",
		PNPM: "pnpm install",
		Yarn: "yarn",
		Bun:  "bun install",
		"":   "npm install",
	}
	for name, want := range tests {
		c := Manager{Name: name}.InstallCommand("/p")
		assert.Equal(t, want, c.String(), name)
		assert.Equal(t, "/p", c.Dir)
	}
}

func TestAddDevCommand(t *testing.T) {
	tests := map[string]string{
		NPM:  "npm i -D tailwindcss @tailwindcss/vite",
		PNPM: "pnpm add -D tailwindcss @tailwindcss/vite",
		Yarn: "yarn add -D tailwindcss @tailwindcss/vite",
		Bun:  "bun add -d tailwindcss @tailwindcss/vite",
	}
	for name, want := range tests {
		got := Manager{Name: name}.AddDevCommand(".", "tailwindcss", "@tailwindcss/vite").String()
		assert.Equal(t, want, got, name)
	}
}

func TestCreateCommand(t *testing.T) {
	tests := map[string]string{
		NPM:  "npm create vite@latest . -- --template react-ts",
		PNPM: "pnpm create vite@latest . --template react-ts",
		Yarn: "yarn create vite . --template react-ts",
		Bun:  "bunx create-vite@latest . --template react-ts",
	}
	for name, want := range tests {
		got := Manager{Name: name}.CreateCommand("/w", "vite", ".", "--template", "react-ts")
		assert.Equal(t, want, got.String(), name)
		assert.Equal(t, "/w", got.Dir)
	}

	// Without flags npm needs no separator.
	assert.Equal(t, "npm create analog@latest .", Manager{Name: NPM}.CreateCommand("", "analog", ".").String())
}

func TestRunScript(t *testing.T) {
	assert.Equal(t, "npm run dev", Manager{Name: NPM}.RunScript("dev"))
	assert.Equal(t, "pnpm dev", Manager{Name: PNPM}.RunScript("dev"))
	assert.Equal(t, "yarn dev", Manager{Name: Yarn}.RunScript("dev"))
	assert.Equal(t, "bun run dev", Manager{Name: Bun}.RunScript("dev"))
}

func TestWorkspaceScripts(t *testing.T) {
	api := Member{Dir: "apps/api", Package: "shop-api"}

	assert.Equal(t, "npm run -w apps/api dev", Manager{Name: NPM}.MemberScript(api, "dev"))
	assert.Equal(t, "pnpm --filter ./apps/api dev", Manager{Name: PNPM}.MemberScript(api, "dev"))
	assert.Equal(t, "yarn workspace shop-api dev", Manager{Name: Yarn}.MemberScript(api, "dev"))
	assert.Equal(t, "bun run --filter shop-api dev", Manager{Name: Bun}.MemberScript(api, "dev"))

	assert.Equal(t, `pnpm -r --parallel --filter "./apps/*" dev`, Manager{Name: PNPM}.AggregateScript("dev", "apps/*", true))
	assert.Equal(t, `pnpm -r --filter "./apps/*" build`, Manager{Name: PNPM}.AggregateScript("build", "apps/*", false))
	assert.Equal(t, "npm-run-all --parallel dev:*", Manager{Name: NPM}.AggregateScript("dev", "apps/*", true))
	assert.Equal(t, "npm-run-all --serial build:*", Manager{Name: Yarn}.AggregateScript("build", "apps/*", false))

	assert.True(t, Manager{Name: PNPM}.UsesWorkspaceFile())
	assert.False(t, Manager{Name: Yarn}.UsesWorkspaceFile())
	assert.Contains(t, Manager{Name: NPM}.WorkspaceDevDependencies(), "npm-run-all")
	assert.Nil(t, Manager{Name: PNPM}.WorkspaceDevDependencies())
}
