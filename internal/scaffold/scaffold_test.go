package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forge-labs/forge/internal/manifest"
)

type serverData struct {
	TypeScript bool
}

func TestRenderServerTemplates(t *testing.T) {
	for _, framework := range []string{"express", "fastify"} {
		for _, kind := range []string{"plain", "prisma", "mongoose"} {
			name := "backend/" + framework + "/" + kind
			t.Run(name, func(t *testing.T) {
				if !Exists(name) {
					t.Fatalf("template %s is not embedded", name)
				}
				out, err := Render(name, serverData{TypeScript: true})
				if err != nil {
					t.Fatalf("Render() error: %v", err)
				}
				assertContains(t, out, "/api/health")
				if strings.Contains(out, "[[") {
					t.Errorf("unrendered delimiters in %s:\n%s", name, out)
				}
			})
		}
	}
}

func TestRenderLanguageVariants(t *testing.T) {
	ts, err := Render("mongoose/seed", serverData{TypeScript: true})
	if err != nil {
		t.Fatal(err)
	}
	js, err := Render("mongoose/seed", serverData{TypeScript: false})
	if err != nil {
		t.Fatal(err)
	}
	assertContains(t, ts, "process.env.DATABASE_URL!")
	if strings.Contains(js, "DATABASE_URL!") {
		t.Error("JavaScript output must not contain a non-null assertion")
	}

	routes, err := Render("mongoose/routes-fastify", serverData{TypeScript: false})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(routes, "import { User }") {
		t.Errorf("JavaScript routes should start with the model import, got:\n%s", routes)
	}
}

func TestRenderMissingTemplate(t *testing.T) {
	if _, err := Render("backend/koa/plain", nil); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestMaterializeWritesAndOverwrites(t *testing.T) {
	root := t.TempDir()
	m := &Materializer{}

	entries := []manifest.Entry{
		{Path: "package.json", Content: "{}\n"},
		{Path: "src/index.ts", Content: "first"},
		{Path: "src/index.ts", Content: "second"},
	}
	result, err := m.Materialize(root, entries, false)
	if err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	if len(result.Files) != 3 {
		t.Errorf("Files = %v, want 3 writes", result.Files)
	}
	if got := readGenerated(t, root, "src/index.ts"); got != "second" {
		t.Errorf("src/index.ts = %q, want last entry to win", got)
	}

	// Existing files are overwritten on a second run.
	if err := m.WriteFile(root, "package.json", `{"name":"x"}`, false); err != nil {
		t.Fatal(err)
	}
	assertContains(t, readGenerated(t, root, "package.json"), `"name":"x"`)
}

func TestMaterializeDryRun(t *testing.T) {
	root := filepath.Join(t.TempDir(), "project")
	core, logs := observer.New(zap.InfoLevel)
	m := &Materializer{Logger: zap.New(core)}

	entries := []manifest.Entry{
		{Path: "package.json", Content: "{}"},
		{Path: "src/index.js", Content: "x"},
	}
	if _, err := m.Materialize(root, entries, true); err != nil {
		t.Fatalf("Materialize() error: %v", err)
	}
	if err := m.EnsureDir(root, true); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Fatalf("dry-run must not create %s (stat err = %v)", root, err)
	}
	if got := logs.FilterMessage("[dry-run] write").Len(); got != 2 {
		t.Errorf("logged %d dry-run writes, want 2", got)
	}
}

func TestMaterializeRejectsEscapes(t *testing.T) {
	root := t.TempDir()
	m := &Materializer{}

	for _, p := range []string{"../outside.txt", "a/../../outside.txt", "/etc/passwd", ""} {
		t.Run(p, func(t *testing.T) {
			entries := []manifest.Entry{
				{Path: "ok.txt", Content: "ok"},
				{Path: p, Content: "bad"},
			}
			_, err := m.Materialize(root, entries, false)
			if !errors.Is(err, ErrOutsideRoot) {
				t.Fatalf("Materialize(%q) error = %v, want ErrOutsideRoot", p, err)
			}
			if _, err := os.Stat(filepath.Join(root, "ok.txt")); !os.IsNotExist(err) {
				t.Error("no entry should be written when any path escapes the root")
			}
		})
	}
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}
