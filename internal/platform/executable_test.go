package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestFindExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("exec bit semantics are unix-only")
	}
	tmp := t.TempDir()

	bin := filepath.Join(tmp, "bun")
	if err := os.WriteFile(bin, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	plain := filepath.Join(tmp, "notes")
	if err := os.WriteFile(plain, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if got, ok := FindExecutable(tmp, "bun", "linux"); !ok || got != bin {
		t.Errorf("FindExecutable(bun) = %q, %v; want %q, true", got, ok, bin)
	}
	if _, ok := FindExecutable(tmp, "notes", "linux"); ok {
		t.Error("non-executable file should not be reported")
	}
	if _, ok := FindExecutable(tmp, "missing", "linux"); ok {
		t.Error("missing file should not be reported")
	}
	if _, ok := FindExecutable("", "bun", "linux"); ok {
		t.Error("empty dir should not match")
	}
}

func TestFindExecutableWindowsLaunchers(t *testing.T) {
	tmp := t.TempDir()
	cmd := filepath.Join(tmp, "pnpm.cmd")
	if err := os.WriteFile(cmd, []byte("@echo off\r\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, ok := FindExecutable(tmp, "pnpm", "windows")
	if !ok || got != cmd {
		t.Errorf("FindExecutable(pnpm, windows) = %q, %v; want %q, true", got, ok, cmd)
	}
}

func TestExecutableName(t *testing.T) {
	tests := []struct {
		name, goos, want string
	}{
		{"bun", "windows", "bun.exe"},
		{"bun.cmd", "windows", "bun.cmd"},
		{"bun", "linux", "bun"},
		{"bun", "darwin", "bun"},
	}
	for _, tt := range tests {
		if got := ExecutableName(tt.name, tt.goos); got != tt.want {
			t.Errorf("ExecutableName(%q, %q) = %q, want %q", tt.name, tt.goos, got, tt.want)
		}
	}
}

func TestSplitJoinPath(t *testing.T) {
	dirs := SplitPath("/a:/b::/c", "linux")
	if len(dirs) != 3 || dirs[0] != "/a" || dirs[2] != "/c" {
		t.Fatalf("SplitPath = %v", dirs)
	}
	if got := JoinPath(dirs, "linux"); got != "/a:/b:/c" {
		t.Errorf("JoinPath = %q", got)
	}
	if got := JoinPath([]string{`C:\x`, `C:\y`}, "windows"); got != `C:\x;C:\y` {
		t.Errorf("JoinPath windows = %q", got)
	}
}
