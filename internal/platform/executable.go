package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// windowsExts lists the launcher extensions tried on Windows, in order.
var windowsExts = []string{".exe", ".cmd", ".bat"}

// IsWindows reports whether goos names Windows. An empty goos means the
// running platform.
func IsWindows(goos string) bool {
	if goos == "" {
		goos = runtime.GOOS
	}
	return goos == "windows"
}

// ExecutableName returns the file name a binary is installed under on goos.
func ExecutableName(name, goos string) string {
	if IsWindows(goos) && filepath.Ext(name) == "" {
		return name + ".exe"
	}
	return name
}

// FindExecutable looks for name inside dir and returns the full path of the
// first runnable match.
func FindExecutable(dir, name, goos string) (string, bool) {
	if dir == "" {
		return "", false
	}
	candidates := []string{name}
	if IsWindows(goos) && filepath.Ext(name) == "" {
		candidates = candidates[:0]
		for _, ext := range windowsExts {
			candidates = append(candidates, name+ext)
		}
	}
	for _, c := range candidates {
		p := filepath.Join(dir, c)
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if IsWindows(goos) || info.Mode()&0o111 != 0 {
			return p, true
		}
	}
	return "", false
}

// SplitPath splits a PATH value using the list separator of goos.
func SplitPath(value, goos string) []string {
	if value == "" {
		return nil
	}
	sep := string(os.PathListSeparator)
	if goos != "" {
		sep = ":"
		if IsWindows(goos) {
			sep = ";"
		}
	}
	var out []string
	for _, p := range strings.Split(value, sep) {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinPath is the inverse of SplitPath.
func JoinPath(dirs []string, goos string) string {
	sep := string(os.PathListSeparator)
	if goos != "" {
		sep = ":"
		if IsWindows(goos) {
			sep = ";"
		}
	}
	return strings.Join(dirs, sep)
}
