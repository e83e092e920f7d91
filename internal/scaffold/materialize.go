package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/manifest"
)

// ErrOutsideRoot is returned for entries whose path escapes the root.
var ErrOutsideRoot = errors.New("path escapes project root")

// Result holds the outcome of a materialization.
type Result struct {
	OutputDir string
	Files     []string
}

// Materializer writes manifests to disk, or only logs them in dry-run.
type Materializer struct {
	Logger *zap.Logger
}

func (m *Materializer) logger() *zap.Logger {
	if m == nil || m.Logger == nil {
		return zap.NewNop()
	}
	return m.Logger
}

// Materialize writes entries below root in order, creating parent
// directories as needed. Existing files are overwritten. In dry-run every
// entry is logged and the filesystem is left untouched.
func (m *Materializer) Materialize(root string, entries []manifest.Entry, dryRun bool) (*Result, error) {
	result := &Result{OutputDir: root}
	log := m.logger()

	// Resolve every path before touching the disk so a bad entry cannot
	// leave a half-written manifest behind.
	targets := make([]string, len(entries))
	for i, e := range entries {
		target, err := resolve(root, e.Path)
		if err != nil {
			return nil, err
		}
		targets[i] = target
	}

	for i, e := range entries {
		if dryRun {
			log.Info("[dry-run] write", zap.String("path", targets[i]), zap.Int("bytes", len(e.Content)))
			result.Files = append(result.Files, e.Path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(targets[i]), 0755); err != nil {
			return result, fmt.Errorf("creating directory for %s: %w", e.Path, err)
		}
		if err := os.WriteFile(targets[i], []byte(e.Content), 0644); err != nil {
			return result, fmt.Errorf("writing %s: %w", targets[i], err)
		}
		log.Debug("wrote", zap.String("path", targets[i]))
		result.Files = append(result.Files, e.Path)
	}
	return result, nil
}

// WriteFile materializes a single entry.
func (m *Materializer) WriteFile(root, path, content string, dryRun bool) error {
	_, err := m.Materialize(root, []manifest.Entry{{Path: path, Content: content}}, dryRun)
	return err
}

// EnsureDir creates dir, or logs the intent in dry-run.
func (m *Materializer) EnsureDir(dir string, dryRun bool) error {
	if dryRun {
		m.logger().Info("[dry-run] mkdir", zap.String("path", dir))
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// resolve joins p onto root and rejects results outside root.
func resolve(root, p string) (string, error) {
	if p == "" || filepath.IsAbs(p) || filepath.VolumeName(p) != "" {
		return "", fmt.Errorf("%q: %w", p, ErrOutsideRoot)
	}
	cleanRoot := filepath.Clean(root)
	target := filepath.Join(cleanRoot, filepath.FromSlash(p))
	rel, err := filepath.Rel(cleanRoot, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%q: %w", p, ErrOutsideRoot)
	}
	return target, nil
}
