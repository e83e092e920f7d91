package manifest

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrAnchorNotFound is returned when a patch's anchor is missing from the
// content it is supposed to rewrite.
var ErrAnchorNotFound = errors.New("patch anchor not found")

// ErrNoEntry is returned when a patch targets a path the manifest lacks.
var ErrNoEntry = errors.New("no manifest entry")

// Phase orders patches. Lower phases run first.
type Phase int

const (
	PhaseSkeleton Phase = iota
	PhaseDatabase
	PhaseRoutes
	PhaseStyling
)

func (p Phase) String() string {
	switch p {
	case PhaseSkeleton:
		return "server skeleton"
	case PhaseDatabase:
		return "database wiring"
	case PhaseRoutes:
		return "route mounting"
	case PhaseStyling:
		return "styling"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Patch is a named, pure rewrite of one file's content.
type Patch struct {
	Name  string
	Phase Phase
	Path  string
	// Anchor must appear in the content for Rewrite to run. Empty means the
	// patch applies to any content.
	Anchor string
	// Anchored, when set, replaces the substring test for Anchor. Anchor
	// then only names the precondition in errors.
	Anchored func(content string) bool
	// Applied reports whether the patch's effect is already present, in
	// which case the content is returned unchanged.
	Applied func(content string) bool
	Rewrite func(content string) string
}

// Apply runs the patch against content.
func (p Patch) Apply(content string) (string, error) {
	if p.Applied != nil && p.Applied(content) {
		return content, nil
	}
	if !p.anchored(content) {
		return content, fmt.Errorf("%s (%s): %q: %w", p.Name, p.Path, p.Anchor, ErrAnchorNotFound)
	}
	return p.Rewrite(content), nil
}

func (p Patch) anchored(content string) bool {
	if p.Anchored != nil {
		return p.Anchored(content)
	}
	return p.Anchor == "" || strings.Contains(content, p.Anchor)
}

// Apply runs patches against the manifest in phase order. Patches within a
// phase keep their relative order.
func (m *Manifest) Apply(patches ...Patch) error {
	ordered := slices.Clone(patches)
	slices.SortStableFunc(ordered, func(a, b Patch) int { return int(a.Phase) - int(b.Phase) })

	for _, p := range ordered {
		content, ok := m.Get(p.Path)
		if !ok {
			return fmt.Errorf("%s: %s: %w", p.Name, p.Path, ErrNoEntry)
		}
		next, err := p.Apply(content)
		if err != nil {
			return err
		}
		m.Add(p.Path, next)
	}
	return nil
}

// InsertAfter returns a Rewrite that inserts line below the first line
// containing anchor, indented like that line.
func InsertAfter(anchor, line string) func(string) string {
	return func(content string) string {
		i := strings.Index(content, anchor)
		if i < 0 {
			return content
		}
		start := strings.LastIndexByte(content[:i], '\n') + 1
		indent := content[start:i]
		indent = indent[:len(indent)-len(strings.TrimLeft(indent, " \t"))]

		end := strings.IndexByte(content[i:], '\n')
		if end < 0 {
			return content + "\n" + indent + line + "\n"
		}
		cut := i + end + 1
		return content[:cut] + indent + line + "\n" + content[cut:]
	}
}

// Prepend returns a Rewrite that places text before the existing content.
func Prepend(text string) func(string) string {
	return func(content string) string { return text + content }
}

// Contains returns an Applied predicate matching content that includes s.
func Contains(s string) func(string) bool {
	return func(content string) bool { return strings.Contains(content, s) }
}
