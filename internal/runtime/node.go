package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinNodeVersion is the oldest Node.js release the generated projects and
// the create starters support.
const MinNodeVersion = "16.14.0"

// ErrNodeTooOld is returned by CheckNode when the installed Node.js is
// older than the required minimum.
var ErrNodeTooOld = errors.New("node.js version is too old")

// Version runs `<name> --version` and returns the reported version with any
// leading "v" removed.
func Version(ctx context.Context, r Runner, name string, env Env) (string, error) {
	out, err := r.Output(ctx, Command{Name: name, Args: []string{"--version"}, Env: env})
	if err != nil {
		return "", err
	}
	// Some tools print a banner before the version; the last line wins.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	v := strings.TrimSpace(lines[len(lines)-1])
	return strings.TrimPrefix(v, "v"), nil
}

// NodeVersion reports the version of the node binary visible under env.
func NodeVersion(ctx context.Context, r Runner, env Env) (string, error) {
	v, err := Version(ctx, r, "node", env)
	if err != nil {
		return "", fmt.Errorf("node.js is required: %w", err)
	}
	return v, nil
}

// CheckNode verifies that version satisfies min.
func CheckNode(version, min string) error {
	have, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing node version %q: %w", version, err)
	}
	want, err := parseSemver(min)
	if err != nil {
		return fmt.Errorf("parsing minimum node version %q: %w", min, err)
	}
	if have.LessThan(want) {
		return fmt.Errorf("%w: found %s, need >= %s", ErrNodeTooOld, have, want)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}
