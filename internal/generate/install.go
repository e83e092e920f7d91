package generate

import (
	"context"
	"fmt"
	"strings"

	"github.com/forge-labs/forge/internal/pkgmgr"
)

// InstallError reports a failed dependency install. Generated files are
// kept; Guidance explains how to finish by hand.
type InstallError struct {
	Manager string
	Dir     string
	Err     error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("installing dependencies with %s: %v", e.Manager, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// Guidance lists remediation steps for the failed install.
func (e *InstallError) Guidance() string {
	var b strings.Builder
	b.WriteString("If you are on Windows and using PowerShell:\n")
	b.WriteString(" - Close and reopen your terminal after installing Node or the package manager to refresh PATH.\n")
	b.WriteString(" - Confirm the package manager is installed: npm -v | pnpm -v | yarn -v | bun -v\n")
	fmt.Fprintf(&b, " - Re-run with --install=false and run %q inside %s.\n", pkgmgr.Manager{Name: e.Manager}.InstallLine(), e.Dir)
	return b.String()
}

// Install installs dependencies at the project root with the negotiated
// manager. Workspaces install every member from the root.
func Install(ctx context.Context, gc *Context) error {
	if !gc.Config.InstallDeps {
		return nil
	}
	gc.logger().Info(fmt.Sprintf("Installing dependencies with %s...", gc.Manager.Name))
	if err := gc.Run(ctx, gc.Manager.InstallCommand(gc.Root)); err != nil {
		return &InstallError{Manager: gc.Manager.Name, Dir: gc.Root, Err: err}
	}
	return nil
}
