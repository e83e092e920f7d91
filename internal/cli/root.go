package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forge-labs/forge/internal/branding"
	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/prompt"
	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/ui"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Seams replaced in tests.
var (
	newRunner        = func() runtime.Runner { return &runtime.ExecRunner{} }
	newEngine        = func() engine { return prompt.New() }
	loadConfig       = config.Load
	stdinIsTerminal  = ui.StdinIsTerminal
	stdoutIsTerminal = ui.StdoutIsTerminal
	// hostLookPath resolves executables for package manager detection.
	// nil means the environment's own lookup.
	hostLookPath func(name string, env runtime.Env) bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [name]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds JavaScript and TypeScript projects: single web apps, Node API
servers, Expo mobile apps, or a workspace combining them.

Without flags it asks a few questions. Pass --yes (or run without a terminal)
to take every unset choice from ~/` + branding.HomeDir() + `/config.yaml, ` + branding.EnvVar("*") + ` variables or the
built-in defaults.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runNew,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	styles := ui.NewStyles()
	if errors.Is(err, prompt.ErrCancelled) {
		fmt.Fprintln(os.Stderr, styles.Warning.Render("Aborted."))
		return err
	}
	fmt.Fprintln(os.Stderr, styles.Error.Render("Error: "+err.Error()))
	return err
}
