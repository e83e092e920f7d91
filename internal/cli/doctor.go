package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/forge-labs/forge/internal/branding"
	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/pkgmgr"
	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/ui"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check Node.js and package managers",
	Long: `Report the Node.js version and which package managers are installed, with
their versions. ` + branding.DisplayName() + ` needs Node.js ` + runtime.MinNodeVersion + ` or newer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		styles := ui.NewStyles()
		runner := newRunner()

		runRuntimeCheck(cmd, out, styles, runner)
		runManagerCheck(cmd, out, styles, runner)
		runConfigCheck(out, styles)
		return nil
	},
}

func runRuntimeCheck(cmd *cobra.Command, out io.Writer, styles *ui.Styles, runner runtime.Runner) {
	fmt.Fprintln(out, "Runtime check:")
	v, err := runtime.NodeVersion(cmd.Context(), runner, runtime.Env{})
	if err != nil {
		fmt.Fprintln(out, "  "+styles.Check(false, "node", "not found"))
		return
	}
	if err := runtime.CheckNode(v, runtime.MinNodeVersion); err != nil {
		fmt.Fprintln(out, "  "+styles.Check(false, "node "+v, err.Error()))
		return
	}
	fmt.Fprintln(out, "  "+styles.Check(true, "node "+v, ">= "+runtime.MinNodeVersion))
}

func runManagerCheck(cmd *cobra.Command, out io.Writer, styles *ui.Styles, runner runtime.Runner) {
	fmt.Fprintln(out, "Package managers:")
	n := &pkgmgr.Negotiator{Runner: runner, LookPath: hostLookPath}
	env := runtime.Env{}
	for _, m := range n.Versions(cmd.Context(), n.Detect(env), env) {
		if !m.Available {
			fmt.Fprintln(out, "  "+styles.Check(false, m.Name, "not installed"))
			continue
		}
		fmt.Fprintln(out, "  "+styles.Check(true, m.Describe(), ""))
	}
}

func runConfigCheck(out io.Writer, styles *ui.Styles) {
	fmt.Fprintln(out, "Defaults:")
	path := config.FilePath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "  "+styles.Check(true, "built-in", "no "+path))
		return
	}
	fmt.Fprintln(out, "  "+styles.Check(true, path, ""))
}
