package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forge-labs/forge/internal/config"
	"github.com/forge-labs/forge/internal/generate"
	"github.com/forge-labs/forge/internal/logging"
	"github.com/forge-labs/forge/internal/manifest"
	"github.com/forge-labs/forge/internal/pkgmgr"
	"github.com/forge-labs/forge/internal/prompt"
	"github.com/forge-labs/forge/internal/runtime"
	"github.com/forge-labs/forge/internal/ui"
)

// engine asks the interactive questions and yes/no confirmations.
type engine interface {
	config.Asker
	pkgmgr.Confirmer
}

var (
	choiceFlags = make(map[config.Key]*string)
	newDir      string
	newDryRun   bool
	newInstall  bool
	newYes      bool
	newVerbose  bool
)

var flagUsage = map[config.Key]string{
	config.KeyName:     "Project name",
	config.KeyArch:     "Architecture",
	config.KeyFrontend: "Frontend framework",
	config.KeyBackend:  "Backend framework",
	config.KeyDB:       "Database",
	config.KeyORM:      "ORM/ODM",
	config.KeyCSS:      "Styling",
	config.KeyPkg:      "Package manager",
	config.KeyLang:     "Language",
}

var flagOrder = []config.Key{
	config.KeyName, config.KeyArch, config.KeyFrontend, config.KeyBackend,
	config.KeyDB, config.KeyORM, config.KeyCSS, config.KeyPkg, config.KeyLang,
}

func init() {
	flags := rootCmd.Flags()
	flags.SortFlags = false
	for _, k := range flagOrder {
		usage := flagUsage[k]
		if allowed, ok := config.Choices[k]; ok {
			usage += " (" + strings.Join(allowed, ", ") + ")"
		}
		choiceFlags[k] = flags.String(string(k), "", usage)
	}
	flags.StringVar(&newDir, "dir", ".", "Directory to create the project in")
	flags.BoolVar(&newDryRun, "dry-run", false, "Print what would be done without writing files or running commands")
	flags.BoolVar(&newInstall, "install", true, "Install dependencies after generation")
	flags.BoolVarP(&newYes, "yes", "y", false, "Skip prompts and use flags or defaults")
	flags.BoolVar(&newVerbose, "verbose", false, "Enable debug logging")
}

// flagValues collects the choice flags and the positional name, rejecting
// values outside a key's choice set.
func flagValues(args []string) (config.Values, error) {
	values := make(config.Values)
	for k, v := range choiceFlags {
		if *v == "" {
			continue
		}
		if err := config.ValidateChoice(k, *v); err != nil {
			return nil, err
		}
		values[k] = *v
	}
	if len(args) == 1 && !values.Set(config.KeyName) {
		values[config.KeyName] = args[0]
	}
	return values, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	log := logging.New(cmd.ErrOrStderr(), newVerbose)
	defer func() { _ = log.Sync() }()

	runner := newRunner()
	nodeVersion, err := runtime.NodeVersion(ctx, runner, runtime.Env{})
	if err != nil {
		return err
	}
	if err := runtime.CheckNode(nodeVersion, runtime.MinNodeVersion); err != nil {
		return err
	}
	log.Debug("node found", zap.String("version", nodeVersion))

	fixed, err := flagValues(args)
	if err != nil {
		return err
	}
	v, err := loadConfig()
	if err != nil {
		return err
	}
	defaults, err := config.Defaults(v)
	if err != nil {
		return err
	}

	interactive := !newYes && stdinIsTerminal()
	var eng engine
	var answers config.Values
	if interactive {
		eng = newEngine()
		answers, err = config.Collect(config.Questions(), defaults, fixed, eng)
		if err != nil {
			return err
		}
	}

	cfg, notes := config.Resolve(config.Flags{
		Values:          fixed,
		TargetDirectory: newDir,
		DryRun:          newDryRun,
		InstallDeps:     newInstall,
	}, defaults, answers, interactive)
	for _, note := range notes {
		log.Warn(note)
	}
	if err := manifest.CheckName(cfg.Name); err != nil {
		return fmt.Errorf("invalid project name: %w", err)
	}

	negotiator := &pkgmgr.Negotiator{Runner: runner, LookPath: hostLookPath, Logger: log}
	if interactive {
		negotiator.Confirm = eng
	}
	res, err := negotiator.Negotiate(ctx, cfg.PackageManager, interactive, cfg.DryRun)
	if err != nil {
		return err
	}
	cfg = cfg.WithPackageManager(res.Manager.Name)

	if err := ui.Render(out, ui.Plan(cfg), stdoutIsTerminal()); err != nil {
		return err
	}
	if interactive {
		ok, err := eng.Confirm("Proceed?", true)
		if err != nil {
			return err
		}
		if !ok {
			return prompt.ErrCancelled
		}
	}

	gc := generate.NewContext(cfg, res.Manager, res.Env, runner, log)
	if err := generate.NewDispatcher().Dispatch(ctx, gc); err != nil {
		return err
	}
	if err := generate.Install(ctx, gc); err != nil {
		var installErr *generate.InstallError
		if errors.As(err, &installErr) {
			fmt.Fprint(cmd.ErrOrStderr(), ui.NewStyles().Warning.Render(installErr.Guidance()))
		}
		return err
	}

	fmt.Fprintf(out, "\nDone. Next:\n - cd %s\n - Open README for commands.\n", relativeRoot(cfg.ProjectRoot()))
	return nil
}

// relativeRoot shortens root for display when it lies below the working
// directory.
func relativeRoot(root string) string {
	wd, err := os.Getwd()
	if err != nil {
		return root
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return root
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		return abs
	}
	return rel
}
