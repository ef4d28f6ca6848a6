package cli

import (
	"context"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/venvlink/venvlink/internal/branding"
	"github.com/venvlink/venvlink/internal/config"
	"github.com/venvlink/venvlink/internal/lifecycle"
	"github.com/venvlink/venvlink/internal/paths"
	"github.com/venvlink/venvlink/internal/pip"
	"github.com/venvlink/venvlink/internal/preflight"
	"github.com/venvlink/venvlink/internal/runner"
	"github.com/venvlink/venvlink/internal/venv"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// host holds the process-level collaborators. Tests swap them out.
type host struct {
	Home     func() (string, error)
	Runner   runner.Runner
	LookPath func(string) (string, error)
	Getenv   func(string) string
	GOOS     string
}

func defaultHost() *host {
	return &host{
		Home:     paths.Home,
		Runner:   &runner.ExecRunner{},
		LookPath: exec.LookPath,
		Getenv:   os.Getenv,
		GOOS:     runtime.GOOS,
	}
}

type options struct {
	version   string
	url       string
	path      string
	uninstall bool
	verbose   bool
}

func newRootCmd(h *host) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   branding.CLIName() + " <package>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` installs a Python command-line program into its own virtual
environment and links the program's scripts into a shared bin directory.

By default environments live under /usr/local/lib/venvlink and scripts are
linked into /usr/local/bin. Use --user for ~/.local or --prefix for any other
base directory.`,
		Example: `  venvlink httpie
  venvlink black --version 24.4.2 --user
  venvlink mytool --path ./mytool --prefix ~/tools
  venvlink httpie --uninstall`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, h, opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.version, "version", "v", "", "Package version to install (ignored with --url or --path)")
	flags.StringVarP(&opts.url, "url", "u", "", "Install from a URL instead of the package index")
	flags.StringVarP(&opts.path, "path", "p", "", "Install from a local path (takes precedence over --url)")
	flags.Bool(config.KeyUser, false, "Use the user base directory (~/.local); wins over --prefix")
	flags.String(config.KeyPrefix, paths.DefaultPrefix, "Base directory for environments and links")
	flags.String(config.KeyPython, venv.DefaultPython, "Python interpreter used to create environments")
	flags.BoolVar(&opts.uninstall, "uninstall", false, "Remove the package instead of installing it")
	flags.BoolVar(&opts.verbose, "verbose", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, h *host, opts *options, name string) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	logger.Debug("starting", "version", buildVersion, "commit", buildCommit, "built", buildDate)

	home, err := h.Home()
	if err != nil {
		return err
	}

	loader := config.NewLoader(config.FilePath(home))
	if err := loader.BindFlags(cmd.Flags(), config.KeyPrefix, config.KeyUser, config.KeyPython); err != nil {
		return err
	}
	settings, err := loader.Load()
	if err != nil {
		return err
	}
	if settings.File != "" {
		logger.Debug("loaded config", "file", settings.File)
	}

	layout, err := paths.Resolve(paths.Options{User: settings.User, Prefix: settings.Prefix}, home)
	if err != nil {
		return err
	}
	logger.Debug("resolved layout", "prefix", layout.Prefix, "envs", layout.EnvsRoot, "bin", layout.BinDir)

	checker := preflight.New(settings.Python, h.Runner)
	checker.GOOS = h.GOOS
	checker.LookPath = h.LookPath

	ctx := cmd.Context()

	if opts.uninstall {
		if err := checker.Platform(); err != nil {
			return err
		}
		manager := &lifecycle.Manager{Layout: layout, Logger: logger}
		report, err := manager.Uninstall(ctx, name)
		if err != nil {
			return err
		}
		renderUninstall(cmd.OutOrStdout(), report)
		return nil
	}

	python, version, err := checker.Run(ctx)
	if err != nil {
		return err
	}
	logger.Debug("using interpreter", "python", python, "version", version)

	manager := &lifecycle.Manager{
		Layout:    layout,
		Creator:   venv.NewPythonCreator(python, h.Runner),
		Installer: pip.NewPipInstaller(h.Runner, settings.PipArgs...),
		Logger:    logger,
	}
	report, err := manager.Install(ctx, pip.Package{
		Name:    name,
		Version: opts.version,
		URL:     opts.url,
		Path:    opts.path,
	})
	if err != nil {
		return err
	}
	if !onPath(report.BinDir, h.Getenv("PATH")) {
		logger.Warn("bin directory is not on PATH", "dir", report.BinDir)
	}

	return renderInstall(cmd.OutOrStdout(), report)
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: branding.CLIName(),
		Level:  level,
	})
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return executeArgs(ctx, defaultHost(), os.Args[1:], os.Stdout, os.Stderr)
}

// executeArgs runs the command with args and explicit output streams,
// rendering any error to stderr.
func executeArgs(ctx context.Context, h *host, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(h)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		renderError(stderr, err)
		return err
	}
	return nil
}
