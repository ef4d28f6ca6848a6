package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/venvlink/venvlink/internal/config"
	"github.com/venvlink/venvlink/internal/lifecycle"
	"github.com/venvlink/venvlink/internal/linker"
	"github.com/venvlink/venvlink/internal/preflight"
	"github.com/venvlink/venvlink/internal/runner"
)

func renderInstall(w io.Writer, report *lifecycle.InstallReport) error {
	export, err := pathExport(report.BinDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, SuccessStyle.Render("✓ Installed "+report.Package))
	field(w, "environment", PathStyle.Render(report.EnvDir))
	field(w, "bin", PathStyle.Render(report.BinDir))
	if len(report.Scripts) == 0 {
		field(w, "scripts", WarningStyle.Render("none found"))
	} else {
		field(w, "scripts", strings.Join(report.Scripts, ", "))
	}
	if report.Links != nil && len(report.Links.Skipped) > 0 {
		field(w, "skipped", strings.Join(report.Links.Skipped, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, HintStyle.Render("Make sure the bin directory is on your PATH:"))
	fmt.Fprintln(w, "  "+export)
	return nil
}

func renderUninstall(w io.Writer, report *lifecycle.UninstallReport) {
	if !report.Removed {
		fmt.Fprintln(w, HintStyle.Render(report.Package+" is not installed; nothing to remove"))
		return
	}
	fmt.Fprintln(w, SuccessStyle.Render("✓ Removed "+report.EnvDir))
	if len(report.Unlinked) > 0 {
		field(w, "unlinked", strings.Join(report.Unlinked, ", "))
	}
}

func field(w io.Writer, label, value string) {
	fmt.Fprintln(w, "  "+LabelStyle.Render(label)+value)
}

// pathExport returns a shell line that prepends binDir to PATH, with binDir
// quoted for POSIX shells.
func pathExport(binDir string) (string, error) {
	quoted, err := syntax.Quote(binDir, syntax.LangPOSIX)
	if err != nil {
		return "", fmt.Errorf("quoting %s for the shell: %w", binDir, err)
	}
	return fmt.Sprintf(`export PATH=%s:"$PATH"`, quoted), nil
}

// onPath reports whether dir is one of the entries in the PATH-style list.
func onPath(dir, pathList string) bool {
	want := filepath.Clean(dir)
	for _, entry := range filepath.SplitList(pathList) {
		if entry != "" && filepath.Clean(entry) == want {
			return true
		}
	}
	return false
}

// renderError writes err for a human, adding a hint for errors with a known
// remedy.
func renderError(w io.Writer, err error) {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+err.Error())

	var (
		conflict *linker.ConflictError
		exitErr  *runner.ExitError
		pfErr    *preflight.Error
		invalid  *config.InvalidError
	)
	switch {
	case errors.As(err, &conflict):
		fmt.Fprintln(w, HintStyle.Render("Remove or rename "+conflict.Path+", or install with a different --prefix."))
	case errors.As(err, &exitErr):
		fmt.Fprintln(w, HintStyle.Render("The command was: "+exitErr.Command))
	case errors.As(err, &pfErr):
		if pfErr.Check == preflight.CheckInterpreter {
			fmt.Fprintln(w, HintStyle.Render("Install Python 3 or point --python at an interpreter."))
		}
	case errors.As(err, &invalid):
		fmt.Fprintln(w, HintStyle.Render("Fix or remove the config file and try again."))
	}
}
