package scaffold

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/prompt"
)

// PostScaffoldOptions configures PostScaffold.
type PostScaffoldOptions struct {
	Target         *Target
	Cwd            string
	PackageManager PackageManager
	Prompter       prompt.Prompter
	Runner         Runner
	Out            io.Writer
}

// PostScaffold asks whether to install dependencies and start the dev
// server. On yes both commands run in the project directory, one after the
// other; on no the commands are printed instead. It reports whether the
// commands were run.
//
// The dev server runs until it is interrupted, so a dev command that fails
// after ctx was cancelled counts as stopped rather than failed. Every other
// runner error is returned.
func PostScaffold(ctx context.Context, opts PostScaffoldOptions) (bool, error) {
	yes, err := opts.Prompter.Confirm(prompt.ConfirmQuestion{
		Message: "Install and start it now?",
		Default: true,
	})
	if err != nil {
		return false, promptErr(err)
	}

	pm := opts.PackageManager
	if !yes {
		output.Print(opts.Out, NextSteps(opts.Cwd, opts.Target.Root, pm))
		return false, nil
	}

	if err := runStep(ctx, opts, pm.InstallCommand()); err != nil {
		return false, err
	}
	if err := runStep(ctx, opts, pm.DevCommand()); err != nil {
		if ctx.Err() == nil {
			return false, err
		}
		output.Debug("dev server stopped", "error", err)
	}
	return true, nil
}

func runStep(ctx context.Context, opts PostScaffoldOptions, argv []string) error {
	output.Println(opts.Out, "\n"+output.StyleDim.Render("$ "+strings.Join(argv, " ")))
	return opts.Runner.Run(ctx, opts.Target.Root, argv)
}

// NextSteps renders the commands to run by hand. The cd line is left out
// when the project was created in cwd itself.
func NextSteps(cwd, root string, pm PackageManager) string {
	var b strings.Builder
	b.WriteString("\n" + output.FormatCheckmark("Done. Now run:") + "\n\n")

	if filepath.Clean(root) != filepath.Clean(cwd) {
		rel, err := filepath.Rel(cwd, root)
		if err != nil {
			rel = root
		}
		if strings.ContainsAny(rel, " \t") {
			rel = `"` + rel + `"`
		}
		b.WriteString(output.FormatCommand("cd "+rel) + "\n")
	}

	b.WriteString(output.FormatCommand(strings.Join(pm.InstallCommand(), " ")) + "\n")
	b.WriteString(output.FormatCommand(strings.Join(pm.DevCommand(), " ")) + "\n\n")
	return b.String()
}
