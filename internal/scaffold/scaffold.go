// Package scaffold creates a new project from a template.
//
// The work happens in four steps that always run in this order:
//
//  1. ResolveTarget picks the project directory and makes sure it is empty,
//     asking before anything is removed.
//  2. ResolvePackageName turns the directory name into a valid package.json
//     name, asking for a fix when it is not one already.
//  3. Materialize copies the template into the directory and writes the
//     manifest with the new name.
//  4. PostScaffold offers to install dependencies and start the dev server.
//
// Process state (working directory, environment) is passed in through
// Request so every step can run against a temporary directory in tests.
package scaffold

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/prompt"
)

// ErrAborted is returned when the user declines to continue. It is not a
// failure: callers exit quietly with status 0.
var ErrAborted = errors.New("scaffold aborted by user")

// DefaultProjectName is suggested when no project name was given.
const DefaultProjectName = "vite-demo"

// Request describes one scaffold run.
type Request struct {
	// ProjectName is the target directory name from the command line. May be empty.
	ProjectName string

	// DefaultProjectName is suggested by the project name prompt.
	// Empty means DefaultProjectName.
	DefaultProjectName string

	// Cwd is the absolute directory the project is created in.
	Cwd string

	// Template is the template tree, with the manifest at its root.
	Template fs.FS

	// PackageManager forces npm, yarn, pnpm or bun. Empty means detect.
	PackageManager string

	// Env is the process environment used for package manager detection.
	Env map[string]string
}

// Deps are the collaborators a run talks to.
type Deps struct {
	Prompter prompt.Prompter
	Runner   Runner

	// Out receives the file tree and next-step hints.
	Out io.Writer
}

// Result reports what a completed run did.
type Result struct {
	Target         *Target
	PackageName    string
	Files          []string
	PackageManager PackageManager

	// Started is true when install and dev were run.
	Started bool
}

// Run executes the full scaffold pipeline. It returns ErrAborted when the
// user backs out at any prompt.
func Run(ctx context.Context, req Request, deps Deps) (*Result, error) {
	target, err := ResolveTarget(req, deps.Prompter)
	if err != nil {
		return nil, err
	}

	log := output.ProjectLogger(target.Name)
	log.Debug("target ready", "root", target.Root, "state", target.State)

	pkgName, err := ResolvePackageName(filepath.Base(target.Root), deps.Prompter)
	if err != nil {
		return nil, err
	}
	log.Debug("package name resolved", "name", pkgName)

	output.Println(deps.Out, "\nScaffolding project in "+output.StyleNoun.Render(target.Root)+"...")

	var files []string
	err = output.RunWithSpinner(ctx, func() error {
		var mErr error
		files, mErr = Materialize(req.Template, target.Root, pkgName)
		return mErr
	}, output.WithTitle("Copying template..."))
	if err != nil {
		return nil, err
	}
	log.Debug("template copied", "files", len(files))

	output.Print(deps.Out, output.RenderSimpleTree(target.Name, files))

	pm, err := DetectPackageManager(req.PackageManager, req.Env, req.Cwd)
	if err != nil {
		return nil, err
	}
	log.Debug("package manager selected", "pm", pm.String())

	started, err := PostScaffold(ctx, PostScaffoldOptions{
		Target:         target,
		Cwd:            req.Cwd,
		PackageManager: pm,
		Prompter:       deps.Prompter,
		Runner:         deps.Runner,
		Out:            deps.Out,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		Target:         target,
		PackageName:    pkgName,
		Files:          files,
		PackageManager: pm,
		Started:        started,
	}, nil
}

// promptErr maps an interrupted prompt to ErrAborted.
func promptErr(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		return ErrAborted
	}
	return err
}
