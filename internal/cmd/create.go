package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opmodel/create-vite/internal/config"
	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/scaffold"
	"github.com/opmodel/create-vite/internal/templates"
)

// createOptions holds the flags of the scaffold command.
type createOptions struct {
	template       string
	templateDir    string
	packageManager string
	yes            bool
}

func (o *createOptions) addFlags(c *cobra.Command) {
	c.Flags().StringVarP(&o.template, "template", "t", "",
		fmt.Sprintf("Template to use: %s (env: CREATE_VITE_TEMPLATE)", strings.Join(templates.Names(), ", ")))
	c.Flags().StringVar(&o.templateDir, "template-dir", "",
		"Use a template directory on disk instead of a bundled template")
	c.Flags().StringVar(&o.packageManager, "package-manager", "",
		fmt.Sprintf("Package manager: %s (default: detected)", strings.Join(scaffold.SupportedPackageManagers(), ", ")))
	c.Flags().BoolVarP(&o.yes, "yes", "y", false,
		"Answer every question with its default")
}

func runCreate(c *cobra.Command, args []string, g *GlobalConfig, opts *createOptions, rt runtimeDeps) error {
	if g.ConfigErr != nil {
		return g.ConfigErr
	}

	resolved := config.Resolve(config.ResolveOptions{
		TemplateFlag:       opts.template,
		TemplateDirFlag:    opts.templateDir,
		PackageManagerFlag: opts.packageManager,
		Config:             g.Config,
	})
	output.Debug("resolved settings",
		"template", resolved.Template.Value, "templateSource", resolved.Template.Source,
		"packageManager", resolved.PackageManager.Value, "packageManagerSource", resolved.PackageManager.Source,
	)

	tmpl, err := loadTemplate(resolved)
	if err != nil {
		return exitWith(err)
	}

	cwd, err := rt.getwd()
	if err != nil {
		return exitWith(oerrors.NewFilesystemError("getting working directory", ".", err))
	}

	var projectName string
	if len(args) > 0 {
		projectName = args[0]
	}

	req := scaffold.Request{
		ProjectName:        projectName,
		DefaultProjectName: resolved.ProjectName.Value,
		Cwd:                cwd,
		Template:           tmpl,
		PackageManager:     resolved.PackageManager.Value,
		Env:                envMap(rt.environ()),
	}

	res, err := scaffold.Run(c.Context(), req, scaffold.Deps{
		Prompter: rt.prompter(c, opts.yes),
		Runner:   rt.runner(c),
		Out:      c.OutOrStdout(),
	})
	switch {
	case errors.Is(err, scaffold.ErrAborted):
		output.Debug("scaffold cancelled")
		return nil
	case err != nil:
		return exitWith(err)
	}

	output.ProjectLogger(res.Target.Name).Debug("scaffold complete",
		"package", res.PackageName,
		"files", len(res.Files),
		"pm", res.PackageManager.String(),
		"started", res.Started,
	)
	return nil
}

// loadTemplate returns the on-disk template when one is configured, or the
// bundled template otherwise.
func loadTemplate(resolved *config.ResolvedConfig) (fs.FS, error) {
	if dir := resolved.TemplateDir.Value; dir != "" {
		expanded, err := config.ExpandPath(dir)
		if err != nil {
			return nil, fmt.Errorf("expanding template path: %w", err)
		}
		fsys, err := templates.DirFS(expanded)
		if err != nil {
			return nil, oerrors.NewNotFoundError(err.Error(), expanded, "Point --template-dir at a directory containing package.json.")
		}
		return fsys, nil
	}

	t, err := templates.Get(resolved.Template.Value)
	if err != nil {
		return nil, oerrors.NewValidationError(
			err.Error(),
			"--template",
			"Run 'create-vite templates' for details.",
		)
	}
	output.Debug("using bundled template", "name", t.Name, "description", t.Description)
	return templates.FS(t.Name)
}

// envMap turns KEY=VALUE pairs into a map. Later pairs win.
func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}
