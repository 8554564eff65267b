// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opmodel/create-vite/internal/config"
	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/prompt"
	"github.com/opmodel/create-vite/internal/scaffold"
)

// GlobalConfig holds CLI-wide settings resolved during PersistentPreRunE.
// It is created once by NewRootCmd and passed to every sub-command.
type GlobalConfig struct {
	// Config is the loaded config file with env overrides applied.
	Config *config.Config

	// ConfigPath is the raw --config value.
	ConfigPath string

	// ConfigErr is set when the config file could not be loaded. Commands
	// that depend on configuration report it; the others still run.
	ConfigErr error

	Verbose    bool
	Timestamps bool
}

// runtimeDeps is the process state and the collaborators that touch the
// terminal. Tests replace them.
type runtimeDeps struct {
	getwd    func() (string, error)
	environ  func() []string
	prompter func(c *cobra.Command, yes bool) prompt.Prompter
	runner   func(c *cobra.Command) scaffold.Runner
}

func defaultRuntime() runtimeDeps {
	return runtimeDeps{
		getwd:   os.Getwd,
		environ: os.Environ,
		prompter: func(c *cobra.Command, yes bool) prompt.Prompter {
			if yes {
				return prompt.Defaults{}
			}
			return prompt.NewHuhPrompter(c.InOrStdin(), c.OutOrStdout(), !output.IsTTY())
		},
		runner: func(c *cobra.Command) scaffold.Runner {
			return &scaffold.ExecRunner{
				Stdin:  c.InOrStdin(),
				Stdout: c.OutOrStdout(),
				Stderr: c.ErrOrStderr(),
			}
		},
	}
}

// NewRootCmd creates the root command for create-vite.
func NewRootCmd() *cobra.Command {
	return newRootCmd(defaultRuntime())
}

func newRootCmd(rt runtimeDeps) *cobra.Command {
	g := &GlobalConfig{}
	opts := &createOptions{}

	rootCmd := &cobra.Command{
		Use:   "create-vite [project-name]",
		Short: "Scaffold a new Vite project",
		Long: `Scaffold a new Vite project from a template.

The project is created in ./<project-name>. When the directory already has
files you are asked before they are removed. After the template is copied
create-vite offers to install dependencies and start the dev server.

A project named after a subcommand (config, templates, version, help,
completion) must follow "--", otherwise the subcommand runs.

Examples:
  # Ask for everything
  create-vite

  # Create ./my-app from the vue template
  create-vite my-app --template vue

  # Accept every default without asking
  create-vite my-app --yes

  # Create ./config rather than running the config command
  create-vite --template vue -- config`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, g)
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args, g, opts, rt)
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Path to config file (env: CREATE_VITE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&g.Timestamps, "timestamps", true, "Show timestamps in log output")

	opts.addFlags(rootCmd)

	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(c *cobra.Command, g *GlobalConfig) error {
	cfg, err := config.NewLoader().Load(g.ConfigPath)
	if err != nil {
		g.ConfigErr = oerrors.NewExitError(
			oerrors.NewValidationError(err.Error(), g.ConfigPath, "Fix the config file or run 'create-vite config init --force'."),
			oerrors.ExitValidationError,
		)
		cfg = &config.Config{}
	}
	g.Config = cfg

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: g.Verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(g.Timestamps)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if g.ConfigErr != nil {
		output.Debug("config load error", "error", err)
	}
	output.Debug("initializing CLI",
		"config", g.ConfigPath,
		"template", cfg.Template,
		"templateDir", cfg.TemplateDir,
		"packageManager", cfg.PackageManager,
	)
	return nil
}

// exitWith wraps err with the exit code matching its kind.
func exitWith(err error) error {
	return oerrors.NewExitError(err, oerrors.ExitCodeFromError(err))
}
