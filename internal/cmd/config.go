package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/opmodel/create-vite/internal/config"
	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
)

// configHeader is written above the generated config file.
const configHeader = `# create-vite configuration
# Every value can be overridden with a CREATE_VITE_* environment variable
# or the matching command-line flag.

`

// NewConfigCmd creates the config command group.
func NewConfigCmd(g *GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  `Configuration management for create-vite.`,
	}

	c.AddCommand(newConfigInitCmd(g))
	c.AddCommand(newConfigShowCmd(g))

	return c
}

func newConfigInitCmd(g *GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a configuration file with default values",
		Long: `Create a configuration file with default values.

The file is created at ~/.create-vite/config.yaml unless --config or
CREATE_VITE_CONFIG points elsewhere.

Examples:
  # Initialize configuration
  create-vite config init

  # Overwrite existing configuration
  create-vite config init --force`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runConfigInit(c, g.ConfigPath, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runConfigInit(c *cobra.Command, configFlag string, force bool) error {
	configFile := configFlag
	if configFile == "" {
		var err error
		configFile, err = config.GetConfigFile()
		if err != nil {
			return exitWith(oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory"))
		}
	}

	path, err := config.ExpandPath(configFile)
	if err != nil {
		return fmt.Errorf("expanding config path: %w", err)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return exitWith(oerrors.NewFilesystemError("checking config file", path, err))
	}
	if exists && !force {
		return exitWith(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: path,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		})
	}
	if exists {
		output.Info("replacing existing configuration", "path", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return exitWith(oerrors.NewFilesystemError("creating config directory", filepath.Dir(path), err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return exitWith(oerrors.NewFilesystemError("writing config file", path, err))
	}

	output.Println(c.OutOrStdout(), output.FormatCheckmark("Configuration written to "+output.StyleNoun.Render(path)))
	return nil
}

func newConfigShowCmd(g *GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration and where each value comes from",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if g.ConfigErr != nil {
				return g.ConfigErr
			}
			resolved := config.Resolve(config.ResolveOptions{Config: g.Config})

			var rows [][]string
			for _, row := range []struct {
				key string
				val config.ResolvedValue
			}{
				{"template", resolved.Template},
				{"templateDir", resolved.TemplateDir},
				{"packageManager", resolved.PackageManager},
				{"projectName", resolved.ProjectName},
			} {
				rows = append(rows, []string{row.key, row.val.Value, string(row.val.Source)})
			}

			output.Println(c.OutOrStdout(), output.RenderTable([]string{"KEY", "VALUE", "SOURCE"}, rows))
			return nil
		},
	}
}
