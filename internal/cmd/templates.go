package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	oerrors "github.com/opmodel/create-vite/internal/errors"
	"github.com/opmodel/create-vite/internal/output"
	"github.com/opmodel/create-vite/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "templates",
		Short: "List bundled templates",
		Long: `List the templates bundled with create-vite.

Examples:
  # Show a table
  create-vite templates

  # Machine-readable output
  create-vite templates -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplates(c.OutOrStdout(), format)
		},
	}

	c.Flags().StringVarP(&format, "output", "o", "table", "Output format: table, json, yaml")

	return c
}

func runTemplates(w io.Writer, format string) error {
	f := output.ParseOutputFormat(format)
	if !f.IsValid() {
		return oerrors.NewExitError(
			oerrors.NewValidationError(fmt.Sprintf("unsupported output format %q", format), "--output", "Use one of: table, json, yaml."),
			oerrors.ExitValidationError,
		)
	}

	list := templates.List()

	switch f {
	case output.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case output.FormatYAML:
		data, err := yaml.Marshal(list)
		if err != nil {
			return fmt.Errorf("marshaling templates: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	rows := make([][]string, 0, len(list))
	for _, t := range list {
		files, err := templates.ListTemplateFiles(t.Name)
		if err != nil {
			return fmt.Errorf("listing template %s: %w", t.Name, err)
		}
		def := ""
		if t.Default {
			def = "yes"
		}
		rows = append(rows, []string{string(t.Name), t.Description, strconv.Itoa(len(files)), def})
	}
	output.Println(w, output.RenderTable([]string{"NAME", "DESCRIPTION", "FILES", "DEFAULT"}, rows))
	return nil
}
