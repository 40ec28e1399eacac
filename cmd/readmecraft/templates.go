package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/templates"
)

func templatesCmd(c *cli) *cobra.Command {
	var templatesDir string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := templatesDir
			if !cmd.Flags().Changed("templates-dir") {
				dir = c.cfg.TemplatesPath()
			}

			list, err := templates.Loader{Dir: dir}.List()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			c.title(w, "Available Templates:")
			for _, tmpl := range list {
				fmt.Fprintf(w, "  %s - %s\n", c.render(infoStyle, "• "+tmpl.Name), tmpl.Description)
			}
			fmt.Fprintln(w)
			c.muted(w, "Usage: readmecraft create --template <name>")
			return nil
		},
	}

	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Directory of <name>.md templates")

	return cmd
}
