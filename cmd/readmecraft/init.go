package main

import (
	"github.com/spf13/cobra"
)

func initCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactive README generator",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			c.title(w, "Interactive README Generator")
			c.warn(w, "This feature is coming soon!")
			c.muted(w, `For now, use: readmecraft create --name "My Project"`)
		},
	}
}
