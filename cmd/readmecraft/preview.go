package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/preview"
)

func previewCmd(c *cli) *cobra.Command {
	var (
		width int
		html  bool
		style string
		out   string
	)

	cmd := &cobra.Command{
		Use:   "preview <file>",
		Short: "Render a Markdown file in the terminal or as HTML",
		Long: `Render a Markdown file for reading.

By default the file is rendered for the terminal. With --html it is
converted to a standalone HTML page.

Examples:
  readmecraft preview README.md
  readmecraft preview README.md --width 100 --style dark
  readmecraft preview README.md --html -o README.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return errors.New("E009").WithPath(path).Wrap(err)
			}

			var rendered string
			if html {
				body, err := preview.HTML(string(data))
				if err != nil {
					return err
				}
				rendered, err = preview.Page(filepath.Base(path), body, "")
				if err != nil {
					return err
				}
			} else {
				rendered, err = preview.Terminal(string(data), width, preview.Style(style))
				if err != nil {
					return err
				}
			}

			return c.writer(cmd).Write(cmd.Context(), out, rendered)
		},
	}

	cmd.Flags().IntVar(&width, "width", preview.DefaultWidth, "Word-wrap width for terminal output")
	cmd.Flags().BoolVar(&html, "html", false, "Render HTML instead of terminal output")
	cmd.Flags().StringVar(&style, "style", string(preview.StyleAuto), "Terminal style (auto, dark, light, notty)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Output file (default: stdout)")

	return cmd
}
