package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/config"
	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/server"
	"github.com/readmecraft/readmecraft/internal/templates"
)

func serveCmd(c *cli) *cobra.Command {
	var (
		host         string
		port         int
		watch        string
		templatesDir string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the browser preview server",
		Long: `Start the preview server.

With --watch the file is rendered at / and open browser tabs reload when it
changes. The server also exposes the generators as a JSON API under /api and
Prometheus metrics at /metrics.

Examples:
  readmecraft serve --watch README.md
  readmecraft serve --host 0.0.0.0 --port 8080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("host") {
				c.cfg.Preview.Host = host
			}
			if cmd.Flags().Changed("port") {
				if port < 0 || port > 65535 {
					return errors.New("E010").
						WithDetail("Invalid --port " + strconv.Itoa(port)).
						WithSuggestion("Use a port between 0 and 65535")
				}
				c.cfg.Preview.Port = port
			}
			dir := templatesDir
			if !cmd.Flags().Changed("templates-dir") {
				dir = c.cfg.TemplatesPath()
			}

			stderr := cmd.ErrOrStderr()
			srv := server.New(server.Options{
				Address:   c.cfg.PreviewAddress(),
				WatchFile: watch,
				Templates: templates.Loader{Dir: dir},
				Logger:    c.logger,
				OnReload: func(clients int) {
					c.info(stderr, "Reloaded %d browser(s)", clients)
				},
			})

			c.printBanner(stderr)
			c.success(stderr, "Preview server at %s", c.cfg.PreviewURL())
			if watch != "" {
				c.info(stderr, "Watching %s", watch)
			}
			c.muted(stderr, "Press Ctrl+C to stop")

			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&host, "host", config.DefaultHost, "Host to bind to")
	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "Port to listen on")
	cmd.Flags().StringVar(&watch, "watch", "", "Markdown file to render and live-reload")
	cmd.Flags().StringVar(&templatesDir, "templates-dir", "", "Directory of <name>.md templates")

	return cmd
}
