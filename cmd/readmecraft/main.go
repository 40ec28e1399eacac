package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/readmecraft/readmecraft/internal/config"
	"github.com/readmecraft/readmecraft/internal/errors"
	"github.com/readmecraft/readmecraft/internal/metadata"
	"github.com/readmecraft/readmecraft/internal/output"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌─┐┌┬┐┌┬┐┌─┐┌─┐┬─┐┌─┐┌─┐┌┬┐
  ├┬┘├┤ ├─┤ │││││├┤ │  ├┬┘├─┤├┤  │
  ┴└─└─┘┴ ┴─┴┘┴ ┴└─┘└─┘┴└─┴ ┴└   ┴
`

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// cli is the state shared by all commands of one invocation.
type cli struct {
	// workDir is where the configuration file search starts. Empty means
	// the working directory.
	workDir string

	configPath string
	logLevel   string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, &cli{}, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// execute runs the command line args and returns the process exit status.
// Errors are printed to stderr.
func execute(ctx context.Context, c *cli, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(c)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		errors.Print(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "readmecraft",
		Short: "Generate README files from templates, badges and sections",
		Long: `readmecraft generates Markdown READMEs for your projects.

  • Badges for build status, versions, licenses and languages
  • Ready-made sections: installation, usage, contributing, license
  • Complete documents from built-in or custom templates
  • Live preview in the terminal or the browser`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Path to "+config.ConfigFileName+" (default: search from the working directory)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		badgesCmd(c),
		sectionCmd(c),
		createCmd(c),
		templatesCmd(c),
		initCmd(c),
		previewCmd(c),
		serveCmd(c),
		versionCmd(c),
	)

	return rootCmd
}

// setup loads the configuration and creates the logger.
func (c *cli) setup(cmd *cobra.Command) error {
	if c.noColor {
		errors.DisableColors()
	} else {
		errors.EnableColors()
	}

	var err error
	switch {
	case c.configPath != "":
		c.cfg, err = config.LoadFile(c.configPath)
	case c.workDir != "":
		c.cfg, err = config.LoadFrom(c.workDir)
	default:
		c.cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return err
	}

	level := c.cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = c.logLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.New("E010").
			WithDetail("Invalid --log-level '" + level + "'").
			WithSuggestion("Use one of: debug, info, warn, error")
	}

	c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	c.logger.Debug("configuration loaded", "path", c.cfg.Path())
	return nil
}

// resolveProject layers project metadata: built-in defaults, then the
// configuration defaults, then the --from file, then flags.
func (c *cli) resolveProject(builtin metadata.Project, from string, flags metadata.Project) (metadata.Project, error) {
	p := builtin.Merge(c.cfg.Defaults.Project())
	if from != "" {
		fp, err := metadata.LoadFile(from)
		if err != nil {
			return metadata.Project{}, err
		}
		p = p.Merge(fp)
	}
	return p.Merge(flags), nil
}

// writer returns the output writer for cmd.
func (c *cli) writer(cmd *cobra.Command) *output.Writer {
	return output.New(cmd.OutOrStdout(), output.WithLogger(c.logger))
}

// changed returns value if the flag was set on the command line, "" otherwise.
func changed(cmd *cobra.Command, name, value string) string {
	if cmd.Flags().Changed(name) {
		return value
	}
	return ""
}

func (c *cli) render(style lipgloss.Style, text string) string {
	if c.noColor {
		return text
	}
	return style.Render(text)
}

// printBanner prints the readmecraft ASCII art banner.
func (c *cli) printBanner(w io.Writer) {
	fmt.Fprint(w, c.render(titleStyle, banner))
}

// title prints a heading.
func (c *cli) title(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "\n%s\n\n", c.render(titleStyle, fmt.Sprintf(format, args...)))
}

// success prints a success message.
func (c *cli) success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", c.render(successStyle, "✓"), fmt.Sprintf(format, args...))
}

// info prints an info message.
func (c *cli) info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "  %s\n", c.render(infoStyle, fmt.Sprintf(format, args...)))
}

// warn prints a warning message.
func (c *cli) warn(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", c.render(warnStyle, "⚠"), fmt.Sprintf(format, args...))
}

// muted prints a de-emphasized line.
func (c *cli) muted(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s\n", c.render(mutedStyle, fmt.Sprintf(format, args...)))
}

// describeDest names an output destination for status messages.
func describeDest(dest string) string {
	if output.IsStdout(dest) {
		return "stdout"
	}
	return strings.TrimSpace(dest)
}
