// Package commands implements the CLI commands for the peek preview server.
package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/peek/internal/app"
	"go.trai.ch/peek/internal/build"
	"go.trai.ch/peek/internal/core/domain"
)

// CLI represents the command line interface for peek.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:   "peek [flags] [COMMAND...]",
		Short: "A lazily rebuilding preview server for local development",
		Long: "peek serves a directory over HTTP and runs a build command whenever the\n" +
			"project tree changed since the last successful build. Changes are detected\n" +
			"by polling at request time, so the build only runs when a page is actually\n" +
			"requested. A failing build is shown in the browser instead of the page.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.RunE = c.runServe

	rootCmd.Flags().IntP("port", "p", domain.DefaultPort, "Port to listen on")
	rootCmd.Flags().StringP("serve", "s", ".", "Directory to serve files from")
	rootCmd.Flags().StringP("watch", "w", ".", "Directory to watch for changes")
	rootCmd.Flags().StringArrayP("ignore", "i", nil, "Absolute path to exclude from change detection (repeatable)")
	rootCmd.Flags().Bool("digest", false, "Fingerprint the tree with a metadata digest instead of the newest mtime")

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// runServe gathers the flags and trailing build command and starts the server.
func (c *CLI) runServe(cmd *cobra.Command, args []string) error {
	port, _ := cmd.Flags().GetInt("port")
	serveDir, _ := cmd.Flags().GetString("serve")
	watchDir, _ := cmd.Flags().GetString("watch")
	ignore, _ := cmd.Flags().GetStringArray("ignore")
	digest, _ := cmd.Flags().GetBool("digest")

	return c.app.Serve(cmd.Context(), app.ServeOptions{
		Port:     port,
		ServeDir: serveDir,
		WatchDir: watchDir,
		Ignore:   ignore,
		Command:  strings.Join(args, " "),
		Digest:   digest,
		Explicit: app.Explicit{
			Port:    cmd.Flags().Changed("port"),
			Serve:   cmd.Flags().Changed("serve"),
			Watch:   cmd.Flags().Changed("watch"),
			Digest:  cmd.Flags().Changed("digest"),
			Command: len(args) > 0,
		},
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
