package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/openhooks/internal/cli"
)

var (
	configPath        string
	verbose           bool
	noColor           bool
	projectConfigPath string
	logFormat         string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(cli.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openhooks",
		Short: "Copy ready-made hooks into your project",
		Long: `openhooks copies individual hook source files from a GitHub repository
into your project:
- init: create open-hooks.config.json
- add: copy hooks in TypeScript or JavaScript
- list: show the hooks a repository publishes`,
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "settings file path (default: user config dir)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().StringVar(&projectConfigPath, "project-config", "", "project config path (default: ./open-hooks.config.json)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")

	// Set up CLI pkg variables
	cli.ConfigPath = &configPath
	cli.Verbose = &verbose
	cli.NoColor = &noColor
	cli.ProjectConfigPath = &projectConfigPath
	cli.LogFormat = &logFormat

	// Add subcommands
	cmd.AddCommand(
		cli.NewInitCmd(),
		cli.NewAddCmd(),
		cli.NewListCmd(),
		cli.NewConfigCmd(),
		cli.NewVersionCmd(),
	)

	return cmd
}
