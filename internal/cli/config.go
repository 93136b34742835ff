package cli

import (
	stderrors "errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/pkg/errors"
)

// NewConfigCmd creates the config command with subcommands.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  "View the project configuration and view or modify openhooks user settings",
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigSetCmd(),
		newConfigGetCmd(),
	)

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the project configuration and the effective user settings",
		Args:  cobra.NoArgs,
		RunE:  runConfigShow,
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a settings value",
		Long:  "Set a user settings key to a specific value, e.g. layout.default_branch",
		Args:  cobra.ExactArgs(setCommandArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd, args[0], args[1])
		},
	}

	return cmd
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get KEY",
		Short: "Get a settings value",
		Long:  "Get the value of a specific user settings key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd, args[0])
		},
	}

	return cmd
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	projectPath := getProjectConfigPath()
	project, err := loadProject()
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "Project (%s):\n", projectPath)
		writeTable(cmd, project.ToMap())
	case stderrors.Is(err, errors.ErrConfigurationMissing):
		_, _ = fmt.Fprintf(out, "Project (%s): not initialized\n", projectPath)
	default:
		return err
	}

	settingsPath, err := getSettingsPath()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "\nSettings (%s):\n", settingsPath)
	writeTable(cmd, settings.ToMap())
	return nil
}

func writeTable(cmd *cobra.Command, values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tabWriter := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "  SETTING\tVALUE")
	_, _ = fmt.Fprintln(tabWriter, "  -------\t-----")
	for _, k := range keys {
		_, _ = fmt.Fprintf(tabWriter, "  %s\t%s\n", k, values[k])
	}
	_ = tabWriter.Flush()
}

func runConfigSet(cmd *cobra.Command, key, value string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	if err := settings.SetValue(key, value); err != nil {
		return fmt.Errorf("failed to set configuration value: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("%w: %s", errors.ErrConfigValidation, err.Error())
	}

	path, err := getSettingsPath()
	if err != nil {
		return err
	}
	if err := settings.SaveSettings(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Success("Configuration updated", logger.Fields{"path": path, "key": key, "value": value})
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

func runConfigGet(cmd *cobra.Command, key string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	value, err := settings.GetValue(key)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
	return nil
}
