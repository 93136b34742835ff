package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/orchestrator"
)

type listedHook struct {
	Name        string   `json:"name"`
	Languages   []string `json:"languages"`
	Description string   `json:"description,omitempty"`
}

// NewListCmd creates the list command.
func NewListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available hooks",
		Long: `List the hooks published by the configured repository.

The repository comes from open-hooks.config.json; run "openhooks init"
first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the hooks as JSON")

	return cmd
}

func runList(cmd *cobra.Command, asJSON bool) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	project, err := loadProject()
	if err != nil {
		return err
	}

	orch := newOrchestrator(settings, nil, orchestrator.Options{})
	idx, err := orch.List(cmd.Context(), project.RepoURL)
	if err != nil {
		return err
	}

	hooks := make([]listedHook, 0, len(idx.Hooks))
	for _, h := range idx.Installable() {
		hooks = append(hooks, listedHook{
			Name:        h.Name,
			Languages:   languageNames(h.Variants()),
			Description: h.Description,
		})
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(hooks)
	}

	if len(hooks) == 0 {
		_, _ = fmt.Fprintln(out, "No hooks available")
		return nil
	}

	tabWriter := tabwriter.NewWriter(out, 0, 0, TabWidth, ' ', 0)
	_, _ = fmt.Fprintln(tabWriter, "HOOK\tLANGUAGES\tDESCRIPTION")
	for _, h := range hooks {
		_, _ = fmt.Fprintf(tabWriter, "%s\t%s\t%s\n",
			h.Name, strings.Join(h.Languages, ","), truncate(h.Description, MaxDescriptionLength))
	}
	_ = tabWriter.Flush()

	_, _ = fmt.Fprintf(out, "\n%s\n", styles.MutedStyle.Render(pluralize(len(hooks), "hook")+" available"))
	return nil
}

func languageNames(langs []model.Language) []string {
	out := make([]string, len(langs))
	for i, l := range langs {
		out[i] = l.String()
	}
	return out
}
