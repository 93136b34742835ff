package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/conflict"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/orchestrator"
)

type addOptions struct {
	language     string
	dir          string
	overwrite    bool
	skipExisting bool
}

// NewAddCmd creates the add command.
func NewAddCmd() *cobra.Command {
	var opts addOptions

	cmd := &cobra.Command{
		Use:   "add [hook...]",
		Short: "Add hooks to your project",
		Long: `Copy hooks from the configured repository into your project.

Without hook names an interactive picker lists every published hook.
Existing files are confirmed one by one unless --overwrite or
--skip-existing is given. Nothing is written when any requested hook is
unknown or lacks the selected language.`,
		Example: `  openhooks add useDebounce useFetch
  openhooks add useDebounce --language js --dir lib/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "Language variant to install (ts or js)")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "Directory to write hooks to")
	cmd.Flags().BoolVar(&opts.overwrite, "overwrite", false, "Replace existing files without asking")
	cmd.Flags().BoolVar(&opts.skipExisting, "skip-existing", false, "Keep existing files without asking")
	cmd.MarkFlagsMutuallyExclusive("overwrite", "skip-existing")

	return cmd
}

func (o addOptions) policy() conflict.Policy {
	switch {
	case o.overwrite:
		return conflict.PolicyOverwrite
	case o.skipExisting:
		return conflict.PolicySkip
	default:
		return conflict.PolicyAsk
	}
}

func runAdd(cmd *cobra.Command, names []string, opts addOptions) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	project, err := loadProject()
	if err != nil {
		return err
	}

	req := model.InstallRequest{Names: names, TargetDir: opts.dir}
	if opts.language != "" {
		if req.Language, err = model.ParseLanguage(opts.language); err != nil {
			return err
		}
	}

	orch := newOrchestrator(settings, newPrompter(), orchestrator.Options{
		DefaultLanguage: project.DefaultLanguage,
		DefaultDir:      project.HooksDir,
		Policy:          opts.policy(),
	})

	outcome, err := orch.Add(cmd.Context(), project.RepoURL, req)
	if err != nil {
		return err
	}

	printOutcome(cmd.OutOrStdout(), outcome)
	return nil
}

func printOutcome(w io.Writer, outcome model.InstallOutcome) {
	for _, name := range outcome.Skipped {
		_, _ = fmt.Fprintf(w, "%s Skipped %s\n", styles.WarningStyle.Render(styles.SymbolSkip), name)
	}

	if len(outcome.Written) == 0 {
		_, _ = fmt.Fprintln(w, "No hooks were added (all were skipped or cancelled)")
		return
	}

	_, _ = fmt.Fprintf(w, "%s Successfully added %s:\n",
		styles.SuccessStyle.Render(styles.SymbolCheck), pluralize(len(outcome.Written), "hook"))
	for _, path := range outcome.Written {
		_, _ = fmt.Fprintf(w, "  %s\n", path)
	}
}
