package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glorpus-work/openhooks/internal/logger"
	"github.com/glorpus-work/openhooks/internal/ui/styles"
	"github.com/glorpus-work/openhooks/pkg/config"
	"github.com/glorpus-work/openhooks/pkg/errors"
	"github.com/glorpus-work/openhooks/pkg/fsutil"
	"github.com/glorpus-work/openhooks/pkg/model"
	"github.com/glorpus-work/openhooks/pkg/prompt"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	var force, yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the project configuration",
		Long: `Create open-hooks.config.json in the current directory.

Asks where hooks are written, which language variant to prefer and which
repository to install from. Use --yes to accept the defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, force, yes)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Accept the default answers without prompting")

	return cmd
}

func runInit(cmd *cobra.Command, force, yes bool) error {
	if _, err := loadSettings(); err != nil {
		return err
	}

	path := getProjectConfigPath()
	exists, err := fsutil.Exists(path)
	if err != nil {
		return err
	}
	if exists && !force {
		return fmt.Errorf("%s: %w", path, errors.ErrConfigExists)
	}

	var p prompt.Prompter = prompt.Defaults{}
	if !yes {
		p = newPrompter()
	}

	cfg, err := askProjectConfig(cmd.Context(), p)
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	logger.Debug("Project config written", logger.Fields{"path": path, "overwrote": exists})
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", styles.SuccessStyle.Render(styles.SymbolCheck), path)
	return nil
}

func askProjectConfig(ctx context.Context, p prompt.Prompter) (*config.ProjectConfig, error) {
	cfg := config.DefaultProjectConfig()

	hooksDir, err := p.AskText(ctx, "Where should hooks be added?", cfg.HooksDir)
	if err != nil {
		return nil, err
	}

	choices := make([]prompt.Choice, 0, len(model.Languages))
	for _, lang := range model.Languages {
		choices = append(choices, prompt.Choice{Label: languageLabel(lang), Value: lang.String()})
	}
	langValue, err := p.AskChoice(ctx, "Which language do you use?", choices)
	if err != nil {
		return nil, err
	}
	lang, err := model.ParseLanguage(langValue)
	if err != nil {
		return nil, err
	}

	repoURL, err := p.AskText(ctx, "Which repository should hooks come from?", cfg.RepoURL)
	if err != nil {
		return nil, err
	}

	cfg.HooksDir = hooksDir
	cfg.DefaultLanguage = lang
	cfg.RepoURL = repoURL
	return cfg, nil
}

func languageLabel(lang model.Language) string {
	switch lang {
	case model.LanguageTS:
		return "TypeScript"
	case model.LanguageJS:
		return "JavaScript"
	default:
		return lang.String()
	}
}
