package cli

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/relnotes/internal/app"
	"github.com/runoshun/relnotes/internal/domain"
	"github.com/runoshun/relnotes/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `Inspect relnotes configuration files and settings.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newConfigShowCommand(container))
	cmd.AddCommand(newConfigTemplateCommand(container))

	return cmd
}

// newConfigShowCommand creates the config show subcommand.
func newConfigShowCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display effective configuration after merging all sources.

Shows which config files were consulted and the final merged configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := container().ShowConfigUseCase().Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			for _, info := range out.Sources {
				if info.Exists {
					_, _ = fmt.Fprintf(w, "- %s\n", info.Path)
				} else {
					_, _ = fmt.Fprintf(w, "- %s (not found)\n", info.Path)
				}
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.EffectiveConfig)
		},
	}
}

// formatEffectiveConfig writes the config as TOML.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	enc := toml.NewEncoder(w)
	enc.SetIndentTables(false)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// newConfigTemplateCommand creates the config template subcommand.
func newConfigTemplateCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "template",
		Short: "Print a commented configuration template",
		Long: `Print a commented configuration template to stdout.
Save it as ` + domain.ConfigFileName + ` in the global config directory or pass it with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := container().ShowConfigTemplateUseCase().Execute(cmd.Context(), usecase.ShowConfigTemplateInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Template)
			return nil
		},
	}
}
