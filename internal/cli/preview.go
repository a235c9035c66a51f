package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-headline/internal/telemetry"
	"github.com/goliatone/go-headline/pkg/orchestrator"
	"github.com/goliatone/go-headline/pkg/render"
	"github.com/goliatone/go-headline/pkg/renderers/preview"
)

type previewCmdFlags struct {
	renderFlags
	settingsPath string
	output       string
	title        string
	theme        string
	variant      string
}

func newPreviewCmd(a *app) *cobra.Command {
	var flags previewCmdFlags
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a standalone HTML preview page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, span := telemetry.Tracer().Start(cmd.Context(), "headline.preview")
			defer span.End()

			raw, err := a.readSettings(flags.settingsPath)
			if err != nil {
				return err
			}
			o, err := a.orchestrator(flags.renderFlags)
			if err != nil {
				return err
			}

			themeName, variant := flags.theme, flags.variant
			if themeName == "" {
				themeName = a.cfg.Theme.Name
			}
			if variant == "" {
				variant = a.cfg.Theme.Variant
			}

			out, err := o.Generate(ctx, orchestrator.Request{
				Settings: raw,
				Renderer: preview.RendererName,
				RenderOptions: render.RenderOptions{
					Locale:       a.locale(),
					Title:        flags.title,
					ThemeName:    themeName,
					ThemeVariant: variant,
				},
			})
			if err != nil {
				return err
			}

			if flags.output == "" {
				_, err = cmd.OutOrStdout().Write(out)
				return err
			}
			if err := writeOutput(flags.output, out); err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "preview written", "path", flags.output, "bytes", len(out))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Preview written to %s\n", flags.output)
			return err
		},
	}
	bindRenderFlags(cmd, &flags.renderFlags)
	cmd.Flags().StringVarP(&flags.settingsPath, "settings", "s", "", "settings file (JSON or YAML, - for stdin)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVar(&flags.title, "title", "", "page title (widget title if empty)")
	cmd.Flags().StringVar(&flags.theme, "theme", "", "theme name from the manifest")
	cmd.Flags().StringVar(&flags.variant, "variant", "", "theme variant")
	cmd.Flags().StringVar(&flags.templatesDir, "templates", "", "directory holding templates/page.tmpl overrides")
	return cmd
}
