package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-headline/internal/telemetry"
	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/orchestrator"
	"github.com/goliatone/go-headline/pkg/render"
)

type renderCmdFlags struct {
	renderFlags
	settingsPath string
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderCmdFlags
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the widget HTML fragment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, span := telemetry.Tracer().Start(cmd.Context(), "headline.render")
			defer span.End()

			raw, err := a.readSettings(flags.settingsPath)
			if err != nil {
				return err
			}
			o, err := a.orchestrator(flags.renderFlags)
			if err != nil {
				return err
			}
			out, err := o.Generate(ctx, orchestrator.Request{
				Settings: raw,
				Renderer: render.FragmentRendererName,
			})
			if err != nil {
				return err
			}
			a.logger.DebugContext(ctx, "fragment rendered", "widget", flags.widget, "bytes", len(out))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	bindRenderFlags(cmd, &flags.renderFlags)
	cmd.Flags().StringVarP(&flags.settingsPath, "settings", "s", "", "settings file (JSON or YAML, - for stdin)")
	return cmd
}

func bindRenderFlags(cmd *cobra.Command, flags *renderFlags) {
	cmd.Flags().StringVar(&flags.widget, "widget", headline.WidgetName, "widget name")
	cmd.Flags().BoolVar(&flags.legacyVisibility, "legacy-visibility", false, "mark the second word visible instead of the first")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "validate settings against the widget schema")
}
