package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-headline/pkg/editor"
	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/settings"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		settingsPath string
		output       string
		format       string
		widgetName   string
	)
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit widget settings interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			prefill, err := a.readSettings(settingsPath)
			if err != nil {
				return err
			}
			o, err := a.orchestrator(renderFlags{widget: widgetName})
			if err != nil {
				return err
			}
			w, err := o.Widgets().Get(widgetName)
			if err != nil {
				return err
			}

			driver := a.driver
			if driver == nil {
				driver = editor.NewSurveyDriver(cmd.ErrOrStderr())
			}
			raw, err := editor.New(editor.WithDriver(driver)).Edit(ctx, w.Fields(), prefill)
			if err != nil {
				return err
			}

			target := settings.Format(format)
			if output != "" {
				if target, err = settings.FormatFromPath(output); err != nil {
					return err
				}
			}
			data, err := settings.Encode(raw, target)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return err
			}
			if err := writeOutput(output, data); err != nil {
				return err
			}
			a.logger.InfoContext(ctx, "settings written", "path", output, "widget", widgetName)
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", output)
			return err
		},
	}
	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "settings file used as prompt defaults")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; format follows the extension")
	cmd.Flags().StringVarP(&format, "format", "f", string(settings.FormatJSON), "stdout format (json, yaml)")
	cmd.Flags().StringVar(&widgetName, "widget", headline.WidgetName, "widget name")
	return cmd
}
