package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/schema"
)

func newSchemaCmd(a *app) *cobra.Command {
	var (
		format     string
		widgetName string
	)
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the widget descriptor or its OpenAPI settings schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			o, err := a.orchestrator(renderFlags{widget: widgetName})
			if err != nil {
				return err
			}
			w, err := o.Widgets().Get(widgetName)
			if err != nil {
				return err
			}

			var out []byte
			switch format {
			case "json":
				out, err = schema.Describe(w).MarshalIndent()
			case "yaml":
				out, err = yaml.Marshal(schema.Describe(w))
			case "openapi":
				out, err = json.MarshalIndent(schema.OpenAPI(w.Fields()), "", "  ")
			default:
				return fmt.Errorf("schema: unknown format %q (json, yaml, openapi)", format)
			}
			if err != nil {
				return fmt.Errorf("schema: encode %s: %w", format, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format (json, yaml, openapi)")
	cmd.Flags().StringVar(&widgetName, "widget", headline.WidgetName, "widget name")
	return cmd
}
