package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-headline/pkg/headline"
	"github.com/goliatone/go-headline/pkg/widget"
)

func newWidgetsCmd(a *app) *cobra.Command {
	var (
		asJSON    bool
		iconsPath string
	)
	cmd := &cobra.Command{
		Use:   "widgets [query]",
		Short: "List or search registered widgets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := a.orchestrator(renderFlags{widget: headline.WidgetName})
			if err != nil {
				return err
			}
			registry := o.Widgets()

			if iconsPath == "" {
				iconsPath = a.cfg.Widgets.Icons
			}
			var catalogOpts []widget.CatalogOption
			if iconsPath != "" {
				icons, err := widget.LoadIconMarkup(dirFS(iconsPath))
				if err != nil {
					return err
				}
				catalogOpts = append(catalogOpts, widget.WithIconMarkup(icons))
				a.logger.DebugContext(cmd.Context(), "widget icons loaded", "path", iconsPath, "count", len(icons))
			}

			entries := widget.Catalog(registry, catalogOpts...)
			if len(args) == 1 {
				matched := make(map[string]struct{})
				for _, name := range registry.Search(args[0]) {
					matched[name] = struct{}{}
				}
				filtered := entries[:0]
				for _, entry := range entries {
					if _, ok := matched[entry.Name]; ok {
						filtered = append(filtered, entry)
					}
				}
				entries = filtered
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(entries, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			if len(entries) == 0 {
				_, err := fmt.Fprintln(out, "no widgets found")
				return err
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tTITLE\tCATEGORIES\tFIELDS")
			for _, entry := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", entry.Name, entry.Title, strings.Join(entry.Categories, ","), entry.FieldCount)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print catalog entries as JSON")
	cmd.Flags().StringVar(&iconsPath, "icons", "", "YAML file mapping widget names to SVG icon markup")
	return cmd
}
