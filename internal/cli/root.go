package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	theme "github.com/goliatone/go-theme"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-headline/internal/config"
	"github.com/goliatone/go-headline/internal/telemetry"
	"github.com/goliatone/go-headline/pkg/editor"
	"github.com/goliatone/go-headline/pkg/i18n"
)

// Exit codes returned by the headline binary.
const (
	ExitSuccess = 0
	ExitError   = 1
	ExitAborted = 130
)

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, editor.ErrAborted):
		return ExitAborted
	default:
		return ExitError
	}
}

type rootFlags struct {
	configPath string
	envFile    string
	logLevel   string
	logFormat  string
	locale     string
	catalog    string
	trace      string
}

// app carries process-wide state shared by every subcommand.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	driver editor.PromptDriver

	flags rootFlags

	cfg      *config.Config
	logger   *slog.Logger
	lookup   i18n.Lookup
	selector theme.ThemeSelector
	shutdown telemetry.ShutdownFunc
}

// Execute runs the root command against the process streams.
func Execute() error {
	root := newRootCmd(&app{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	})
	return root.ExecuteContext(context.Background())
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "headline",
		Short: "Animated headline widget toolkit",
		Long: `headline renders the animated headline widget: a before text, a list of
rotating words and an after text, emitted as the cd-intro / cd-headline
markup the external animation stylesheet and script expect.

Settings files are JSON or YAML documents keyed by before_title, after_title
and list. Missing keys take the widget defaults.

Exit Codes:
  0   - Success
  1   - General error
  130 - Interactive editing aborted`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.close(cmd.Context())
		},
	}
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.envFile, "env-file", ".env", "dotenv file loaded before config")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format (text, json)")
	pf.StringVar(&a.flags.locale, "locale", "", "locale used for labels and the preview page")
	pf.StringVar(&a.flags.catalog, "catalog", "", "translation catalog (YAML or JSON)")
	pf.StringVar(&a.flags.trace, "trace", "", "trace exporter (none, stdout)")

	root.AddCommand(
		newRenderCmd(a),
		newPreviewCmd(a),
		newSchemaCmd(a),
		newEditCmd(a),
		newWidgetsCmd(a),
		newVersionCmd(a),
	)
	return root
}
