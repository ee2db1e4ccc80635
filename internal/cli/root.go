package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/solutionspm/onboard/internal/api"
	"github.com/solutionspm/onboard/internal/cli/formatter"
	"github.com/solutionspm/onboard/internal/config"
)

// App holds the API client and configuration shared by all commands.
type App struct {
	Client *api.Client
	Config config.Config

	// IsInteractive reports whether stdin is a terminal. The TUI refuses
	// to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "onboard" command. Running it without a
// subcommand launches the dashboard TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "onboard",
		Short: "Consultant onboarding dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(app)
		},
	}

	root.AddCommand(
		newSummaryCmd(app),
		newExportCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return errors.New("the dashboard needs an interactive terminal; try 'onboard summary'")
	}
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// newSummaryCmd prints the pipeline counts without starting the TUI.
func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print onboarding pipeline counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Client.Summary(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Onboarding Pipeline"))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Total:      "), formatter.Bold(strconv.Itoa(s.Total)))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Pending:    "), formatter.StyleYellow.Render(strconv.Itoa(s.Pending)))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("In Progress:"), formatter.StyleBlue.Render(strconv.Itoa(s.InProgress)))
			fmt.Fprintf(out, "%s %s\n", formatter.Dim("Complete:   "), formatter.StyleGreen.Render(strconv.Itoa(s.Complete)))
			return nil
		},
	}
}

// newExportCmd downloads one of the CSV exports to the downloads directory.
func newExportCmd(app *App) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:       "export [kind]",
		Short:     "Download a CSV export (consultants, documents or activities)",
		Args:      cobra.ExactArgs(1),
		ValidArgs: api.ExportKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if !validExportKind(kind) {
				return fmt.Errorf("unknown export kind %q", kind)
			}
			dest := dir
			if dest == "" {
				dest = app.Config.Downloads.Dir
			}
			path, err := app.Client.ExportCSV(context.Background(), kind, dest)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "destination directory (defaults to the configured downloads dir)")
	return cmd
}

func validExportKind(kind string) bool {
	for _, k := range api.ExportKinds {
		if k == kind {
			return true
		}
	}
	return false
}
