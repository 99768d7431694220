package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumen-shell/lumen/internal/cli"
	"github.com/lumen-shell/lumen/internal/cli/model"
	"github.com/lumen-shell/lumen/internal/domain/entity"
)

var (
	telemetryLimit int
	telemetryJSON  bool
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Browse recorded desk-switch telemetry",
	Long: `Display the desk-switch distances recorded when a cycle commit had to
switch desks, as a histogram plus the most recent raw samples.`,
	RunE: runTelemetry,
}

func init() {
	rootCmd.AddCommand(telemetryCmd)
	telemetryCmd.Flags().IntVarP(&telemetryLimit, "limit", "n", 50, "maximum raw samples to show")
	telemetryCmd.Flags().BoolVar(&telemetryJSON, "json", false, "output samples as JSON")
}

func runTelemetry(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if telemetryJSON {
		return runTelemetryJSON(app)
	}

	m := model.NewTelemetryModel(app.Ctx(), app.Theme, app.TelemetryUC, telemetryLimit)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runTelemetryJSON skips the TUI and prints the loaded data directly.
func runTelemetryJSON(app *cli.App) error {
	ctx := app.Ctx()

	samples, err := app.TelemetryUC.RecentSamples(ctx, telemetryLimit)
	if err != nil {
		return err
	}
	summary, err := app.TelemetryUC.Summary(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Summary *entity.TelemetrySummary  `json:"summary"`
		Samples []entity.DeskSwitchSample `json:"samples"`
	}{
		Summary: summary,
		Samples: samples,
	})
}
