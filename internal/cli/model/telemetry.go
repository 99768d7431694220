// Package model contains the Bubble Tea models behind the CLI views.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-shell/lumen/internal/application/usecase"
	"github.com/lumen-shell/lumen/internal/cli/styles"
	"github.com/lumen-shell/lumen/internal/domain/entity"
)

const histogramBarWidth = 30

// TelemetryModel displays recorded desk-switch samples and their histogram.
type TelemetryModel struct {
	ctx         context.Context
	telemetryUC *usecase.CycleTelemetryUseCase
	theme       *styles.Theme
	limit       int

	samples []entity.DeskSwitchSample
	summary *entity.TelemetrySummary
	table   table.Model
	loading bool
	err     error
	width   int
	height  int
}

// NewTelemetryModel creates the telemetry display model.
func NewTelemetryModel(
	ctx context.Context,
	theme *styles.Theme,
	telemetryUC *usecase.CycleTelemetryUseCase,
	limit int,
) TelemetryModel {
	return TelemetryModel{
		ctx:         ctx,
		telemetryUC: telemetryUC,
		theme:       theme,
		limit:       limit,
		loading:     true,
		width:       80,
		height:      24,
	}
}

// telemetryLoadedMsg is sent when samples and summary are loaded.
type telemetryLoadedMsg struct {
	samples []entity.DeskSwitchSample
	summary *entity.TelemetrySummary
	err     error
}

// Init implements tea.Model.
func (m TelemetryModel) Init() tea.Cmd {
	return m.load
}

func (m TelemetryModel) load() tea.Msg {
	samples, err := m.telemetryUC.RecentSamples(m.ctx, m.limit)
	if err != nil {
		return telemetryLoadedMsg{err: err}
	}
	summary, err := m.telemetryUC.Summary(m.ctx)
	return telemetryLoadedMsg{samples: samples, summary: summary, err: err}
}

// Update implements tea.Model.
func (m TelemetryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateTable()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case telemetryLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
		} else {
			m.samples = msg.samples
			m.summary = msg.summary
			m.updateTable()
		}
	}

	return m, nil
}

// Samples returns the loaded samples, for non-interactive output.
func (m TelemetryModel) Samples() []entity.DeskSwitchSample {
	return m.samples
}

// Summary returns the loaded histogram, for non-interactive output.
func (m TelemetryModel) Summary() *entity.TelemetrySummary {
	return m.summary
}

// Error returns the load error, if any.
func (m TelemetryModel) Error() error {
	return m.err
}

// Loading reports whether the initial load is still in flight.
func (m TelemetryModel) Loading() bool {
	return m.loading
}

func (m *TelemetryModel) updateTable() {
	if len(m.samples) == 0 {
		return
	}

	rows := make([]table.Row, len(m.samples))
	for i, s := range m.samples {
		rows[i] = table.Row{
			fmt.Sprintf("%d", s.ID),
			fmt.Sprintf("%d", s.Distance),
			styles.RelativeTime(s.RecordedAt),
		}
	}

	tableHeight := len(rows)
	if tableHeight > m.height-12 {
		tableHeight = m.height - 12
	}
	if tableHeight < 3 {
		tableHeight = 3
	}

	m.table = styles.NewStyledTable(m.theme, styles.TelemetryTableColumns(), rows, m.width-4, tableHeight)
}

// View implements tea.Model.
func (m TelemetryModel) View() string {
	t := m.theme

	if m.loading {
		return t.Box.Render(t.Subtle.Render("Loading telemetry..."))
	}
	if m.err != nil {
		return t.Box.Render(t.ErrorStyle.Render("Error: " + m.err.Error()))
	}
	if m.summary == nil || m.summary.TotalSamples == 0 {
		return t.Box.Render(t.Subtle.Render("No desk switches recorded yet"))
	}

	header := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("Desk-switch telemetry"),
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Left,
			t.Badge.Render(fmt.Sprintf("%d samples", m.summary.TotalSamples)),
			"  ",
			t.BadgeMuted.Render(fmt.Sprintf("%d distances", len(m.summary.ByDistance))),
		),
	)

	sections := []string{header, "", m.renderHistogram(), ""}
	if len(m.samples) > 0 {
		sections = append(sections, t.Subtitle.Render("Recent"), m.table.View())
	}
	sections = append(sections, "", t.HelpDesc.Render("q to quit"))

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m TelemetryModel) renderHistogram() string {
	t := m.theme

	var max int64
	for _, b := range m.summary.ByDistance {
		if b.Count > max {
			max = b.Count
		}
	}

	lines := make([]string, 0, len(m.summary.ByDistance))
	for _, b := range m.summary.ByDistance {
		bar := styles.HistogramBar(b.Count, max, histogramBarWidth)
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Left,
			t.Subtle.Width(10).Render(fmt.Sprintf("%d desks", b.Distance)),
			t.Highlight.Render(bar),
			t.Normal.Render(fmt.Sprintf(" %d", b.Count)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
