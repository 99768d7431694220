package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lumen-shell/lumen/internal/domain/build"
)

// AboutRenderer renders version and build information.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates an about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render produces the about box for the given build info.
func (r *AboutRenderer) Render(info build.Info) string {
	t := r.theme

	rows := lipgloss.JoinVertical(
		lipgloss.Left,
		t.Title.Render("Lumen window cycling"),
		"",
		r.row("Version", info.Version),
		r.row("Commit", info.Commit),
		r.row("Built", info.BuildDate),
		r.row("Go", info.GoVersion),
		"",
		t.Subtle.Render(build.RepoURL()),
	)

	return t.Box.Render(rows)
}

func (r *AboutRenderer) row(label, value string) string {
	t := r.theme
	if value == "" {
		value = "unknown"
	}
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Subtle.Width(10).Render(label),
		t.Normal.Render(value),
	)
}
