// Terminal styling for the text report. Styling is layered on top of the
// plain renderer at print time; the plain output remains the contract (and
// what lands in tickets when stdout is piped).
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/snapsys/snapsys/internal/analysis"
)

var (
	labelStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	unavailableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	busyStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	hotStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

var healthStyles = map[string]lipgloss.Style{
	"health=" + analysis.HealthOK:         okStyle,
	"health=" + analysis.HealthBusy:       busyStyle,
	"health=" + analysis.HealthSaturated:  hotStyle,
	"health=" + analysis.HealthOverloaded: hotStyle,
}

// Stylize colorizes a rendered report for terminal display. It only
// decorates; the line structure and every value stay byte-identical modulo
// escape sequences.
func Stylize(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = stylizeLine(line)
	}
	return strings.Join(lines, "\n")
}

func stylizeLine(line string) string {
	// Top-level "Label:" prefixes (detail lines are indented).
	if !strings.HasPrefix(line, " ") {
		if label, rest, ok := strings.Cut(line, ":"); ok {
			line = labelStyle.Render(label+":") + rest
		}
	}

	if strings.Contains(line, UnavailableMarker+" (") {
		line = strings.Replace(line, UnavailableMarker, unavailableStyle.Render(UnavailableMarker), 1)
	}

	for marker, style := range healthStyles {
		if strings.Contains(line, marker) {
			label := strings.TrimPrefix(marker, "health=")
			line = strings.Replace(line, marker, "health="+style.Render(label), 1)
			break
		}
	}

	return line
}
