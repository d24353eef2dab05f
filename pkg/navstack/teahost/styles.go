package teahost

import "github.com/charmbracelet/lipgloss"

// Styles contains all lipgloss styles used by Model.View.
type Styles struct {
	Accent     lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Breadcrumb lipgloss.Style
}

// StylesFromTheme builds the styles for a theme.
func StylesFromTheme(t Theme) Styles {
	return Styles{
		Accent: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(t.Accent)),
		Body: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Hint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Hint)),
		Breadcrumb: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Breadcrumb)),
	}
}

// DefaultStyles returns the styles for the default theme.
func DefaultStyles() Styles {
	return StylesFromTheme(DefaultTheme())
}
