package teahost

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Theme defines the colors used by a host Model. Values are lipgloss color
// strings: hex like "#7D56F4" or ANSI numbers like "241".
type Theme struct {
	Accent     string `toml:"accent"`     // Breadcrumb leaf, title emphasis
	Text       string `toml:"text"`       // View body text
	Hint       string `toml:"hint"`       // Key hints in the footer
	Breadcrumb string `toml:"breadcrumb"` // Non-leaf breadcrumb entries
}

// DefaultTheme returns the built-in color palette.
func DefaultTheme() Theme {
	return Theme{
		Accent:     "#7D56F4",
		Text:       "#FFFFFF",
		Hint:       "241",
		Breadcrumb: "245",
	}
}

// LoadTheme reads a theme from a TOML file. Keys left unset in the file
// keep their DefaultTheme values. On any read or parse error the default
// theme is returned alongside the wrapped error, so callers can keep
// rendering.
func LoadTheme(path string) (Theme, error) {
	theme := DefaultTheme()
	if _, err := toml.DecodeFile(path, &theme); err != nil {
		return DefaultTheme(), fmt.Errorf("teahost: load theme %s: %w", path, err)
	}
	return theme, nil
}
