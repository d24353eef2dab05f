package teahost

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "theme.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadTheme(t *testing.T) {
	path := writeTheme(t, `
accent = "#FF0000"
text = "#00FF00"
hint = "240"
breadcrumb = "244"
`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "#FF0000", theme.Accent)
	assert.Equal(t, "#00FF00", theme.Text)
	assert.Equal(t, "240", theme.Hint)
	assert.Equal(t, "244", theme.Breadcrumb)
}

func TestLoadThemePartialFallsBackToDefaults(t *testing.T) {
	path := writeTheme(t, `accent = "#FF0000"`)

	theme, err := LoadTheme(path)
	require.NoError(t, err)

	def := DefaultTheme()
	assert.Equal(t, "#FF0000", theme.Accent)
	assert.Equal(t, def.Text, theme.Text)
	assert.Equal(t, def.Hint, theme.Hint)
	assert.Equal(t, def.Breadcrumb, theme.Breadcrumb)
}

func TestLoadThemeMissingFile(t *testing.T) {
	theme, err := LoadTheme(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultTheme(), theme, "caller can keep rendering with defaults")
}

func TestLoadThemeMalformed(t *testing.T) {
	path := writeTheme(t, `accent = [not toml`)

	theme, err := LoadTheme(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultTheme(), theme)
}

func TestStylesFromTheme(t *testing.T) {
	styles := StylesFromTheme(DefaultTheme())

	// Styles must pass text through; color codes depend on the terminal.
	assert.Contains(t, styles.Accent.Render("leaf"), "leaf")
	assert.Contains(t, styles.Hint.Render("esc back"), "esc back")
}
