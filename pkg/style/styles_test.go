package style

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	// init() already ran; the embedded YAML must have produced the full
	// semantic set
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Muted", "Package", "Count", "Timestamp",
	} {
		assert.True(t, Has(name), "style %q missing from embedded config", name)
	}
}

func TestGetStyle_UnknownName(t *testing.T) {
	// Unknown names return a usable zero style rather than panicking
	s := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", s.Render("plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	data := []byte(`
colors:
  accent:
    light: "21"
    dark: "33"
styles:
  Banner:
    bold: true
    foreground: accent
`)
	require.NoError(t, LoadStylesFromData(data))

	assert.True(t, Has("Banner"))
	assert.False(t, Has("Header"), "reload replaces the registry")
}

func TestLoadStylesFromData_BadYAML(t *testing.T) {
	assert.Error(t, LoadStylesFromData([]byte("{{{")))
}

func TestUseColor_RespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, UseColor(os.Stdout))
}
