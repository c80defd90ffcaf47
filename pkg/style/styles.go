// Package style defines the visual styling for firstrun's terminal
// output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Styles are declared in an embedded YAML file
// so the palette stays in one place.
package style

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// styleRegistry maps semantic names to lipgloss styles
var styleRegistry map[string]lipgloss.Style

// colors are the adaptive colors loaded from YAML
var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// LoadStylesFromData loads style configuration from YAML bytes
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles yaml: %w", err)
	}

	colors = make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	styleRegistry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		s := lipgloss.NewStyle()
		if def.Bold {
			s = s.Bold(true)
		}
		if def.Italic {
			s = s.Italic(true)
		}
		if def.Underline {
			s = s.Underline(true)
		}
		if def.Foreground != "" {
			s = s.Foreground(resolveColor(def.Foreground))
		}
		if def.Background != "" {
			s = s.Background(resolveColor(def.Background))
		}
		styleRegistry[name] = s
	}
	return nil
}

// resolveColor maps a named adaptive color, falling back to a literal
// lipgloss color value
func resolveColor(name string) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// initDefaultStyles initializes a minimal set of unstyled entries so the
// program can run even if the embedded YAML is unparseable
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	styleRegistry = make(map[string]lipgloss.Style)

	defaultStyle := lipgloss.NewStyle()
	for _, name := range []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Muted", "Package", "Count", "Timestamp",
	} {
		styleRegistry[name] = defaultStyle
	}
}

// GetStyle returns the style registered under the semantic name, or an
// empty style for unknown names
func GetStyle(name string) lipgloss.Style {
	if s, ok := styleRegistry[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Has reports whether a semantic style name is registered
func Has(name string) bool {
	_, ok := styleRegistry[name]
	return ok
}
