// Package styles defines the visual styling for osm's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. The definitions live in an embedded YAML file
// so the palette stays in one place.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

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

// registry maps semantic names to lipgloss styles
var registry map[string]lipgloss.Style

func init() {
	var err error
	registry, err = load(stylesYAML)
	if err != nil {
		// The embedded file ships with the binary; a parse failure is a
		// packaging bug, not a runtime condition.
		panic(fmt.Sprintf("styles: invalid embedded styles.yaml: %v", err))
	}
}

// Get returns the style registered under the given semantic name, or a
// zero style when the name is unknown.
func Get(name string) lipgloss.Style {
	return registry[name]
}

func load(data []byte) (map[string]lipgloss.Style, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	result := make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := lipgloss.NewStyle()
		if def.Bold {
			style = style.Bold(true)
		}
		if def.Italic {
			style = style.Italic(true)
		}
		if def.Underline {
			style = style.Underline(true)
		}
		if def.Foreground != "" {
			if c, ok := colors[def.Foreground]; ok {
				style = style.Foreground(c)
			} else {
				style = style.Foreground(lipgloss.Color(def.Foreground))
			}
		}
		if def.Background != "" {
			if c, ok := colors[def.Background]; ok {
				style = style.Background(c)
			} else {
				style = style.Background(lipgloss.Color(def.Background))
			}
		}
		result[name] = style
	}
	return result, nil
}
