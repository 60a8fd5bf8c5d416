// Package styles defines the visual styling for dotlink's terminal output.
//
// Styles are declared in the embedded styles.yaml with semantic names and
// adaptive colors that adjust to light and dark terminal themes.
package styles

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

//go:embed styles.yaml
var embeddedStyles []byte

// Registry maps semantic names to lipgloss styles bound to one renderer.
// A plain registry renders text unchanged.
type Registry struct {
	styles map[string]lipgloss.Style
	plain  bool
}

// New builds the embedded styles for renderer.
func New(renderer *lipgloss.Renderer) (*Registry, error) {
	return FromData(renderer, embeddedStyles)
}

// FromData builds a registry from YAML style definitions.
func FromData(renderer *lipgloss.Renderer, data []byte) (*Registry, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse styles data: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := &Registry{styles: make(map[string]lipgloss.Style, len(config.Styles))}
	for name, def := range config.Styles {
		style, err := buildStyle(renderer, def, colors)
		if err != nil {
			return nil, fmt.Errorf("style %s: %w", name, err)
		}
		reg.styles[name] = style
	}
	return reg, nil
}

// Plain returns a registry that never styles.
func Plain() *Registry {
	return &Registry{plain: true}
}

// Has reports whether name is a defined style.
func (r *Registry) Has(name string) bool {
	_, ok := r.styles[name]
	return ok
}

// Render applies the named style to text. Unknown names render unstyled.
func (r *Registry) Render(name, text string) string {
	if r.plain {
		return text
	}
	style, ok := r.styles[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(renderer *lipgloss.Renderer, def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := renderer.NewStyle()

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
		color, ok := colors[def.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := colors[def.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Background)
		}
		style = style.Background(color)
	}

	return style, nil
}
