// Package style defines the visual styling for linkzip's terminal
// output. Styles use semantic names and adaptive colors loaded from an
// embedded YAML definition, so theming stays in one place.
package style

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// colorDef is an adaptive color definition in YAML.
type colorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// styleDef is a style definition in YAML.
type styleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

type stylesConfig struct {
	Colors map[string]colorDef `yaml:"colors"`
	Styles map[string]styleDef `yaml:"styles"`
}

// registry maps semantic names to lipgloss styles.
var registry map[string]lipgloss.Style

// colorEnabled is false when the terminal cannot render color or the
// user disabled it (NO_COLOR).
var colorEnabled = termenv.EnvColorProfile() != termenv.Ascii

func init() {
	var cfg stylesConfig
	if err := yaml.Unmarshal(stylesYAML, &cfg); err != nil {
		panic(err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry = make(map[string]lipgloss.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		s := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if c, ok := colors[def.Foreground]; ok {
			s = s.Foreground(c)
		}
		registry[name] = s
	}
}

// render applies the named style, falling back to plain text when the
// style is unknown or color is disabled.
func render(name, text string) string {
	if !colorEnabled {
		return text
	}
	s, ok := registry[name]
	if !ok {
		return text
	}
	return s.Render(text)
}

// Title renders heading text.
func Title(text string) string { return render("title", text) }

// Success renders a completion message.
func Success(text string) string { return render("success", text) }

// Warning renders a recoverable-problem message.
func Warning(text string) string { return render("warning", text) }

// Error renders a failure message.
func Error(text string) string { return render("error", text) }

// Muted renders de-emphasized text.
func Muted(text string) string { return render("muted", text) }
