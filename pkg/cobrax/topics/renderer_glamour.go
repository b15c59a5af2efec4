package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with terminal styling and
// passes everything else through unchanged.
type GlamourRenderer struct {
	Width int
}

func (r *GlamourRenderer) Render(content, ext string) string {
	if ext != ".md" {
		return content
	}

	width := r.Width
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
