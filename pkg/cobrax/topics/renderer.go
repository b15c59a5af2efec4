package topics

// Renderer formats topic content for display.
type Renderer interface {
	// Render formats content; ext is the topic file's extension.
	Render(content, ext string) string
}

// PlainRenderer passes content through unchanged.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content, _ string) string {
	return content
}
