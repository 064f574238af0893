package topics

import "strings"

// Renderer formats topic content for terminal display. format is the
// topic file's extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics as written, newline terminated
type PlainRenderer struct{}

// Render returns the content with exactly one trailing newline
func (r *PlainRenderer) Render(content string, format string) string {
	return strings.TrimRight(content, "\n") + "\n"
}
