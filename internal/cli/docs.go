package cli

import (
	"embed"
	"io/fs"

	"github.com/bwillis/packs/pkg/cobrax/topics"
)

//go:embed topics/*.md
var topicFiles embed.FS

// loadTopics reads the embedded documentation topics. Markdown is rendered
// with glamour on a terminal and left as plain text otherwise.
func loadTopics() (*topics.Manager, error) {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return nil, err
	}

	opts := topics.Options{Extensions: []string{".md"}}
	if stdoutIsTerminal() {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	return topics.Load(sub, opts)
}
