// Package ui renders command results in terminal, text, JSON, YAML and
// TOML form.
package ui

import (
	"io"
	"os"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/ui/json"
	"github.com/bwillis/packs/pkg/ui/terminal"
	"github.com/bwillis/packs/pkg/ui/text"
	"github.com/bwillis/packs/pkg/ui/toml"
	"github.com/bwillis/packs/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderResult renders one of the result types in pkg/types
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatTOML:
		return toml.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
