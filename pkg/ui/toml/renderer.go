// Package toml provides TOML output
package toml

import (
	"io"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/bwillis/packs/pkg/errors"
)

// Renderer writes each result as a TOML document
type Renderer struct {
	encoder *gotoml.Encoder
}

// New creates a new TOML renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := gotoml.NewEncoder(output)
	encoder.SetIndentTables(true)
	return &Renderer{encoder: encoder}, nil
}

func (r *Renderer) encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrOutput, "failed to encode TOML")
	}
	return nil
}

// RenderResult renders any result type as TOML. Results must be structs or
// maps; TOML has no top-level arrays.
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encode(result)
}

// RenderError renders an error as TOML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message as TOML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}
