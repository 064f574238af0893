// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/bwillis/packs/pkg/types"
)

// Unowned is printed in place of a pack name for files no pack owns
const Unowned = "-"

// Renderer provides plain text output without colors or styling.
// Output is line oriented so it can be piped into other tools.
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ListPacksResult:
		for _, p := range v.Packs {
			if err := r.println(p.Name); err != nil {
				return err
			}
		}
		return nil
	case *types.FindResult:
		for _, p := range v.Packs {
			if err := r.printf("%s\t%s\n", p.Name, p.Path); err != nil {
				return err
			}
		}
		for _, name := range v.Missing {
			if err := r.printf("%s\t%s\n", name, Unowned); err != nil {
				return err
			}
		}
		return nil
	case *types.ForFileResult:
		for _, f := range v.Files {
			pack := f.Pack
			if !f.Owned {
				pack = Unowned
			}
			if err := r.printf("%s\t%s\n", f.File, pack); err != nil {
				return err
			}
		}
		return nil
	case *types.ConfigResult:
		if err := r.printf("root: %s\nfile: %s\nsource: %s\npack_paths:\n", v.Root, v.File, v.Source); err != nil {
			return err
		}
		for _, p := range v.PackPaths {
			if err := r.printf("  - %s\n", p); err != nil {
				return err
			}
		}
		return nil
	default:
		return r.printf("%+v\n", result)
	}
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.printf("Error: %v\n", err)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.println(msg)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(r.output, format, args...)
	return err
}
