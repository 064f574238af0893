// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bwillis/packs/pkg/errors"
	"github.com/bwillis/packs/pkg/types"
)

// Renderer provides rich terminal output using lipgloss styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *types.ListPacksResult:
		return r.write(renderList(v))
	case *types.FindResult:
		return r.write(renderFind(v))
	case *types.ForFileResult:
		return r.write(renderForFile(v))
	case *types.ConfigResult:
		return r.write(renderConfig(v))
	default:
		return r.write(fmt.Sprintf("%+v", result))
	}
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	msg := errorStyle.Render("Error:") + " " + err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg += " " + mutedStyle.Render("("+string(code)+")")
	}
	return r.write(msg)
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(infoStyle.Render(msg))
}

func (r *Renderer) write(s string) error {
	_, err := fmt.Fprintln(r.output, s)
	return err
}

func packLine(name, path string) string {
	return itemStyle.Render(packStyle.Render(name) + "  " + pathStyle.Render(path))
}

func renderList(v *types.ListPacksResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Packs (%d)", len(v.Packs))))
	b.WriteString(" " + mutedStyle.Render(v.Root))
	if len(v.Packs) == 0 {
		b.WriteString("\n" + itemStyle.Render(mutedStyle.Render("no packs found")))
		return b.String()
	}
	for _, p := range v.Packs {
		b.WriteString("\n" + packLine(p.Name, p.Path))
	}
	return b.String()
}

func renderFind(v *types.FindResult) string {
	lines := make([]string, 0, len(v.Packs)+len(v.Missing))
	for _, p := range v.Packs {
		lines = append(lines, successStyle.Render("✓")+" "+packLine(p.Name, p.Path))
	}
	for _, name := range v.Missing {
		lines = append(lines, errorStyle.Render("✗")+" "+itemStyle.Render(name+" "+mutedStyle.Render("not found")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderForFile(v *types.ForFileResult) string {
	width := 0
	for _, f := range v.Files {
		if w := lipgloss.Width(f.File); w > width {
			width = w
		}
	}

	fileStyle := lipgloss.NewStyle().Width(width)
	lines := make([]string, 0, len(v.Files))
	for _, f := range v.Files {
		owner := mutedStyle.Render("no pack")
		if f.Owned {
			owner = packStyle.Render(f.Pack)
		}
		lines = append(lines, fileStyle.Render(f.File)+"  "+owner)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderConfig(v *types.ConfigResult) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Pack paths"))
	b.WriteString(" " + mutedStyle.Render("from "+v.Source))
	b.WriteString("\n" + itemStyle.Render("root  "+pathStyle.Render(v.Root)))
	b.WriteString("\n" + itemStyle.Render("file  "+pathStyle.Render(v.File)))
	if len(v.PackPaths) == 0 {
		b.WriteString("\n" + itemStyle.Render(mutedStyle.Render("no patterns")))
	}
	for _, p := range v.PackPaths {
		b.WriteString("\n" + itemStyle.Render(packStyle.Render(p)))
	}
	return b.String()
}
