// Package output renders collected manifests for inspection and for
// downstream tooling.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/pkgfreeze/pkgfreeze/internal/domain"
)

// Renderer writes a manifest in one of the supported formats
type Renderer struct {
	format string
}

// NewRenderer creates a renderer for the given format ("text", "json" or
// "yaml"). An unknown format falls back to text.
func NewRenderer(format string) *Renderer {
	switch format {
	case "json", "yaml":
	default:
		format = "text"
	}
	return &Renderer{format: format}
}

// Render writes the manifest to w
func (r *Renderer) Render(w io.Writer, m domain.Manifest) error {
	switch r.format {
	case "json":
		return renderJSON(w, m)
	case "yaml":
		return renderYAML(w, m)
	default:
		return renderText(w, m)
	}
}

func renderJSON(w io.Writer, m domain.Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func renderYAML(w io.Writer, m domain.Manifest) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(m)
}

func renderText(w io.Writer, m domain.Manifest) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, e := range m {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Kind, e.Dest, e.Source); err != nil {
			return err
		}
	}
	return tw.Flush()
}
