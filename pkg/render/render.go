// Package render draws a filesystem tree.
//
// Two formats are available: "text", the indented diagram printed after a
// successful batch, and "yaml", a structured document of the same tree.
package render

import (
	"fmt"
	"io"

	"github.com/marmos91/vfsemu/pkg/vfs"
	"github.com/mitchellh/mapstructure"
)

// Renderer writes a representation of the tree rooted at root.
type Renderer interface {
	Render(w io.Writer, root vfs.Item) error
}

// New creates a renderer for format, decoding its format-specific options.
//
// Supported formats:
//   - "text": no options
//   - "yaml": indent (spaces per level, default 2)
func New(format string, options map[string]any) (Renderer, error) {
	switch format {
	case "", "text":
		return Text{}, nil
	case "yaml":
		return newYAML(options)
	default:
		return nil, fmt.Errorf("unknown output format: %q", format)
	}
}

func newYAML(options map[string]any) (Renderer, error) {
	type YAMLOptions struct {
		Indent int `mapstructure:"indent"`
	}

	var opts YAMLOptions
	if err := mapstructure.Decode(options, &opts); err != nil {
		return nil, fmt.Errorf("failed to decode yaml output options: %w", err)
	}

	if opts.Indent == 0 {
		opts.Indent = 2
	}
	if opts.Indent < 0 {
		return nil, fmt.Errorf("yaml output: indent must be positive, got %d", opts.Indent)
	}

	return YAML{Indent: opts.Indent}, nil
}
