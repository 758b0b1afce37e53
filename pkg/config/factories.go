package config

import (
	"fmt"

	"github.com/marmos91/vfsemu/pkg/render"
)

// CreateRenderer creates the renderer selected by cfg.Format.
//
// The format-specific option section is handed to the renderer, which
// decodes it with mapstructure.
//
// Supported formats:
//   - "text": the indented tree diagram (no options)
//   - "yaml": a YAML document, options from cfg.YAML
func CreateRenderer(cfg *OutputConfig) (render.Renderer, error) {
	var options map[string]any
	switch cfg.Format {
	case "text":
	case "yaml":
		options = cfg.YAML
	default:
		return nil, fmt.Errorf("unknown output format: %q", cfg.Format)
	}

	r, err := render.New(cfg.Format, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s renderer: %w", cfg.Format, err)
	}
	return r, nil
}
