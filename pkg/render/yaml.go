package render

import (
	"fmt"
	"io"

	"github.com/marmos91/vfsemu/pkg/vfs"
	"gopkg.in/yaml.v3"
)

// YAML writes the tree as a nested YAML document.
type YAML struct {
	// Indent is the number of spaces per nesting level
	Indent int
}

// Node is the YAML shape of one item.
type Node struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Target   string `yaml:"target,omitempty"`
	Children []Node `yaml:"children,omitempty"`
}

// BuildNode converts the subtree rooted at item, children sorted by name.
// A link whose target is gone reports "<none>" as its target.
func BuildNode(item vfs.Item) Node {
	node := Node{
		Name: item.Name(),
		Type: item.Type().String(),
	}

	if link, ok := item.Link(); ok {
		node.Target = "<none>"
		if target, ok := link.Target(); ok {
			node.Target = target.FullPath()
		}
	}

	if container, ok := item.Container(); ok {
		for _, child := range container.Children(true) {
			node.Children = append(node.Children, BuildNode(child))
		}
	}

	return node
}

func (y YAML) Render(w io.Writer, root vfs.Item) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(y.Indent)

	if err := enc.Encode(BuildNode(root)); err != nil {
		return fmt.Errorf("failed to encode tree: %w", err)
	}
	return enc.Close()
}
