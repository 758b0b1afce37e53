package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configHeader = `# vfsemu Configuration File
#
# Every value can be overridden with an environment variable named after its
# key path, e.g. VFSEMU_LOGGING_LEVEL=DEBUG or VFSEMU_FILESYSTEM_DRIVE=D:.

`

// InitConfig writes a default configuration file to the default location
// and returns its path. An existing file is only replaced when force is set.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	if err := InitConfigToPath(path, force); err != nil {
		return "", err
	}
	return path, nil
}

// InitConfigToPath writes a default configuration file to path.
func InitConfigToPath(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
		}
	}

	content, err := generateYAMLWithComments(GetDefaultConfig())
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateYAMLWithComments renders cfg as YAML with a comment above every
// section and key.
func generateYAMLWithComments(cfg *Config) (string, error) {
	b := &nodeBuilder{}

	doc := b.mapping(
		b.section("logging", "Logging configuration", b.mapping(
			b.field("level", cfg.Logging.Level, "Minimum level: DEBUG, INFO, WARN, ERROR"),
			b.field("format", cfg.Logging.Format, "Log format: text, json"),
			b.field("output", cfg.Logging.Output, "Destination: stdout, stderr, or a file path"),
		)),
		b.section("filesystem", "Emulated filesystem", b.mapping(
			b.field("drive", cfg.Filesystem.Drive, "Name of the root drive"),
			b.field("register_cloned_links", cfg.Filesystem.RegisterClonedLinks,
				"Links created by copy also protect their target from deletion"),
		)),
		b.section("output", "Rendering of the final tree", b.mapping(
			b.field("format", cfg.Output.Format, "Renderer: text, yaml"),
			b.field("yaml", cfg.Output.YAML, "Options for the yaml renderer"),
		)),
		b.section("metrics", "Prometheus command metrics", b.mapping(
			b.field("enabled", cfg.Metrics.Enabled, "Collect metrics during a run"),
			b.field("textfile", cfg.Metrics.Textfile, "File the metrics are written to when the run finishes"),
		)),
	)
	if b.err != nil {
		return "", fmt.Errorf("failed to build config document: %w", b.err)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	return buf.String(), nil
}

// nodeBuilder assembles a yaml.Node tree, keeping the first encoding error.
type nodeBuilder struct {
	err error
}

// keyValue is one entry of a mapping node.
type keyValue struct {
	key   *yaml.Node
	value *yaml.Node
}

func (b *nodeBuilder) mapping(entries ...keyValue) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range entries {
		node.Content = append(node.Content, e.key, e.value)
	}
	return node
}

func (b *nodeBuilder) section(key, comment string, value *yaml.Node) keyValue {
	return keyValue{
		key:   &yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment},
		value: value,
	}
}

func (b *nodeBuilder) field(key string, value any, comment string) keyValue {
	node := &yaml.Node{}
	if err := node.Encode(value); err != nil && b.err == nil {
		b.err = fmt.Errorf("%s: %w", key, err)
	}
	return keyValue{
		key:   &yaml.Node{Kind: yaml.ScalarNode, Value: key, HeadComment: comment},
		value: node,
	}
}
