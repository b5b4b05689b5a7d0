package colors

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrInvalidTable = errors.New("invalid color table")

// LoadTable decodes a document of the form {"colors": {"<name>": "(r, g, b)"}}.
// JSON and YAML are both accepted. Entry order follows the document. Specs
// are stored verbatim; they are parsed only when a color is picked.
func LoadTable(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidTable)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("%w: trailing content: %w", ErrInvalidTable, err)
		}
		return nil, fmt.Errorf("%w: line %d: trailing content after the table", ErrInvalidTable, extra.Line)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: document is not an object", ErrInvalidTable, root.Line)
	}

	colorsNode, err := mappingValue(root, "colors")
	if err != nil {
		return nil, err
	}
	if colorsNode == nil {
		return nil, fmt.Errorf("%w: missing \"colors\" field", ErrInvalidTable)
	}
	if colorsNode.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: line %d: \"colors\" is not an object", ErrInvalidTable, colorsNode.Line)
	}

	entries := make([]Entry, 0, len(colorsNode.Content)/2)
	for i := 0; i+1 < len(colorsNode.Content); i += 2 {
		key, value := colorsNode.Content[i], colorsNode.Content[i+1]
		if !isString(key) {
			return nil, fmt.Errorf("%w: line %d: color name must be a string", ErrInvalidTable, key.Line)
		}
		if !isString(value) {
			return nil, fmt.Errorf("%w: line %d: color %q must be a string", ErrInvalidTable, value.Line, key.Value)
		}
		entries = append(entries, Entry{Name: key.Value, Spec: value.Value})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, ErrEmptyTable)
	}

	table, err := NewTable(entries...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
	}
	return table, nil
}

// LoadTableFile reads the table at path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open color table: %w", err)
	}
	defer f.Close()

	table, err := LoadTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// mappingValue returns the value stored under key, or nil when it is absent.
// A key that appears more than once is an error.
func mappingValue(node *yaml.Node, key string) (*yaml.Node, error) {
	var value *yaml.Node
	for i := 0; i+1 < len(node.Content); i += 2 {
		k := node.Content[i]
		if k.Value != key {
			continue
		}
		if value != nil {
			return nil, fmt.Errorf("%w: line %d: duplicate %q field", ErrInvalidTable, k.Line, key)
		}
		value = node.Content[i+1]
	}
	return value, nil
}

func isString(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!str"
}
