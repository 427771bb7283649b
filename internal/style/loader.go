package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
	kiterrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

const (
	keyCommon  = "common"
	keyInitial = "initial"
)

// LoadTree reads a descriptor tree from a YAML file.
//
// A scalar value is a terminal Class. A mapping is a Branch: "common" and
// "initial" hold the always-applied classes, theme names hold theme
// sub-descriptors and every other key except "default" is a variant.
func LoadTree(path string) (Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, kiterrors.NewParseError(path, 0, err)
	}
	return ParseTree(path, data)
}

// ParseTree decodes a descriptor tree from YAML data. name is only used in
// error messages.
func ParseTree(name string, data []byte) (Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, kiterrors.NewParseError(name, 0, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, kiterrors.NewParseError(name, 0, fmt.Errorf("empty document"))
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, kiterrors.NewParseError(name, root.Line, fmt.Errorf("descriptor tree must be a mapping of structural keys"))
	}

	tree := make(Tree, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if _, exists := tree[key.Value]; exists {
			return nil, kiterrors.NewParseError(name, key.Line, fmt.Errorf("duplicate structural key %q", key.Value))
		}
		d, err := decodeDescriptor(name, value)
		if err != nil {
			return nil, err
		}
		tree[key.Value] = d
	}
	return tree, nil
}

func decodeDescriptor(name string, node *yaml.Node) (Descriptor, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
		return Class(node.Value), nil
	case yaml.MappingNode:
		return decodeBranch(name, node)
	default:
		return nil, kiterrors.NewParseError(name, node.Line, fmt.Errorf("descriptor must be a string or a mapping"))
	}
}

func decodeBranch(name string, node *yaml.Node) (Descriptor, error) {
	var branch Branch
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		switch key.Value {
		case keyCommon, keyInitial:
			if value.Kind != yaml.ScalarNode {
				return nil, kiterrors.NewParseError(name, value.Line, fmt.Errorf("%s must be a string", key.Value))
			}
			if value.Tag == "!!null" {
				continue
			}
			if key.Value == keyCommon {
				branch.Common = value.Value
			} else {
				branch.Initial = value.Value
			}
			continue
		}

		if key.Value == ExportDefaultKey {
			return nil, kiterrors.NewParseError(name, key.Line, fmt.Errorf("%q is reserved and cannot name a variant", key.Value))
		}

		sub, err := decodeDescriptor(name, value)
		if err != nil {
			return nil, err
		}

		if t := theme.Theme(key.Value); t.Valid() {
			if branch.Themes == nil {
				branch.Themes = ByTheme{}
			}
			branch.Themes[t] = sub
			continue
		}

		if branch.Variants == nil {
			branch.Variants = ByVariant{}
		}
		branch.Variants[Variant(key.Value)] = sub
	}
	return branch, nil
}
