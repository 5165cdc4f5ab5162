package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/picogrid/ctqmc-input/pkg/ctqmc"
)

// DirName is the per-user settings directory under $HOME
const DirName = ".ctqmc-input"

// Overrides is the content of an overrides file:
//
//	variant: manjushaka
//	params:
//	  isscf: 2
//	  mune: 2.0
type Overrides struct {
	Variant string
	Params  []ctqmc.Param
}

// Dir returns the per-user settings directory
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, DirName), nil
}

// LoadOverrides reads an overrides file. Parameters keep file order and
// their YAML scalar type: 2 is an integer, 2.0 a float, "2" a string.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}

	out, err := ParseOverrides(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse overrides file %s: %w", path, err)
	}
	return out, nil
}

// ParseOverrides decodes overrides from YAML
func ParseOverrides(data []byte) (*Overrides, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	out := &Overrides{}
	// empty document
	if len(doc.Content) == 0 {
		return out, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: expected a mapping at the top level", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "variant":
			if err := value.Decode(&out.Variant); err != nil {
				return nil, fmt.Errorf("line %d: variant: %w", value.Line, err)
			}
		case "params":
			params, err := decodeParams(value)
			if err != nil {
				return nil, err
			}
			out.Params = params
		default:
			return nil, fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}

	return out, nil
}

func decodeParams(node *yaml.Node) ([]ctqmc.Param, error) {
	// "params:" with nothing after it
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: params must be a mapping", node.Line)
	}

	params := make([]ctqmc.Param, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		v, err := decodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("line %d: parameter %s: %w", value.Line, key.Value, err)
		}
		params = append(params, ctqmc.P(key.Value, v))
	}
	return params, nil
}

func decodeValue(node *yaml.Node) (ctqmc.Value, error) {
	if node.Kind != yaml.ScalarNode {
		return ctqmc.Value{}, fmt.Errorf("expected a scalar value")
	}

	switch node.ShortTag() {
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return ctqmc.Value{}, err
		}
		return ctqmc.Int(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return ctqmc.Value{}, err
		}
		return ctqmc.Float(f), nil
	case "!!str":
		return ctqmc.Text(node.Value), nil
	default:
		return ctqmc.Value{}, fmt.Errorf("unsupported value %q of type %s", node.Value, node.ShortTag())
	}
}

// SaveOverrides writes an overrides file. Scalars carry explicit tags so a
// float default such as 4.0 is not read back as an integer.
func SaveOverrides(path string, overrides *Overrides) error {
	data, err := MarshalOverrides(overrides)
	if err != nil {
		return fmt.Errorf("failed to marshal overrides: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write overrides file: %w", err)
	}
	return nil
}

// MarshalOverrides encodes overrides as YAML
func MarshalOverrides(overrides *Overrides) ([]byte, error) {
	params := &yaml.Node{Kind: yaml.MappingNode}
	for _, p := range overrides.Params {
		params.Content = append(params.Content, scalar("!!str", p.Key), valueNode(p.Value))
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	if overrides.Variant != "" {
		root.Content = append(root.Content, scalar("!!str", "variant"), scalar("!!str", overrides.Variant))
	}
	root.Content = append(root.Content, scalar("!!str", "params"), params)

	return yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
}

func valueNode(v ctqmc.Value) *yaml.Node {
	switch v.Kind() {
	case ctqmc.KindInt:
		return scalar("!!int", v.String())
	case ctqmc.KindFloat:
		return scalar("!!float", v.String())
	default:
		n := scalar("!!str", v.String())
		// quote strings that would otherwise read back as numbers
		if ctqmc.ParseLiteral(v.String()).Kind() != ctqmc.KindString {
			n.Style = yaml.DoubleQuotedStyle
		}
		return n
	}
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
