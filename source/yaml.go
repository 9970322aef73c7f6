package source

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML parses a single YAML document into a generic tree. Mappings become
// map[string]any; mappings with non-string keys are rejected since the
// attribute wire format only has string keys.
func YAML(data []byte) (any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err == nil {
		return nil, errors.New("source: yaml: more than one document")
	}
	return yamlNormalizeValue(node)
}

// MarshalYAML renders a generic tree as YAML.
func MarshalYAML(tree any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// yamlAnyToStringMap converts YAML-decoded mappings (which may be
// map[any]any) into JSON-like map[string]any recursively.
func yamlAnyToStringMap(v any) (map[string]any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("source: yaml: non-string key %v", k)
			}
			nv, err := yamlNormalizeValue(vv)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("source: yaml: expected a mapping, got %T", v)
	}
}

func yamlNormalizeValue(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			nv, err := yamlNormalizeValue(t[i])
			if err != nil {
				return nil, err
			}
			arr[i] = nv
		}
		return arr, nil
	default:
		return v, nil
	}
}
