package keypad

import (
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// yamlLayout is the YAML structure for keypad layout files.
type yamlLayout struct {
	Rows []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Keys []yamlKey `yaml:"keys"`
}

type yamlKey struct {
	Label string `yaml:"label"`
	Kind  string `yaml:"kind"`
}

// LoadFromFS loads the keypad layout from an embedded or real filesystem.
// It expects a single "layout/keypad.yaml" file.
func LoadFromFS(fsys fs.FS) (*Layout, error) {
	data, err := fs.ReadFile(fsys, "layout/keypad.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read keypad layout: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML layout definition.
func Parse(data []byte) (*Layout, error) {
	var def yamlLayout
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse keypad layout: %w", err)
	}

	if len(def.Rows) == 0 {
		return nil, fmt.Errorf("keypad layout has no rows")
	}

	layout := &Layout{}
	for i, row := range def.Rows {
		if len(row.Keys) == 0 {
			return nil, fmt.Errorf("keypad row %d has no keys", i)
		}
		var keys []Key
		for _, k := range row.Keys {
			kind := KeyKind(k.Kind)
			if kind != KindDigit && kind != KindOperator {
				return nil, fmt.Errorf("key %q has unknown kind %q", k.Label, k.Kind)
			}
			if k.Label == "" {
				return nil, fmt.Errorf("keypad row %d has a key without a label", i)
			}
			keys = append(keys, Key{Label: k.Label, Kind: kind})
		}
		layout.Rows = append(layout.Rows, Row{Keys: keys})
	}

	return layout, nil
}
