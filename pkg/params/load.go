package params

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a flat key/value parameter file. Values keep their YAML
// types; validation and coercion happen in New.
func LoadYAML(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("params: read %s: %w", path, err)
	}
	overlay := make(map[string]any)
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("params: parse %s: %w", path, err)
	}
	return overlay, nil
}

// ParseAssignments converts "key=value" strings (CLI --set flags) into an
// overlay. Values stay textual; New coerces them per the key's kind.
func ParseAssignments(assignments []string) (map[string]any, error) {
	overlay := make(map[string]any, len(assignments))
	for _, a := range assignments {
		key, value, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("params: malformed assignment %q, expected key=value", a)
		}
		overlay[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return overlay, nil
}

// Merge combines overlays left to right; later overlays win.
func Merge(overlays ...map[string]any) map[string]any {
	merged := make(map[string]any)
	for _, o := range overlays {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}
