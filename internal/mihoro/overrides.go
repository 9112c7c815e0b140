package mihoro

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// applyOverrides merges the [mihomo_config] values from mihoro.toml into the
// downloaded mihomo config file. Keys the overrides leave unset keep the
// remote config's values.
func (m *Mihoro) applyOverrides() error {
	path := m.Config.MihomoConfigPath()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading mihomo config %s: %w", path, err)
	}

	merged, err := mergeOverrides(data, m.Config.MihomoConfig)
	if err != nil {
		return fmt.Errorf("applying overrides to %s: %w", path, err)
	}

	if err := os.WriteFile(path, merged, 0644); err != nil {
		return fmt.Errorf("writing mihomo config %s: %w", path, err)
	}
	return nil
}

// mergeOverrides overlays the override fields onto the remote YAML document.
// The overrides struct round-trips through YAML so its omitempty tags decide
// which keys are actually set.
func mergeOverrides(remote []byte, overrides interface{}) ([]byte, error) {
	var base map[string]interface{}
	if err := yaml.Unmarshal(remote, &base); err != nil {
		return nil, fmt.Errorf("parsing remote config: %w", err)
	}
	if base == nil {
		base = make(map[string]interface{})
	}

	raw, err := yaml.Marshal(overrides)
	if err != nil {
		return nil, fmt.Errorf("encoding overrides: %w", err)
	}
	var patch map[string]interface{}
	if err := yaml.Unmarshal(raw, &patch); err != nil {
		return nil, fmt.Errorf("decoding overrides: %w", err)
	}

	for k, v := range patch {
		base[k] = v
	}

	return yaml.Marshal(base)
}
