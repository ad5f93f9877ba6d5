package appconfig

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v2"
)

// ApplySettingsFiles loads one or more YAML documents of ad-hoc settings
// and stores the merged result on the tree. Later files override earlier
// ones key by key; the merged values land in the same ad-hoc area
// [Config.Put] writes to, so they resolve through [Config.Resolve].
//
// Like every write, this fails once the tree is finalized.
func (c *Config) ApplySettingsFiles(paths ...string) error {
	merged := map[string]any{}

	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read settings file: %w", err)
		}

		var doc map[string]any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return fmt.Errorf("parse settings file %s: %w", path, err)
		}

		normalized := normalizeYAML(doc).(map[string]any)
		if err := mergo.Merge(&merged, normalized, mergo.WithOverride); err != nil {
			return fmt.Errorf("merge settings file %s: %w", path, err)
		}
	}

	for name, value := range merged {
		if err := c.store.Put(name, value); err != nil {
			return err
		}
	}
	return nil
}

// normalizeYAML rewrites yaml.v2's map[interface{}]interface{} containers
// into map[string]any so merged documents match the store's value kinds.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalizeYAML(e)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalizeYAML(e)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalizeYAML(e)
		}
		return out
	default:
		return v
	}
}
