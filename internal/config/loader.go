package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Load loads the variant with the given key.
// Search order: customPath -> ~/.merge48/variants/<key>.yaml -> embedded default.
func Load(key, customPath string) (Variant, error) {
	var v Variant

	// Explicit path always wins, and its errors are reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return v, fmt.Errorf("failed to read variant %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &v); err != nil {
			return v, fmt.Errorf("failed to parse variant %s: %w", customPath, err)
		}
		return normalize(v, key), nil
	}

	// User override directory.
	if userPath := userVariantPath(key + ".yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &v); err == nil {
				return normalize(v, key), nil
			}
		}
	}

	// Embedded default YAML.
	if data, ok := embeddedDefaults[key]; ok {
		if err := yaml.Unmarshal(data, &v); err == nil {
			return normalize(v, key), nil
		}
	}

	// Compiled-in fallback if the embed is missing or malformed.
	if fallback, ok := hardcodedDefault(key); ok {
		return fallback, nil
	}

	return v, fmt.Errorf("unknown variant %q", key)
}

// Keys returns the keys of all built-in variants, sorted.
func Keys() []string {
	keys := make([]string, 0, len(embeddedDefaults))
	for k := range embeddedDefaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Exists reports whether key names a built-in variant.
func Exists(key string) bool {
	_, ok := embeddedDefaults[key]
	return ok
}

// userVariantPath returns the path to a user variant file, or empty if
// the home directory is unavailable.
func userVariantPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".merge48", "variants", filename)
}

// normalize fills gaps a partial YAML file may leave so the session
// controller never divides by zero or multiplies by nothing.
func normalize(v Variant, key string) Variant {
	if v.Key == "" {
		v.Key = key
	}
	if v.Name == "" {
		v.Name = v.Key
	}
	if v.FourProb <= 0 {
		v.FourProb = 0.10
	}
	if v.Revive.Enabled {
		if v.Revive.Penalty < 1 {
			v.Revive.Penalty = 2
		}
		if v.Revive.Cells < 1 {
			v.Revive.Cells = 2
		}
	}
	if v.Combo.Enabled {
		if v.Combo.Base < 1 {
			v.Combo.Base = 1
		}
		if v.Combo.Step < 1 {
			v.Combo.Step = 1
		}
		if v.Combo.Max < v.Combo.Base {
			v.Combo.Max = v.Combo.Base
		}
	}
	return v
}
