package config

import (
	"strconv"

	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/paths"
)

// Dynamic defaults that cannot live in domain.ConfigKeys.
var dynamicDefaults = map[string]func() string{
	"catalog_path": paths.CatalogFilePath,
}

func defaultValue(key string) string {
	if fn, ok := dynamicDefaults[key]; ok {
		return fn()
	}
	value, _ := domain.GetDefaultValue(key)
	return value
}

func readUserValues() (map[string]string, error) {
	f, err := userFile()
	if err != nil {
		return nil, err
	}
	return f.values()
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	if cfg, err := readUserValues(); err == nil {
		if value, exists := cfg[key]; exists {
			return value, true
		}
	}

	if !domain.IsValidConfigKey(key) {
		return "", false
	}
	return defaultValue(key), true
}

// GetAll returns all config values (user overrides merged with defaults).
// A config file that cannot be read or parsed yields the defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		result[key.Name] = defaultValue(key.Name)
	}

	cfg, err := readUserValues()
	if err != nil {
		return result, nil
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}

// Bool reads a boolean setting from cfg, falling back to the key's default
// when it is missing or unparseable.
func Bool(cfg map[string]string, key string) bool {
	if v, err := strconv.ParseBool(cfg[key]); err == nil {
		return v
	}
	v, _ := strconv.ParseBool(defaultValue(key))
	return v
}

// Int reads an integer setting from cfg, falling back to the key's default.
func Int(cfg map[string]string, key string) int {
	if v, err := strconv.Atoi(cfg[key]); err == nil {
		return v
	}
	v, _ := strconv.Atoi(defaultValue(key))
	return v
}
