package config

import (
	"github.com/footprint-tools/argtree/internal/domain"
	"github.com/footprint-tools/argtree/internal/usage"
)

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set validates key and writes value to the rc file under the config lock.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return edit(func(lines []string) []string {
		lines, _ = Set(lines, key, value)
		return lines
	})
}

// Unset removes key from the rc file so its default applies again.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return usage.InvalidConfigKey(key)
	}
	return edit(func(lines []string) []string {
		lines, _ = Unset(lines, key)
		return lines
	})
}

func edit(fn func([]string) []string) error {
	f, err := userFile()
	if err != nil {
		return err
	}
	return f.update(fn)
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
