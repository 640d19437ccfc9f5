// Package config implements the "argtree config" subcommands.
package config

import (
	"io"
	"os"

	"github.com/footprint-tools/argtree/internal/domain"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(key, value string) error
	Unset  func(key string) error
	Out    io.Writer
}

// DefaultDeps wires the actions to a config provider.
func DefaultDeps(provider domain.ConfigProvider, out io.Writer) Deps {
	if out == nil {
		out = os.Stdout
	}
	return Deps{
		Get:    provider.Get,
		GetAll: provider.GetAll,
		Set:    provider.Set,
		Unset:  provider.Unset,
		Out:    out,
	}
}
