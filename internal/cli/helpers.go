// Package cli implements the djcomp subcommands. Each command is a plain
// function taking a params struct, so the urfave wiring in cmd/djcomp stays
// declarative and the commands stay testable.
package cli

import (
	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/logger"
	"github.com/djcomp/djcomp/internal/manifest"
	"github.com/djcomp/djcomp/internal/provider"
)

// ProviderOptions selects and configures the command provider.
type ProviderOptions struct {
	ProjectDir   string
	ManifestPath string
	Python       string
	Settings     string
}

// buildProvider picks the provider for a run: an explicit manifest wins,
// then a manifest found in the project directory, then live introspection
// through the project's Python interpreter.
func buildProvider(opts ProviderOptions, log *logger.Logger) discovery.Provider {
	if opts.ManifestPath != "" {
		log.Debug().Str("manifest", opts.ManifestPath).Msg("Using manifest provider")
		return provider.NewManifestProvider(opts.ManifestPath)
	}

	dir := opts.ProjectDir
	if dir == "" {
		dir = "."
	}

	if path, ok := manifest.Find(dir); ok {
		log.Debug().Str("manifest", path).Msg("Found project manifest")
		return provider.NewManifestProvider(path)
	}

	mp := provider.NewManageProvider(dir, log)
	if opts.Python != "" {
		mp.Python = opts.Python
	}
	if opts.Settings != "" {
		mp.Settings = opts.Settings
	}
	return mp
}

// titleCase uppercases the first letter of a shell name for messages.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
