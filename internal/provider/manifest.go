package provider

import (
	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/manifest"
)

// ManifestProvider serves command metadata from a checked-in manifest file
// instead of a live Python environment. File order is the provider order.
type ManifestProvider struct {
	Path string
}

// NewManifestProvider creates a provider backed by the given manifest file.
func NewManifestProvider(path string) *ManifestProvider {
	return &ManifestProvider{Path: path}
}

// ListCommands loads the manifest and converts it to raw descriptors.
func (p *ManifestProvider) ListCommands() ([]discovery.RawCommand, error) {
	m, err := manifest.Load(p.Path)
	if err != nil {
		return nil, err
	}

	commands := make([]discovery.RawCommand, 0, len(m.Commands))
	for _, mc := range m.Commands {
		rc := discovery.RawCommand{
			Name:      mc.Name,
			Help:      mc.Help,
			Arguments: make([]discovery.RawArgument, 0, len(mc.Arguments)),
		}
		for _, ma := range mc.Arguments {
			rc.Arguments = append(rc.Arguments, discovery.RawArgument{
				Flags:      ma.Flags,
				Positional: ma.Positional,
				TakesValue: ma.TakesValue,
				Choices:    ma.Choices,
				Help:       ma.Help,
				Dest:       ma.Dest,
			})
		}
		commands = append(commands, rc)
	}

	return commands, nil
}
