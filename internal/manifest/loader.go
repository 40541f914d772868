// Package manifest handles loading and validation of djcomp command
// manifest files. A manifest is a checked-in description of a project's
// management commands for environments where the Python side cannot run
// (CI, containers, review tooling).
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/djcomp/djcomp/internal/derrors"
	kjson "github.com/knadh/koanf/parsers/json"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// SupportedManifestNames contains supported manifest file names (in order of
// preference), used when no explicit path is given.
var SupportedManifestNames = []string{
	".djcomp.yml",
	".djcomp.yaml",
	".djcomp.json",
	".djcomp.toml",
}

// Argument mirrors discovery.RawArgument in manifest form.
type Argument struct {
	Flags      []string `koanf:"flags" json:"flags,omitempty" yaml:"flags,omitempty"`
	Positional bool     `koanf:"positional" json:"positional,omitempty" yaml:"positional,omitempty"`
	TakesValue bool     `koanf:"takes_value" json:"takes_value,omitempty" yaml:"takes_value,omitempty"`
	Choices    []string `koanf:"choices" json:"choices,omitempty" yaml:"choices,omitempty"`
	Help       string   `koanf:"help" json:"help,omitempty" yaml:"help,omitempty"`
	Dest       string   `koanf:"dest" json:"dest,omitempty" yaml:"dest,omitempty"`
}

// Command is one management command entry in a manifest.
type Command struct {
	Name      string     `koanf:"name" json:"name" yaml:"name"`
	Help      string     `koanf:"help" json:"help,omitempty" yaml:"help,omitempty"`
	Arguments []Argument `koanf:"arguments" json:"arguments,omitempty" yaml:"arguments,omitempty"`
}

// Manifest is the root of a command manifest file. Command order in the
// file is preserved through discovery and into the emitted script.
type Manifest struct {
	Commands []Command `koanf:"commands" json:"commands" yaml:"commands"`
}

// Find returns the manifest file in dir, trying the supported names in
// order.
func Find(dir string) (string, bool) {
	for _, name := range SupportedManifestNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// parserFor picks the koanf parser matching the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	case ".toml":
		return ktoml.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported manifest format: %s", filepath.Ext(path))
	}
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.NewManifestError(path, "failed to read manifest", err)
	}
	return Parse(path, content)
}

// Parse parses manifest content. The path is only used to pick the format
// and to report errors.
func Parse(path string, content []byte) (*Manifest, error) {
	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewManifestError(path, "failed to parse manifest", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, derrors.NewManifestError(path, "failed to parse manifest", err)
	}

	var m Manifest
	if err := k.Unmarshal("", &m); err != nil {
		return nil, derrors.NewManifestError(path, "failed to decode manifest", err)
	}

	return &m, nil
}
