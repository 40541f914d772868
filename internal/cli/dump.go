package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/logger"
	"github.com/djcomp/djcomp/internal/manifest"
	"gopkg.in/yaml.v3"
)

// DumpParams contains parameters for the Dump command
type DumpParams struct {
	Format   string // json or yaml
	Output   string // empty means stdout
	Sorted   bool
	LogLevel string
	Provider ProviderOptions
}

// Dump prints the discovery result in manifest form. The output can be
// checked in as a .djcomp manifest so later runs skip the Python side.
func Dump(params DumpParams) error {
	log := logger.New(params.LogLevel, nil)

	res, err := discovery.Discover(buildProvider(params.Provider, log))
	if err != nil {
		return err
	}

	if params.Sorted {
		res = res.Sorted()
	}

	data, err := marshalManifest(res, params.Format)
	if err != nil {
		return err
	}

	if params.Output != "" {
		if err := os.WriteFile(params.Output, data, 0644); err != nil {
			return fmt.Errorf("failed to write manifest to %s: %w", params.Output, err)
		}
		fmt.Printf("Manifest written to: %s\n", params.Output)
		return nil
	}

	fmt.Print(string(data))
	return nil
}

// marshalManifest converts a result to manifest form in the given format.
func marshalManifest(res *discovery.Result, format string) ([]byte, error) {
	m := toManifest(res)

	switch format {
	case "yaml", "":
		return yaml.Marshal(m)
	case "json":
		data, err := json.MarshalIndent(m, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported dump format %q (supported: yaml, json)", format)
	}
}

func toManifest(res *discovery.Result) *manifest.Manifest {
	m := &manifest.Manifest{Commands: make([]manifest.Command, 0, res.Len())}
	for _, cmd := range res.Commands() {
		mc := manifest.Command{
			Name: cmd.Name,
			Help: cmd.Help,
		}
		for _, arg := range cmd.Arguments {
			mc.Arguments = append(mc.Arguments, manifest.Argument{
				Flags:      arg.Flags,
				Positional: arg.Positional,
				TakesValue: arg.TakesValue,
				Choices:    arg.Choices,
				Help:       arg.Help,
				Dest:       arg.Dest,
			})
		}
		m.Commands = append(m.Commands, mc)
	}
	return m
}
