package cli

import (
	"fmt"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/emit"
	"github.com/djcomp/djcomp/internal/logger"
)

// GenerateParams contains parameters for the Generate command
type GenerateParams struct {
	Shell    string
	Output   string
	Sorted   bool
	LogLevel string
	Provider ProviderOptions
}

// Generate discovers the project's management commands and writes the
// completion script for the requested shell. Emission is all-or-nothing: on
// any error nothing is written.
func Generate(params GenerateParams) error {
	log := logger.New(params.LogLevel, nil)

	emitter, err := emit.ForShell(params.Shell)
	if err != nil {
		return err
	}

	res, err := discovery.Discover(buildProvider(params.Provider, log))
	if err != nil {
		return err
	}

	if params.Sorted {
		res = res.Sorted()
	}

	log.Debug().
		Str("shell", emitter.Name()).
		Int("commands", res.Len()).
		Bool("sorted", params.Sorted).
		Msg("Emitting completion script")

	script, err := emitter.Emit(res)
	if err != nil {
		return err
	}

	output := params.Output
	if output == "" {
		output = emitter.DefaultOutputPath()
	}

	if err := emit.WriteScript(script, output); err != nil {
		return err
	}

	fmt.Printf("%s completion script generated at %s\n", titleCase(emitter.Name()), output)
	fmt.Println("To use it, run the following command:")
	fmt.Printf("  %s\n", emitter.SourceHint(output))

	return nil
}
