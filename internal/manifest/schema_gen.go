//go:build ignore

// Regenerates schema.json from the manifest structs.
// Run with: go run schema_gen.go

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
)

// SchemaManifest is the root of a command manifest
type SchemaManifest struct {
	Commands []SchemaCommand `json:"commands" jsonschema:"required,description=Management commands in the order they should appear in the generated script"`
}

// SchemaCommand is one management command entry
type SchemaCommand struct {
	Name      string           `json:"name" jsonschema:"required,minLength=1,description=Subcommand token used verbatim on the command line"`
	Help      string           `json:"help,omitempty" jsonschema:"description=Human-readable description used as inline documentation only"`
	Arguments []SchemaArgument `json:"arguments,omitempty"`
}

// SchemaArgument is one argument entry
type SchemaArgument struct {
	Flags      []string `json:"flags,omitempty" jsonschema:"description=Flag forms the user may type; empty for positional arguments"`
	Positional bool     `json:"positional,omitempty" jsonschema:"description=True for positional arguments"`
	TakesValue bool     `json:"takes_value,omitempty" jsonschema:"description=Whether the flag must be followed by a value token"`
	Choices    []string `json:"choices,omitempty" jsonschema:"description=Finite set of accepted values; absent means free-form"`
	Help       string   `json:"help,omitempty"`
	Dest       string   `json:"dest,omitempty" jsonschema:"description=Binding name of the argument as argparse reports it"`
}

func main() {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: false,
	}

	schema := reflector.Reflect(&SchemaManifest{})
	schema.Title = "djcomp command manifest"
	schema.Description = "Describes the management commands of a Django project for completion script generation"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal schema: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile("schema.json", append(data, '\n'), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write schema.json: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("schema.json regenerated")
}
