package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidManifest(t *testing.T) {
	path := writeTestManifest(t, testManifest)
	assert.NoError(t, Validate(path))
}

func TestValidate_SchemaViolation(t *testing.T) {
	path := writeTestManifest(t, "commands:\n  - help: missing name\n")

	err := Validate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_DuplicateCommands(t *testing.T) {
	// Passes the schema but breaks the discovery invariants.
	path := writeTestManifest(t, "commands:\n  - name: migrate\n  - name: migrate\n")

	err := Validate(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_MissingFile(t *testing.T) {
	err := Validate(t.TempDir() + "/absent.yml")
	require.Error(t, err)
}
