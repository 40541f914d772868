package derrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscoveryError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDiscoveryError("", "provider query failed", cause)

	assert.Equal(t, "DISCOVERY_ERROR", err.Code())
	assert.Contains(t, err.Error(), "provider query failed")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestDiscoveryError_NamesCommand(t *testing.T) {
	err := NewDiscoveryError("migrate", "duplicate command name", nil)

	assert.Equal(t, "migrate", err.Command)
	assert.Contains(t, err.Error(), `command "migrate"`)
	assert.Contains(t, err.Error(), "duplicate command name")
}

func TestEmissionError(t *testing.T) {
	err := NewEmissionError("bash", "run server", "word list candidates must not contain whitespace")

	assert.Equal(t, "EMISSION_ERROR", err.Code())
	assert.Equal(t, "bash", err.Shell)
	assert.Equal(t, "run server", err.Value)
	assert.Contains(t, err.Error(), `"run server"`)
}

func TestManifestError(t *testing.T) {
	cause := errors.New("yaml: line 3")
	err := NewManifestError("/tmp/.djcomp.yml", "failed to parse manifest", cause)

	assert.Equal(t, "MANIFEST_ERROR", err.Code())
	assert.Equal(t, "/tmp/.djcomp.yml", err.Path)
	assert.ErrorIs(t, err, cause)
}

func TestErrorsImplementInterface(t *testing.T) {
	for _, err := range []Error{
		NewDiscoveryError("x", "m", nil),
		NewEmissionError("bash", "v", "m"),
		NewManifestError("p", "m", nil),
	} {
		assert.NotEmpty(t, err.Code())
		assert.NotEmpty(t, err.Error())
	}
}

func TestErrorsAs(t *testing.T) {
	var wrapped error = fmt.Errorf("generate: %w", NewDiscoveryError("runserver", "bad metadata", nil))

	var discErr *DiscoveryError
	assert.True(t, errors.As(wrapped, &discErr))
	assert.Equal(t, "runserver", discErr.Command)
}
