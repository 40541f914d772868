// Package derrors provides the typed errors used across djcomp.
// Every failure surfaced to the user goes through one of these types so the
// CLI can name the offending command or string instead of printing a trace.
package derrors

import (
	"fmt"
)

// Error is the base interface for all djcomp errors
type Error interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all djcomp errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// DiscoveryError represents failures while querying the provider or
// normalizing its command metadata: unreachable provider, duplicate command
// names, duplicate flag forms, or an argument that cannot bind a value.
type DiscoveryError struct {
	baseError
	Command string
}

// NewDiscoveryError creates a new discovery error. Command may be empty when
// the failure is not attributable to a single command (e.g. provider down).
func NewDiscoveryError(command string, message string, cause error) *DiscoveryError {
	if command != "" {
		message = fmt.Sprintf("command %q: %s", command, message)
	}
	return &DiscoveryError{
		baseError: baseError{
			code:    "DISCOVERY_ERROR",
			message: message,
			cause:   cause,
		},
		Command: command,
	}
}

// EmissionError represents a string that cannot be safely encoded under the
// target shell's quoting rules. Emission is all-or-nothing: this error means
// no script was produced.
type EmissionError struct {
	baseError
	Shell string
	Value string
}

// NewEmissionError creates a new emission error for the given shell and
// offending string.
func NewEmissionError(shell, value, message string) *EmissionError {
	return &EmissionError{
		baseError: baseError{
			code:    "EMISSION_ERROR",
			message: fmt.Sprintf("%s: cannot encode %q: %s", shell, value, message),
		},
		Shell: shell,
		Value: value,
	}
}

// ManifestError represents errors in command manifest files
type ManifestError struct {
	baseError
	Path string
}

// NewManifestError creates a new manifest error
func NewManifestError(path string, message string, cause error) *ManifestError {
	return &ManifestError{
		baseError: baseError{
			code:    "MANIFEST_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}
