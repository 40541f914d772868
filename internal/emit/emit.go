// Package emit translates a discovery result into shell-native completion
// scripts. One emitter per shell; adding a shell means adding one emitter
// and registering it in ForShell, nothing else.
package emit

import (
	"fmt"
	"strings"

	"github.com/djcomp/djcomp/internal/discovery"
)

// Alias is the short token the generated scripts bind to the full
// `python manage.py` invocation.
const Alias = "dj"

// Emitter turns a discovery result into the full text of a completion
// script. Emit must be a pure function of its input: the same result yields
// byte-identical output, and an empty result still yields a syntactically
// valid script that completes nothing.
type Emitter interface {
	// Name returns the shell name (bash, powershell)
	Name() string
	// DefaultOutputPath returns the default script file name for the shell
	DefaultOutputPath() string
	// SourceHint returns the command the user runs to load the script
	SourceHint(path string) string
	// Emit produces the completion script text
	Emit(res *discovery.Result) (string, error)
}

// Shells returns the supported shell names, in the order they are
// advertised to the user.
func Shells() []string {
	return []string{"bash", "powershell"}
}

// ForShell returns the emitter for the given shell name.
func ForShell(name string) (Emitter, error) {
	switch name {
	case "bash":
		return &BashEmitter{}, nil
	case "powershell":
		return &PowerShellEmitter{}, nil
	default:
		return nil, fmt.Errorf("unsupported shell %q (supported: %s)", name, strings.Join(Shells(), ", "))
	}
}
