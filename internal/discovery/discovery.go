package discovery

import (
	"strings"

	"github.com/djcomp/djcomp/internal/derrors"
)

// RawArgument is an argument descriptor as reported by a provider, before
// normalization. The JSON tags match the wire format of the manage.py
// introspection program and the manifest file format.
type RawArgument struct {
	Flags      []string `json:"flags"`
	Positional bool     `json:"positional"`
	TakesValue bool     `json:"takes_value"`
	Choices    []string `json:"choices"`
	Help       string   `json:"help"`
	Dest       string   `json:"dest"`
}

// RawCommand is a command descriptor as reported by a provider.
type RawCommand struct {
	Name      string        `json:"name"`
	Help      string        `json:"help"`
	Arguments []RawArgument `json:"arguments"`
}

// Provider is the external source of command metadata. ListCommands is a
// pure query: no side effects, and the returned order is the provider's to
// choose.
type Provider interface {
	ListCommands() ([]RawCommand, error)
}

// Discover queries the provider and normalizes its commands into a Result.
// The provider's namespace is authoritative: duplicate command names,
// duplicate flag forms within a command, and arguments that cannot bind a
// value are all surfaced as a *derrors.DiscoveryError rather than silently
// dropped. Provider order is preserved; Discover never re-sorts.
func Discover(p Provider) (*Result, error) {
	raw, err := p.ListCommands()
	if err != nil {
		return nil, derrors.NewDiscoveryError("", "provider query failed", err)
	}

	commands := make([]Command, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, rc := range raw {
		if rc.Name == "" {
			return nil, derrors.NewDiscoveryError("", "provider returned a command with an empty name", nil)
		}
		if _, dup := seen[rc.Name]; dup {
			return nil, derrors.NewDiscoveryError(rc.Name, "duplicate command name in provider output", nil)
		}
		seen[rc.Name] = struct{}{}

		cmd, err := normalizeCommand(rc)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmd)
	}

	return NewResult(commands), nil
}

// normalizeCommand converts one raw descriptor into the Command shape,
// enforcing the argument invariants.
func normalizeCommand(rc RawCommand) (Command, error) {
	cmd := Command{
		Name:      rc.Name,
		Help:      rc.Help,
		Arguments: make([]Argument, 0, len(rc.Arguments)),
	}

	flagsSeen := make(map[string]struct{})

	for _, ra := range rc.Arguments {
		arg, err := normalizeArgument(rc.Name, ra)
		if err != nil {
			return Command{}, err
		}

		for _, flag := range arg.Flags {
			if _, dup := flagsSeen[flag]; dup {
				return Command{}, derrors.NewDiscoveryError(rc.Name,
					"duplicate flag "+flag+" makes the completion target ambiguous", nil)
			}
			flagsSeen[flag] = struct{}{}
		}

		cmd.Arguments = append(cmd.Arguments, arg)
	}

	return cmd, nil
}

// normalizeArgument applies the positional-or-flagged invariant. When the
// provider leaves the positional marker unset, positional is inferred from
// the absence of flag forms.
func normalizeArgument(command string, ra RawArgument) (Argument, error) {
	arg := Argument{
		Flags:      ra.Flags,
		Positional: ra.Positional,
		TakesValue: ra.TakesValue,
		Choices:    ra.Choices,
		Help:       ra.Help,
		Dest:       ra.Dest,
	}

	if len(arg.Flags) > 0 {
		if arg.Positional {
			return Argument{}, derrors.NewDiscoveryError(command,
				"argument "+arg.Flags[0]+" is declared both positional and flag-based", nil)
		}
		for _, flag := range arg.Flags {
			if !strings.HasPrefix(flag, "-") {
				return Argument{}, derrors.NewDiscoveryError(command,
					"flag form "+flag+" does not start with a dash", nil)
			}
		}
		// A flag either takes a value or is a bare switch; both are valid.
		return arg, nil
	}

	// No flag forms: infer positional unless there is nothing to bind to.
	if !arg.Positional {
		if arg.Dest == "" {
			if arg.TakesValue {
				return Argument{}, derrors.NewDiscoveryError(command,
					"argument takes a value but declares no flag and no positional slot", nil)
			}
			return Argument{}, derrors.NewDiscoveryError(command,
				"argument declares no flag and no positional slot", nil)
		}
		arg.Positional = true
	}

	return arg, nil
}
