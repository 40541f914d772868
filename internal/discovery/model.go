// Package discovery builds the command and argument model that the shell
// emitters consume. A discovery pass produces an immutable Result snapshot;
// nothing here touches the filesystem or the target shell.
package discovery

import (
	"sort"
)

// Argument describes a single argument accepted by a management command.
// An argument is either positional (no flag forms, ordered within the
// command) or flag-based (at least one flag form), never both.
type Argument struct {
	Flags      []string
	Positional bool
	TakesValue bool
	Choices    []string
	Help       string
	Dest       string
}

// HasChoices reports whether the argument's value is constrained to a
// finite set.
func (a Argument) HasChoices() bool {
	return len(a.Choices) > 0
}

// Command is a named subcommand of the project's management CLI.
// Argument order follows the provider's declaration order.
type Command struct {
	Name      string
	Help      string
	Arguments []Argument
}

// Flags returns every flag form declared by the command, in declaration
// order. Positional arguments contribute nothing.
func (c Command) Flags() []string {
	var flags []string
	for _, arg := range c.Arguments {
		flags = append(flags, arg.Flags...)
	}
	return flags
}

// ChoiceArguments returns the value-taking flag arguments that declare
// choices, in declaration order.
func (c Command) ChoiceArguments() []Argument {
	var args []Argument
	for _, arg := range c.Arguments {
		if !arg.Positional && arg.TakesValue && arg.HasChoices() {
			args = append(args, arg)
		}
	}
	return args
}

// Result is the immutable snapshot produced by one discovery pass.
// Command names are unique; order follows the provider. An empty Result is
// valid and still yields a harmless completion script.
type Result struct {
	commands []Command
	index    map[string]int
}

// NewResult builds a Result from commands whose names are already known to
// be unique. Discover is the normal constructor; this one exists for tests
// and for Sorted.
func NewResult(commands []Command) *Result {
	index := make(map[string]int, len(commands))
	for i, cmd := range commands {
		index[cmd.Name] = i
	}
	return &Result{commands: commands, index: index}
}

// Commands returns the discovered commands in provider order.
func (r *Result) Commands() []Command {
	return r.commands
}

// Len returns the number of discovered commands.
func (r *Result) Len() int {
	return len(r.commands)
}

// Names returns the command names in provider order.
func (r *Result) Names() []string {
	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		names = append(names, cmd.Name)
	}
	return names
}

// Lookup returns the command with the given name, matched case-sensitively.
func (r *Result) Lookup(name string) (Command, bool) {
	i, ok := r.index[name]
	if !ok {
		return Command{}, false
	}
	return r.commands[i], true
}

// Sorted returns a copy of the result with commands ordered alphabetically
// by name. The receiver is left untouched; sorting is an emission-boundary
// option, never something discovery does on its own.
func (r *Result) Sorted() *Result {
	commands := make([]Command, len(r.commands))
	copy(commands, r.commands)
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return NewResult(commands)
}
