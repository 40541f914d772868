package emit

import (
	"fmt"
	"strings"

	"github.com/djcomp/djcomp/internal/discovery"
)

// BashEmitter produces a bash completion script using the word-completion
// callback protocol (complete -F, COMP_WORDS/COMPREPLY, compgen).
type BashEmitter struct{}

// Name returns the shell name for bash
func (e *BashEmitter) Name() string {
	return "bash"
}

// DefaultOutputPath returns the default script file name for bash
func (e *BashEmitter) DefaultOutputPath() string {
	return "django_completion.sh"
}

// SourceHint returns the command that loads the script into a bash session
func (e *BashEmitter) SourceHint(path string) string {
	return fmt.Sprintf("source ./%s", path)
}

// bashChoiceCase is one `$prev` case arm offering a flag's declared choices.
type bashChoiceCase struct {
	Pattern string   // quoted flag alternatives, e.g. "--format"|"-f"
	Values  []string // escaped choice values
}

// bashCommandCase is one command arm of the generated case statement.
type bashCommandCase struct {
	Pattern string // escaped name for the quoted case pattern
	Flags   []string
	Choices []bashChoiceCase
}

type bashScript struct {
	Alias    string
	Names    []string
	Commands []bashCommandCase
}

// Emit renders the bash completion script. Every candidate word is checked
// against bash's word-list representation rules before anything is emitted.
func (e *BashEmitter) Emit(res *discovery.Result) (string, error) {
	data := bashScript{Alias: Alias}

	for _, cmd := range res.Commands() {
		if err := checkBashWord(cmd.Name); err != nil {
			return "", err
		}
		data.Names = append(data.Names, bashWordEscape(cmd.Name))

		cc := bashCommandCase{Pattern: bashEscape(cmd.Name)}
		for _, flag := range cmd.Flags() {
			if err := checkBashWord(flag); err != nil {
				return "", err
			}
			cc.Flags = append(cc.Flags, bashWordEscape(flag))
		}

		for _, arg := range cmd.ChoiceArguments() {
			choice := bashChoiceCase{Pattern: flagAlternatives(arg.Flags)}
			for _, value := range arg.Choices {
				if err := checkBashWord(value); err != nil {
					return "", err
				}
				choice.Values = append(choice.Values, bashWordEscape(value))
			}
			cc.Choices = append(cc.Choices, choice)
		}

		data.Commands = append(data.Commands, cc)
	}

	var b strings.Builder
	if err := scriptTemplates.ExecuteTemplate(&b, "bash.sh.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to render bash script: %w", err)
	}
	return b.String(), nil
}

// flagAlternatives builds a quoted case pattern matching any of the flag
// forms, e.g. "--format"|"-f". The full forms are matched, dashes included:
// $prev holds the word exactly as typed.
func flagAlternatives(flags []string) string {
	quoted := make([]string, 0, len(flags))
	for _, flag := range flags {
		quoted = append(quoted, `"`+bashEscape(flag)+`"`)
	}
	return strings.Join(quoted, "|")
}
