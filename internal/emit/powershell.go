package emit

import (
	"fmt"
	"strings"

	"github.com/djcomp/djcomp/internal/derrors"
	"github.com/djcomp/djcomp/internal/discovery"
)

// PowerShellEmitter produces a PowerShell completion script using the
// Register-ArgumentCompleter protocol: the completer receives the parsed
// command AST and cursor position and walks the command elements itself.
// Candidates are CompletionResult objects whose completion text and display
// (list item) text are separate slots; the discovery model carries no
// separate display string, so display defaults to the completion text.
type PowerShellEmitter struct{}

// Name returns the shell name for powershell
func (e *PowerShellEmitter) Name() string {
	return "powershell"
}

// DefaultOutputPath returns the default script file name for powershell
func (e *PowerShellEmitter) DefaultOutputPath() string {
	return "django_completion.ps1"
}

// SourceHint returns the command that dot-sources the script in powershell
func (e *PowerShellEmitter) SourceHint(path string) string {
	return fmt.Sprintf(`. .\%s`, path)
}

// psFlagHelp is one FlagHelp hashtable entry.
type psFlagHelp struct {
	Flag string // quoted literal
	Help string // quoted literal
}

// psChoiceEntry maps one quoted flag form to its quoted choice values.
type psChoiceEntry struct {
	Flag   string
	Values []string
}

// psCommand is one entry of the generated command hashtable.
type psCommand struct {
	Name     string // quoted literal
	Help     string // quoted literal
	Flags    []string
	FlagHelp []psFlagHelp
	Choices  []psChoiceEntry
}

type psScript struct {
	Alias    string
	Names    []string
	Commands []psCommand
}

// Emit renders the PowerShell completion script. All strings are emitted as
// single-quoted literals with quote doubling; strings PowerShell cannot
// carry in a script file are rejected up front.
func (e *PowerShellEmitter) Emit(res *discovery.Result) (string, error) {
	data := psScript{Alias: Alias}

	// Hashtable literal keys fold case, so names that differ only in case
	// collide at parse time of the generated script.
	seenNames := map[string]string{}

	for _, cmd := range res.Commands() {
		if err := checkPSWord(cmd.Name); err != nil {
			return "", err
		}
		if err := checkPSText(cmd.Help); err != nil {
			return "", err
		}
		lower := strings.ToLower(cmd.Name)
		if prev, dup := seenNames[lower]; dup {
			return "", derrors.NewEmissionError("powershell", cmd.Name,
				fmt.Sprintf("collides with command %q: hashtable keys are case-insensitive", prev))
		}
		seenNames[lower] = cmd.Name
		data.Names = append(data.Names, psQuote(cmd.Name))

		pc := psCommand{
			Name: psQuote(cmd.Name),
			Help: psQuote(sanitizeHelp(cmd.Help)),
		}

		seenHelpKeys := map[string]string{}
		for _, arg := range cmd.Arguments {
			if arg.Positional {
				continue
			}
			for _, flag := range arg.Flags {
				if err := checkPSWord(flag); err != nil {
					return "", err
				}
				pc.Flags = append(pc.Flags, psQuote(flag))
				if arg.Help != "" {
					if err := checkPSText(arg.Help); err != nil {
						return "", err
					}
					if prev, dup := seenHelpKeys[strings.ToLower(flag)]; dup {
						return "", derrors.NewEmissionError("powershell", flag,
							fmt.Sprintf("collides with flag %q: hashtable keys are case-insensitive", prev))
					}
					seenHelpKeys[strings.ToLower(flag)] = flag
					pc.FlagHelp = append(pc.FlagHelp, psFlagHelp{
						Flag: psQuote(flag),
						Help: psQuote(sanitizeHelp(arg.Help)),
					})
				}
			}
		}

		seenChoiceKeys := map[string]string{}
		for _, arg := range cmd.ChoiceArguments() {
			for _, flag := range arg.Flags {
				if prev, dup := seenChoiceKeys[strings.ToLower(flag)]; dup {
					return "", derrors.NewEmissionError("powershell", flag,
						fmt.Sprintf("collides with flag %q: hashtable keys are case-insensitive", prev))
				}
				seenChoiceKeys[strings.ToLower(flag)] = flag
				entry := psChoiceEntry{Flag: psQuote(flag)}
				for _, value := range arg.Choices {
					if err := checkPSWord(value); err != nil {
						return "", err
					}
					entry.Values = append(entry.Values, psQuote(value))
				}
				pc.Choices = append(pc.Choices, entry)
			}
		}

		data.Commands = append(data.Commands, pc)
	}

	var b strings.Builder
	if err := scriptTemplates.ExecuteTemplate(&b, "powershell.ps1.tmpl", data); err != nil {
		return "", fmt.Errorf("failed to render powershell script: %w", err)
	}
	return b.String(), nil
}

// sanitizeHelp collapses help text to a single line for use as a tooltip.
func sanitizeHelp(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
