package emit

import (
	"strings"

	"github.com/djcomp/djcomp/internal/derrors"
)

// Escaping is the dominant correctness risk of the whole tool: no
// combination of command names, flags or choice values may break out of the
// generated script's string literals. Strings that cannot be represented at
// all under a shell's rules are rejected with an EmissionError instead of
// being truncated.

// bashQuoted escapes a string for interpolation inside a double-quoted bash
// context ("..."): backslash, backquote, dollar and double quote.
var bashQuoted = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`$`, `\$`,
	`"`, `\"`,
)

// bashEscape escapes s for a double-quoted bash context.
func bashEscape(s string) string {
	return bashQuoted.Replace(s)
}

// bashWordInner backslash-escapes the characters compgen -W would act on
// when it expands the word list a second time after quote removal: tilde,
// parameter and command substitution, arithmetic, braces and quotes.
var bashWordInner = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`$`, `\$`,
	`"`, `\"`,
	`'`, `\'`,
	`~`, `\~`,
	`{`, `\{`,
	`}`, `\}`,
)

// bashWordEscape escapes s for a compgen -W word list inside a double-quoted
// context. compgen expands the list once more after the script's own quote
// removal, so each metacharacter needs a backslash that survives both
// rounds: `$` becomes `\\\$` in the script text.
func bashWordEscape(s string) string {
	return bashEscape(bashWordInner.Replace(s))
}

// checkBashWord rejects strings that cannot appear as a candidate inside a
// compgen -W word list. The list is whitespace-separated, so a candidate
// containing whitespace or control characters has no representation there.
func checkBashWord(s string) error {
	if s == "" {
		return derrors.NewEmissionError("bash", s, "empty completion candidate")
	}
	for _, r := range s {
		if r == 0 {
			return derrors.NewEmissionError("bash", s, "NUL byte is not representable")
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return derrors.NewEmissionError("bash", s, "word list candidates must not contain whitespace")
		}
		if r < 0x20 || r == 0x7f {
			return derrors.NewEmissionError("bash", s, "control characters are not representable in a word list")
		}
	}
	return nil
}

// psQuote renders s as a PowerShell single-quoted literal. The only escape
// in that context is doubling the quote itself.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// checkPSText rejects strings that cannot live inside a PowerShell
// single-quoted literal. Tab, newline and carriage return are legal there;
// NUL and the remaining control characters are not representable in a
// script file.
func checkPSText(s string) error {
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return derrors.NewEmissionError("powershell", s, "control characters are not representable")
		}
	}
	return nil
}

// checkPSWord applies checkPSText plus the candidate-word rules: candidates
// are inserted verbatim into the command line, so embedded line breaks are
// rejected even though the literal could carry them.
func checkPSWord(s string) error {
	if s == "" {
		return derrors.NewEmissionError("powershell", s, "empty completion candidate")
	}
	if strings.ContainsAny(s, "\t\n\r") {
		return derrors.NewEmissionError("powershell", s, "completion candidates must not contain line breaks or tabs")
	}
	return checkPSText(s)
}
