package emit

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/djcomp/djcomp/internal/discovery"
)

// The escaping tests above assert on script text; these drive the emitted
// scripts through a real shell and check that adversarial candidates come
// back byte-identical through the completion machinery.

func adversarialResult() *discovery.Result {
	return discovery.NewResult([]discovery.Command{
		{Name: "sync$HOME"},
		{Name: "du`date`mp"},
		{Name: `back\slash`},
		{Name: "it's"},
		{Name: "~tilde"},
		{Name: "a{b,c}d"},
		{Name: `qu"ote`},
		{
			Name: "loaddata",
			Arguments: []discovery.Argument{
				{
					Flags: []string{"--for$mat"}, TakesValue: true,
					Choices: []string{"js`on`", "ya$ml"}, Dest: "format",
				},
				{Flags: []string{"--path~"}, Dest: "path"},
			},
		},
	})
}

func TestBashScript_CompletionRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("bash"); err != nil {
		t.Skip("bash not installed")
	}

	script, err := (&BashEmitter{}).Emit(adversarialResult())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "completion.sh")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	// Sources the script, replays a command line through the completion
	// function and prints COMPREPLY one candidate per line.
	const driver = `source "$1"; shift
COMP_WORDS=("$@")
COMP_CWORD=$(( ${#COMP_WORDS[@]} - 1 ))
_djcomp_complete
printf '%s\n' "${COMPREPLY[@]}"`

	complete := func(t *testing.T, words ...string) []string {
		t.Helper()
		args := append([]string{"-c", driver, "bash", path}, words...)
		out, err := exec.Command("bash", args...).Output()
		require.NoError(t, err)
		return strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	}

	t.Run("command names survive compgen expansion", func(t *testing.T) {
		got := complete(t, "dj", "")
		assert.Equal(t, []string{
			"sync$HOME", "du`date`mp", `back\slash`, "it's",
			"~tilde", "a{b,c}d", `qu"ote`, "loaddata",
		}, got)
	})

	t.Run("flags survive compgen expansion", func(t *testing.T) {
		got := complete(t, "dj", "loaddata", "")
		assert.Equal(t, []string{"--for$mat", "--path~"}, got)
	})

	t.Run("choices survive compgen expansion", func(t *testing.T) {
		got := complete(t, "dj", "loaddata", "--for$mat", "")
		assert.Equal(t, []string{"js`on`", "ya$ml"}, got)
	})

	t.Run("prefix narrows candidates", func(t *testing.T) {
		got := complete(t, "dj", "loaddata", "--p")
		assert.Equal(t, []string{"--path~"}, got)
	})
}

func TestPowerShellScript_CompletionRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("pwsh"); err != nil {
		t.Skip("pwsh not installed")
	}

	script, err := (&PowerShellEmitter{}).Emit(adversarialResult())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "completion.ps1")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o644))

	// Dot-sources the script, then reads the candidates straight out of the
	// generated tables: parse failure on a malformed hash literal would
	// surface as a non-zero exit before anything prints.
	const driver = `. $args[0]
$script:DjCommandOrder | ForEach-Object { $_ }
$script:DjCommandTable['loaddata'].Flags | ForEach-Object { $_ }
$script:DjCommandTable['loaddata'].Choices['--for$mat'] | ForEach-Object { $_ }`

	out, err := exec.Command("pwsh", "-NoProfile", "-Command", driver, path).Output()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"sync$HOME", "du`date`mp", `back\slash`, "it's",
		"~tilde", "a{b,c}d", `qu"ote`, "loaddata",
		"--for$mat", "--path~",
		"js`on`", "ya$ml",
	}, strings.Split(strings.TrimRight(strings.ReplaceAll(string(out), "\r\n", "\n"), "\n"), "\n"))
}
