package emit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// specResult is the worked example from the docs: runserver with a
// value-taking --port flag, migrate with no arguments.
func specResult() *discovery.Result {
	return discovery.NewResult([]discovery.Command{
		{
			Name: "runserver",
			Help: "Starts a lightweight web server for development.",
			Arguments: []discovery.Argument{
				{Flags: []string{"--port"}, TakesValue: true, Dest: "port", Help: "Port to bind."},
			},
		},
		{Name: "migrate"},
	})
}

func choicesResult() *discovery.Result {
	return discovery.NewResult([]discovery.Command{
		{
			Name: "dumpdata",
			Arguments: []discovery.Argument{
				{
					Flags:      []string{"--format", "-f"},
					TakesValue: true,
					Choices:    []string{"json", "yaml"},
					Dest:       "format",
				},
				{Flags: []string{"--indent"}, TakesValue: true, Dest: "indent"},
			},
		},
	})
}

func TestForShell(t *testing.T) {
	for _, name := range Shells() {
		em, err := ForShell(name)
		require.NoError(t, err)
		assert.Equal(t, name, em.Name())
		assert.NotEmpty(t, em.DefaultOutputPath())
		assert.NotEmpty(t, em.SourceHint(em.DefaultOutputPath()))
	}
}

func TestForShell_Unknown(t *testing.T) {
	_, err := ForShell("fish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"fish"`)
	assert.Contains(t, err.Error(), "bash, powershell")
}

func TestEmit_Deterministic(t *testing.T) {
	for _, name := range Shells() {
		t.Run(name, func(t *testing.T) {
			em, err := ForShell(name)
			require.NoError(t, err)

			res := choicesResult()
			first, err := em.Emit(res)
			require.NoError(t, err)
			second, err := em.Emit(res)
			require.NoError(t, err)

			assert.Equal(t, first, second, "same result must produce byte-identical output")
		})
	}
}

func TestEmit_EmptyResult(t *testing.T) {
	empty := discovery.NewResult(nil)

	bash, err := (&BashEmitter{}).Emit(empty)
	require.NoError(t, err)
	assert.Contains(t, bash, "alias dj='python manage.py'")
	assert.Contains(t, bash, "complete -F _djcomp_complete dj")
	assert.Contains(t, bash, `compgen -W "" --`, "empty word list, zero candidates")

	ps, err := (&PowerShellEmitter{}).Emit(empty)
	require.NoError(t, err)
	assert.Contains(t, ps, "$script:DjCommandOrder = @()")
	assert.Contains(t, ps, "Register-ArgumentCompleter -CommandName dj")
	assert.Contains(t, ps, "function global:dj")
}

func TestWriteScript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "django_completion.sh")

	require.NoError(t, WriteScript("echo hello\n", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "echo hello\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())

	// No temp file left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteScript_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "completion.sh")
	require.NoError(t, WriteScript("old", path))
	require.NoError(t, WriteScript("new", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}
