// Package provider contains the concrete command providers consumed by
// discovery: live introspection of a Django project, and checked-in
// manifests for environments without a Python side.
package provider

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/logger"
)

// DefaultTimeout bounds the introspection call. Discovery treats the exec
// as atomic: no partial results, no retry.
const DefaultTimeout = 30 * time.Second

//go:embed introspect.py
var introspectScript string

// ManageProvider introspects a live Django project by running an embedded
// Python program through the project's interpreter. The program walks
// get_commands(), builds each command's argparse parser and prints the full
// command table as JSON.
type ManageProvider struct {
	ProjectDir string
	Python     string        // interpreter binary, defaults to "python"
	Settings   string        // DJANGO_SETTINGS_MODULE override, optional
	Timeout    time.Duration // defaults to DefaultTimeout

	log *logger.Logger
}

// NewManageProvider creates a provider for the given project directory.
func NewManageProvider(projectDir string, log *logger.Logger) *ManageProvider {
	if log == nil {
		log = logger.New("warn", nil)
	}
	return &ManageProvider{
		ProjectDir: projectDir,
		Python:     "python",
		Timeout:    DefaultTimeout,
		log:        log,
	}
}

// ListCommands runs the introspection program and decodes its output.
func (p *ManageProvider) ListCommands() ([]discovery.RawCommand, error) {
	python := p.Python
	if python == "" {
		python = "python"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, python, "-c", introspectScript)
	cmd.Dir = p.ProjectDir
	cmd.Env = p.environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.log.Debug().
		Str("python", python).
		Str("project", p.ProjectDir).
		Msg("Introspecting management commands")

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("introspection timed out after %s", timeout)
		}
		return nil, fmt.Errorf("introspection failed: %w%s", err, stderrTail(stderr.String()))
	}

	commands, err := decodeIntrospection(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	p.log.Debug().Int("commands", len(commands)).Msg("Introspection complete")
	return commands, nil
}

// environ builds the child environment. The project dir goes on PYTHONPATH
// so the settings module resolves when djcomp is run from elsewhere.
func (p *ManageProvider) environ() []string {
	env := os.Environ()
	if p.Settings != "" {
		env = append(env, "DJANGO_SETTINGS_MODULE="+p.Settings)
	}
	if p.ProjectDir != "" {
		pythonPath := p.ProjectDir
		if existing := os.Getenv("PYTHONPATH"); existing != "" {
			pythonPath = pythonPath + string(os.PathListSeparator) + existing
		}
		env = append(env, "PYTHONPATH="+pythonPath)
	}
	return env
}

// decodeIntrospection parses the JSON command table printed by the
// introspection program.
func decodeIntrospection(data []byte) ([]discovery.RawCommand, error) {
	var commands []discovery.RawCommand
	if err := json.Unmarshal(data, &commands); err != nil {
		return nil, fmt.Errorf("failed to decode introspection output: %w", err)
	}
	return commands, nil
}

// stderrTail formats the last lines of stderr for an error message.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return "\n" + strings.Join(lines, "\n")
}
