package cli

import (
	"fmt"
	"os"

	"github.com/djcomp/djcomp/internal/discovery"
	"github.com/djcomp/djcomp/internal/manifest"
	"github.com/djcomp/djcomp/internal/provider"
)

// Validate validates a djcomp command manifest: JSON Schema first, then the
// discovery invariants (unique names, unambiguous flags, bindable values).
func Validate(manifestPath string) error {
	if manifestPath == "" {
		currentDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}

		path, ok := manifest.Find(currentDir)
		if !ok {
			return fmt.Errorf("no manifest file found in current directory")
		}
		manifestPath = path
	}

	fmt.Printf("Validating: %s\n\n", manifestPath)

	content, err := os.ReadFile(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	result, err := manifest.ValidateWithSchema(manifestPath, content)
	if err != nil {
		return err
	}

	// Schema-valid manifests can still break discovery invariants, e.g.
	// duplicate command names.
	if result.Valid {
		if _, err := discovery.Discover(provider.NewManifestProvider(manifestPath)); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, manifest.ValidationError{
				Field:   "commands",
				Message: err.Error(),
			})
		}
	}

	if result.Valid {
		fmt.Println("✅ Manifest is valid!")
		return nil
	}

	fmt.Println("❌ Manifest has errors:")
	for i, validationErr := range result.Errors {
		fmt.Printf("%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Printf("\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
