package manifest

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for djcomp command manifests
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of manifest validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// ValidateWithSchema validates manifest content against the JSON Schema.
// The path selects the format; YAML and TOML content is converted to a
// JSON-compatible structure before validation.
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	data, err := parser.Unmarshal(content)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Failed to parse manifest: %v", err),
		})
		return result, nil
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, schemaErr := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   schemaErr.Field(),
				Message: schemaErr.Description(),
			})
		}
	}

	return result, nil
}
