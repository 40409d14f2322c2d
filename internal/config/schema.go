package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
	"github.com/xeipuuv/gojsonschema"
)

var (
	schemaOnce sync.Once
	schemaJSON []byte
)

// GetSchemaJSON returns the JSON Schema for texcomplete settings files,
// reflected from the Settings struct
func GetSchemaJSON() []byte {
	schemaOnce.Do(func() {
		r := &jsonschema.Reflector{
			DoNotReference:             true,
			RequiredFromJSONSchemaTags: true,
		}
		schema := r.Reflect(&Settings{})
		schema.Title = "texcomplete settings"

		data, err := json.MarshalIndent(schema, "", "  ")
		if err != nil {
			panic(err)
		}
		schemaJSON = data
	})
	return schemaJSON
}

// ValidateWithSchema validates raw settings content against the JSON Schema.
// The format is taken from the extension of path.
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
		format := strings.ToUpper(strings.TrimPrefix(filepath.Ext(path), "."))
		result.Valid = false
		result.Errors = append(result.Errors, ValidationError{
			Field:   "syntax",
			Message: fmt.Sprintf("Invalid %s syntax: %v", format, err),
		})
		return result, nil
	}
	if data == nil {
		data = map[string]interface{}{}
	}

	schemaLoader := gojsonschema.NewBytesLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, err := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   err.Field(),
				Message: err.Description(),
			})
		}
	}

	return result, nil
}
