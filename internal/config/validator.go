package config

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) add(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Validate runs the schema check and then the semantic checks on the file at path
func Validate(path string) (*ValidationResult, error) {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil || !result.Valid {
		return result, err
	}

	settings, err := Load(path)
	if err != nil {
		result.add("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}

	semantic := ValidateSettings(settings)
	if !semantic.Valid {
		result.Valid = false
		result.Errors = append(result.Errors, semantic.Errors...)
	}
	return result, nil
}

// ValidateSettings checks constraints the schema cannot express
func ValidateSettings(s *Settings) *ValidationResult {
	result := &ValidationResult{Valid: true, Errors: []ValidationError{}}

	if len(s.WordLists) == 0 {
		result.add("wordlists", "At least one word list is required")
	}
	seen := make(map[string]bool, len(s.WordLists))
	for i, name := range s.WordLists {
		field := fmt.Sprintf("wordlists/%d", i)
		switch {
		case strings.TrimSpace(name) == "":
			result.add(field, "Word list name is empty")
		case strings.Contains(name, ".."):
			result.add(field, fmt.Sprintf("Word list name %q must not contain '..'", name))
		case seen[name]:
			result.add(field, fmt.Sprintf("Word list %q is listed twice", name))
		}
		seen[name] = true
	}

	for i, dir := range s.WordListDirs {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			result.add(fmt.Sprintf("wordlist_dirs/%d", i), fmt.Sprintf("Directory %s does not exist", dir))
		}
	}

	if s.AutoComplete.Delay < 0 {
		result.add("autocomplete/delay", "Delay must not be negative")
	}
	if s.Registry.Manifest != "" && s.Registry.TTL <= 0 {
		result.add("registry/ttl", "TTL must be positive when a manifest is set")
	}
	if s.Welcome != "" {
		if _, err := os.Stat(s.Welcome); err != nil {
			result.add("welcome", fmt.Sprintf("Welcome template %s not found", s.Welcome))
		}
	}

	return result
}
