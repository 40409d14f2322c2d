package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/texcomplete/internal/config"
)

// Validate validates a texcomplete configuration file
func Validate(configPath string, out io.Writer) error {
	out = CommonParams{Out: out}.out()

	if configPath == "" {
		dir, err := config.GetConfigDir()
		if err != nil {
			return err
		}
		configPath = config.FindConfigFile(dir)
		if configPath == "" {
			return fmt.Errorf("no config file found in %s", dir)
		}
	}

	fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	result, err := config.Validate(configPath)
	if err != nil {
		return err
	}

	if result.Valid {
		fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
