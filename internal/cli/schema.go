package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/texcomplete/internal/config"
)

// Schema displays or exports the JSON Schema for texcomplete settings files
func Schema(outputPath string, out io.Writer) error {
	out = CommonParams{Out: out}.out()
	schemaJSON := config.GetSchemaJSON()

	if outputPath != "" {
		if err := os.WriteFile(outputPath, schemaJSON, 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
		}
		fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(out, string(schemaJSON))
	return nil
}
